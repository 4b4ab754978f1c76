package request

import (
	"encoding/json"
	"testing"
)

func TestProjectItemRequest_SnapshotDecoding(t *testing.T) {
	t.Run("omitted snapshot decodes as nil", func(t *testing.T) {
		var r ProjectItemRequest
		if err := json.Unmarshal([]byte(`{"template":"tpl-1","quantity":1}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.MaterialPriceSnapshot != nil {
			t.Fatalf("expected nil snapshot, got %v", *r.MaterialPriceSnapshot)
		}
	})

	t.Run("explicit null decodes as nil", func(t *testing.T) {
		var r ProjectItemRequest
		if err := json.Unmarshal([]byte(`{"template":"tpl-1","quantity":1,"materialPriceSnapshot":null}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.MaterialPriceSnapshot != nil {
			t.Fatalf("expected nil snapshot, got %v", *r.MaterialPriceSnapshot)
		}
	})

	t.Run("numeric snapshot preserved including zero", func(t *testing.T) {
		var r ProjectItemRequest
		if err := json.Unmarshal([]byte(`{"template":"tpl-1","quantity":1,"materialPriceSnapshot":0}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.MaterialPriceSnapshot == nil || *r.MaterialPriceSnapshot != 0 {
			t.Fatal("expected explicit zero snapshot to survive decoding")
		}
	})
}

func TestProjectRequest_ToInput(t *testing.T) {
	snapshot := 750.0
	r := ProjectRequest{
		Name:     "Цех А",
		Customer: "cust-1",
		Status:   "discussion",
		Items: []ProjectItemRequest{{
			Template:              "tpl-1",
			Params:                map[string]float64{"d": 100, "l": 200},
			Quantity:              2,
			Material:              "mat-1",
			MaterialPriceSnapshot: &snapshot,
			ManualPriceOverride:   true,
		}},
	}

	in := r.ToInput()
	if in.CustomerID != "cust-1" || string(in.Status) != "discussion" {
		t.Fatalf("unexpected input: %+v", in)
	}
	it := in.Items[0]
	if it.TemplateID != "tpl-1" || it.MaterialID != "mat-1" || it.Quantity != 2 {
		t.Fatalf("unexpected item: %+v", it)
	}
	if it.MaterialPriceSnapshot == nil || *it.MaterialPriceSnapshot != 750 {
		t.Fatalf("snapshot lost in mapping: %+v", it)
	}
	if !it.ManualPriceOverride {
		t.Fatal("override flag lost in mapping")
	}
	if it.Params["d"] != 100 {
		t.Fatalf("params lost in mapping: %+v", it.Params)
	}
}
