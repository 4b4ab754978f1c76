package repository

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

// The project row embeds its items, so the attribute mapping is the one
// place where snapshot pointers could silently turn into zeros.
func TestProjectItemMarshalRoundTrip(t *testing.T) {
	snap := 750.0
	now := time.Date(2026, 8, 29, 10, 30, 0, 123456789, time.UTC)
	p := entities.Project{
		ID:         "proj-1",
		Name:       "Цех А",
		CustomerID: "cust-1",
		TotalPrice: 1500,
		Status:     entities.StatusDiscussion,
		CreatedAt:  now,
		UpdatedAt:  now,
		Items: []entities.ProjectItem{
			{
				TemplateID:            "tpl-1",
				Params:                map[string]float64{"d": 200, "l": 1000},
				Quantity:              2,
				MaterialID:            "mat-1",
				MaterialPriceSnapshot: &snap,
			},
			{
				TemplateID:          "tpl-2",
				Quantity:            1,
				ManualPriceOverride: true,
			},
		},
	}

	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromProjectItem(it)

	if got.ID != p.ID || got.Name != p.Name || got.CustomerID != p.CustomerID {
		t.Fatalf("identity fields lost: %+v", got)
	}
	if got.TotalPrice != 1500 || got.Status != entities.StatusDiscussion {
		t.Fatalf("derived fields lost: %+v", got)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps lost precision: %v / %v", got.CreatedAt, got.UpdatedAt)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	first := got.Items[0]
	if first.MaterialPriceSnapshot == nil || *first.MaterialPriceSnapshot != 750 {
		t.Fatal("snapshot did not survive the round trip")
	}
	if first.Params["d"] != 200 || first.Params["l"] != 1000 {
		t.Fatalf("params lost: %v", first.Params)
	}
	second := got.Items[1]
	if second.MaterialPriceSnapshot != nil {
		t.Fatal("nil snapshot must stay nil, not become 0")
	}
	if !second.ManualPriceOverride {
		t.Fatal("override flag lost")
	}
	if second.MaterialID != "" {
		t.Fatalf("empty material became %q", second.MaterialID)
	}
}
