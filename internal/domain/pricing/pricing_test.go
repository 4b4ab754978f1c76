package pricing

import (
	"testing"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
)

func ductTemplate() *entities.ProductTemplate {
	return &entities.ProductTemplate{
		ID:   "tpl-duct",
		Name: "Круглый воздуховод",
		Parameters: []entities.Parameter{
			{Name: "Диаметр", Slug: "d", Type: entities.ParameterTypeNumber},
			{Name: "Длина", Slug: "l", Type: entities.ParameterTypeNumber},
		},
		Formula: "(d * PI) * l * MaterialPrice",
	}
}

func snapshot(v float64) *float64 { return &v }

func TestResolveSnapshots(t *testing.T) {
	t.Run("fills missing snapshot from lookup", func(t *testing.T) {
		items := []entities.ProjectItem{
			{TemplateID: "tpl-duct", MaterialID: "mat-1", Quantity: 1},
		}
		out := ResolveSnapshots(items, map[string]float64{"mat-1": 750})
		if out[0].MaterialPriceSnapshot == nil || *out[0].MaterialPriceSnapshot != 750 {
			t.Fatalf("expected snapshot 750, got %v", out[0].MaterialPriceSnapshot)
		}
		if items[0].MaterialPriceSnapshot != nil {
			t.Fatal("input slice must not be mutated")
		}
	})

	t.Run("existing snapshot never refreshed", func(t *testing.T) {
		items := []entities.ProjectItem{
			{TemplateID: "tpl-duct", MaterialID: "mat-1", MaterialPriceSnapshot: snapshot(500), Quantity: 1},
		}
		// Live price moved; the frozen one must survive repeated passes.
		out := ResolveSnapshots(items, map[string]float64{"mat-1": 900})
		out = ResolveSnapshots(out, map[string]float64{"mat-1": 900})
		if *out[0].MaterialPriceSnapshot != 500 {
			t.Fatalf("expected snapshot to stay 500, got %v", *out[0].MaterialPriceSnapshot)
		}
	})

	t.Run("manual override skipped", func(t *testing.T) {
		items := []entities.ProjectItem{
			{TemplateID: "tpl-duct", MaterialID: "mat-1", ManualPriceOverride: true, Quantity: 1},
		}
		out := ResolveSnapshots(items, map[string]float64{"mat-1": 750})
		if out[0].MaterialPriceSnapshot != nil {
			t.Fatalf("expected nil snapshot, got %v", *out[0].MaterialPriceSnapshot)
		}
	})

	t.Run("unknown material does not abort the batch", func(t *testing.T) {
		items := []entities.ProjectItem{
			{TemplateID: "tpl-duct", MaterialID: "mat-gone", Quantity: 1},
			{TemplateID: "tpl-duct", MaterialID: "mat-1", Quantity: 1},
		}
		out := ResolveSnapshots(items, map[string]float64{"mat-1": 750})
		if out[0].MaterialPriceSnapshot != nil {
			t.Fatal("missing material must stay unresolved")
		}
		if out[1].MaterialPriceSnapshot == nil || *out[1].MaterialPriceSnapshot != 750 {
			t.Fatal("second item must still resolve")
		}
	})

	t.Run("no material means nothing to resolve", func(t *testing.T) {
		items := []entities.ProjectItem{{TemplateID: "tpl-duct", Quantity: 1}}
		out := ResolveSnapshots(items, map[string]float64{"mat-1": 750})
		if out[0].MaterialPriceSnapshot != nil {
			t.Fatal("expected nil snapshot")
		}
	})
}

func TestUnitPrice(t *testing.T) {
	t.Run("snapshot wins over live price", func(t *testing.T) {
		item := entities.ProjectItem{
			TemplateID:            "tpl-duct",
			Params:                map[string]float64{"d": 100, "l": 200},
			MaterialID:            "mat-1",
			MaterialPriceSnapshot: snapshot(1000),
			Quantity:              1,
		}
		got := UnitPrice(item, ductTemplate(), map[string]float64{"mat-1": 9999})
		if got != 62800000 {
			t.Fatalf("expected 62800000, got %v", got)
		}
	})

	t.Run("falls back to lookup then zero", func(t *testing.T) {
		item := entities.ProjectItem{
			TemplateID: "tpl-duct",
			Params:     map[string]float64{"d": 1, "l": 1},
			MaterialID: "mat-1",
			Quantity:   1,
		}
		if got := UnitPrice(item, ductTemplate(), map[string]float64{"mat-1": 100}); got != 314 {
			t.Fatalf("expected 314, got %v", got)
		}
		if got := UnitPrice(item, ductTemplate(), nil); got != 0 {
			t.Fatalf("expected 0 without price, got %v", got)
		}
	})

	t.Run("missing template prices as zero", func(t *testing.T) {
		item := entities.ProjectItem{TemplateID: "tpl-gone", Params: map[string]float64{"d": 1}, Quantity: 1}
		if got := UnitPrice(item, nil, nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("broken formula prices as zero", func(t *testing.T) {
		tpl := ductTemplate()
		tpl.Formula = "d * unknown_slug"
		item := entities.ProjectItem{TemplateID: tpl.ID, Params: map[string]float64{"d": 5}, Quantity: 1}
		if got := UnitPrice(item, tpl, nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("negative and non-finite clamped", func(t *testing.T) {
		tpl := ductTemplate()
		tpl.Formula = "0 - d"
		item := entities.ProjectItem{TemplateID: tpl.ID, Params: map[string]float64{"d": 5}, Quantity: 1}
		if got := UnitPrice(item, tpl, nil); got != 0 {
			t.Fatalf("expected 0 for negative, got %v", got)
		}
		tpl.Formula = "d / l"
		item.Params = map[string]float64{"d": 1, "l": 0}
		if got := UnitPrice(item, tpl, nil); got != 0 {
			t.Fatalf("expected 0 for division by zero, got %v", got)
		}
	})
}

func TestProjectTotal(t *testing.T) {
	tpl := &entities.ProductTemplate{
		ID:         "tpl-fixed",
		Parameters: []entities.Parameter{{Name: "Цена", Slug: "p", Type: entities.ParameterTypeNumber}},
		Formula:    "p",
	}
	templates := map[string]*entities.ProductTemplate{tpl.ID: tpl}

	t.Run("sums unit price times quantity", func(t *testing.T) {
		items := []entities.ProjectItem{
			{TemplateID: tpl.ID, Params: map[string]float64{"p": 500}, Quantity: 3},
			{TemplateID: tpl.ID, Params: map[string]float64{"p": 500}, Quantity: 3},
		}
		if got := ProjectTotal(items, templates, nil); got != 3000 {
			t.Fatalf("expected 3000, got %v", got)
		}
	})

	t.Run("zero quantity counts as one", func(t *testing.T) {
		items := []entities.ProjectItem{{TemplateID: tpl.ID, Params: map[string]float64{"p": 250}}}
		if got := ProjectTotal(items, templates, nil); got != 250 {
			t.Fatalf("expected 250, got %v", got)
		}
	})

	t.Run("bad items contribute zero, not NaN", func(t *testing.T) {
		broken := &entities.ProductTemplate{ID: "tpl-broken", Formula: "1 / 0"}
		all := map[string]*entities.ProductTemplate{tpl.ID: tpl, broken.ID: broken}
		items := []entities.ProjectItem{
			{TemplateID: broken.ID, Quantity: 2},
			{TemplateID: "tpl-gone", Quantity: 5},
			{TemplateID: tpl.ID, Params: map[string]float64{"p": 100}, Quantity: 2},
		}
		if got := ProjectTotal(items, all, nil); got != 200 {
			t.Fatalf("expected 200, got %v", got)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		if got := ProjectTotal(nil, templates, nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}
