package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	mock_interfaces "github.com/m-bikko/kulsary-vent/internal/usecase/interfaces/mocks"
)

func snapshotOf(v float64) *float64 { return &v }

type projectMocks struct {
	repo     *mock_interfaces.MockIProjectRepository
	tplRepo  *mock_interfaces.MockITemplateRepository
	matRepo  *mock_interfaces.MockIMaterialRepository
	custRepo *mock_interfaces.MockICustomerRepository
}

func newProjectUseCaseWithMocks(t *testing.T) (*ProjectUseCase, projectMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := projectMocks{
		repo:     mock_interfaces.NewMockIProjectRepository(ctrl),
		tplRepo:  mock_interfaces.NewMockITemplateRepository(ctrl),
		matRepo:  mock_interfaces.NewMockIMaterialRepository(ctrl),
		custRepo: mock_interfaces.NewMockICustomerRepository(ctrl),
	}
	return NewProjectUseCase(m.repo, m.tplRepo, m.matRepo, m.custRepo), m
}

// A template whose price is just the material price, so the expected
// numbers in assertions stay obvious.
func materialPricedTemplate() *entities.ProductTemplate {
	return &entities.ProductTemplate{
		ID:      "tpl-1",
		Name:    "Воздуховод",
		Formula: "MaterialPrice",
	}
}

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc, _ := newProjectUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), ProjectInput{Name: "  ", CustomerID: "cust-1"})
		if !errors.Is(err, ErrInvalidProject) {
			t.Fatalf("expected ErrInvalidProject, got %v", err)
		}
	})

	t.Run("quantity below one rejected", func(t *testing.T) {
		uc, _ := newProjectUseCaseWithMocks(t)
		in := ProjectInput{
			Name:       "Цех А",
			CustomerID: "cust-1",
			Items:      []entities.ProjectItem{{TemplateID: "tpl-1", Quantity: 0}},
		}
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProjectItem) {
			t.Fatalf("expected ErrInvalidProjectItem, got %v", err)
		}
	})

	t.Run("snapshots resolved and total recomputed", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)

		m.matRepo.EXPECT().
			GetPricesByIDs(gomock.Any(), []string{"mat-1"}).
			Return(map[string]float64{"mat-1": 750}, nil)
		m.tplRepo.EXPECT().
			GetByIDs(gomock.Any(), []string{"tpl-1"}).
			Return(map[string]*entities.ProductTemplate{"tpl-1": materialPricedTemplate()}, nil)
		m.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
				return p, nil
			})

		in := ProjectInput{
			Name:       "Цех А",
			CustomerID: "cust-1",
			Items:      []entities.ProjectItem{{TemplateID: "tpl-1", MaterialID: "mat-1", Quantity: 2}},
		}
		p, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if p.ID == "" {
			t.Fatal("expected generated id")
		}
		if p.Status != entities.StatusNew {
			t.Fatalf("expected default status new, got %s", p.Status)
		}
		snap := p.Items[0].MaterialPriceSnapshot
		if snap == nil || *snap != 750 {
			t.Fatalf("expected snapshot 750, got %v", snap)
		}
		if p.TotalPrice != 1500 {
			t.Fatalf("expected total 1500, got %v", p.TotalPrice)
		}
	})

	t.Run("unknown material leaves item unresolved but write succeeds", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)

		m.matRepo.EXPECT().
			GetPricesByIDs(gomock.Any(), []string{"mat-gone"}).
			Return(map[string]float64{}, nil)
		m.tplRepo.EXPECT().
			GetByIDs(gomock.Any(), []string{"tpl-1"}).
			Return(map[string]*entities.ProductTemplate{"tpl-1": materialPricedTemplate()}, nil)
		m.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
				return p, nil
			})

		in := ProjectInput{
			Name:       "Цех А",
			CustomerID: "cust-1",
			Items:      []entities.ProjectItem{{TemplateID: "tpl-1", MaterialID: "mat-gone", Quantity: 1}},
		}
		p, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Items[0].MaterialPriceSnapshot != nil {
			t.Fatal("expected snapshot to stay unresolved")
		}
		if p.TotalPrice != 0 {
			t.Fatalf("expected total 0, got %v", p.TotalPrice)
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	t.Run("existing snapshot survives a live price change", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)

		existing := entities.Project{
			ID:         "proj-1",
			Name:       "Цех А",
			CustomerID: "cust-1",
			Status:     entities.StatusDiscussion,
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(existing, nil)
		// Live price moved to 900; the frozen 500 must win.
		m.matRepo.EXPECT().
			GetPricesByIDs(gomock.Any(), []string{"mat-1"}).
			Return(map[string]float64{"mat-1": 900}, nil)
		m.tplRepo.EXPECT().
			GetByIDs(gomock.Any(), []string{"tpl-1"}).
			Return(map[string]*entities.ProductTemplate{"tpl-1": materialPricedTemplate()}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
				return p, nil
			})

		in := ProjectInput{
			Name:       "Цех А",
			CustomerID: "cust-1",
			Status:     entities.StatusDiscussion,
			Items: []entities.ProjectItem{{
				TemplateID:            "tpl-1",
				MaterialID:            "mat-1",
				MaterialPriceSnapshot: snapshotOf(500),
				Quantity:              1,
			}},
		}
		p, err := uc.Update(context.Background(), "proj-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *p.Items[0].MaterialPriceSnapshot != 500 {
			t.Fatalf("expected snapshot 500, got %v", *p.Items[0].MaterialPriceSnapshot)
		}
		if p.TotalPrice != 500 {
			t.Fatalf("expected total 500, got %v", p.TotalPrice)
		}
	})

	t.Run("cleared snapshot forces a refetch", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		m.matRepo.EXPECT().
			GetPricesByIDs(gomock.Any(), []string{"mat-1"}).
			Return(map[string]float64{"mat-1": 900}, nil)
		m.tplRepo.EXPECT().
			GetByIDs(gomock.Any(), []string{"tpl-1"}).
			Return(map[string]*entities.ProductTemplate{"tpl-1": materialPricedTemplate()}, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Project) (entities.Project, error) {
				return p, nil
			})

		in := ProjectInput{
			Name:       "Цех А",
			CustomerID: "cust-1",
			Items: []entities.ProjectItem{{
				TemplateID: "tpl-1",
				MaterialID: "mat-1",
				Quantity:   1,
				// Snapshot omitted: refresh requested.
			}},
		}
		p, err := uc.Update(context.Background(), "proj-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Items[0].MaterialPriceSnapshot == nil || *p.Items[0].MaterialPriceSnapshot != 900 {
			t.Fatalf("expected refreshed snapshot 900, got %v", p.Items[0].MaterialPriceSnapshot)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "proj-gone").Return(entities.Project{}, nil)

		_, err := uc.Update(context.Background(), "proj-gone", ProjectInput{Name: "x", CustomerID: "c"})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		uc, m := newProjectUseCaseWithMocks(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1"}, nil)
		// The conditional write found no row and answered a zero value.
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.Update(context.Background(), "proj-1", ProjectInput{Name: "Цех А", CustomerID: "cust-1"})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_GetResolved(t *testing.T) {
	uc, m := newProjectUseCaseWithMocks(t)

	project := entities.Project{
		ID:         "proj-1",
		Name:       "Цех А",
		CustomerID: "cust-1",
		Items: []entities.ProjectItem{
			{TemplateID: "tpl-1", MaterialID: "mat-1", Quantity: 1},
			{TemplateID: "tpl-gone", Quantity: 1},
		},
	}
	m.repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(project, nil)
	m.tplRepo.EXPECT().
		GetByIDs(gomock.Any(), []string{"tpl-1", "tpl-gone"}).
		Return(map[string]*entities.ProductTemplate{"tpl-1": materialPricedTemplate()}, nil)
	m.matRepo.EXPECT().
		GetByIDs(gomock.Any(), []string{"mat-1"}).
		Return(map[string]*entities.Material{"mat-1": {ID: "mat-1", Name: "Оцинковка", Price: 750, Unit: "м²"}}, nil)
	m.custRepo.EXPECT().
		GetByID(gomock.Any(), "cust-1").
		Return(entities.Customer{ID: "cust-1", Name: "ТОО Вентиляция"}, nil)

	resolved, err := uc.GetResolved(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Customer.Name != "ТОО Вентиляция" {
		t.Fatalf("unexpected customer: %+v", resolved.Customer)
	}
	if resolved.Templates["tpl-1"] == nil {
		t.Fatal("expected tpl-1 populated")
	}
	if resolved.Templates["tpl-gone"] != nil {
		t.Fatal("expected tpl-gone absent")
	}
}

func TestProjectUseCase_List(t *testing.T) {
	uc, m := newProjectUseCaseWithMocks(t)

	older := entities.Project{ID: "proj-old", Name: "Склад", CustomerID: "cust-1",
		CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)}
	newer := entities.Project{ID: "proj-new", Name: "Цех А", CustomerID: "cust-gone",
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}

	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Project{older, newer}, nil)
	m.custRepo.EXPECT().List(gomock.Any()).Return([]entities.Customer{
		{ID: "cust-1", Name: "ТОО Вентиляция"},
	}, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].Project.ID != "proj-new" || got[1].Project.ID != "proj-old" {
		t.Fatalf("not sorted newest first: %s, %s", got[0].Project.ID, got[1].Project.ID)
	}
	if got[1].Customer.Name != "ТОО Вентиляция" {
		t.Fatalf("customer not attached: %+v", got[1].Customer)
	}
	// A deleted customer leaves a zero-value, not an error.
	if got[0].Customer.ID != "" {
		t.Fatalf("expected empty customer for dangling reference, got %+v", got[0].Customer)
	}
}
