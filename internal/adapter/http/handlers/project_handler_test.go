package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/m-bikko/kulsary-vent/internal/adapter/http/handlers/mocks"
	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
)

func TestProjectHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/projects", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/projects", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"customer":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad item mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/projects", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrInvalidProjectItem)

		body := `{"name":"Цех А","customer":"cust-1","items":[{"template":"tpl-1","quantity":-2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/projects", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.ProjectInput) (entities.Project, error) {
				if in.Name != "Цех А" || in.CustomerID != "cust-1" {
					t.Fatalf("payload not mapped: %+v", in)
				}
				if len(in.Items) != 1 || in.Items[0].TemplateID != "tpl-1" {
					t.Fatalf("items not mapped: %+v", in.Items)
				}
				return entities.Project{ID: "proj-1", Name: in.Name, CustomerID: in.CustomerID, TotalPrice: 1500, Status: entities.StatusNew}, nil
			})

		body := `{"name":"Цех А","customer":"cust-1","items":[{"template":"tpl-1","params":{"d":200},"quantity":2,"material":"mat-1"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["totalPrice"] != 1500.0 {
			t.Fatalf("expected totalPrice 1500, got %v", got["totalPrice"])
		}
	})
}

func TestProjectHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetByID)

		uc.EXPECT().GetResolved(gomock.Any(), "missing").Return(entities.ResolvedProject{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns populated detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetByID)

		uc.EXPECT().GetResolved(gomock.Any(), "proj-1").Return(entities.ResolvedProject{
			Project: entities.Project{
				ID: "proj-1", Name: "Цех А", CustomerID: "cust-1", Status: entities.StatusNew,
				Items: []entities.ProjectItem{{TemplateID: "tpl-1", MaterialID: "mat-1", Quantity: 1}},
			},
			Customer:  entities.Customer{ID: "cust-1", Name: "ТОО Вентиляция"},
			Templates: map[string]*entities.ProductTemplate{"tpl-1": {ID: "tpl-1", Name: "Воздуховод"}},
			Materials: map[string]*entities.Material{"mat-1": {ID: "mat-1", Name: "Оцинковка"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Customer struct {
				Name string `json:"name"`
			} `json:"customer"`
			Items []struct {
				Template *struct {
					Name string `json:"name"`
				} `json:"template"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.Customer.Name != "ТОО Вентиляция" {
			t.Fatalf("customer not expanded: %s", w.Body.String())
		}
		if len(got.Items) != 1 || got.Items[0].Template == nil || got.Items[0].Template.Name != "Воздуховод" {
			t.Fatalf("template not expanded: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_ExportQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		export := mocks.NewMockIExportUseCase(ctrl)
		h := NewProjectHandler(mocks.NewMockIProjectUseCase(ctrl), export)

		r := gin.New()
		r.GET("/v1/projects/:id/export", h.ExportQuote)

		export.EXPECT().BuildQuote(gomock.Any(), "missing").Return(usecase.QuoteDocument{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		export := mocks.NewMockIExportUseCase(ctrl)
		h := NewProjectHandler(mocks.NewMockIProjectUseCase(ctrl), export)

		r := gin.New()
		r.GET("/v1/projects/:id/export", h.ExportQuote)

		export.EXPECT().BuildQuote(gomock.Any(), "proj-1").Return(usecase.QuoteDocument{
			ProjectID:    "proj-1",
			ProjectName:  "Цех А",
			CustomerName: "ТОО Вентиляция",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/proj-1/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["customerName"] != "ТОО Вентиляция" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

	r := gin.New()
	r.DELETE("/v1/projects/:id", h.Delete)

	uc.EXPECT().Delete(gomock.Any(), "proj-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/projects/proj-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestProjectHandler_UnexpectedError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc, mocks.NewMockIExportUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/projects", h.List)

	uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamodb unavailable"))

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
