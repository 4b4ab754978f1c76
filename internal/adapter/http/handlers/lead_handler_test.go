package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/m-bikko/kulsary-vent/internal/adapter/http/handlers/mocks"
	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

func TestLeadHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad from date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads?from=29-08-2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("date window forwarded to usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, filter interfaces.LeadFilter) ([]entities.Lead, error) {
				wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
				if !filter.From.Equal(wantFrom) {
					t.Fatalf("unexpected from: %v", filter.From)
				}
				// Upper bound must cover the whole "to" day.
				endOfDay := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)
				if filter.To.Before(endOfDay) {
					t.Fatalf("to bound excludes end of day: %v", filter.To)
				}
				return []entities.Lead{{ID: "lead-1", Title: "Монтаж вентиляции"}}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/leads?from=2026-08-01&to=2026-08-28", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no filter means zero bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads", h.List)

		uc.EXPECT().List(gomock.Any(), interfaces.LeadFilter{}).Return([]entities.Lead{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	r := gin.New()
	r.POST("/v1/leads", h.Create)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{ID: "lead-1", Title: "Монтаж вентиляции", Status: entities.StatusNew, Source: "manual"}, nil)

	body := `{"title":"Монтаж вентиляции","estimatedValue":500000}`
	req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}
