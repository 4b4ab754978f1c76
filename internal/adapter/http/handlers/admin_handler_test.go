package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/m-bikko/kulsary-vent/internal/adapter/http/handlers/mocks"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
)

func TestAdminHandler_RecalculateTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/recalculate-totals", h.RecalculateTotals)

		uc.EXPECT().RecalculateTotals(gomock.Any()).Return(usecase.ReconcileReport{TotalProjects: 12, Updated: 3, OrphanedItems: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/recalculate-totals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got usecase.ReconcileReport
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.TotalProjects != 12 || got.Updated != 3 || got.OrphanedItems != 1 {
			t.Fatalf("unexpected report: %+v", got)
		}
	})

	t.Run("scan failure is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/recalculate-totals", h.RecalculateTotals)

		uc.EXPECT().RecalculateTotals(gomock.Any()).Return(usecase.ReconcileReport{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/recalculate-totals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
