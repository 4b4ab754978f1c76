package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/m-bikko/kulsary-vent/internal/usecase"
	"github.com/m-bikko/kulsary-vent/pkg"
)

// AdminHandler exposes maintenance operations.
type AdminHandler struct {
	reconcile usecase.IReconcileUseCase
}

func NewAdminHandler(reconcile usecase.IReconcileUseCase) *AdminHandler {
	return &AdminHandler{reconcile: reconcile}
}

// RecalculateTotals re-derives every project total from current templates
// and snapshots and persists only the projects whose stored total drifted.
func (h *AdminHandler) RecalculateTotals(c *gin.Context) {
	report, err := h.reconcile.RecalculateTotals(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}
