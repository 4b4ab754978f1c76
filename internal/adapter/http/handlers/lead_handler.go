package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "github.com/m-bikko/kulsary-vent/internal/adapter/http/dto/request"
	response "github.com/m-bikko/kulsary-vent/internal/adapter/http/dto/response"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
	"github.com/m-bikko/kulsary-vent/pkg"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
	errInvalidLeadPeriod  = pkg.NewDomainErrorSimple("INVALID_LEAD_PERIOD", "Invalid from/to date, expected YYYY-MM-DD", http.StatusBadRequest)
)

// LeadHandler handles HTTP requests for the sales kanban.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) Create(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// List returns leads, optionally restricted to a creation-date window via
// from/to query params (inclusive calendar dates).
func (h *LeadHandler) List(c *gin.Context) {
	filter, err := parseLeadFilter(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(errInvalidLeadPeriod.HTTPStatus, errInvalidLeadPeriod.ToHTTPError())
		return
	}

	leads, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) Update(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func parseLeadFilter(from, to string) (interfaces.LeadFilter, error) {
	var filter interfaces.LeadFilter
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return interfaces.LeadFilter{}, err
		}
		filter.From = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return interfaces.LeadFilter{}, err
		}
		// Inclusive upper bound: cover the whole "to" day.
		filter.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, nil
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead):
		return pkg.NewDomainErrorSimple("INVALID_LEAD", "Invalid lead", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
