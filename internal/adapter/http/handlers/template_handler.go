package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/m-bikko/kulsary-vent/internal/adapter/http/dto/request"
	response "github.com/m-bikko/kulsary-vent/internal/adapter/http/dto/response"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
	"github.com/m-bikko/kulsary-vent/pkg"
)

var (
	errInvalidTemplatePayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid product template payload", http.StatusBadRequest)
)

// TemplateHandler handles HTTP requests for parametric product templates,
// including the admin formula test bench.
type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
}

func NewTemplateHandler(uc usecase.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var payload request.TemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	template, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTemplate(template))
}

func (h *TemplateHandler) GetByID(c *gin.Context) {
	template, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTemplate(template))
}

func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTemplates(templates))
}

func (h *TemplateHandler) Update(c *gin.Context) {
	var payload request.TemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.ID = c.Param("id")

	template, err := h.usecase.Update(c.Request.Context(), entity)
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTemplate(template))
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// TestFormula evaluates an ad-hoc formula against sample values. A broken
// formula is a normal outcome here, so it comes back as 200 with the
// message in the body rather than as an HTTP error.
func (h *TemplateHandler) TestFormula(c *gin.Context) {
	var payload request.FormulaTestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	price, errMsg := h.usecase.TestFormula(payload.Formula, payload.Values)
	c.JSON(http.StatusOK, response.FormulaTestResponse{Price: price, Error: errMsg})
}

func mapTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFormula):
		return pkg.NewDomainError("INVALID_FORMULA", "Invalid formula", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTemplate):
		return pkg.NewDomainErrorSimple("INVALID_TEMPLATE", "Invalid product template", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Product template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
