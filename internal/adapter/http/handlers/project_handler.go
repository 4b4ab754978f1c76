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
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// ProjectHandler handles HTTP requests for projects and their quote export.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
	export  usecase.IExportUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase, export usecase.IExportUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc, export: export}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// GetByID returns the project with its customer, templates and materials
// expanded onto the items, which is what the detail screen renders.
func (h *ProjectHandler) GetByID(c *gin.Context) {
	resolved, err := h.usecase.GetResolved(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResolvedProject(resolved))
}

func (h *ProjectHandler) List(c *gin.Context) {
	summaries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectSummaries(summaries))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportQuote returns the renderer-ready quote document for a project.
func (h *ProjectHandler) ExportQuote(c *gin.Context) {
	doc, err := h.export.BuildQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, doc)
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectItem):
		return pkg.NewDomainError("INVALID_PROJECT_ITEM", "Invalid project item", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProject):
		return pkg.NewDomainErrorSimple("INVALID_PROJECT", "Invalid project", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
