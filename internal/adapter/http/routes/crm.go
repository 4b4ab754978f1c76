package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/m-bikko/kulsary-vent/internal/adapter/http/handlers"
)

const (
	PathCustomers = "/customers"
	PathMaterials = "/materials"
	PathProducts  = "/products"
	PathProjects  = "/projects"
	PathLeads     = "/leads"
	PathAdmin     = "/admin"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	materialHandler *handlers.MaterialHandler,
	templateHandler *handlers.TemplateHandler,
	projectHandler *handlers.ProjectHandler,
	leadHandler *handlers.LeadHandler,
	adminHandler *handlers.AdminHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", materialHandler.Create)
		materials.GET("", materialHandler.List)
		materials.GET("/:id", materialHandler.GetByID)
		materials.PUT("/:id", materialHandler.Update)
		materials.DELETE("/:id", materialHandler.Delete)
	}

	products := rg.Group(PathProducts)
	{
		// The fixed route must be registered alongside the :id routes;
		// gin resolves static segments before params.
		products.POST("/test-formula", templateHandler.TestFormula)
		products.POST("", templateHandler.Create)
		products.GET("", templateHandler.List)
		products.GET("/:id", templateHandler.GetByID)
		products.PUT("/:id", templateHandler.Update)
		products.DELETE("/:id", templateHandler.Delete)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.GetByID)
		projects.GET("/:id/export", projectHandler.ExportQuote)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}

	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.GET("/recalculate-totals", adminHandler.RecalculateTotals)
	}
}
