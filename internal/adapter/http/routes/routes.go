package routes

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/m-bikko/kulsary-vent/docs" // This will be auto-generated
	"github.com/m-bikko/kulsary-vent/internal/adapter/http/handlers"
	"github.com/m-bikko/kulsary-vent/internal/adapter/persistence/repository"
	"github.com/m-bikko/kulsary-vent/internal/infrastructure/database"
	"github.com/m-bikko/kulsary-vent/internal/usecase"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	materialRepo := repository.NewMaterialDynamoRepository(ddb)
	templateRepo := repository.NewTemplateDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	leadRepo := repository.NewLeadDynamoRepository(ddb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo)
	templateUseCase := usecase.NewTemplateUseCase(templateRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, templateRepo, materialRepo, customerRepo)
	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	reconcileUseCase := usecase.NewReconcileUseCase(projectRepo, templateRepo, materialRepo)
	exportUseCase := usecase.NewExportUseCase(projectUseCase)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)
	templateHandler := handlers.NewTemplateHandler(templateUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase, exportUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	adminHandler := handlers.NewAdminHandler(reconcileUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, customerHandler, materialHandler, templateHandler, projectHandler, leadHandler, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
