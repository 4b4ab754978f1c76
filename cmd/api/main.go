package main

import (
	_ "github.com/m-bikko/kulsary-vent/docs"
	"github.com/m-bikko/kulsary-vent/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Kulsary Vent CRM API
// @version         1.0
// @description     Mini CRM/ERP for ventilation products (customers, materials, parametric products, leads, projects) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
