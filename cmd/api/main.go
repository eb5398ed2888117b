package main

import (
	_ "remodeling_proposals/docs"
	"remodeling_proposals/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Remodeling Proposals API
// @version         1.0
// @description     Generates priced remodeling proposals with pluggable text-generation backends, and administers the catalog and pricing tables behind them.
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
