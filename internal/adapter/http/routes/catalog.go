package routes

import (
	"remodeling_proposals/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", catalogHandler.ListServices)
		catalog.GET("/materials", catalogHandler.ListMaterials)
		catalog.GET("/suggestions", catalogHandler.SuggestServices)
	}
}
