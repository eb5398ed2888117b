package routes

import (
	"remodeling_proposals/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/quote", pricingHandler.Quote)
		pricing.GET("/calculate/:kind", pricingHandler.Calculate)
		pricing.GET("/history", pricingHandler.History)
		pricing.GET("/history/export", pricingHandler.ExportHistory)

		pricing.GET("/:dimension", pricingHandler.ListPricing)
		pricing.POST("/:dimension", pricingHandler.AddPricing)
		pricing.POST("/:dimension/bulk", pricingHandler.BulkUpdatePricing)
		pricing.GET("/:dimension/:key", pricingHandler.GetPricing)
		pricing.PUT("/:dimension/:key", pricingHandler.UpdatePricing)
		pricing.DELETE("/:dimension/:key", pricingHandler.DeletePricing)
	}
}
