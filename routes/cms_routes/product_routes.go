package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup, h *product_controller.Handler) {
	product := rg.Group("/products")
	{
		product.GET("", h.GetProducts)
		// before /:id so "stats" is not taken for an ID
		product.GET("/stats", h.GetProductStats)
		product.GET("/:id", h.GetProductByID)

		product.POST("", h.CreateProduct)
		product.PUT("/:id", h.UpdateProduct)
		product.PATCH("/:id/status", h.UpdateProductStatus)
		product.DELETE("/:id", h.DeleteProduct)
	}
}
