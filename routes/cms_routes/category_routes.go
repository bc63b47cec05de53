package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/category_controller"
)

func SetupCategoryRoutes(rg *gin.RouterGroup, h *category_controller.Handler) {
	category := rg.Group("/categories")
	{
		category.GET("", h.GetCategories)
		category.GET("/:id", h.GetCategoryByID)
		category.POST("", h.CreateCategory)
		category.PUT("/:id", h.UpdateCategory)
		category.PATCH("/:id/status", h.UpdateCategoryStatus)
		category.DELETE("/:id", h.DeleteCategory)
	}
}
