package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/brand_controller"
)

// SetupBrandRoutes registers the derived brand endpoints. Brands have no
// create or update; they come from the product brand field.
func SetupBrandRoutes(rg *gin.RouterGroup, h *brand_controller.Handler) {
	brand := rg.Group("/brands")
	{
		brand.GET("", h.GetBrands)
		brand.GET("/:id", h.GetBrandByID)
		brand.PATCH("/:id/status", h.UpdateBrandStatus)
		brand.DELETE("/:id", h.DeleteBrand)
	}
}
