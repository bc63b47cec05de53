package brand_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// DeleteBrand godoc
// @Summary Delete a brand
// @Description Clears the brand from its products; the products are kept
// @Tags CMS - Brands
// @Produce json
// @Param id path string true "Brand slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/brands/{id} [delete]
func (h *Handler) DeleteBrand(c *gin.Context) {
	id := c.Param("id")
	n, err := h.catalog.DeleteBrand(c.Request.Context(), id)
	if err != nil {
		common.StoreError(c, h.log, "brand.delete", err, "Brand not found")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand deleted successfully", gin.H{
		"id":                id,
		"productsUnbranded": n,
	}))
}
