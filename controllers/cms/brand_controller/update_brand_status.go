package brand_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// UpdateBrandStatus godoc
// @Summary Activate or deactivate every product of a brand
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Param id path string true "Brand slug"
// @Param status body models.StatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/brands/{id}/status [patch]
func (h *Handler) UpdateBrandStatus(c *gin.Context) {
	var req models.StatusRequest
	if !common.BindJSON(c, &req) {
		return
	}

	brand, err := h.catalog.SetBrandActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		common.StoreError(c, h.log, "brand.status", err, "Brand not found")
		return
	}
	h.log.Info("[brand.status] updated",
		zap.String("brand", brand.ID),
		zap.Bool("is_active", brand.IsActive),
		zap.Int("products", brand.ProductCount),
	)

	h.images.Brand(&brand)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand status updated successfully", brand))
}
