package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// UpdateProductStatus godoc
// @Summary Activate or deactivate a product
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param status body models.StatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/products/{id}/status [patch]
func (h *Handler) UpdateProductStatus(c *gin.Context) {
	var req models.StatusRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	res := h.catalog.DB().WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Update("is_active", *req.IsActive)
	if res.Error != nil {
		common.StoreError(c, h.log, "product.status", res.Error, "Product not found")
		return
	}
	if res.RowsAffected == 0 {
		common.StoreError(c, h.log, "product.status", errNotFound, "Product not found")
		return
	}
	h.catalog.Invalidate()

	product, err := h.catalog.Product(ctx, id)
	if err != nil {
		common.StoreError(c, h.log, "product.status", err, "Product not found")
		return
	}
	h.images.Product(&product)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product status updated successfully", product))
}
