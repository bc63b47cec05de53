package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// UpdateProduct godoc
// @Summary Replace a product
// @Description Omitted isActive/featured keep their current values
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.catalog.DB().WithContext(ctx)

	// Step 1: Find the product
	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		common.StoreError(c, h.log, "product.update", err, "Product not found")
		return
	}

	// Step 2: Bind, apply and check
	var req models.ProductRequest
	if !common.BindJSON(c, &req) {
		return
	}
	req.Apply(&product)
	if !h.checkProduct(c, product) {
		return
	}

	// Step 3: Save every column
	if err := db.Save(&product).Error; err != nil {
		common.StoreError(c, h.log, "product.update", err, "Product not found")
		return
	}
	h.catalog.Invalidate()

	updated, err := h.catalog.Product(ctx, product.ID)
	if err != nil {
		updated = product
	}
	h.images.Product(&updated)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", updated))
}
