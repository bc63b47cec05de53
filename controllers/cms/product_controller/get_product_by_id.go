package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetProductByID godoc
// @Summary Get a product
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/products/{id} [get]
func (h *Handler) GetProductByID(c *gin.Context) {
	product, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.StoreError(c, h.log, "product.get", err, "Product not found")
		return
	}
	h.images.Product(&product)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", product))
}
