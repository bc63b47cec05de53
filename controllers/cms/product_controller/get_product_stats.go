package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetProductStats godoc
// @Summary Product counters
// @Description Total, active, inactive and featured products plus total stock
// @Tags CMS - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/products/stats [get]
func (h *Handler) GetProductStats(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		h.log.Error("[product.stats] failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute product stats"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats retrieved successfully",
		listview.ComputeStats(products, models.ProductSchema())))
}
