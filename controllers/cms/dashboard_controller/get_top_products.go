package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetTopProducts godoc
// @Summary Best selling products
// @Description Ranked by revenue over all non-cancelled orders, with each product's share of that revenue
// @Tags CMS - Dashboard
// @Produce json
// @Param limit query int false "Number of products" default(5)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/dashboard/top-products [get]
func (h *Handler) GetTopProducts(c *gin.Context) {
	db := h.catalog.DB().WithContext(c.Request.Context())
	limit := cardLimit(c.Query("limit"))

	// ================================
	// Total revenue (for percentage calculation)
	// ================================
	var totalRevenue float64
	if err := db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		h.log.Error("[dashboard.top-products] total revenue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	// ================================
	// Top products by revenue
	// ================================
	top := make([]models.TopProduct, 0, limit)
	if err := db.Raw(`
			SELECT
				oi.product_id,
				oi.product_name,
				SUM(oi.quantity) AS units_sold,
				SUM(oi.quantity * oi.unit_price) AS revenue
			FROM order_items oi
			INNER JOIN orders o ON oi.order_id = o.id
			WHERE o.status <> ?
			GROUP BY oi.product_id, oi.product_name
			ORDER BY revenue DESC, units_sold DESC
			LIMIT ?
		`, models.OrderStatusCancelled, limit).
		Scan(&top).Error; err != nil {
		h.log.Error("[dashboard.top-products] query", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	for i := range top {
		if totalRevenue > 0 {
			top[i].RevenuePercent = top[i].Revenue / totalRevenue * 100
		}
	}

	h.log.Debug("[dashboard.top-products] respond", zap.Int("products", len(top)), zap.Float64("total_revenue", totalRevenue))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", top))
}
