package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetRecentOrders godoc
// @Summary Newest orders
// @Tags CMS - Dashboard
// @Produce json
// @Param limit query int false "Number of orders" default(5)
// @Success 200 {object} models.ApiResponse{data=[]models.RecentOrder}
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/dashboard/recent-orders [get]
func (h *Handler) GetRecentOrders(c *gin.Context) {
	recent, err := h.orders.Recent(c.Request.Context(), cardLimit(c.Query("limit")))
	if err != nil {
		h.log.Error("[dashboard.recent-orders] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch recent orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recent orders retrieved successfully", recent))
}
