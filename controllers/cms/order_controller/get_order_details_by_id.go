package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetOrderByID godoc
// @Summary Get one order with its items
// @Tags CMS - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/orders/{id} [get]
func (h *Handler) GetOrderByID(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.StoreError(c, h.log, "order.get", err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", order))
}
