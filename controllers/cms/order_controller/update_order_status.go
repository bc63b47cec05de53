package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// UpdateOrderStatus godoc
// @Summary Move an order to a new status
// @Description Delivered and cancelled orders are final and answer 409.
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body models.OrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/orders/{id}/status [patch]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req models.OrderStatusRequest
	if !common.BindJSON(c, &req) {
		return
	}

	order, err := h.orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if errors.Is(err, services.ErrOrderFinal) {
		common.Conflict(c, "Order is already delivered or cancelled")
		return
	}
	if err != nil {
		common.StoreError(c, h.log, "order.status", err, "Order not found")
		return
	}

	h.log.Info("[order.status] updated", zap.String("order", order.OrderNumber), zap.String("status", order.Status))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", order))
}
