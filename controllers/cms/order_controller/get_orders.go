package order_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// GetOrders godoc
// @Summary List orders
// @Description Paginated, newest first. Optional status filter and search over order number, customer name and email.
// @Tags CMS - Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Param status query string false "Order status" Enums(pending, processing, shipped, delivered, cancelled)
// @Param q query string false "Search term"
// @Success 200 {object} models.ApiResponse{data=[]models.OrderRow,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/orders [get]
func (h *Handler) GetOrders(c *gin.Context) {
	page, limit := common.ParsePageLimit(c)
	q := services.OrderQuery{
		Status: strings.ToLower(strings.TrimSpace(c.Query("status"))),
		Search: c.Query("q"),
		Page:   page,
		Limit:  limit,
	}
	if q.Status == "all" {
		q.Status = ""
	}
	if q.Status != "" && !validStatus(q.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order status: "+q.Status))
		return
	}

	rows, total, err := h.orders.List(c.Request.Context(), q)
	if err != nil {
		h.log.Error("[order.list] query failed", zap.Error(err), zap.String("status", q.Status), zap.String("q", q.Search))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", rows, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: listview.TotalPages(int(total), limit),
	}))
}

func validStatus(s string) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	}
	return false
}
