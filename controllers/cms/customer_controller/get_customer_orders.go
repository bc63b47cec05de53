package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// GetCustomerOrders godoc
// @Summary Orders of one customer
// @Tags CMS - Customers
// @Produce json
// @Security BearerAuth
// @Param email path string true "Customer email"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderRow,meta=models.Pagination}
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/customers/{email}/orders [get]
func (h *Handler) GetCustomerOrders(c *gin.Context) {
	page, limit := common.ParsePageLimit(c)
	email := c.Param("email")

	rows, total, err := h.orders.List(c.Request.Context(), services.OrderQuery{
		CustomerEmail: email,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		h.log.Error("[customer.orders] query failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer orders"))
		return
	}
	if total == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer orders retrieved successfully", rows, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: listview.TotalPages(int(total), limit),
	}))
}
