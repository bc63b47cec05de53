package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetCustomers godoc
// @Summary List customers
// @Description Customers derived from orders, most recent buyer first, with order count and spend
// @Tags CMS - Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Param q query string false "Search by name or email"
// @Success 200 {object} models.ApiResponse{data=[]models.CustomerSummary,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/customers [get]
func (h *Handler) GetCustomers(c *gin.Context) {
	page, limit := common.ParsePageLimit(c)

	customers, err := h.orders.Customers(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.log.Error("[customer.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	p := listview.Paginate(customers, page, limit)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers retrieved successfully", p.Items, &models.Pagination{
		Page:       p.Number,
		Limit:      p.Size,
		Total:      p.TotalItems,
		TotalPages: p.TotalPages,
	}))
}
