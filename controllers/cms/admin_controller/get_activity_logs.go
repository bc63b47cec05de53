package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// GetActivityLogs godoc
// @Summary List admin activity
// @Description Newest first, with optional admin, action and resource filters
// @Tags CMS - Admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Param admin_id query string false "Filter by admin ID"
// @Param action query string false "Filter by action, e.g. updated_product"
// @Param resource_type query string false "Filter by resource" Enums(product, category, brand, order, admin)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog,meta=models.Pagination}
// @Router /api/admin/activity-logs [get]
func (h *Handler) GetActivityLogs(c *gin.Context) {
	page, limit := common.ParsePageLimit(c)
	q := services.ActivityQuery{
		AdminID:      c.Query("admin_id"),
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		Page:         page,
		Limit:        limit,
	}

	logs, total, err := h.activity.List(c.Request.Context(), q)
	if err != nil {
		h.log.Error("[admin.activity] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", logs, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: listview.TotalPages(int(total), limit),
	}))
}
