package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/middleware"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// UpdateAdminStatus godoc
// @Summary Suspend or reactivate an admin (super admin only)
// @Description A super admin cannot suspend themselves.
// @Tags CMS - Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param payload body models.AdminStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 403 {object} models.ApiResponse "Super admin access required"
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/admins/{id}/status [patch]
func (h *Handler) UpdateAdminStatus(c *gin.Context) {
	var req models.AdminStatusRequest
	if !common.BindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	if id == c.GetString(middleware.ContextAdminID) && req.Status == models.AdminStatusSuspended {
		common.Conflict(c, "You cannot suspend your own account")
		return
	}

	db := h.db.WithContext(c.Request.Context())
	var admin models.Admin
	if err := db.First(&admin, "id = ?", id).Error; err != nil {
		common.StoreError(c, h.log, "admin.status", err, "Admin not found")
		return
	}
	if err := db.Model(&admin).Update("status", req.Status).Error; err != nil {
		common.StoreError(c, h.log, "admin.status", err, "Admin not found")
		return
	}

	h.log.Info("[admin.status] updated",
		zap.String("admin", admin.Email),
		zap.String("status", req.Status),
		zap.String("by", c.GetString(middleware.ContextAdminEmail)),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin status updated", admin.ToResponse()))
}
