package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetAdmins godoc
// @Summary List admins
// @Tags CMS - Admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.AdminResponse,meta=models.Pagination}
// @Failure 403 {object} models.ApiResponse "Super admin access required"
// @Router /api/admin/admins [get]
func (h *Handler) GetAdmins(c *gin.Context) {
	page, limit := common.ParsePageLimit(c)
	db := h.db.WithContext(c.Request.Context()).Model(&models.Admin{})

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		h.log.Error("[admin.list] count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch admins"))
		return
	}

	var admins []models.Admin
	if err := db.Order("created_at DESC, id").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&admins).Error; err != nil {
		h.log.Error("[admin.list] query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch admins"))
		return
	}

	responses := lo.Map(admins, func(a models.Admin, _ int) models.AdminResponse { return a.ToResponse() })
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Admins retrieved", responses, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: listview.TotalPages(int(total), limit),
	}))
}
