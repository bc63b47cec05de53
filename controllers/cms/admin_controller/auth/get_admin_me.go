package admin_auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/middleware"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetProfile godoc
// @Summary Current admin profile
// @Description Used by the panel to check the stored token on reload
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /api/auth/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	adminID := c.GetString(middleware.ContextAdminID)
	if adminID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var admin models.Admin
	err := h.db.WithContext(c.Request.Context()).First(&admin, "id = ?", adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Admin not found"))
		return
	}
	if err != nil {
		h.log.Error("[auth.profile] lookup failed", zap.String("admin", adminID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin profile retrieved", admin.ToResponse()))
}
