package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetAdminByID godoc
// @Summary Get one admin
// @Tags CMS - Admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/admins/{id} [get]
func (h *Handler) GetAdminByID(c *gin.Context) {
	var admin models.Admin
	if err := h.db.WithContext(c.Request.Context()).First(&admin, "id = ?", c.Param("id")).Error; err != nil {
		common.StoreError(c, h.log, "admin.get", err, "Admin not found")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin retrieved", admin.ToResponse()))
}
