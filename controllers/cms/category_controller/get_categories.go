package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetCategories godoc
// @Summary List categories with product counts
// @Tags CMS - Categories
// @Produce json
// @Param search query string false "Matches name and description"
// @Param status query string false "Status filter" Enums(all, active, inactive)
// @Param sort query string false "Sort key" Enums(name, description, productCount, status, createdAt)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.log.Error("[category.list] failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	for i := range categories {
		h.images.Category(&categories[i])
	}
	common.RespondList(c, "Categories retrieved successfully", categories, models.CategorySchema())
}
