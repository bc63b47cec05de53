package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetCategoryByID godoc
// @Summary Get a category
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/categories/{id} [get]
func (h *Handler) GetCategoryByID(c *gin.Context) {
	category, err := h.catalog.Category(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.StoreError(c, h.log, "category.get", err, "Category not found")
		return
	}
	h.images.Category(&category)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category retrieved successfully", category))
}
