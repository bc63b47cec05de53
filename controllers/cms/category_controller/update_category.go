package category_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// UpdateCategory godoc
// @Summary Replace a category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryRequest true "Category"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.catalog.DB().WithContext(ctx)

	var category models.Category
	if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		common.StoreError(c, h.log, "category.update", err, "Category not found")
		return
	}

	var req models.CategoryRequest
	if !common.BindJSON(c, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Apply(&category)
	if !h.checkName(c, category) {
		return
	}

	if err := db.Save(&category).Error; err != nil {
		common.StoreError(c, h.log, "category.update", err, "Category not found")
		return
	}
	h.catalog.Invalidate()

	updated, err := h.catalog.Category(ctx, category.ID)
	if err != nil {
		updated = category
	}
	h.images.Category(&updated)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", updated))
}
