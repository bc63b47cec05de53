package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// UpdateCategoryStatus godoc
// @Summary Activate or deactivate a category
// @Description Products keep their own status
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param status body models.StatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/categories/{id}/status [patch]
func (h *Handler) UpdateCategoryStatus(c *gin.Context) {
	var req models.StatusRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	res := h.catalog.DB().WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Update("is_active", *req.IsActive)
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	if res.Error != nil {
		common.StoreError(c, h.log, "category.status", res.Error, "Category not found")
		return
	}
	h.catalog.Invalidate()

	category, err := h.catalog.Category(ctx, id)
	if err != nil {
		common.StoreError(c, h.log, "category.status", err, "Category not found")
		return
	}
	h.images.Category(&category)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category status updated successfully", category))
}
