package category_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Refused with 409 while products still reference the category
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.catalog.DB().WithContext(ctx)

	// Step 1: Find the category
	var category models.Category
	if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		common.StoreError(c, h.log, "category.delete", err, "Category not found")
		return
	}

	// Step 2: Refuse while products reference it
	var n int64
	if err := db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&n).Error; err != nil {
		common.StoreError(c, h.log, "category.delete", err, "Category not found")
		return
	}
	if n > 0 {
		common.Conflict(c, fmt.Sprintf("Category %q still has %d product(s); move or delete them first", category.Name, n))
		return
	}

	// Step 3: Delete
	if err := db.Delete(&category).Error; err != nil {
		common.StoreError(c, h.log, "category.delete", err, "Category not found")
		return
	}
	h.catalog.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", gin.H{"id": category.ID}))
}
