package category_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/middleware"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	// Step 1: Bind and validate
	var req models.CategoryRequest
	if !common.BindJSON(c, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	category := models.NewCategory(req)

	// Step 2: Names are unique
	if !h.checkName(c, category) {
		return
	}

	// Step 3: Insert
	if err := h.catalog.DB().WithContext(c.Request.Context()).Create(&category).Error; err != nil {
		common.StoreError(c, h.log, "category.create", err, "Category not found")
		return
	}
	h.catalog.Invalidate()
	c.Set(middleware.ContextCreatedID, category.ID)
	h.log.Info("[category.create] created", zap.String("id", category.ID), zap.String("name", category.Name))

	h.images.Category(&category)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}

func (h *Handler) checkName(c *gin.Context, category models.Category) bool {
	var n int64
	q := h.catalog.DB().WithContext(c.Request.Context()).
		Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?)", category.Name)
	if category.ID != "" {
		q = q.Where("id <> ?", category.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		common.StoreError(c, h.log, "category.check", err, "Category not found")
		return false
	}
	if n > 0 {
		common.Conflict(c, "A category with this name already exists")
		return false
	}
	return true
}
