package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/middleware"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

var (
	errUnknownCategory = errors.New("category does not exist")
	errDuplicateSKU    = errors.New("another product already uses this SKU")
)

// CreateProduct godoc
// @Summary Create a product
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/admin/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	// Step 1: Bind and validate
	var req models.ProductRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	product := models.NewProduct(req)

	// Step 2: Check the category and SKU
	if !h.checkProduct(c, product) {
		return
	}

	// Step 3: Insert
	if err := h.catalog.DB().WithContext(ctx).Create(&product).Error; err != nil {
		common.StoreError(c, h.log, "product.create", err, "Product not found")
		return
	}
	h.catalog.Invalidate()
	c.Set(middleware.ContextCreatedID, product.ID)

	h.log.Info("[product.create] created", zap.String("id", product.ID), zap.String("sku", product.SKU))

	// Step 4: Respond with the stored product
	created, err := h.catalog.Product(ctx, product.ID)
	if err != nil {
		created = product
	}
	h.images.Product(&created)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", created))
}

// checkProduct enforces the references the schema cannot: the category must
// exist and the SKU must be unused by any other product. It writes the error
// response itself and returns false on failure.
func (h *Handler) checkProduct(c *gin.Context, p models.Product) bool {
	db := h.catalog.DB().WithContext(c.Request.Context())

	var n int64
	if err := db.Model(&models.Category{}).Where("id = ?", p.CategoryID).Count(&n).Error; err != nil {
		common.StoreError(c, h.log, "product.check", err, "Category not found")
		return false
	}
	if n == 0 {
		_ = c.Error(errUnknownCategory)
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, map[string]string{
			"categoryId": errUnknownCategory.Error(),
		}))
		return false
	}

	q := db.Model(&models.Product{}).Where("sku = ?", p.SKU)
	if p.ID != "" {
		q = q.Where("id <> ?", p.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		common.StoreError(c, h.log, "product.check", err, "Product not found")
		return false
	}
	if n > 0 {
		common.Conflict(c, errDuplicateSKU.Error())
		return false
	}
	return true
}
