package product_controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

var errNotFound = gorm.ErrRecordNotFound

// ImageDeleter removes uploaded images. Satisfied by services.CloudinaryService.
type ImageDeleter interface {
	DeleteImage(ctx context.Context, publicID string) error
}

// WithImageDeleter makes DeleteProduct also drop the product's Cloudinary
// image.
func (h *Handler) WithImageDeleter(d ImageDeleter) *Handler {
	h.deleter = d
	return h
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID and its Cloudinary image, if any
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.catalog.DB().WithContext(ctx)

	// Step 1: Find the product
	var product models.Product
	if err := db.Select("id", "image").First(&product, "id = ?", c.Param("id")).Error; err != nil {
		common.StoreError(c, h.log, "product.delete", err, "Product not found")
		return
	}

	// Step 2: Delete from database
	if err := db.Delete(&product).Error; err != nil {
		common.StoreError(c, h.log, "product.delete", err, "Product not found")
		return
	}
	h.catalog.Invalidate()

	// Step 3: Drop the Cloudinary image in background (don't block response)
	if publicID, ok := strings.CutPrefix(product.Image, models.CloudinaryScheme); ok && h.deleter != nil {
		go func() {
			deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := h.deleter.DeleteImage(deleteCtx, publicID); err != nil {
				h.log.Warn("[product.delete] failed to delete image", zap.String("public_id", publicID), zap.Error(err))
			}
		}()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": product.ID}))
}
