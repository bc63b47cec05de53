package brand_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetBrands godoc
// @Summary List brands derived from products
// @Tags CMS - Brands
// @Produce json
// @Param search query string false "Matches name, categories and country"
// @Param status query string false "Status filter" Enums(all, active, inactive)
// @Param sort query string false "Sort key" Enums(name, country, description, productCount, status, createdAt)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/brands [get]
func (h *Handler) GetBrands(c *gin.Context) {
	brands, err := h.catalog.Brands(c.Request.Context())
	if err != nil {
		h.log.Error("[brand.list] failed to derive brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}
	for i := range brands {
		h.images.Brand(&brands[i])
	}
	common.RespondList(c, "Brands retrieved successfully", brands, models.BrandSchema())
}

// GetBrandByID godoc
// @Summary Get a brand by its slug
// @Tags CMS - Brands
// @Produce json
// @Param id path string true "Brand slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/brands/{id} [get]
func (h *Handler) GetBrandByID(c *gin.Context) {
	brand, err := h.catalog.Brand(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.StoreError(c, h.log, "brand.get", err, "Brand not found")
		return
	}
	h.images.Brand(&brand)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand retrieved successfully", brand))
}
