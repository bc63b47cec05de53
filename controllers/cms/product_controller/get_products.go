package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetProducts godoc
// @Summary List products
// @Description Without page the whole filtered list is returned; with page it is paginated
// @Tags CMS - Products
// @Produce json
// @Param search query string false "Matches name, description and SKU"
// @Param status query string false "Status filter" Enums(all, active, inactive)
// @Param category query string false "Category ID, or all"
// @Param sort query string false "Sort key" Enums(name, sku, category, brand, origin, price, stock, status, createdAt)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	// Step 1: Load the whole collection
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		h.log.Error("[product.list] failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 2: Resolve image URLs
	for i := range products {
		h.images.Product(&products[i])
	}

	// Step 3: Filter, sort and optionally paginate
	common.RespondList(c, "Products retrieved successfully", products, models.ProductSchema())
}
