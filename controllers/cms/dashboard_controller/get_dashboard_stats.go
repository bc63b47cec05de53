package dashboard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// GetDashboardStats godoc
// @Summary Dashboard summary counters
// @Tags CMS - Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/dashboard/stats [get]
func (h *Handler) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.catalog.DB().WithContext(ctx)
	var stats models.DashboardStats

	fail := func(what string, err error) {
		h.log.Error("[dashboard.stats] "+what, zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
	}

	// Step 1: Catalogue counters
	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		fail("count products", err)
		return
	}
	if err := db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts).Error; err != nil {
		fail("count active products", err)
		return
	}
	if err := db.Model(&models.Product{}).Where("stock <= ?", models.LowStockThreshold).Count(&stats.LowStockProducts).Error; err != nil {
		fail("count low stock products", err)
		return
	}
	if err := db.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		fail("count categories", err)
		return
	}
	brands, err := h.catalog.Brands(ctx)
	if err != nil {
		fail("derive brands", err)
		return
	}
	stats.TotalBrands = int64(len(brands))

	// Step 2: Order counters
	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		fail("count orders", err)
		return
	}
	if err := db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders).Error; err != nil {
		fail("count pending orders", err)
		return
	}
	if err := db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		fail("sum revenue", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", stats))
}
