package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/dashboard_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/upload_controller"
)

func SetupDashboardRoutes(rg *gin.RouterGroup, h *dashboard_controller.Handler) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetDashboardStats)
		dashboard.GET("/recent-orders", h.GetRecentOrders)
		dashboard.GET("/top-products", h.GetTopProducts)
	}
}

func SetupUploadRoutes(rg *gin.RouterGroup, h *upload_controller.Handler) {
	rg.POST("/uploads", h.UploadImage)
}
