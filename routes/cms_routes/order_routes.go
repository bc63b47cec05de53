package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/customer_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup, h *order_controller.Handler) {
	order := rg.Group("/orders")
	{
		order.GET("", h.GetOrders)
		order.GET("/:id", h.GetOrderByID)
		order.GET("/:id/invoice", h.DownloadOrderInvoicePDF)
		order.PATCH("/:id/status", h.UpdateOrderStatus)
	}
}

func SetupCustomerRoutes(rg *gin.RouterGroup, h *customer_controller.Handler) {
	customer := rg.Group("/customers")
	{
		customer.GET("", h.GetCustomers)
		customer.GET("/:email/orders", h.GetCustomerOrders)
	}
}
