package order_controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/common"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/reports"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download an order invoice as PDF
// @Tags CMS - Orders
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/admin/orders/{id}/invoice [get]
func (h *Handler) DownloadOrderInvoicePDF(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.StoreError(c, h.log, "order.invoice", err, "Order not found")
		return
	}

	buf, err := reports.OrderInvoice(order)
	if err != nil {
		h.log.Error("[order.invoice] render failed", zap.String("order", order.OrderNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
