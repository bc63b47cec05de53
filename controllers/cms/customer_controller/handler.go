package customer_controller

import (
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// Handler serves /api/admin/customers. There is no customers table; a
// customer is everyone who placed an order under one email.
type Handler struct {
	orders *services.OrderService
	log    *zap.Logger
}

func NewHandler(orders *services.OrderService, log *zap.Logger) *Handler {
	return &Handler{orders: orders, log: log}
}
