package dashboard_controller

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// Handler serves the three dashboard cards.
type Handler struct {
	catalog *services.CatalogService
	orders  *services.OrderService
	log     *zap.Logger
}

func NewHandler(catalog *services.CatalogService, orders *services.OrderService, log *zap.Logger) *Handler {
	return &Handler{catalog: catalog, orders: orders, log: log}
}

// cardLimit reads ?limit for the list cards: 5 by default, at most 50.
func cardLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 5
	}
	return min(n, 50)
}
