package product_controller

import (
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/utils"
)

// Handler serves /api/admin/products.
type Handler struct {
	catalog *services.CatalogService
	images  *utils.ImageResolver
	log     *zap.Logger
	deleter ImageDeleter
}

func NewHandler(catalog *services.CatalogService, images *utils.ImageResolver, log *zap.Logger) *Handler {
	return &Handler{catalog: catalog, images: images, log: log}
}
