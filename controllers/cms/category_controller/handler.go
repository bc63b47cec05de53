package category_controller

import (
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/utils"
)

// Handler serves /api/admin/categories.
type Handler struct {
	catalog *services.CatalogService
	images  *utils.ImageResolver
	log     *zap.Logger
}

func NewHandler(catalog *services.CatalogService, images *utils.ImageResolver, log *zap.Logger) *Handler {
	return &Handler{catalog: catalog, images: images, log: log}
}
