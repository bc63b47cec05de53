package admin_controller

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// Handler serves admin management and the activity log.
type Handler struct {
	db       *gorm.DB
	activity *services.ActivityLogService
	log      *zap.Logger
}

func NewHandler(db *gorm.DB, activity *services.ActivityLogService, log *zap.Logger) *Handler {
	return &Handler{db: db, activity: activity, log: log}
}
