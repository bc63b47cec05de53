// Package system_controller serves the health probe and the /api catch-all.
package system_controller

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db      *gorm.DB
	log     *zap.Logger
	started time.Time
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log, started: time.Now()}
}
