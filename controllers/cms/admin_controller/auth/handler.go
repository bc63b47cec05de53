package admin_auth_controller

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

// tokenCookie must match the cookie AdminAuthMiddleware reads.
const tokenCookie = "admin_token"

// Handler serves /api/auth.
type Handler struct {
	auth *services.AdminAuthService
	db   *gorm.DB
	log  *zap.Logger

	// secureCookie marks the token cookie Secure; on in production.
	secureCookie bool
	cookieMaxAge int
}

func NewHandler(auth *services.AdminAuthService, db *gorm.DB, log *zap.Logger, secureCookie bool, cookieMaxAge int) *Handler {
	return &Handler{auth: auth, db: db, log: log, secureCookie: secureCookie, cookieMaxAge: cookieMaxAge}
}
