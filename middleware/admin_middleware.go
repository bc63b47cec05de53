package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

const (
	ContextAdminID    = "adminID"
	ContextAdminEmail = "adminEmail"
	ContextAdminRole  = "adminRole"

	adminTokenCookie = "admin_token"
)

// AdminAuthMiddleware validates the admin JWT from the admin_token cookie or
// a Bearer header and checks that the admin still exists and is active.
func AdminAuthMiddleware(jwt *services.JWTService, db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminTokenCookie)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				return
			}
			scheme, rest, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(rest) == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				return
			}
			token = strings.TrimSpace(rest)
		}

		claims, err := jwt.VerifyAdminJWT(token)
		if err != nil {
			log.Debug("[auth] invalid token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			return
		}

		var admin models.Admin
		if err := db.WithContext(c.Request.Context()).
			Select("id", "role", "status").
			Where("id = ?", claims.AdminID).
			First(&admin).Error; err != nil {
			log.Warn("[auth] admin lookup failed", zap.String("admin_id", claims.AdminID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			return
		}
		if admin.Status == models.AdminStatusSuspended {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin account is suspended"))
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextAdminEmail, claims.Email)
		c.Set(ContextAdminRole, admin.Role)
		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAdminRole) != models.AdminRoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			return
		}
		c.Next()
	}
}
