package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/admin_controller"
	admin_auth "github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/admin_controller/auth"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/middleware"
)

// SetupAuthRoutes registers /auth. Login is public; profile needs the token.
func SetupAuthRoutes(rg *gin.RouterGroup, h *admin_auth.Handler, requireAuth gin.HandlerFunc) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)

	protected := auth.Group("")
	protected.Use(requireAuth)
	{
		protected.GET("/profile", h.GetProfile)
	}
}

// SetupAdminRoutes registers admin management under an authenticated group.
func SetupAdminRoutes(rg *gin.RouterGroup, h *admin_controller.Handler) {
	rg.GET("/activity-logs", h.GetActivityLogs)

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════
	superAdmin := rg.Group("/admins")
	superAdmin.Use(middleware.RequireSuperAdminMiddleware())
	{
		superAdmin.GET("", h.GetAdmins)
		superAdmin.GET("/:id", h.GetAdminByID)
		superAdmin.PATCH("/:id/status", h.UpdateAdminStatus)
	}
}
