// Package routes wires the handlers into one gin engine.
package routes

import (
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/admin_controller"
	admin_auth "github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/admin_controller/auth"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/brand_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/category_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/customer_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/dashboard_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/order_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/product_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/cms/upload_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/controllers/system_controller"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/middleware"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/routes/cms_routes"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/utils"
)

// Deps is everything the router needs. Redis and Cloudinary are optional:
// a nil Redis disables rate limiting and a nil Cloudinary disables uploads.
type Deps struct {
	Config     *config.Config
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *services.CloudinaryService
	Log        *zap.Logger
}

// NewRouter builds the API engine.
func NewRouter(d Deps) (*gin.Engine, error) {
	// cors.New panics on an empty origin list.
	if len(d.Config.Server.CORSOrigins) == 0 {
		return nil, errors.New("routes: at least one CORS origin is required")
	}
	if err := models.RegisterGinValidations(); err != nil {
		return nil, err
	}
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ════════════════════════════════════════════════════════════
	// Services
	// ════════════════════════════════════════════════════════════
	jwt, err := services.NewJWTService(d.Config.Auth.JWTSecret, d.Config.Auth.JWTTTL)
	if err != nil {
		return nil, err
	}
	catalog := services.NewCatalogService(d.DB)
	orders := services.NewOrderService(d.DB)
	activity := services.NewActivityLogService(d.DB, catalog, d.Log)
	auth := services.NewAdminAuthService(d.DB, jwt)

	// Typed nils must not reach the interface-typed collaborators.
	var (
		urler    utils.CloudinaryURLer
		uploader upload_controller.Uploader
		deleter  product_controller.ImageDeleter
	)
	if d.Cloudinary != nil {
		urler, uploader, deleter = d.Cloudinary, d.Cloudinary, d.Cloudinary
	}
	images := utils.NewImageResolver(d.Config.Images.UploadsBaseURL, d.Config.Images.Placeholder, urler)

	// ════════════════════════════════════════════════════════════
	// Engine
	// ════════════════════════════════════════════════════════════
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(d.Log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	system := system_controller.NewHandler(d.DB, d.Log)
	api := router.Group("/api")
	api.GET("/health", system.Health)

	requireAuth := middleware.AdminAuthMiddleware(jwt, d.DB, d.Log)
	authHandler := admin_auth.NewHandler(auth, d.DB, d.Log, d.Config.IsProduction(), int(d.Config.Auth.JWTTTL/time.Second))
	cms_routes.SetupAuthRoutes(api, authHandler, requireAuth)

	admin := api.Group("/admin")
	admin.Use(
		requireAuth,
		middleware.RateLimiter(d.Redis, d.Config.Redis.RateLimit, d.Config.Redis.RateWindow, d.Log),
		middleware.ActivityLoggingMiddleware(activity),
	)
	cms_routes.SetupDashboardRoutes(admin, dashboard_controller.NewHandler(catalog, orders, d.Log))
	cms_routes.SetupProductRoutes(admin, product_controller.NewHandler(catalog, images, d.Log).WithImageDeleter(deleter))
	cms_routes.SetupCategoryRoutes(admin, category_controller.NewHandler(catalog, images, d.Log))
	cms_routes.SetupBrandRoutes(admin, brand_controller.NewHandler(catalog, images, d.Log))
	cms_routes.SetupOrderRoutes(admin, order_controller.NewHandler(orders, d.Log))
	cms_routes.SetupCustomerRoutes(admin, customer_controller.NewHandler(orders, d.Log))
	cms_routes.SetupUploadRoutes(admin, upload_controller.NewHandler(uploader, images, d.Log))
	cms_routes.SetupAdminRoutes(admin, admin_controller.NewHandler(d.DB, activity, d.Log))

	// Any other /api path is echoed back.
	router.NoRoute(system.Echo)
	return router, nil
}
