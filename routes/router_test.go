package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database/dbtest"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

const (
	adminEmail    = "admin@federalparts.ph"
	adminPassword = "correct-horse"
)

type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Errors  map[string]string  `json:"errors"`
	Meta    *models.Pagination `json:"meta"`
}

type harness struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.Server{AppEnv: "test", CORSOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{JWTSecret: "test-secret", JWTTTL: time.Hour},
		Images: config.Images{UploadsBaseURL: "http://localhost:5000", Placeholder: "placeholder.png"},
		Redis:  config.Redis{RateLimit: 100, RateWindow: time.Minute},
	}
	db := dbtest.Open(t)

	jwt, err := services.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	require.NoError(t, err)
	_, err = services.NewAdminAuthService(db, jwt).
		EnsureAdmin(context.Background(), adminEmail, "Admin", adminPassword, models.AdminRoleSuperAdmin)
	require.NoError(t, err)

	router, err := NewRouter(Deps{Config: cfg, DB: db, Log: zap.NewNop()})
	require.NoError(t, err)
	return &harness{t: t, db: db, router: router}
}

func (h *harness) do(method, path string, body any) (int, envelope) {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(h.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (h *harness) login() {
	h.t.Helper()
	code, env := h.do(http.MethodPost, "/api/auth/login", gin.H{"email": adminEmail, "password": adminPassword})
	require.Equal(h.t, http.StatusOK, code, env.Message)
	var resp models.AdminLoginResponse
	require.NoError(h.t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(h.t, resp.Token)
	h.token = resp.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestNewRouter_RequiresCORSOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.Server{AppEnv: "test"},
		Auth:   config.Auth{JWTSecret: "test-secret", JWTTTL: time.Hour},
	}

	var (
		router *gin.Engine
		err    error
	)
	require.NotPanics(t, func() {
		router, err = NewRouter(Deps{Config: cfg, DB: dbtest.Open(t), Log: zap.NewNop()})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS origin")
	assert.Nil(t, router)
}

func TestAuth(t *testing.T) {
	h := newHarness(t)

	code, _ := h.do(http.MethodGet, "/api/auth/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := h.do(http.MethodPost, "/api/auth/login", gin.H{"email": adminEmail, "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)

	code, env = h.do(http.MethodPost, "/api/auth/login", gin.H{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")

	h.login()
	code, env = h.do(http.MethodGet, "/api/auth/profile", nil)
	require.Equal(t, http.StatusOK, code)
	me := decode[models.AdminResponse](t, env.Data)
	assert.Equal(t, adminEmail, me.Email)
	assert.Equal(t, models.AdminRoleSuperAdmin, me.Role)
	assert.NotNil(t, me.LastLoginAt)

	h.token = ""
	code, _ = h.do(http.MethodGet, "/api/admin/products", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCatalogLifecycle(t *testing.T) {
	h := newHarness(t)
	h.login()

	// Categories
	code, env := h.do(http.MethodPost, "/api/admin/categories", gin.H{"name": "Brakes", "description": "Pads and discs"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	brakes := decode[models.Category](t, env.Data)
	assert.True(t, brakes.IsActive, "new categories default to active")

	code, _ = h.do(http.MethodPost, "/api/admin/categories", gin.H{"name": "brakes"})
	assert.Equal(t, http.StatusConflict, code)

	code, env = h.do(http.MethodPost, "/api/admin/categories", gin.H{"name": "X", "image": "not a url"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "must be at least 2 characters", env.Errors["name"])
	assert.Contains(t, env.Errors, "image")

	// Products
	product := gin.H{
		"name": "Front Brake Pad", "sku": "FBP-1", "price": 1450, "stock": 3,
		"categoryId": brakes.ID, "brand": "Honda", "origin": "Japan", "image": "cloudinary:fp/pad",
	}
	code, env = h.do(http.MethodPost, "/api/admin/products", product)
	require.Equal(t, http.StatusCreated, code, env.Message)
	pad := decode[models.Product](t, env.Data)
	assert.Equal(t, "Brakes", pad.CategoryName)
	assert.Equal(t, "placeholder.png", pad.ImageURL, "no cloudinary configured")

	code, _ = h.do(http.MethodPost, "/api/admin/products", product)
	assert.Equal(t, http.StatusConflict, code, "duplicate sku")

	code, env = h.do(http.MethodPost, "/api/admin/products", gin.H{"name": "Disc", "sku": "D-1", "price": -1, "categoryId": "nope"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "must be 0 or more", env.Errors["price"])

	code, env = h.do(http.MethodPost, "/api/admin/products", gin.H{"name": "Disc", "sku": "D-1", "categoryId": "nope"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "categoryId")

	// Toggle
	code, env = h.do(http.MethodPatch, "/api/admin/products/"+pad.ID+"/status", gin.H{"isActive": false})
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[models.Product](t, env.Data).IsActive)

	// Lists, whole and paged
	code, env = h.do(http.MethodGet, "/api/admin/products?status=inactive", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]models.Product](t, env.Data), 1)
	assert.Nil(t, env.Meta)

	code, env = h.do(http.MethodGet, "/api/admin/products?page=1&limit=5", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)

	code, _ = h.do(http.MethodGet, "/api/admin/products?sort=colour", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// Brands derive from products
	code, env = h.do(http.MethodGet, "/api/admin/brands", nil)
	require.Equal(t, http.StatusOK, code)
	brands := decode[[]models.Brand](t, env.Data)
	require.Len(t, brands, 1)
	assert.Equal(t, "honda", brands[0].ID)

	code, _ = h.do(http.MethodPatch, "/api/admin/brands/honda/status", gin.H{"isActive": true})
	require.Equal(t, http.StatusOK, code)
	code, env = h.do(http.MethodGet, "/api/admin/products/"+pad.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[models.Product](t, env.Data).IsActive, "brand status cascades")

	// Category delete is guarded while products remain
	code, env = h.do(http.MethodDelete, "/api/admin/categories/"+brakes.ID, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)

	code, _ = h.do(http.MethodDelete, "/api/admin/products/"+pad.ID, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = h.do(http.MethodDelete, "/api/admin/products/"+pad.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = h.do(http.MethodDelete, "/api/admin/categories/"+brakes.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	// Every mutation was audited
	code, env = h.do(http.MethodGet, "/api/admin/activity-logs?resource_type=product&limit=50", nil)
	require.Equal(t, http.StatusOK, code)
	logs := decode[[]models.ActivityLog](t, env.Data)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action+":"+l.Status)
	}
	assert.Contains(t, actions, "created_product:success")
	assert.Contains(t, actions, "created_product:failed")
	assert.Contains(t, actions, "deleted_product:success")
}

func TestOrdersAndDashboard(t *testing.T) {
	h := newHarness(t)
	h.login()

	order := models.Order{
		OrderNumber: "FP-2001", CustomerName: "Ana Reyes", CustomerEmail: "ana@example.com", Total: 900,
		Items: []models.OrderItem{{ProductID: "p1", ProductName: "Brake Pad", Quantity: 2, UnitPrice: 450}},
	}
	require.NoError(t, h.db.Create(&order).Error)

	code, env := h.do(http.MethodGet, "/api/admin/orders", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)

	code, _ = h.do(http.MethodGet, "/api/admin/orders?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = h.do(http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", gin.H{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors["status"], "must be one of")

	code, _ = h.do(http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", gin.H{"status": "delivered"})
	require.Equal(t, http.StatusOK, code)
	code, _ = h.do(http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", gin.H{"status": "pending"})
	assert.Equal(t, http.StatusConflict, code)

	code, env = h.do(http.MethodGet, "/api/admin/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, code)
	stats := decode[models.DashboardStats](t, env.Data)
	assert.EqualValues(t, 1, stats.TotalOrders)
	assert.InDelta(t, 900, stats.TotalRevenue, 0.001)

	code, env = h.do(http.MethodGet, "/api/admin/dashboard/top-products", nil)
	require.Equal(t, http.StatusOK, code)
	top := decode[[]models.TopProduct](t, env.Data)
	require.Len(t, top, 1)
	assert.InDelta(t, 100, top[0].RevenuePercent, 0.001)

	code, env = h.do(http.MethodGet, "/api/admin/customers", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]models.CustomerSummary](t, env.Data), 1)
}

func TestInvoiceDownload(t *testing.T) {
	h := newHarness(t)
	h.login()

	order := models.Order{OrderNumber: "FP-3001", CustomerName: "Ben", CustomerEmail: "ben@example.com", Total: 180,
		Items: []models.OrderItem{{ProductID: "p2", ProductName: "Spark Plug", Quantity: 1, UnitPrice: 180}}}
	require.NoError(t, h.db.Create(&order).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/"+order.ID+"/invoice", nil)
	req.Header.Set("Authorization", "Bearer "+h.token)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-FP-3001.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestCatchAllEcho(t *testing.T) {
	h := newHarness(t)

	code, env := h.do(http.MethodPost, "/api/settings/theme?x=1", gin.H{"dark": true})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	echo := decode[map[string]any](t, env.Data)
	assert.Equal(t, "POST", echo["method"])
	assert.Equal(t, "/api/settings/theme", echo["path"])
	assert.Equal(t, map[string]any{"dark": true}, echo["body"])

	code, env = h.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestAdmins(t *testing.T) {
	h := newHarness(t)
	jwt, err := services.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	_, err = services.NewAdminAuthService(h.db, jwt).
		EnsureAdmin(context.Background(), "staff@federalparts.ph", "Staff", "staff-pw", models.AdminRoleAdmin)
	require.NoError(t, err)
	h.login()

	code, env := h.do(http.MethodGet, "/api/admin/admins", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	admins := decode[[]models.AdminResponse](t, env.Data)
	require.Len(t, admins, 2)
	var self, staff models.AdminResponse
	for _, a := range admins {
		if a.Email == adminEmail {
			self = a
		} else {
			staff = a
		}
	}

	code, _ = h.do(http.MethodPatch, "/api/admin/admins/"+self.ID+"/status", gin.H{"status": models.AdminStatusSuspended})
	assert.Equal(t, http.StatusConflict, code, "no self suspension")

	code, env = h.do(http.MethodPatch, "/api/admin/admins/"+staff.ID+"/status", gin.H{"status": models.AdminStatusSuspended})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Equal(t, models.AdminStatusSuspended, decode[models.AdminResponse](t, env.Data).Status)

	code, _ = h.do(http.MethodPost, "/api/auth/login", gin.H{"email": "staff@federalparts.ph", "password": "staff-pw"})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = h.do(http.MethodPatch, "/api/admin/admins/"+staff.ID+"/status", gin.H{"status": models.AdminStatusActive})
	require.Equal(t, http.StatusOK, code, env.Message)

	// A plain admin can sign in but not manage admins.
	code, env = h.do(http.MethodPost, "/api/auth/login", gin.H{"email": "staff@federalparts.ph", "password": "staff-pw"})
	require.Equal(t, http.StatusOK, code, env.Message)
	h.token = decode[models.AdminLoginResponse](t, env.Data).Token
	code, _ = h.do(http.MethodGet, "/api/admin/admins", nil)
	assert.Equal(t, http.StatusForbidden, code)
}
