package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database/dbtest"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

const testAdminID = "0190a1b2-0000-7000-8000-000000000001"

func auditedRouter(db *gorm.DB, signedIn bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewActivityLogService(db, services.NewCatalogService(db), zap.NewNop())

	r := gin.New()
	admin := r.Group("/api/admin")
	admin.Use(func(c *gin.Context) {
		if signedIn {
			c.Set(ContextAdminID, testAdminID)
			c.Set(ContextAdminEmail, "audit@federalparts.ph")
		}
		c.Next()
	}, ActivityLoggingMiddleware(svc))

	admin.GET("/categories", func(c *gin.Context) { c.Status(http.StatusOK) })
	admin.POST("/categories", func(c *gin.Context) {
		cat := models.Category{Name: c.Query("name"), IsActive: true}
		if err := db.Create(&cat).Error; err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Set(ContextCreatedID, cat.ID)
		c.Status(http.StatusCreated)
	})
	admin.PATCH("/categories/:id", func(c *gin.Context) {
		db.Model(&models.Category{}).Where("id = ?", c.Param("id")).Update("name", c.Query("name"))
		c.Status(http.StatusOK)
	})
	admin.DELETE("/categories/:id", func(c *gin.Context) {
		_ = c.Error(errors.New("category has products"))
		c.Status(http.StatusConflict)
	})
	admin.POST("/settings", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func send(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("User-Agent", "fpadmin-test")
	r.ServeHTTP(w, req)
	return w.Code
}

func activityLogs(t *testing.T, db *gorm.DB) []models.ActivityLog {
	t.Helper()
	var logs []models.ActivityLog
	require.NoError(t, db.Order("created_at, id").Find(&logs).Error)
	return logs
}

func TestActivityLogging_RecordsMutations(t *testing.T) {
	db := dbtest.Open(t)
	r := auditedRouter(db, true)

	require.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/admin/categories?name=Brakes"))
	var cat models.Category
	require.NoError(t, db.First(&cat, "name = ?", "Brakes").Error)

	require.Equal(t, http.StatusOK, send(r, http.MethodPatch, "/api/admin/categories/"+cat.ID+"?name=Brake%20Pads"))
	require.Equal(t, http.StatusConflict, send(r, http.MethodDelete, "/api/admin/categories/"+cat.ID))

	logs := activityLogs(t, db)
	require.Len(t, logs, 3)

	created := logs[0]
	assert.Equal(t, "created_category", created.Action)
	assert.Equal(t, models.ResourceTypeCategory, created.ResourceType)
	assert.Equal(t, cat.ID, created.ResourceID, "create handlers report the new id")
	assert.Equal(t, "Brakes", created.ResourceName)
	assert.Equal(t, models.StatusSuccess, created.Status)
	assert.Equal(t, testAdminID, created.AdminID)
	assert.Equal(t, "audit@federalparts.ph", created.AdminEmail)
	assert.Equal(t, "fpadmin-test", created.UserAgent)

	updated := logs[1]
	assert.Equal(t, "updated_category", updated.Action)
	assert.Equal(t, "Brake Pads", updated.ResourceName)
	var changes struct {
		Before models.Category `json:"before"`
		After  models.Category `json:"after"`
	}
	require.NoError(t, json.Unmarshal(updated.Changes, &changes))
	assert.Equal(t, "Brakes", changes.Before.Name)
	assert.Equal(t, "Brake Pads", changes.After.Name)

	failed := logs[2]
	assert.Equal(t, "deleted_category", failed.Action)
	assert.Equal(t, models.StatusFailed, failed.Status)
	assert.Equal(t, "category has products", failed.ErrorMessage)
	assert.Equal(t, "Brake Pads", failed.ResourceName, "failed requests keep the before name")
}

func TestActivityLogging_SkipsUnauditedRequests(t *testing.T) {
	db := dbtest.Open(t)

	r := auditedRouter(db, true)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/api/admin/categories"))
	assert.Equal(t, http.StatusOK, send(r, http.MethodPost, "/api/admin/settings"))

	anon := auditedRouter(db, false)
	assert.Equal(t, http.StatusCreated, send(anon, http.MethodPost, "/api/admin/categories?name=Lights"))

	assert.Empty(t, activityLogs(t, db))
}

func TestExtractResourceType(t *testing.T) {
	tests := map[string]string{
		"/api/admin/categories/:id/status": models.ResourceTypeCategory,
		"/api/admin/products":              models.ResourceTypeProduct,
		"/api/admin/brands/:id":            models.ResourceTypeBrand,
		"/api/admin/orders/:id/status":     models.ResourceTypeOrder,
		"/api/admin/admins/:id":            models.ResourceTypeAdmin,
		"/api/admin/settings":              "",
		"":                                 "",
	}
	for path, want := range tests {
		t.Run(strings.TrimPrefix(path, "/api/admin/"), func(t *testing.T) {
			assert.Equal(t, want, extractResourceType(path))
		})
	}
}
