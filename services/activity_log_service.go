package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// ActivityLogService records admin mutations.
type ActivityLogService struct {
	db      *gorm.DB
	catalog *CatalogService
	log     *zap.Logger
}

func NewActivityLogService(db *gorm.DB, catalog *CatalogService, log *zap.Logger) *ActivityLogService {
	return &ActivityLogService{db: db, catalog: catalog, log: log}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      string
	AdminEmail   string
	Action       string // created_product, updated_brand, ...
	ResourceType string
	ResourceID   string
	ResourceName string
	Changes      map[string]any // {before: {...}, after: {...}}
	Status       string
	ErrorMessage string
	IPAddress    string
	UserAgent    string
}

// LogActivity writes one entry. Failures are logged and swallowed so that a
// broken audit trail never fails the request being audited.
func (s *ActivityLogService) LogActivity(ctx context.Context, req LogActivityRequest) {
	if req.AdminID == "" {
		s.log.Warn("[activity-log] admin id missing", zap.String("action", req.Action))
		return
	}

	var changes []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			s.log.Warn("[activity-log] failed to marshal changes", zap.Error(err))
			data = []byte("{}")
		}
		changes = data
	}

	entry := models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changes,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
	}

	ctx, cancel := config.WithTimeout(context.WithoutCancel(ctx))
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.log.Error("[activity-log] failed to create entry", zap.String("action", req.Action), zap.Error(err))
		return
	}
	s.log.Debug("[activity-log] recorded",
		zap.String("action", req.Action),
		zap.String("resource_id", req.ResourceID),
		zap.String("admin", req.AdminEmail),
		zap.String("status", entry.Status),
	)
}

// Snapshot loads the current state of a resource for the before/after diff.
// It returns nil when the resource does not exist (yet, or any more).
func (s *ActivityLogService) Snapshot(ctx context.Context, resourceType, id string) any {
	if id == "" {
		return nil
	}
	var (
		obj any
		err error
	)
	switch resourceType {
	case models.ResourceTypeProduct:
		obj, err = s.catalog.Product(ctx, id)
	case models.ResourceTypeCategory:
		obj, err = s.catalog.Category(ctx, id)
	case models.ResourceTypeBrand:
		obj, err = s.catalog.Brand(ctx, id)
	case models.ResourceTypeOrder:
		var o models.Order
		err = s.db.WithContext(ctx).First(&o, "id = ?", id).Error
		obj = o
	case models.ResourceTypeAdmin:
		var a models.Admin
		err = s.db.WithContext(ctx).First(&a, "id = ?", id).Error
		obj = a.ToResponse()
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return obj
}

// ActivityQuery filters ActivityLogService.List. Empty fields match all.
type ActivityQuery struct {
	AdminID      string
	Action       string
	ResourceType string
	Page         int
	Limit        int
}

// List returns one page of entries, newest first, and the number of entries
// matching q.
func (s *ActivityLogService) List(ctx context.Context, q ActivityQuery) ([]models.ActivityLog, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.ActivityLog{})
	if q.AdminID != "" {
		db = db.Where("admin_id = ?", q.AdminID)
	}
	if q.Action != "" {
		db = db.Where("action = ?", q.Action)
	}
	if q.ResourceType != "" {
		db = db.Where("resource_type = ?", q.ResourceType)
	}
	db = db.Session(&gorm.Session{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	logs := make([]models.ActivityLog, 0, q.Limit)
	err := db.Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error
	return logs, total, err
}

// Recent returns the newest entries first.
func (s *ActivityLogService) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	logs, _, err := s.List(ctx, ActivityQuery{Page: 1, Limit: limit})
	return logs, err
}

// CreateChanges builds the before/after map stored with an entry.
func CreateChanges(before, after any) map[string]any {
	return map[string]any{
		"before": before,
		"after":  after,
	}
}

// ResourceName picks the display name of a snapshot.
func ResourceName(obj any) string {
	switch v := obj.(type) {
	case models.Product:
		return v.Name
	case models.Category:
		return v.Name
	case models.Brand:
		return v.Name
	case models.Order:
		return v.OrderNumber
	case models.AdminResponse:
		return v.Email
	}
	return ""
}
