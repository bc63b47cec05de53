package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is one admin mutation, successful or not.
type ActivityLog struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	AdminID      string         `json:"adminId" gorm:"not null;index"`
	AdminEmail   string         `json:"adminEmail" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null"`       // created_product, updated_brand, deleted_category, etc.
	ResourceType string         `json:"resourceType" gorm:"not null"` // product, category, brand
	ResourceID   string         `json:"resourceId"`
	ResourceName string         `json:"resourceName"`
	Changes      datatypes.JSON `json:"changes"`                // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"` // success, failed
	ErrorMessage string         `json:"errorMessage,omitempty"`
	IPAddress    string         `json:"ipAddress"`
	UserAgent    string         `json:"userAgent"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == "" {
		al.ID = uuid.Must(uuid.NewV7()).String()
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityChanges is the before/after snapshot stored in Changes.
type ActivityChanges struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

// DecodeChanges parses the stored snapshot. A missing or malformed column
// yields empty maps.
func (al *ActivityLog) DecodeChanges() ActivityChanges {
	var ch ActivityChanges
	if len(al.Changes) > 0 {
		_ = json.Unmarshal(al.Changes, &ch)
	}
	return ch
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	ResourceTypeProduct  = "product"
	ResourceTypeCategory = "category"
	ResourceTypeBrand    = "brand"
	ResourceTypeOrder    = "order"
	ResourceTypeAdmin    = "admin"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
