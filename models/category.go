package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products. ProductCount is filled in by the list queries.
type Category struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ImageURL     string    `json:"imageUrl,omitempty" gorm:"-"`
	IsActive     bool      `json:"isActive"`
	Featured     bool      `json:"featured"`
	ProductCount int       `json:"productCount" gorm:"-"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is used when creating or replacing a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=80" example:"Brakes"`
	Description string `json:"description" binding:"max=500" example:"Pads, discs and shoes"`
	Image       string `json:"image" binding:"omitempty,max=500,imageref"`
	IsActive    *bool  `json:"isActive"`
	Featured    *bool  `json:"featured"`
}

func (r CategoryRequest) Apply(c *Category) {
	c.Name = r.Name
	c.Description = r.Description
	c.Image = r.Image
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
	if r.Featured != nil {
		c.Featured = *r.Featured
	}
}

func NewCategory(r CategoryRequest) Category {
	c := Category{IsActive: true}
	r.Apply(&c)
	return c
}

// CategoryProductCount is the row shape of the per-category count query.
type CategoryProductCount struct {
	CategoryID string
	Count      int
}
