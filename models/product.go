package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is one catalogue part. Brand is a plain column; brands are derived
// from it (see DeriveBrands).
type Product struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	SKU          string    `json:"sku" gorm:"column:sku;uniqueIndex;not null"`
	Price        float64   `json:"price" gorm:"not null;check:price >= 0"`
	Stock        int       `json:"stock" gorm:"not null;check:stock >= 0"`
	CategoryID   string    `json:"categoryId" gorm:"not null;index"`
	CategoryName string    `json:"categoryName,omitempty" gorm:"-"` // Computed field
	Brand        string    `json:"brand" gorm:"index"`
	Origin       string    `json:"origin"`
	Image        string    `json:"image"`
	ImageURL     string    `json:"imageUrl,omitempty" gorm:"-"` // Resolved by the image resolver
	IsActive     bool      `json:"isActive"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// ProductRequest is the create and full-update payload. The same binding tags
// drive gin on the server and the console's form validation.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=120" example:"Front Brake Pad Set"`
	Description string  `json:"description" binding:"max=2000"`
	SKU         string  `json:"sku" binding:"required,max=64" example:"FBP-0193"`
	Price       float64 `json:"price" binding:"gte=0,lte=10000000" example:"1450"`
	Stock       int     `json:"stock" binding:"gte=0,lte=1000000" example:"25"`
	CategoryID  string  `json:"categoryId" binding:"required"`
	Brand       string  `json:"brand" binding:"max=80" example:"Honda"`
	Origin      string  `json:"origin" binding:"max=80" example:"Japan"`
	Image       string  `json:"image" binding:"omitempty,max=500,imageref"`
	IsActive    *bool   `json:"isActive"`
	Featured    *bool   `json:"featured"`
}

// Apply copies the request onto p. Nil flags keep p's current values, so a
// new Product gets IsActive from NewProduct.
func (r ProductRequest) Apply(p *Product) {
	p.Name = r.Name
	p.Description = r.Description
	p.SKU = r.SKU
	p.Price = r.Price
	p.Stock = r.Stock
	p.CategoryID = r.CategoryID
	p.Brand = r.Brand
	p.Origin = r.Origin
	p.Image = r.Image
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
}

// NewProduct builds an active product from a create request.
func NewProduct(r ProductRequest) Product {
	p := Product{IsActive: true}
	r.Apply(&p)
	return p
}

// StatusRequest toggles isActive on any entity.
type StatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
