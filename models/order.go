package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderIsFinal reports whether an order in status can no longer change.
func OrderIsFinal(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

type Order struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	OrderNumber   string      `json:"orderNumber" gorm:"uniqueIndex;not null"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Status        string      `json:"status" gorm:"not null;default:pending"`
	Total         float64     `json:"total"`
	Items         []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.Must(uuid.NewV7()).String()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	OrderID     string  `json:"orderId" gorm:"not null;index"`
	ProductID   string  `json:"productId" gorm:"not null;index"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice   float64 `json:"unitPrice"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderStatusRequest is the body of PATCH /orders/:id/status.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// CustomerSummary is a customer as seen through their orders. Customers are
// keyed by lower-cased email.
type CustomerSummary struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	OrderCount  int       `json:"orderCount"`
	TotalSpent  float64   `json:"totalSpent"`
	LastOrderAt time.Time `json:"lastOrderAt"`
}

// OrderRow is one order in a list, with the number of units ordered.
type OrderRow = RecentOrder

// ═══════════════════════════════════════════════════════════
// Dashboard Models
// ═══════════════════════════════════════════════════════════

// DashboardStats is the summary card row of the admin dashboard.
type DashboardStats struct {
	TotalProducts    int64   `json:"totalProducts"`
	ActiveProducts   int64   `json:"activeProducts"`
	LowStockProducts int64   `json:"lowStockProducts"`
	TotalCategories  int64   `json:"totalCategories"`
	TotalBrands      int64   `json:"totalBrands"`
	TotalOrders      int64   `json:"totalOrders"`
	PendingOrders    int64   `json:"pendingOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// RecentOrder is one row of the recent orders card.
type RecentOrder struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Status        string    `json:"status"`
	Total         float64   `json:"total"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TopProduct is one row of the best sellers card.
type TopProduct struct {
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	UnitsSold      int     `json:"unitsSold"`
	Revenue        float64 `json:"revenue"`
	RevenuePercent float64 `json:"revenuePercent"`
}

// LowStockThreshold is the stock level at or below which a product counts
// as low stock on the dashboard.
const LowStockThreshold = 5
