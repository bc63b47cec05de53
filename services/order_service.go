package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// ErrOrderFinal is returned when changing a delivered or cancelled order.
var ErrOrderFinal = errors.New("order is already delivered or cancelled")

// OrderQuery filters OrderService.List. Zero values disable a filter.
type OrderQuery struct {
	Status string
	// CustomerEmail matches case-insensitively.
	CustomerEmail string
	// Search matches order number, customer name and customer email.
	Search string
	Page   int
	Limit  int
}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) rows(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("orders o").
		Select(`o.id, o.order_number, o.customer_name, o.customer_email, o.status, o.total, o.created_at,
			(SELECT COALESCE(SUM(oi.quantity), 0) FROM order_items oi WHERE oi.order_id = o.id) AS item_count`)
}

// List returns one page of orders, newest first, and the number of orders
// matching q.
func (s *OrderService) List(ctx context.Context, q OrderQuery) ([]models.OrderRow, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if q.Status != "" {
			db = db.Where("o.status = ?", q.Status)
		}
		if q.CustomerEmail != "" {
			db = db.Where("LOWER(o.customer_email) = ?", normalizeEmail(q.CustomerEmail))
		}
		if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
			like := "%" + term + "%"
			db = db.Where("LOWER(o.order_number) LIKE ? OR LOWER(o.customer_name) LIKE ? OR LOWER(o.customer_email) LIKE ?", like, like, like)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Table("orders o").Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	rows := make([]models.OrderRow, 0, q.Limit)
	err := s.rows(ctx).Scopes(filter).
		Order("o.created_at DESC, o.id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return rows, total, nil
}

// Recent returns the newest limit orders.
func (s *OrderService) Recent(ctx context.Context, limit int) ([]models.RecentOrder, error) {
	rows, _, err := s.List(ctx, OrderQuery{Page: 1, Limit: limit})
	return rows, err
}

// Get loads an order with its items.
func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("product_name") }).
		First(&o, "id = ?", id).Error
	return o, err
}

// SetStatus moves an order to status. Delivered and cancelled orders are
// final; setting the status an order already has is a no-op.
func (s *OrderService) SetStatus(ctx context.Context, id, status string) (models.Order, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Select("id", "status").First(&o, "id = ?", id).Error; err != nil {
			return err
		}
		if o.Status == status {
			return nil
		}
		if models.OrderIsFinal(o.Status) {
			return ErrOrderFinal
		}
		return tx.Model(&o).Update("status", status).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return s.Get(ctx, id)
}

// Customers groups orders by customer email, most recent buyer first.
// Cancelled orders count towards OrderCount but not TotalSpent.
func (s *OrderService) Customers(ctx context.Context, search string) ([]models.CustomerSummary, error) {
	db := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("customer_name", "customer_email", "status", "total", "created_at")
	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		like := "%" + term + "%"
		db = db.Where("LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ?", like, like)
	}
	var orders []models.Order
	if err := db.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}

	groups := lo.GroupBy(orders, func(o models.Order) string { return normalizeEmail(o.CustomerEmail) })
	customers := make([]models.CustomerSummary, 0, len(groups))
	for email, list := range groups {
		// list keeps query order, so list[0] is the newest order.
		c := models.CustomerSummary{
			Email:       email,
			Name:        list[0].CustomerName,
			OrderCount:  len(list),
			LastOrderAt: list[0].CreatedAt,
		}
		for _, o := range list {
			if o.Status != models.OrderStatusCancelled {
				c.TotalSpent += o.Total
			}
		}
		customers = append(customers, c)
	}
	slices.SortFunc(customers, func(a, b models.CustomerSummary) int {
		if c := b.LastOrderAt.Compare(a.LastOrderAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Email, b.Email)
	})
	return customers, nil
}
