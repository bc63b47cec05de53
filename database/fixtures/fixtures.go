// Package fixtures fills a database with believable motorcycle parts data.
package fixtures

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

var (
	categoryNames = []string{
		"Brakes", "Engine Parts", "Electrical", "Suspension", "Tires & Wheels",
		"Lighting", "Body Parts", "Drive Train", "Filters", "Helmets & Gear",
	}
	brandNames = []string{"Honda", "Yamaha", "Suzuki", "Kawasaki", "Rusi", "Motorstar", "Kymco", "TVS"}
	origins    = []string{"Japan", "Philippines", "Thailand", "Taiwan", "Indonesia", "India"}
	partNouns  = []string{
		"Brake Pad", "Brake Shoe", "Disc Rotor", "Clutch Lining", "Spark Plug", "Piston Kit",
		"Chain Set", "Sprocket", "Headlight Bulb", "Signal Light", "Shock Absorber", "Fork Oil Seal",
		"Oil Filter", "Air Filter", "Inner Tube", "Tire", "Side Mirror", "Handle Grip", "Full Face Helmet",
	}
	fitments = []string{"XRM125", "Wave 110", "Mio i125", "Raider 150", "Barako 175", "TMX 155", "Click 125i", "Sniper 155"}
)

// Options sizes the dataset. Seed makes a run reproducible; Now anchors the
// generated timestamps.
type Options struct {
	Seed       uint64
	Categories int
	Products   int
	Orders     int
	Now        time.Time
}

func DefaultOptions() Options {
	return Options{Seed: 1, Categories: 8, Products: 60, Orders: 40}
}

type Result struct {
	Categories int
	Products   int
	Orders     int
}

// Seed inserts everything in one transaction. It refuses a database that
// already has products unless reset is set, which clears the catalogue and
// order tables first.
func Seed(ctx context.Context, db *gorm.DB, opts Options, reset bool) (Result, error) {
	var res Result
	if opts.Categories < 1 || opts.Categories > len(categoryNames) {
		return res, fmt.Errorf("categories must be between 1 and %d", len(categoryNames))
	}
	if opts.Products < 0 || opts.Orders < 0 {
		return res, fmt.Errorf("products and orders must not be negative")
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}
	f := gofakeit.New(opts.Seed)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			for _, table := range []string{"order_items", "orders", "products", "categories"} {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("clear %s: %w", table, err)
				}
			}
		}
		var existing int64
		if err := tx.Model(&models.Product{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("database already has %d products; pass reset to replace them", existing)
		}

		cats := buildCategories(f, opts)
		if err := tx.Create(&cats).Error; err != nil {
			return fmt.Errorf("insert categories: %w", err)
		}
		res.Categories = len(cats)

		products := buildProducts(f, opts, cats)
		if len(products) > 0 {
			if err := tx.CreateInBatches(&products, 100).Error; err != nil {
				return fmt.Errorf("insert products: %w", err)
			}
		}
		res.Products = len(products)

		orders := buildOrders(f, opts, products)
		for i := range orders {
			if err := tx.Create(&orders[i]).Error; err != nil {
				return fmt.Errorf("insert order %s: %w", orders[i].OrderNumber, err)
			}
		}
		res.Orders = len(orders)
		return nil
	})
	return res, err
}

func buildCategories(f *gofakeit.Faker, opts Options) []models.Category {
	cats := make([]models.Category, 0, opts.Categories)
	for i, name := range categoryNames[:opts.Categories] {
		cats = append(cats, models.Category{
			Name:        name,
			Description: f.Sentence(8),
			Image:       "uploads/categories/" + models.BrandSlug(name) + ".jpg",
			IsActive:    i%5 != 4,
			Featured:    i < 3,
			CreatedAt:   opts.Now.AddDate(0, 0, -180+i),
		})
	}
	return cats
}

func buildProducts(f *gofakeit.Faker, opts Options, cats []models.Category) []models.Product {
	products := make([]models.Product, 0, opts.Products)
	for i := range opts.Products {
		brand := f.RandomString(brandNames)
		part := f.RandomString(partNouns)
		fit := f.RandomString(fitments)
		cat := cats[f.IntRange(0, len(cats)-1)]

		p := models.Product{
			Name:        fmt.Sprintf("%s %s for %s", brand, part, fit),
			Description: f.Sentence(12),
			SKU:         fmt.Sprintf("%s-%s-%04d", strings.ToUpper(brand[:3]), strings.ToUpper(f.LetterN(2)), i+1),
			Price:       f.Price(80, 12000),
			Stock:       f.IntRange(0, 120),
			CategoryID:  cat.ID,
			Brand:       brand,
			Origin:      f.RandomString(origins),
			IsActive:    f.Float64Range(0, 1) < 0.85,
			Featured:    f.Float64Range(0, 1) < 0.15,
			CreatedAt:   opts.Now.Add(-time.Duration(f.IntRange(1, 150*24)) * time.Hour),
		}
		// Some rows without a brand or image, as in real data.
		if f.Float64Range(0, 1) < 0.1 {
			p.Brand = ""
		}
		if f.Float64Range(0, 1) < 0.7 {
			p.Image = "uploads/products/" + models.BrandSlug(p.Name) + ".jpg"
		}
		products = append(products, p)
	}
	return products
}

var orderStatuses = []string{
	models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped,
	models.OrderStatusDelivered, models.OrderStatusDelivered, models.OrderStatusCancelled,
}

func buildOrders(f *gofakeit.Faker, opts Options, products []models.Product) []models.Order {
	if len(products) == 0 {
		return nil
	}
	orders := make([]models.Order, 0, opts.Orders)
	for i := range opts.Orders {
		o := models.Order{
			OrderNumber:   fmt.Sprintf("FP-%05d", 10001+i),
			CustomerName:  f.Name(),
			CustomerEmail: strings.ToLower(f.Email()),
			Status:        f.RandomString(orderStatuses),
			CreatedAt:     opts.Now.Add(-time.Duration(f.IntRange(1, 90*24)) * time.Hour),
		}
		seen := map[string]bool{}
		for range f.IntRange(1, 3) {
			p := products[f.IntRange(0, len(products)-1)]
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			item := models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    f.IntRange(1, 4),
				UnitPrice:   p.Price,
			}
			o.Items = append(o.Items, item)
			o.Total += float64(item.Quantity) * item.UnitPrice
		}
		orders = append(orders, o)
	}
	return orders
}
