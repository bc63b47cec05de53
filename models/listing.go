package models

import (
	"time"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
)

func activeLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ProductSchema searches name, description and SKU and groups by category.
func ProductSchema() listview.Schema[Product] {
	return listview.Schema[Product]{
		Entity:   "products",
		ID:       func(p Product) string { return p.ID },
		Active:   func(p Product) bool { return p.IsActive },
		Featured: func(p Product) bool { return p.Featured },
		Count:    func(p Product) int { return p.Stock },
		Group:    func(p Product) string { return p.CategoryID },
		Search: []func(Product) string{
			func(p Product) string { return p.Name },
			func(p Product) string { return p.Description },
			func(p Product) string { return p.SKU },
		},
		Fields: []listview.Field[Product]{
			listview.TextField("id", "ID", func(p Product) string { return p.ID }),
			listview.TextField("name", "Name", func(p Product) string { return p.Name }),
			listview.TextField("sku", "SKU", func(p Product) string { return p.SKU }),
			listview.TextField("category", "Category", func(p Product) string { return p.CategoryName }),
			listview.TextField("brand", "Brand", func(p Product) string { return p.Brand }),
			listview.TextField("origin", "Origin", func(p Product) string { return p.Origin }),
			listview.NumberField("price", "Price", func(p Product) float64 { return p.Price }),
			listview.NumberField("stock", "Stock", func(p Product) float64 { return float64(p.Stock) }),
			listview.TextField("status", "Status", func(p Product) string { return activeLabel(p.IsActive) }),
			listview.TextField("featured", "Featured", func(p Product) string { return yesNo(p.Featured) }),
			listview.TimeField("createdAt", "Created At", func(p Product) time.Time { return p.CreatedAt }),
		},
	}
}

func CategorySchema() listview.Schema[Category] {
	return listview.Schema[Category]{
		Entity:   "categories",
		ID:       func(c Category) string { return c.ID },
		Active:   func(c Category) bool { return c.IsActive },
		Featured: func(c Category) bool { return c.Featured },
		Count:    func(c Category) int { return c.ProductCount },
		Search: []func(Category) string{
			func(c Category) string { return c.Name },
			func(c Category) string { return c.Description },
		},
		Fields: []listview.Field[Category]{
			listview.TextField("id", "ID", func(c Category) string { return c.ID }),
			listview.TextField("name", "Name", func(c Category) string { return c.Name }),
			listview.TextField("description", "Description", func(c Category) string { return c.Description }),
			listview.NumberField("productCount", "Products", func(c Category) float64 { return float64(c.ProductCount) }),
			listview.TextField("status", "Status", func(c Category) string { return activeLabel(c.IsActive) }),
			listview.TextField("featured", "Featured", func(c Category) string { return yesNo(c.Featured) }),
			listview.TimeField("createdAt", "Created At", func(c Category) time.Time { return c.CreatedAt }),
		},
	}
}

// BrandSchema searches name, description and country.
func BrandSchema() listview.Schema[Brand] {
	return listview.Schema[Brand]{
		Entity:   "brands",
		ID:       func(b Brand) string { return b.ID },
		Active:   func(b Brand) bool { return b.IsActive },
		Featured: func(b Brand) bool { return b.Featured },
		Count:    func(b Brand) int { return b.ProductCount },
		Search: []func(Brand) string{
			func(b Brand) string { return b.Name },
			func(b Brand) string { return b.Description },
			func(b Brand) string { return b.Country },
		},
		Fields: []listview.Field[Brand]{
			listview.TextField("id", "ID", func(b Brand) string { return b.ID }),
			listview.TextField("name", "Name", func(b Brand) string { return b.Name }),
			listview.TextField("country", "Country", func(b Brand) string { return b.Country }),
			listview.TextField("description", "Categories", func(b Brand) string { return b.Description }),
			listview.NumberField("productCount", "Products", func(b Brand) float64 { return float64(b.ProductCount) }),
			listview.TextField("status", "Status", func(b Brand) string { return activeLabel(b.IsActive) }),
			listview.TimeField("createdAt", "Created At", func(b Brand) time.Time { return b.CreatedAt }),
		},
	}
}
