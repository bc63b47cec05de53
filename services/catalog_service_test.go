package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database/dbtest"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) (brakes, engine models.Category) {
	t.Helper()
	brakes = models.Category{Name: "Brakes", IsActive: true}
	engine = models.Category{Name: "Engine", IsActive: true}
	require.NoError(t, db.Create(&brakes).Error)
	require.NoError(t, db.Create(&engine).Error)

	t0 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "Brake Pad", SKU: "BP-1", Price: 450, Stock: 10, CategoryID: brakes.ID, Brand: "Honda", Origin: "Japan", IsActive: true, CreatedAt: t0},
		{Name: "Piston Kit", SKU: "PK-1", Price: 1200, Stock: 2, CategoryID: engine.ID, Brand: "Honda", IsActive: false, CreatedAt: t0.Add(time.Hour)},
		{Name: "Disc Rotor", SKU: "DR-1", Price: 2100, Stock: 4, CategoryID: brakes.ID, Brand: "Brembo", Origin: "Italy", IsActive: true, CreatedAt: t0.Add(2 * time.Hour)},
		{Name: "Spark Plug", SKU: "SP-1", Price: 180, Stock: 50, CategoryID: engine.ID, IsActive: true, CreatedAt: t0.Add(3 * time.Hour)},
	}
	require.NoError(t, db.Create(&products).Error)
	return brakes, engine
}

func TestCatalogService_ProductsAndCategories(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	brakes, engine := seedCatalog(t, db)
	svc := NewCatalogService(db)

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "Spark Plug", products[0].Name, "newest first")
	assert.Equal(t, "Engine", products[0].CategoryName)

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, brakes.ID, cats[0].ID)
	assert.Equal(t, 2, cats[0].ProductCount)
	assert.Equal(t, engine.ID, cats[1].ID)
	assert.Equal(t, 2, cats[1].ProductCount)

	one, err := svc.Category(ctx, brakes.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, one.ProductCount)

	_, err = svc.Product(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogService_Brands(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	seedCatalog(t, db)
	svc := NewCatalogService(db)

	brands, err := svc.Brands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "brembo", brands[0].ID)
	assert.Equal(t, "honda", brands[1].ID)
	assert.Equal(t, 2, brands[1].ProductCount)
	assert.Equal(t, "Brakes, Engine", brands[1].Description)

	honda, err := svc.SetBrandActive(ctx, "honda", false)
	require.NoError(t, err)
	assert.False(t, honda.IsActive)

	var active int64
	require.NoError(t, db.Model(&models.Product{}).Where("brand = ? AND is_active = ?", "Honda", true).Count(&active).Error)
	assert.Zero(t, active, "status cascades to every product of the brand")

	n, err := svc.DeleteBrand(ctx, "honda")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	brands, err = svc.Brands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "brembo", brands[0].ID)

	var remaining int64
	require.NoError(t, db.Model(&models.Product{}).Count(&remaining).Error)
	assert.EqualValues(t, 4, remaining, "deleting a brand keeps its products")

	_, err = svc.Brand(ctx, "honda")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = svc.SetBrandActive(ctx, "honda", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
