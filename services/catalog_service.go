package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/cache"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// CatalogService reads whole collections the way the admin screens consume
// them: products with their category name, categories with product counts
// and brands derived from products.
type CatalogService struct {
	db     *gorm.DB
	brands *cache.Snapshot[models.Brand]
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db, brands: cache.NewSnapshot[models.Brand](cache.TTL)}
}

func (s *CatalogService) DB() *gorm.DB { return s.db }

// Invalidate drops cached derived collections. Call after any product,
// category or brand write.
func (s *CatalogService) Invalidate() {
	s.brands.Invalidate()
}

// Products returns every product, newest first.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at DESC, id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	names, err := s.CategoryNames(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].CategoryName = names[products[i].CategoryID]
	}
	return products, nil
}

// Product loads one product with its category name.
func (s *CatalogService) Product(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return p, err
	}
	var cat models.Category
	if err := s.db.WithContext(ctx).Select("name").First(&cat, "id = ?", p.CategoryID).Error; err == nil {
		p.CategoryName = cat.Name
	}
	return p, nil
}

func (s *CatalogService) CategoryNames(ctx context.Context) (map[string]string, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Select("id", "name").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list category names: %w", err)
	}
	return lo.SliceToMap(cats, func(c models.Category) (string, string) { return c.ID, c.Name }), nil
}

// Categories returns every category with its product count, by name.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	counts, err := s.productCounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		cats[i].ProductCount = counts[cats[i].ID]
	}
	return cats, nil
}

func (s *CatalogService) Category(ctx context.Context, id string) (models.Category, error) {
	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return c, err
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", id).Count(&n).Error; err != nil {
		return c, err
	}
	c.ProductCount = int(n)
	return c, nil
}

func (s *CatalogService) productCounts(ctx context.Context) (map[string]int, error) {
	var rows []models.CategoryProductCount
	err := s.db.WithContext(ctx).Model(&models.Product{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count products per category: %w", err)
	}
	return lo.SliceToMap(rows, func(r models.CategoryProductCount) (string, int) { return r.CategoryID, r.Count }), nil
}

// ════════════════════════════════════════════════════════════
// Brands
// ════════════════════════════════════════════════════════════

func (s *CatalogService) brandedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("brand <> ''").Order("created_at, id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list branded products: %w", err)
	}
	return products, nil
}

// Brands derives the brand list from the products table. The result is
// cached until the next Invalidate or for cache.TTL.
func (s *CatalogService) Brands(ctx context.Context) ([]models.Brand, error) {
	if brands, ok := s.brands.Get(); ok {
		return brands, nil
	}
	products, err := s.brandedProducts(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.CategoryNames(ctx)
	if err != nil {
		return nil, err
	}
	brands := models.DeriveBrands(products, names)
	s.brands.Set(brands)
	return brands, nil
}

// Brand returns gorm.ErrRecordNotFound when no product carries the slug.
func (s *CatalogService) Brand(ctx context.Context, id string) (models.Brand, error) {
	brands, err := s.Brands(ctx)
	if err != nil {
		return models.Brand{}, err
	}
	b, ok := lo.Find(brands, func(b models.Brand) bool { return b.ID == id })
	if !ok {
		return models.Brand{}, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (s *CatalogService) brandProductIDs(ctx context.Context, id string) ([]string, error) {
	products, err := s.brandedProducts(ctx)
	if err != nil {
		return nil, err
	}
	ids := lo.FilterMap(products, func(p models.Product, _ int) (string, bool) {
		return p.ID, models.BrandSlug(p.Brand) == id
	})
	if len(ids) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return ids, nil
}

// SetBrandActive cascades the flag to every product of the brand.
func (s *CatalogService) SetBrandActive(ctx context.Context, id string, active bool) (models.Brand, error) {
	ids, err := s.brandProductIDs(ctx, id)
	if err != nil {
		return models.Brand{}, err
	}
	err = s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id IN ?", ids).
		Update("is_active", active).Error
	if err != nil {
		return models.Brand{}, fmt.Errorf("update brand products: %w", err)
	}
	s.Invalidate()
	return s.Brand(ctx, id)
}

// DeleteBrand clears the brand from its products. The products stay.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) (int64, error) {
	ids, err := s.brandProductIDs(ctx, id)
	if err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id IN ?", ids).
		Update("brand", "")
	if res.Error != nil {
		return 0, fmt.Errorf("clear brand: %w", res.Error)
	}
	s.Invalidate()
	return res.RowsAffected, nil
}
