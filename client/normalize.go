package client

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// The wire* types accept every field name the API has used for an entity.
// Each decode* function maps one onto the canonical models type and is the
// only place those aliases are known.

type wireProduct struct {
	ID           string    `json:"id"`
	LegacyID     string    `json:"_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	SKU          string    `json:"sku"`
	Price        number    `json:"price"`
	Stock        number    `json:"stock"`
	CategoryID   string    `json:"categoryId"`
	Category     reference `json:"category"`
	CategoryName string    `json:"categoryName"`
	Brand        string    `json:"brand"`
	Origin       string    `json:"origin"`
	Image        *string   `json:"image"`
	ImageURL     string    `json:"imageUrl"`
	activity
	Featured  bool      `json:"featured"`
	CreatedAt timestamp `json:"createdAt"`
	UpdatedAt timestamp `json:"updatedAt"`
}

type wireCategory struct {
	ID              string  `json:"id"`
	LegacyID        string  `json:"_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Image           *string `json:"image"`
	ImageURL        string  `json:"imageUrl"`
	ProductCount    number  `json:"productCount"`
	MotorcycleCount number  `json:"motorcycleCount"`
	activity
	Featured  bool      `json:"featured"`
	CreatedAt timestamp `json:"createdAt"`
	UpdatedAt timestamp `json:"updatedAt"`
}

type wireBrand struct {
	ID              string `json:"id"`
	LegacyID        string `json:"_id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Country         string `json:"country"`
	Origin          string `json:"origin"`
	Logo            string `json:"logo"`
	LogoURL         string `json:"logoUrl"`
	Image           string `json:"image"`
	ImageURL        string `json:"imageUrl"`
	ProductCount    number `json:"productCount"`
	MotorcycleCount number `json:"motorcycleCount"`
	activity
	Featured  bool      `json:"featured"`
	CreatedAt timestamp `json:"createdAt"`
}

// activity is the active flag under any of its names. With none present the
// entity counts as active.
type activity struct {
	IsActive *bool  `json:"isActive"`
	Active   *bool  `json:"active"`
	Status   string `json:"status"`
}

func (a activity) active() bool {
	switch {
	case a.IsActive != nil:
		return *a.IsActive
	case a.Active != nil:
		return *a.Active
	case a.Status != "":
		return strings.EqualFold(a.Status, "active")
	}
	return true
}

func decodeProduct(raw json.RawMessage) (models.Product, bool) {
	var w wireProduct
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Product{}, false
	}
	return models.Product{
		ID:           lo.CoalesceOrEmpty(w.ID, w.LegacyID),
		Name:         w.Name,
		Description:  w.Description,
		SKU:          w.SKU,
		Price:        float64(w.Price),
		Stock:        int(w.Stock),
		CategoryID:   lo.CoalesceOrEmpty(w.CategoryID, w.Category.ID),
		CategoryName: lo.CoalesceOrEmpty(w.CategoryName, w.Category.Name),
		Brand:        w.Brand,
		Origin:       w.Origin,
		Image:        storedImage(w.Image, w.ImageURL),
		ImageURL:     lo.CoalesceOrEmpty(w.ImageURL, lo.FromPtr(w.Image)),
		IsActive:     w.active(),
		Featured:     w.Featured,
		CreatedAt:    time.Time(w.CreatedAt),
		UpdatedAt:    time.Time(w.UpdatedAt),
	}, true
}

func decodeCategory(raw json.RawMessage) (models.Category, bool) {
	var w wireCategory
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Category{}, false
	}
	return models.Category{
		ID:           lo.CoalesceOrEmpty(w.ID, w.LegacyID),
		Name:         w.Name,
		Description:  w.Description,
		Image:        storedImage(w.Image, w.ImageURL),
		ImageURL:     lo.CoalesceOrEmpty(w.ImageURL, lo.FromPtr(w.Image)),
		IsActive:     w.active(),
		Featured:     w.Featured,
		ProductCount: int(lo.CoalesceOrEmpty(w.ProductCount, w.MotorcycleCount)),
		CreatedAt:    time.Time(w.CreatedAt),
		UpdatedAt:    time.Time(w.UpdatedAt),
	}, true
}

func decodeBrand(raw json.RawMessage) (models.Brand, bool) {
	var w wireBrand
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Brand{}, false
	}
	logo := lo.CoalesceOrEmpty(w.Logo, w.Image, w.LogoURL, w.ImageURL)
	return models.Brand{
		ID:           lo.CoalesceOrEmpty(w.ID, w.LegacyID, models.BrandSlug(w.Name)),
		Name:         w.Name,
		Description:  w.Description,
		Country:      lo.CoalesceOrEmpty(w.Country, w.Origin),
		Logo:         logo,
		LogoURL:      lo.CoalesceOrEmpty(w.LogoURL, w.ImageURL, logo),
		IsActive:     w.active(),
		Featured:     w.Featured,
		ProductCount: int(lo.CoalesceOrEmpty(w.ProductCount, w.MotorcycleCount)),
		CreatedAt:    time.Time(w.CreatedAt),
	}, true
}

// storedImage is the raw image field. A present but empty image stays empty
// so a full update does not write the resolved placeholder back.
func storedImage(image *string, url string) string {
	if image != nil {
		return *image
	}
	return url
}

// decodeAll drops elements that are not objects of the expected shape.
func decodeAll[T any](items []json.RawMessage, decode func(json.RawMessage) (T, bool)) []T {
	out := make([]T, 0, len(items))
	for _, raw := range items {
		if _, ok := asObject(raw); !ok {
			continue
		}
		if v, ok := decode(raw); ok {
			out = append(out, v)
		}
	}
	return out
}

// number accepts 12, 12.5, "12.5" and null. Anything unparseable is zero.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = number(f)
	return nil
}

// timestamp accepts RFC 3339, "2006-01-02 15:04:05" and bare dates.
// Anything else is the zero time.
type timestamp time.Time

var timestampLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		*t = timestamp{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			*t = timestamp(v)
			return nil
		}
	}
	*t = timestamp{}
	return nil
}

// reference is a foreign key sent either as an ID string or as an embedded
// {id|_id, name} object.
type reference struct {
	ID   string
	Name string
}

func (r *reference) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		return nil
	}
	var obj struct {
		ID       string `json:"id"`
		LegacyID string `json:"_id"`
		Name     string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		r.ID = lo.CoalesceOrEmpty(obj.ID, obj.LegacyID)
		r.Name = obj.Name
	}
	return nil
}
