package models

import (
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"
)

// Brand has no table of its own. Every brand is synthesized from the products
// that name it, so a brand exists exactly as long as one product carries it.
type Brand struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Country      string    `json:"country"`
	Logo         string    `json:"logo"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	IsActive     bool      `json:"isActive"`
	Featured     bool      `json:"featured"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BrandSlug turns a brand name into its ID: lower case, runs of anything
// that is not a letter or digit collapsed to a single dash.
func BrandSlug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DeriveBrands groups products by brand slug. Products without a brand are
// skipped. categoryNames maps category IDs to names for the description.
//
// The first product seen for a brand supplies its display name and country.
// A brand is active when any of its products is active, featured when any
// is featured, and was created when its oldest product was. Output is sorted
// by name.
func DeriveBrands(products []Product, categoryNames map[string]string) []Brand {
	branded := lo.Filter(products, func(p Product, _ int) bool {
		return BrandSlug(p.Brand) != ""
	})
	groups := lo.GroupBy(branded, func(p Product) string { return BrandSlug(p.Brand) })

	brands := make([]Brand, 0, len(groups))
	for slug, items := range groups {
		first := items[0]
		b := Brand{
			ID:           slug,
			Name:         strings.TrimSpace(first.Brand),
			Country:      first.Origin,
			IsActive:     lo.SomeBy(items, func(p Product) bool { return p.IsActive }),
			Featured:     lo.SomeBy(items, func(p Product) bool { return p.Featured }),
			ProductCount: len(items),
			CreatedAt:    lo.MinBy(items, func(a, b Product) bool { return a.CreatedAt.Before(b.CreatedAt) }).CreatedAt,
		}
		if b.Country == "" {
			if p, ok := lo.Find(items, func(p Product) bool { return p.Origin != "" }); ok {
				b.Country = p.Origin
			}
		}
		if p, ok := lo.Find(items, func(p Product) bool { return p.Image != "" }); ok {
			b.Logo = p.Image
		}

		cats := lo.Uniq(lo.FilterMap(items, func(p Product, _ int) (string, bool) {
			name, ok := categoryNames[p.CategoryID]
			return name, ok && name != ""
		}))
		slices.Sort(cats)
		b.Description = strings.Join(cats, ", ")

		brands = append(brands, b)
	}

	slices.SortFunc(brands, func(a, b Brand) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return brands
}
