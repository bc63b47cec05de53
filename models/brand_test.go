package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Honda", "honda"},
		{"  Yamaha Genuine  ", "yamaha-genuine"},
		{"K&N", "k-n"},
		{"R.K. Chains!!", "r-k-chains"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, BrandSlug(tt.in))
		})
	}
}

func TestDeriveBrands(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		{ID: "p1", Brand: "Honda", Origin: "Japan", CategoryID: "c-brakes", IsActive: false, CreatedAt: t0.Add(2 * time.Hour)},
		{ID: "p2", Brand: "honda ", Origin: "Thailand", CategoryID: "c-engine", Image: "/uploads/honda.png", IsActive: true, CreatedAt: t0},
		{ID: "p3", Brand: "Brembo", CategoryID: "c-brakes", Featured: true, CreatedAt: t0.Add(time.Hour)},
		{ID: "p4", Brand: "", CategoryID: "c-brakes", IsActive: true},
		{ID: "p5", Brand: "Brembo", Origin: "Italy", CategoryID: "c-unknown", CreatedAt: t0.Add(3 * time.Hour)},
	}
	names := map[string]string{"c-brakes": "Brakes", "c-engine": "Engine"}

	brands := DeriveBrands(products, names)
	require.Len(t, brands, 2)

	brembo, honda := brands[0], brands[1]
	assert.Equal(t, "brembo", brembo.ID)
	assert.Equal(t, "Italy", brembo.Country, "falls back to the first product with an origin")
	assert.False(t, brembo.IsActive)
	assert.True(t, brembo.Featured)
	assert.Equal(t, 2, brembo.ProductCount)
	assert.Equal(t, "Brakes", brembo.Description)

	assert.Equal(t, "honda", honda.ID)
	assert.Equal(t, "Honda", honda.Name)
	assert.Equal(t, "Japan", honda.Country)
	assert.True(t, honda.IsActive, "active when any product is active")
	assert.Equal(t, "/uploads/honda.png", honda.Logo)
	assert.Equal(t, "Brakes, Engine", honda.Description)
	assert.Equal(t, t0, honda.CreatedAt)
}

func TestDeriveBrands_Empty(t *testing.T) {
	assert.Empty(t, DeriveBrands(nil, nil))
	assert.Empty(t, DeriveBrands([]Product{{ID: "p1"}}, nil))
}
