package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

func TestGridSizes(t *testing.T) {
	tests := []struct {
		n    int
		want []uint
	}{
		{1, []uint{12}},
		{5, []uint{3, 3, 2, 2, 2}},
		{7, []uint{2, 2, 2, 2, 2, 1, 1}},
		{12, []uint{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := gridSizes(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := gridSizes(0)
	assert.Error(t, err)
	_, err = gridSizes(13)
	assert.Error(t, err)
}

func TestWriteTablePDF(t *testing.T) {
	schema := models.CategorySchema()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := WriteTablePDF(&buf, "Categories", []models.Category{}, schema.Fields, now)
	assert.ErrorIs(t, err, listview.ErrNothingToExport)
	assert.Zero(t, buf.Len())

	cats := []models.Category{
		{ID: "c1", Name: "Brakes, pads & rotors", IsActive: true, CreatedAt: now},
		{ID: "c2", Name: "Engine", ProductCount: 3},
	}
	require.NoError(t, WriteTablePDF(&buf, "Categories", cats, schema.Fields, now))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestOrderInvoice(t *testing.T) {
	order := models.Order{
		OrderNumber:   "FP-1001",
		CustomerName:  "Juan Dela Cruz",
		CustomerEmail: "juan@example.com",
		Status:        models.OrderStatusShipped,
		Total:         2500,
		CreatedAt:     time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductName: "Brake pad", Quantity: 2, UnitPrice: 750},
			{ProductName: "Spark plug", Quantity: 4, UnitPrice: 250},
		},
	}

	buf, err := OrderInvoice(order)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
