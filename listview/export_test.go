package listview

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_RoundTrip(t *testing.T) {
	items := fakeParts(21, 12)
	items[0].Name = `Visor, "smoke" tint`
	items[1].Description = "line one\nline two"
	items[2].Name = `""`
	items[3].Description = ""

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, items, partSchema().Fields))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(items)+1)
	assert.Equal(t, []string{"ID", "Name", "Description", "Price", "Stock", "Created"}, records[0])

	for i, p := range items {
		row := records[i+1]
		assert.Equal(t, p.ID, row[0])
		assert.Equal(t, p.Name, row[1])
		assert.Equal(t, p.Description, row[2])
		assert.Equal(t, partSchema().Fields[3].Format(p), row[3])
		created, err := time.Parse(time.RFC3339, row[5])
		require.NoError(t, err)
		assert.True(t, created.Equal(p.CreatedAt))
	}
}

func TestWriteCSV_EmptyIsRejected(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []part{}, partSchema().Fields)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Zero(t, buf.Len())
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 2, 7, 23, 10, 0, 0, time.UTC)
	assert.Equal(t, "product_export_2025-02-07.csv", ExportFilename("product", "csv", now))
	assert.Equal(t, "brand_export_2025-02-07.pdf", ExportFilename("brand", "pdf", now))
}
