package listview

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// WriteCSV writes a header of column labels and one row per item. An empty
// items slice is rejected with ErrNothingToExport before anything is written.
func WriteCSV[T any](w io.Writer, items []T, columns []Field[T]) error {
	if len(items) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(columns))
	for _, item := range items {
		for i, c := range columns {
			row[i] = c.Format(item)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename builds "{entity}_export_{YYYY-MM-DD}.{ext}".
func ExportFilename(entity, ext string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.%s", entity, now.Format(time.DateOnly), ext)
}
