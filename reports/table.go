// Package reports renders list exports and order invoices as PDF documents.
package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
)

// maroto lays columns out on a 12 unit grid.
const gridWidth = 12

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
	stripe     = color.Color{Red: 244, Green: 244, Blue: 241}
)

// WriteTablePDF renders items as a landscape table with one column per
// field, mirroring listview.WriteCSV. An empty items slice is rejected with
// listview.ErrNothingToExport.
func WriteTablePDF[T any](w io.Writer, title string, items []T, columns []listview.Field[T], now time.Time) error {
	if len(items) == 0 {
		return listview.ErrNothingToExport
	}
	grid, err := gridSizes(len(columns))
	if err != nil {
		return err
	}

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Label
	}
	rows := make([][]string, len(items))
	for r, item := range items {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.Format(item)
		}
		rows[r] = row
	}

	m := pdf.NewMaroto(consts.Landscape, consts.A4)
	m.SetPageMargins(10, 15, 10)

	m.Row(12, func() {
		m.Col(8, func() {
			m.Text(title, props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("%d rows, %s", len(items), now.Format("Jan 02, 2006 15:04")), props.Text{
				Size:  8,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})
	m.Row(4, func() {})

	m.TableList(header, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      8,
			Style:     consts.Bold,
			GridSizes: grid,
		},
		ContentProp: props.TableListContent{
			Size:      7,
			GridSizes: grid,
		},
		Align:                consts.Left,
		AlternatedBackground: &stripe,
		HeaderContentSpace:   2,
		Line:                 false,
	})

	buf, err := m.Output()
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// gridSizes spreads the 12 grid units over n columns, giving the remainder
// to the leftmost ones.
func gridSizes(n int) ([]uint, error) {
	if n < 1 || n > gridWidth {
		return nil, fmt.Errorf("reports: a pdf table holds 1 to %d columns, got %d", gridWidth, n)
	}
	sizes := make([]uint, n)
	base, extra := gridWidth/n, gridWidth%n
	for i := range sizes {
		sizes[i] = uint(base)
		if i < extra {
			sizes[i]++
		}
	}
	return sizes, nil
}
