package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printKV(w io.Writer, rows [][2]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	_ = tw.Flush()
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "no results")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// cell is Field.Format with dates shortened for the terminal.
func cell[T any](f listview.Field[T], item T) string {
	switch f.Kind {
	case listview.KindTime:
		return formatDate(f.Time(item))
	case listview.KindNumber:
		return strconv.FormatFloat(f.Number(item), 'f', -1, 64)
	}
	if v := f.Text(item); v != "" {
		return v
	}
	return "-"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateOnly)
}

func formatMoney(v float64) string {
	return "PHP " + strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func printItems[T any](w io.Writer, items []T, columns []listview.Field[T]) {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = strings.ToUpper(c.Label)
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cell(c, item)
		}
		rows = append(rows, row)
	}
	printTable(w, headers, rows)
}

// printCards is the grid view: one key/value block per item.
func printCards[T any](w io.Writer, items []T, columns []listview.Field[T]) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "no results")
		return
	}
	for i, item := range items {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		rows := make([][2]string, len(columns))
		for j, c := range columns {
			rows[j] = [2]string{c.Label, cell(c, item)}
		}
		printKV(w, rows)
	}
}
