package reports

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

const (
	storeName    = "FEDERAL PARTS PHILIPPINES"
	storeContact = "sales@federalparts.ph"
)

func peso(v float64) string {
	return fmt.Sprintf("PHP %.2f", v)
}

// OrderInvoice renders a one page invoice for order. The order must have its
// Items loaded.
func OrderInvoice(order models.Order) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	text := func(width uint, s string, p props.Text) {
		m.Col(width, func() { m.Text(s, p) })
	}
	right := func(size float64, bold bool) props.Text {
		p := props.Text{Size: size, Color: darkGray, Align: consts.Right}
		if bold {
			p.Style = consts.Bold
		}
		return p
	}

	m.Row(15, func() {
		text(12, "INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
	})
	m.Row(10, func() {
		text(12, storeName, props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
	})
	m.Row(5, func() {
		text(12, storeContact, props.Text{Size: 9, Color: mediumGray})
	})
	m.Row(8, func() {})

	// Billing
	m.Row(5, func() {
		text(6, "BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		text(6, "INVOICE DETAILS", right(8, true))
	})
	m.Row(5, func() {
		text(6, order.CustomerName, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		text(6, "Invoice #"+order.OrderNumber, right(10, false))
	})
	m.Row(5, func() {
		text(6, order.CustomerEmail, props.Text{Size: 9, Color: mediumGray})
		text(6, "Date: "+order.CreatedAt.Format("Jan 02, 2006"), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
	})
	m.Row(5, func() {
		text(6, "", props.Text{})
		text(6, "Status: "+order.Status, props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
	})
	m.Row(8, func() {})

	// Items
	m.Row(6, func() {
		text(6, "Description", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		text(2, "Qty", right(8, true))
		text(2, "Price", right(8, true))
		text(2, "Total", right(8, true))
	})
	var subtotal float64
	for _, item := range order.Items {
		line := item.UnitPrice * float64(item.Quantity)
		subtotal += line
		m.Row(6, func() {
			text(6, item.ProductName, props.Text{Size: 9, Color: darkGray})
			text(2, fmt.Sprintf("%d", item.Quantity), right(9, false))
			text(2, peso(item.UnitPrice), right(9, false))
			text(2, peso(line), right(9, false))
		})
	}
	m.Row(8, func() {})

	// Summary
	m.Row(5, func() {
		m.Col(8, func() {})
		text(2, "Subtotal", props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		text(2, peso(subtotal), right(9, false))
	})
	m.Row(8, func() {
		m.Col(8, func() {})
		text(2, "Total", right(12, true))
		text(2, peso(order.Total), right(12, true))
	})
	m.Row(12, func() {})

	m.Row(5, func() {
		text(12, "Thank you for your business!", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", order.OrderNumber, err)
	}
	return &buf, nil
}
