package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsSingleLine(t *testing.T) {
	inv := &Invoice{
		Items: []InvoiceItem{
			{ItemName: "Widget", Quantity: 2, UnitPrice: 10, GSTPercent: 18},
		},
	}

	inv.ComputeTotals()

	assert.Equal(t, 20.0, inv.Subtotal)
	assert.Equal(t, 3.6, inv.TaxTotal)
	assert.Equal(t, 20.0+3.6, inv.GrandTotal)
}

func TestComputeTotalsMultipleLines(t *testing.T) {
	inv := &Invoice{
		Items: []InvoiceItem{
			{ItemName: "Consulting", Quantity: 3, UnitPrice: 150, GSTPercent: 18},
			{ItemName: "Hosting", Quantity: 1, UnitPrice: 40, GSTPercent: 0},
			{ItemName: "Support", Quantity: 0.5, UnitPrice: 200, GSTPercent: 5},
		},
	}

	inv.ComputeTotals()

	assert.InDelta(t, 590.0, inv.Subtotal, 1e-9)
	assert.InDelta(t, 86.0, inv.TaxTotal, 1e-9)
	assert.Equal(t, inv.Subtotal+inv.TaxTotal, inv.GrandTotal)
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	items := []InvoiceItem{
		{ItemName: "A", Quantity: 2, UnitPrice: 9.99, GSTPercent: 18},
		{ItemName: "B", Quantity: 7, UnitPrice: 3.5, GSTPercent: 12},
	}

	forward := &Invoice{Items: []InvoiceItem{items[0], items[1]}}
	reverse := &Invoice{Items: []InvoiceItem{items[1], items[0]}}
	forward.ComputeTotals()
	reverse.ComputeTotals()

	assert.InDelta(t, forward.Subtotal, reverse.Subtotal, 1e-9)
	assert.InDelta(t, forward.TaxTotal, reverse.TaxTotal, 1e-9)
	assert.InDelta(t, forward.GrandTotal, reverse.GrandTotal, 1e-9)
}

func TestComputeTotalsZeroGST(t *testing.T) {
	inv := &Invoice{
		Items: []InvoiceItem{
			{ItemName: "Exempt", Quantity: 4, UnitPrice: 25, GSTPercent: 0},
		},
	}

	inv.ComputeTotals()

	assert.Equal(t, 100.0, inv.Subtotal)
	assert.Equal(t, 0.0, inv.TaxTotal)
	assert.Equal(t, 100.0, inv.GrandTotal)
}

func TestLineItemAmountAndTax(t *testing.T) {
	li := InvoiceItem{Quantity: 2, UnitPrice: 10, GSTPercent: 18}

	assert.Equal(t, 20.0, li.Amount())
	assert.Equal(t, 3.6, li.Tax())
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-00001", FormatInvoiceNumber(1))
	assert.Equal(t, "INV-00042", FormatInvoiceNumber(42))
	assert.Equal(t, "INV-99999", FormatInvoiceNumber(99999))
	assert.Equal(t, "INV-123456", FormatInvoiceNumber(123456))
}
