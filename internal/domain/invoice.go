package domain

import (
	"fmt"
	"time"
)

// InvoiceItem is a line on an invoice. It snapshots the item name, price
// and GST rate at creation time. ItemID is a soft reference to the catalog
// and is never validated against it.
type InvoiceItem struct {
	ID         int64
	ItemID     *int64
	ItemName   string
	Quantity   float64
	UnitPrice  float64
	GSTPercent float64
}

// Amount returns the pre-tax amount for the line.
func (li InvoiceItem) Amount() float64 {
	return li.Quantity * li.UnitPrice
}

// Tax returns the GST amount for the line.
func (li InvoiceItem) Tax() float64 {
	return li.Amount() * li.GSTPercent / 100
}

// Invoice is an invoice header together with its line items. The client
// display fields are only populated on detail reads.
type Invoice struct {
	ID             int64
	InvoiceNumber  string
	ClientID       int64
	InvoiceDate    time.Time
	DueDate        time.Time
	Status         string
	BillingAddress string
	Notes          *string
	Subtotal       float64
	TaxTotal       float64
	GrandTotal     float64

	ClientName    string
	ClientEmail   *string
	ClientAddress *string

	Items []InvoiceItem
}

// InvoiceSummary is the list-view projection of an invoice header joined
// to its client's display name.
type InvoiceSummary struct {
	ID            int64
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       time.Time
	Status        string
	Subtotal      float64
	TaxTotal      float64
	GrandTotal    float64
	ClientName    string
}

// ComputeTotals derives subtotal, tax total and grand total from the line
// items. Totals accumulate in float64 with no rounding and are computed
// once at creation, then stored.
func (i *Invoice) ComputeTotals() {
	var subtotal, taxTotal float64
	for _, li := range i.Items {
		subtotal += li.Amount()
		taxTotal += li.Tax()
	}
	i.Subtotal = subtotal
	i.TaxTotal = taxTotal
	i.GrandTotal = subtotal + taxTotal
}

// FormatInvoiceNumber derives the human-facing invoice number from the
// generated row identifier.
func FormatInvoiceNumber(id int64) string {
	return fmt.Sprintf("INV-%05d", id)
}
