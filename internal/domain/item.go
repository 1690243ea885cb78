package domain

// Item is a reusable catalog entry for a billable product or service.
// Invoices copy its name, price and GST rate at creation time, so later
// edits to the catalog never change historical invoices.
type Item struct {
	ID         int64
	Name       string
	UnitPrice  float64
	GSTPercent float64
}
