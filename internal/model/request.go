package model

// CreateClientRequest is the body of POST /api/clients.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	Name       string `json:"name"`
	UnitPrice  Number `json:"unit_price"`
	GSTPercent Number `json:"gst_percent"`
}

// InvoiceItemRequest is one line item in a CreateInvoiceRequest. ItemID is
// an optional soft reference to the catalog and is stored as-is.
type InvoiceItemRequest struct {
	ItemID     Number `json:"item_id"`
	Name       string `json:"name"`
	Quantity   Number `json:"quantity"`
	UnitPrice  Number `json:"unit_price"`
	GSTPercent Number `json:"gst_percent"`
}

// CreateInvoiceRequest is the body of POST /api/invoices. Totals are never
// client-supplied; they are derived from the line items.
type CreateInvoiceRequest struct {
	ClientID       Number               `json:"client_id"`
	Items          []InvoiceItemRequest `json:"items"`
	InvoiceDate    string               `json:"invoice_date"`
	DueDate        string               `json:"due_date"`
	Status         string               `json:"status"`
	BillingAddress string               `json:"billing_address"`
	Notes          string               `json:"notes"`
}
