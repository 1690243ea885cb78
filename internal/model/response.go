package model

import (
	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the shape shared by every error reply.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ClientResponse is the API projection of a client.
type ClientResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// ClientListResponse is the body of GET /api/clients.
type ClientListResponse struct {
	Success bool             `json:"success"`
	Clients []ClientResponse `json:"clients"`
}

// ClientCreatedResponse is the body of a successful POST /api/clients.
type ClientCreatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Client  ClientResponse `json:"client"`
}

// ItemResponse is the API projection of a catalog item.
type ItemResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	GSTPercent float64 `json:"gst_percent"`
}

// ItemListResponse is the body of GET /api/items.
type ItemListResponse struct {
	Success bool           `json:"success"`
	Items   []ItemResponse `json:"items"`
}

// ItemCreatedResponse is the body of a successful POST /api/items.
type ItemCreatedResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Item    ItemResponse `json:"item"`
}

// InvoiceSummaryResponse is one row of GET /api/invoices.
type InvoiceSummaryResponse struct {
	ID            int64   `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	Subtotal      float64 `json:"subtotal"`
	TaxTotal      float64 `json:"tax_total"`
	GrandTotal    float64 `json:"grand_total"`
	ClientName    string  `json:"client_name"`
}

// InvoiceListResponse is the body of GET /api/invoices.
type InvoiceListResponse struct {
	Success  bool                     `json:"success"`
	Invoices []InvoiceSummaryResponse `json:"invoices"`
}

// InvoiceCreatedResponse is the body of a successful POST /api/invoices.
type InvoiceCreatedResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	InvoiceID     int64   `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Subtotal      float64 `json:"subtotal"`
	TaxTotal      float64 `json:"tax_total"`
	GrandTotal    float64 `json:"grand_total"`
}

// InvoiceItemResponse is one line item in an invoice detail view.
type InvoiceItemResponse struct {
	ID         int64   `json:"id"`
	ItemID     *int64  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	GSTPercent float64 `json:"gst_percent"`
}

// InvoiceDetailResponse is the invoice object of GET /api/invoices/{id}:
// the header joined to the full client record plus all line items.
type InvoiceDetailResponse struct {
	ID             int64                 `json:"id"`
	InvoiceNumber  string                `json:"invoice_number"`
	ClientID       int64                 `json:"client_id"`
	InvoiceDate    string                `json:"invoice_date"`
	DueDate        string                `json:"due_date"`
	Status         string                `json:"status"`
	BillingAddress string                `json:"billing_address"`
	Notes          *string               `json:"notes"`
	Subtotal       float64               `json:"subtotal"`
	TaxTotal       float64               `json:"tax_total"`
	GrandTotal     float64               `json:"grand_total"`
	ClientName     string                `json:"client_name"`
	ClientEmail    *string               `json:"client_email"`
	ClientAddress  *string               `json:"client_address"`
	Items          []InvoiceItemResponse `json:"items"`
}

// InvoiceDetailEnvelope wraps an invoice detail in the common envelope.
type InvoiceDetailEnvelope struct {
	Success bool                  `json:"success"`
	Invoice InvoiceDetailResponse `json:"invoice"`
}

// ClientFromDomain converts a domain Client to its API projection.
func ClientFromDomain(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
	}
}

// ClientsFromDomain converts a list of domain Clients.
func ClientsFromDomain(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ClientFromDomain(&clients[i])
	}
	return out
}

// ItemFromDomain converts a domain Item to its API projection.
func ItemFromDomain(it *domain.Item) ItemResponse {
	return ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		UnitPrice:  it.UnitPrice,
		GSTPercent: it.GSTPercent,
	}
}

// ItemsFromDomain converts a list of domain Items.
func ItemsFromDomain(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ItemFromDomain(&items[i])
	}
	return out
}

// InvoiceSummariesFromDomain converts a list of domain InvoiceSummaries.
func InvoiceSummariesFromDomain(summaries []domain.InvoiceSummary) []InvoiceSummaryResponse {
	out := make([]InvoiceSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = InvoiceSummaryResponse{
			ID:            s.ID,
			InvoiceNumber: s.InvoiceNumber,
			InvoiceDate:   s.InvoiceDate.Format(dateLayout),
			DueDate:       s.DueDate.Format(dateLayout),
			Status:        s.Status,
			Subtotal:      s.Subtotal,
			TaxTotal:      s.TaxTotal,
			GrandTotal:    s.GrandTotal,
			ClientName:    s.ClientName,
		}
	}
	return out
}

// InvoiceDetailFromDomain converts a fully loaded domain Invoice.
func InvoiceDetailFromDomain(inv *domain.Invoice) InvoiceDetailResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, li := range inv.Items {
		items[i] = InvoiceItemResponse{
			ID:         li.ID,
			ItemID:     li.ItemID,
			ItemName:   li.ItemName,
			Quantity:   li.Quantity,
			UnitPrice:  li.UnitPrice,
			GSTPercent: li.GSTPercent,
		}
	}
	return InvoiceDetailResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		ClientID:       inv.ClientID,
		InvoiceDate:    inv.InvoiceDate.Format(dateLayout),
		DueDate:        inv.DueDate.Format(dateLayout),
		Status:         inv.Status,
		BillingAddress: inv.BillingAddress,
		Notes:          inv.Notes,
		Subtotal:       inv.Subtotal,
		TaxTotal:       inv.TaxTotal,
		GrandTotal:     inv.GrandTotal,
		ClientName:     inv.ClientName,
		ClientEmail:    inv.ClientEmail,
		ClientAddress:  inv.ClientAddress,
		Items:          items,
	}
}
