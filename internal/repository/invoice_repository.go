package repository

import (
	"context"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

// InvoiceRepository defines data access for invoices and their line items.
type InvoiceRepository interface {
	// ListInvoices returns all invoice headers joined to the client's
	// display name, ordered by ID descending (most recent first).
	ListInvoices(ctx context.Context) ([]domain.InvoiceSummary, error)

	// GetInvoiceByID returns the invoice header joined to the full client
	// record plus the complete ordered set of its line items. Returns a
	// not-found error if no header matches.
	GetInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error)

	// CreateInvoice persists the invoice header and all of its line items
	// as one transaction: verify the client exists, insert the header,
	// assign the invoice number derived from the generated ID, insert the
	// line items. On success the invoice's ID and InvoiceNumber are
	// filled in. A failure at any step leaves nothing behind.
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
}
