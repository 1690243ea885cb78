package service

import (
	"context"
	"strings"
	"time"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
	"github.com/karthikbhat/invoice-hub-service/internal/model"
	"github.com/karthikbhat/invoice-hub-service/internal/repository"
)

const dateLayout = "2006-01-02"

// defaultStatus is assigned when the request omits a status.
const defaultStatus = "Draft"

// InvoiceService defines the business logic for invoices.
type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]domain.InvoiceSummary, error)
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, req *model.CreateInvoiceRequest) (*domain.Invoice, error)
}

// InvoiceServiceImpl implements InvoiceService.
type InvoiceServiceImpl struct {
	repo repository.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &InvoiceServiceImpl{repo: repo}
}

// ListInvoices returns all invoice summaries, most recent first.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context) ([]domain.InvoiceSummary, error) {
	return s.repo.ListInvoices(ctx)
}

// GetInvoice returns a single invoice with its client record and line items.
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.repo.GetInvoiceByID(ctx, id)
}

// CreateInvoice validates the request, computes the totals and persists
// the invoice with its line items. All validation happens before any
// database write; the client existence check runs inside the persistence
// transaction, after item-level validation.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, req *model.CreateInvoiceRequest) (*domain.Invoice, error) {
	clientID, ok := req.ClientID.Int64()
	if !ok {
		return nil, domain.NewValidationError("Invalid client id")
	}

	if len(req.Items) == 0 {
		return nil, domain.NewValidationError("At least one line item is required")
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		return nil, domain.NewValidationError("Dates must be in YYYY-MM-DD format")
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, domain.NewValidationError("Dates must be in YYYY-MM-DD format")
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = defaultStatus
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, domain.NewValidationError("Item name is required")
		}

		quantity, qtyOK := it.Quantity.Float64()
		unitPrice, priceOK := it.UnitPrice.Float64()
		gstPercent, gstOK := it.GSTPercent.Float64()
		if !qtyOK || !priceOK || !gstOK {
			return nil, domain.NewValidationError("Invalid quantity/price/GST")
		}
		if quantity <= 0 || unitPrice < 0 {
			return nil, domain.NewValidationError("Quantity must be > 0 and price >= 0")
		}
		if gstPercent < 0 || gstPercent > 100 {
			return nil, domain.NewValidationError("GST percent must be between 0 and 100")
		}

		// The catalog reference is a historical snapshot, never checked
		// against the items table.
		var itemID *int64
		if id, ok := it.ItemID.Int64(); ok {
			itemID = &id
		}

		items = append(items, domain.InvoiceItem{
			ItemID:     itemID,
			ItemName:   name,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			GSTPercent: gstPercent,
		})
	}

	invoice := &domain.Invoice{
		ClientID:       clientID,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Status:         status,
		BillingAddress: strings.TrimSpace(req.BillingAddress),
		Notes:          normalizeOptional(req.Notes),
		Items:          items,
	}
	invoice.ComputeTotals()

	if err := s.repo.CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}
