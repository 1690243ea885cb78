package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/karthikbhat/invoice-hub-service/internal/database"
	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL.
type PostgresInvoiceRepository struct {
	db *database.PostgresDB
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository.
func NewPostgresInvoiceRepository(db *database.PostgresDB) InvoiceRepository {
	return &PostgresInvoiceRepository{db: db}
}

// ListInvoices returns all invoice headers joined to the client's display
// name, ordered by ID descending.
func (r *PostgresInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.InvoiceSummary, error) {
	rows, err := r.db.Pool().Query(ctx, `
		SELECT i.id, i.invoice_number, i.invoice_date, i.due_date,
		       i.status, i.subtotal, i.tax_total, i.grand_total,
		       c.name AS client_name
		FROM invoices i
		JOIN clients c ON i.client_id = c.id
		ORDER BY i.id DESC
	`)
	if err != nil {
		return nil, domain.NewPersistenceError("query invoices", err)
	}
	defer rows.Close()

	invoices := []domain.InvoiceSummary{}
	for rows.Next() {
		var s domain.InvoiceSummary
		if err := rows.Scan(
			&s.ID, &s.InvoiceNumber, &s.InvoiceDate, &s.DueDate,
			&s.Status, &s.Subtotal, &s.TaxTotal, &s.GrandTotal,
			&s.ClientName,
		); err != nil {
			return nil, domain.NewPersistenceError("scan invoice", err)
		}
		invoices = append(invoices, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate invoices", err)
	}

	return invoices, nil
}

// GetInvoiceByID returns the invoice header joined to the full client
// record plus all of its line items in insertion order.
func (r *PostgresInvoiceRepository) GetInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.Pool().QueryRow(ctx, `
		SELECT i.id, i.invoice_number, i.client_id, i.invoice_date, i.due_date,
		       i.status, i.billing_address, i.notes,
		       i.subtotal, i.tax_total, i.grand_total,
		       c.name AS client_name, c.email AS client_email, c.address AS client_address
		FROM invoices i
		JOIN clients c ON i.client_id = c.id
		WHERE i.id = $1
	`, id).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.InvoiceDate, &inv.DueDate,
		&inv.Status, &inv.BillingAddress, &inv.Notes,
		&inv.Subtotal, &inv.TaxTotal, &inv.GrandTotal,
		&inv.ClientName, &inv.ClientEmail, &inv.ClientAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("Invoice not found")
		}
		return nil, domain.NewPersistenceError("get invoice", err)
	}

	rows, err := r.db.Pool().Query(ctx, `
		SELECT id, item_id, item_name, quantity, unit_price, gst_percent
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, domain.NewPersistenceError("query invoice items", err)
	}
	defer rows.Close()

	inv.Items = []domain.InvoiceItem{}
	for rows.Next() {
		var li domain.InvoiceItem
		if err := rows.Scan(&li.ID, &li.ItemID, &li.ItemName, &li.Quantity, &li.UnitPrice, &li.GSTPercent); err != nil {
			return nil, domain.NewPersistenceError("scan invoice item", err)
		}
		inv.Items = append(inv.Items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate invoice items", err)
	}

	return &inv, nil
}

// CreateInvoice persists the invoice and its line items in one
// transaction. The invoice number is assigned only after the header's ID
// is generated, so readers never observe a header without its number or
// its line items.
func (r *PostgresInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)
		`, invoice.ClientID).Scan(&exists)
		if err != nil {
			return domain.NewPersistenceError("check client", err)
		}
		if !exists {
			return domain.NewValidationError("Client not found")
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO invoices
			(client_id, invoice_date, due_date, status,
			 billing_address, notes, subtotal, tax_total, grand_total, invoice_number)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '')
			RETURNING id
		`, invoice.ClientID, invoice.InvoiceDate, invoice.DueDate, invoice.Status,
			invoice.BillingAddress, invoice.Notes, invoice.Subtotal, invoice.TaxTotal, invoice.GrandTotal,
		).Scan(&invoice.ID)
		if err != nil {
			return domain.NewPersistenceError("insert invoice", err)
		}

		invoice.InvoiceNumber = domain.FormatInvoiceNumber(invoice.ID)
		if _, err := tx.Exec(ctx, `
			UPDATE invoices SET invoice_number = $1 WHERE id = $2
		`, invoice.InvoiceNumber, invoice.ID); err != nil {
			return domain.NewPersistenceError("assign invoice number", err)
		}

		for i := range invoice.Items {
			li := &invoice.Items[i]
			err := tx.QueryRow(ctx, `
				INSERT INTO invoice_items
				(invoice_id, item_id, item_name, quantity, unit_price, gst_percent)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`, invoice.ID, li.ItemID, li.ItemName, li.Quantity, li.UnitPrice, li.GSTPercent).Scan(&li.ID)
			if err != nil {
				return domain.NewPersistenceError("insert invoice item", err)
			}
		}

		return nil
	})
}
