package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

func TestInvoiceSummariesFromDomainFormatsDates(t *testing.T) {
	summaries := InvoiceSummariesFromDomain([]domain.InvoiceSummary{
		{
			ID:            7,
			InvoiceNumber: "INV-00007",
			InvoiceDate:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
			Status:        "Draft",
			ClientName:    "Acme Traders",
		},
	})

	require.Len(t, summaries, 1)
	assert.Equal(t, "2025-03-09", summaries[0].InvoiceDate)
	assert.Equal(t, "2025-04-08", summaries[0].DueDate)
	assert.Equal(t, "Acme Traders", summaries[0].ClientName)
}

func TestInvoiceDetailFromDomain(t *testing.T) {
	email := "billing@acme.test"
	itemID := int64(3)
	inv := &domain.Invoice{
		ID:            12,
		InvoiceNumber: "INV-00012",
		ClientID:      4,
		InvoiceDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
		Status:        "Sent",
		Subtotal:      20,
		TaxTotal:      3.6,
		GrandTotal:    23.6,
		ClientName:    "Acme Traders",
		ClientEmail:   &email,
		Items: []domain.InvoiceItem{
			{ID: 1, ItemID: &itemID, ItemName: "Widget", Quantity: 2, UnitPrice: 10, GSTPercent: 18},
		},
	}

	detail := InvoiceDetailFromDomain(inv)

	assert.Equal(t, int64(12), detail.ID)
	assert.Equal(t, "2025-01-15", detail.InvoiceDate)
	assert.Equal(t, &email, detail.ClientEmail)
	assert.Nil(t, detail.ClientAddress)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, &itemID, detail.Items[0].ItemID)
	assert.Equal(t, "Widget", detail.Items[0].ItemName)
}

func TestClientsFromDomainPreservesOptionalFields(t *testing.T) {
	addr := "12 Hill Road"
	clients := ClientsFromDomain([]domain.Client{
		{ID: 1, Name: "Acme Traders", Address: &addr},
	})

	require.Len(t, clients, 1)
	assert.Nil(t, clients[0].Email)
	assert.Equal(t, &addr, clients[0].Address)
}
