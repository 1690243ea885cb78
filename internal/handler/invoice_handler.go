package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karthikbhat/invoice-hub-service/internal/model"
	"github.com/karthikbhat/invoice-hub-service/internal/service"
)

// InvoiceHandler handles HTTP requests for invoice operations.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes registers the handler's routes on the API group.
func (h *InvoiceHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/invoices", h.GetInvoices)
	api.POST("/invoices", h.CreateInvoice)
	api.GET("/invoices/:id", h.GetInvoice)
}

// GetInvoices handles GET /api/invoices
// @Summary List invoices
// @Description Returns all invoices with client names, most recent first
// @Tags invoices
// @Produce json
// @Success 200 {object} model.InvoiceListResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/invoices [get]
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondOK(c, model.InvoiceListResponse{
		Success:  true,
		Invoices: model.InvoiceSummariesFromDomain(invoices),
	})
}

// CreateInvoice handles POST /api/invoices
// @Summary Create an invoice
// @Description Validates the payload, computes totals and persists the invoice with its line items atomically
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.CreateInvoiceRequest true "Invoice to create"
// @Success 201 {object} model.InvoiceCreatedResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, msgInvalidJSON)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondCreated(c, model.InvoiceCreatedResponse{
		Success:       true,
		Message:       "Invoice created successfully",
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		Subtotal:      invoice.Subtotal,
		TaxTotal:      invoice.TaxTotal,
		GrandTotal:    invoice.GrandTotal,
	})
}

// GetInvoice handles GET /api/invoices/{id}
// @Summary Get an invoice
// @Description Returns the invoice header with its client record and line items
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} model.InvoiceDetailEnvelope
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric path segment can never match an invoice.
		respondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondOK(c, model.InvoiceDetailEnvelope{
		Success: true,
		Invoice: model.InvoiceDetailFromDomain(invoice),
	})
}
