package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acme/dashboard-gateway/internal/application/dashboard"
)

// InvoiceHandler serves the invoice listing and mutations
type InvoiceHandler struct {
	BaseHandler
	service *dashboard.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service *dashboard.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// invoiceFormRequest is the invoice form as submitted by the shell.
// Values arrive as raw strings; coercion is the validator's job.
type invoiceFormRequest struct {
	CustomerID string `json:"customerId"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

func (r invoiceFormRequest) values() dashboard.InvoiceFormValues {
	return dashboard.InvoiceFormValues{
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Status:     r.Status,
	}
}

// List handles GET /invoices?query=&page=
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	views, err := h.service.FilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, views)
}

// Pages handles GET /invoices/pages?query=
func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.service.Pages(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, gin.H{"totalPages": pages})
}

// Get handles GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	form, err := h.service.InvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.FetchFailed(c, err)
		return
	}
	h.Success(c, form)
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req invoiceFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}
	h.MutationOutcome(c, h.service.Create(c.Request.Context(), req.values()))
}

// Update handles PUT /invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req invoiceFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}
	h.MutationOutcome(c, h.service.Update(c.Request.Context(), c.Param("id"), req.values()))
}

// Delete handles DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	h.MutationOutcome(c, h.service.Delete(c.Request.Context(), c.Param("id")))
}
