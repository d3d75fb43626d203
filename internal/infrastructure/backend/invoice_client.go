package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
)

// InvoiceClient talks to the remote invoice service
type InvoiceClient struct {
	client *Client
}

// NewInvoiceClient creates a client for the invoice service
func NewInvoiceClient(client *Client) *InvoiceClient {
	return &InvoiceClient{client: client}
}

// ListLatest returns the fixed-size list of most recent invoices
func (c *InvoiceClient) ListLatest(ctx context.Context) ([]billing.Invoice, error) {
	var invoices []billing.Invoice
	if err := c.client.get(ctx, "/invoices/latest", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListFiltered returns one page of invoices matching the query, joined
// server-side with an embedded single-element customer array per row
func (c *InvoiceClient) ListFiltered(ctx context.Context, query string, page int) ([]billing.FilteredInvoice, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("currentPage", strconv.Itoa(page))

	var invoices []billing.FilteredInvoice
	if err := c.client.get(ctx, "/invoices/getFilteredInvoices", params, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// CountFiltered returns the total row count of the filtered query
func (c *InvoiceClient) CountFiltered(ctx context.Context, query string) (int64, error) {
	params := url.Values{}
	params.Set("query", query)
	return c.client.getInt(ctx, "/invoices/numberOfPages", params)
}

// Count returns the total number of invoices
func (c *InvoiceClient) Count(ctx context.Context) (int64, error) {
	return c.client.getInt(ctx, "/invoices/numberOfInvoices", nil)
}

// SumPaid returns the sum of all paid invoice amounts in minor units
func (c *InvoiceClient) SumPaid(ctx context.Context) (int64, error) {
	return c.client.getInt(ctx, "/invoices/sumOfPaidInvoices", nil)
}

// SumPending returns the sum of all pending invoice amounts in minor units
func (c *InvoiceClient) SumPending(ctx context.Context) (int64, error) {
	return c.client.getInt(ctx, "/invoices/sumOfPendingInvoices", nil)
}

// FindByID returns a single invoice
func (c *InvoiceClient) FindByID(ctx context.Context, id string) (*billing.Invoice, error) {
	var invoice billing.Invoice
	if err := c.client.get(ctx, "/invoices/"+url.PathEscape(id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create stores a new invoice; id and date are assigned by the service
func (c *InvoiceClient) Create(ctx context.Context, invoice billing.NewInvoice) error {
	return c.client.get(ctx, "/invoices/save", mutationParams("", invoice), nil)
}

// Update replaces the mutable fields of an existing invoice
func (c *InvoiceClient) Update(ctx context.Context, id string, invoice billing.NewInvoice) error {
	return c.client.get(ctx, "/invoices/update", mutationParams(id, invoice), nil)
}

// Delete removes an invoice
func (c *InvoiceClient) Delete(ctx context.Context, id string) error {
	params := url.Values{}
	params.Set("id", id)
	return c.client.get(ctx, "/invoices/delete", params, nil)
}

func mutationParams(id string, invoice billing.NewInvoice) url.Values {
	params := url.Values{}
	if id != "" {
		params.Set("id", id)
	}
	params.Set("customerId", invoice.CustomerID)
	params.Set("amount", strconv.FormatInt(invoice.Amount, 10))
	params.Set("status", string(invoice.Status))
	return params
}

var _ billing.InvoiceRepository = (*InvoiceClient)(nil)
