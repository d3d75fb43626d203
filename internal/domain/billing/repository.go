package billing

import "context"

// InvoiceRepository is the contract of the remote invoice service.
// Implementations surface failures as the shared remote error sentinels
// and never retry.
type InvoiceRepository interface {
	// ListLatest returns the fixed-size list of most recent invoices
	ListLatest(ctx context.Context) ([]Invoice, error)
	// ListFiltered returns one page of invoices matching the free-text query,
	// joined server-side with their customer
	ListFiltered(ctx context.Context, query string, page int) ([]FilteredInvoice, error)
	// CountFiltered returns the total row count of the filtered query
	CountFiltered(ctx context.Context, query string) (int64, error)
	// Count returns the total number of invoices
	Count(ctx context.Context) (int64, error)
	// SumPaid returns the sum of all paid invoice amounts in minor units
	SumPaid(ctx context.Context) (int64, error)
	// SumPending returns the sum of all pending invoice amounts in minor units
	SumPending(ctx context.Context) (int64, error)
	// FindByID returns a single invoice
	FindByID(ctx context.Context, id string) (*Invoice, error)
	// Create stores a new invoice; id and date are assigned by the service
	Create(ctx context.Context, invoice NewInvoice) error
	// Update replaces the mutable fields of an existing invoice
	Update(ctx context.Context, id string, invoice NewInvoice) error
	// Delete removes an invoice
	Delete(ctx context.Context, id string) error
}

// CustomerRepository is the contract of the remote customer service
type CustomerRepository interface {
	// FindAll returns every customer
	FindAll(ctx context.Context) ([]Customer, error)
	// FindByID returns a single customer
	FindByID(ctx context.Context, id string) (*Customer, error)
	// Count returns the total number of customers
	Count(ctx context.Context) (int64, error)
	// ListWithTotals returns customers matching the query with their
	// pre-aggregated pending/paid totals
	ListWithTotals(ctx context.Context, query string) ([]CustomerTotals, error)
}

// RevenueRepository is the contract of the remote revenue service
type RevenueRepository interface {
	// FindAll returns all monthly revenue data points
	FindAll(ctx context.Context) ([]Revenue, error)
}
