package dashboard

import "github.com/acme/dashboard-gateway/internal/domain/billing"

// LatestInvoiceView is a recent invoice denormalized with its customer's
// display fields. Amount is already currency-formatted.
type LatestInvoiceView struct {
	ID         string                `json:"id"`
	CustomerID string                `json:"customerId"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	ImageURL   string                `json:"image_url"`
	Amount     string                `json:"amount"`
	Status     billing.InvoiceStatus `json:"status"`
	Date       string                `json:"date"`
}

// InvoiceRowView is one row of the filtered invoice listing with the
// embedded customer flattened into top-level fields
type InvoiceRowView struct {
	ID         string                `json:"id"`
	CustomerID string                `json:"customer_id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	ImageURL   string                `json:"image_url"`
	Amount     string                `json:"amount"`
	Status     billing.InvoiceStatus `json:"status"`
	Date       string                `json:"date"`
}

// CardData is the four-figure dashboard summary
type CardData struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// RevenueView is a monthly revenue data point for the chart
type RevenueView struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// CustomerTableRow is one row of the customer table with formatted totals
type CustomerTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// InvoiceForm is a single invoice shaped for the edit form. Amount is in
// display units, not minor units.
type InvoiceForm struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// Signal instructs the presentation shell what to do after a successful
// mutation: which cached view to drop and where to navigate. The core
// never touches the rendering layer directly.
type Signal struct {
	InvalidatePath string `json:"invalidate_path,omitempty"`
	NavigateTo     string `json:"navigate_to,omitempty"`
}

// MutationState is the outcome of an invoice mutation handed back to the
// presentation shell. Errors and a successful Signal are mutually
// exclusive.
type MutationState struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Signal  *Signal             `json:"signal,omitempty"`
}

// OK reports whether the mutation went through
func (s MutationState) OK() bool {
	return len(s.Errors) == 0 && s.Signal != nil
}
