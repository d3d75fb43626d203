package billing

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// IsValid reports whether the status is one of the known values
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is an invoice record as owned by the remote invoice service.
// Amount is always integer minor units (cents); display formatting happens
// only at the aggregation stage.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"`
}

// EmbeddedCustomer is the customer sub-object the invoice service embeds
// in its server-side joined listing rows
type EmbeddedCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

// FilteredInvoice is a row of the server-side joined invoice listing.
// The customer array carries exactly one element for a well-formed row.
type FilteredInvoice struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customerId"`
	Amount     int64              `json:"amount"`
	Status     InvoiceStatus      `json:"status"`
	Date       string             `json:"date"`
	Customer   []EmbeddedCustomer `json:"customer"`
}

// NewInvoice carries the validated fields of an invoice create/update.
// ID and date are assigned by the invoice service.
type NewInvoice struct {
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
}
