package billing

// Customer is a customer record as owned by the remote customer service
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl"`
}

// CustomerTotals is a customer row pre-aggregated by the customer service
// with its invoice totals. The service keys rows by "_id"; the gateway
// renames that to its canonical "id" when building the table view.
type CustomerTotals struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"imageUrl"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}
