package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
)

// CustomerService serves the customer dropdown and the customer table
type CustomerService struct {
	customers billing.CustomerRepository
	logger    *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers billing.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// Customers returns every customer, used to populate the invoice form
// dropdown
func (s *CustomerService) Customers(ctx context.Context) ([]billing.Customer, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch customers", zap.Error(err))
		return nil, newFetchError("customers", "Failed to fetch all customers.", err)
	}
	return customers, nil
}

// FilteredCustomers returns the customer table rows. The customer service
// keys rows by "_id"; the gateway renames that to its canonical id and
// currency-formats both totals.
func (s *CustomerService) FilteredCustomers(ctx context.Context, query string) ([]CustomerTableRow, error) {
	customers, err := s.customers.ListWithTotals(ctx, query)
	if err != nil {
		s.logger.Error("Failed to fetch customer table", zap.Error(err), zap.String("query", query))
		return nil, newFetchError("customer_table", "Failed to fetch customer table.", err)
	}

	rows := make([]CustomerTableRow, len(customers))
	for i, c := range customers {
		rows[i] = CustomerTableRow{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  FormatCurrency(c.TotalPending),
			TotalPaid:     FormatCurrency(c.TotalPaid),
		}
	}
	return rows, nil
}
