package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
	"github.com/acme/dashboard-gateway/internal/domain/shared"
)

// InvoiceService serves the invoice listing and routes invoice mutations.
// Reads always hit the invoice service fresh; successful mutations drop
// the cached listing view and tell the shell where to navigate.
type InvoiceService struct {
	invoices    billing.InvoiceRepository
	invalidator ViewInvalidator
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices billing.InvoiceRepository, invalidator ViewInvalidator, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoices:    invoices,
		invalidator: invalidator,
		logger:      logger,
	}
}

// FilteredInvoices returns one page of the invoice listing. The invoice
// service joins each row with a single-element customer array; the
// gateway flattens that into top-level fields and discards the nested
// structure. A row without its embedded customer fails the whole listing.
func (s *InvoiceService) FilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceRowView, error) {
	req := PlanQuery(query, page)

	invoices, err := s.invoices.ListFiltered(ctx, req.Query, req.Page)
	if err != nil {
		s.logger.Error("Failed to fetch filtered invoices", zap.Error(err), zap.String("query", req.Query))
		return nil, newFetchError("filtered_invoices", "Failed to fetch invoices.", err)
	}

	views := make([]InvoiceRowView, len(invoices))
	for i, invoice := range invoices {
		if len(invoice.Customer) == 0 {
			err := fmt.Errorf("%w: invoice %s has no embedded customer", shared.ErrInvalidResponse, invoice.ID)
			s.logger.Error("Malformed filtered invoice row", zap.Error(err))
			return nil, newFetchError("filtered_invoices", "Failed to fetch invoices.", err)
		}
		customer := invoice.Customer[0]
		views[i] = InvoiceRowView{
			ID:         invoice.ID,
			CustomerID: invoice.CustomerID,
			Name:       customer.Name,
			Email:      customer.Email,
			ImageURL:   customer.ImageURL,
			Amount:     FormatCurrency(invoice.Amount),
			Status:     invoice.Status,
			Date:       invoice.Date,
		}
	}
	return views, nil
}

// Pages returns the total page count for a filtered listing. The total is
// the row count of the filtered invoice query itself.
func (s *InvoiceService) Pages(ctx context.Context, query string) (int, error) {
	rowCount, err := s.invoices.CountFiltered(ctx, query)
	if err != nil {
		s.logger.Error("Failed to fetch invoice row count", zap.Error(err), zap.String("query", query))
		return 0, newFetchError("invoice_pages", "Failed to fetch total number of invoices.", err)
	}
	return TotalPages(rowCount), nil
}

// InvoiceByID returns a single invoice shaped for the edit form, with the
// amount converted from minor units back to display units
func (s *InvoiceService) InvoiceByID(ctx context.Context, id string) (*InvoiceForm, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch invoice", zap.Error(err), zap.String("invoice_id", id))
		return nil, newFetchError("invoice_by_id", "Failed to fetch invoice.", err)
	}
	return &InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     string(invoice.Status),
	}, nil
}

// Create validates the form values and stores a new invoice. On success
// the invoices listing cache is invalidated and the shell is told to
// navigate back to the listing.
func (s *InvoiceService) Create(ctx context.Context, values InvoiceFormValues) MutationState {
	invoice, fieldErrors := ValidateInvoiceForm(values)
	if fieldErrors != nil {
		return MutationState{Message: msgMissingFields, Errors: fieldErrors}
	}

	if err := s.invoices.Create(ctx, *invoice); err != nil {
		s.logger.Error("Failed to create invoice", zap.Error(err))
		return MutationState{Message: "Database Error: Failed to Create Invoice."}
	}

	s.invalidateListing(ctx)
	return MutationState{
		Signal: &Signal{InvalidatePath: invoicesViewPath, NavigateTo: invoicesViewPath},
	}
}

// Update validates the form values and replaces an existing invoice. The
// target id travels out-of-band and is not part of the validated payload.
func (s *InvoiceService) Update(ctx context.Context, id string, values InvoiceFormValues) MutationState {
	invoice, fieldErrors := ValidateInvoiceForm(values)
	if fieldErrors != nil {
		return MutationState{Message: msgMissingFields, Errors: fieldErrors}
	}

	if err := s.invoices.Update(ctx, id, *invoice); err != nil {
		s.logger.Error("Failed to update invoice", zap.Error(err), zap.String("invoice_id", id))
		return MutationState{Message: "Database Error: Failed to Update Invoice."}
	}

	s.invalidateListing(ctx)
	return MutationState{
		Signal: &Signal{InvalidatePath: invoicesViewPath, NavigateTo: invoicesViewPath},
	}
}

// Delete removes an invoice. Success invalidates the listing cache but
// keeps the user on the listing, so no navigation is signaled.
func (s *InvoiceService) Delete(ctx context.Context, id string) MutationState {
	if err := s.invoices.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete invoice", zap.Error(err), zap.String("invoice_id", id))
		return MutationState{Message: "Database Error: Failed to Delete Invoice."}
	}

	s.invalidateListing(ctx)
	return MutationState{
		Message: "Deleted Invoice",
		Signal:  &Signal{InvalidatePath: invoicesViewPath},
	}
}

// invalidateListing drops the cached invoices listing view. Invalidation
// failure does not fail the mutation; the write already happened.
func (s *InvoiceService) invalidateListing(ctx context.Context) {
	if err := s.invalidator.Invalidate(ctx, invoicesViewPath); err != nil {
		s.logger.Warn("Failed to invalidate invoices view", zap.Error(err))
	}
}
