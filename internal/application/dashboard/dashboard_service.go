package dashboard

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
)

// DashboardService aggregates the overview widgets: latest invoices,
// card summary and the revenue chart. Every operation reads fresh and
// fails as a whole; no partial view is ever returned.
type DashboardService struct {
	invoices  billing.InvoiceRepository
	customers billing.CustomerRepository
	revenues  billing.RevenueRepository
	logger    *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	invoices billing.InvoiceRepository,
	customers billing.CustomerRepository,
	revenues billing.RevenueRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		invoices:  invoices,
		customers: customers,
		revenues:  revenues,
		logger:    logger,
	}
}

// LatestInvoices returns the most recent invoices denormalized with their
// customer's name, email and avatar. The per-row customer fetches fan out
// concurrently; a single failure fails the whole listing and output order
// matches the order returned by the invoice service.
func (s *DashboardService) LatestInvoices(ctx context.Context) ([]LatestInvoiceView, error) {
	invoices, err := s.invoices.ListLatest(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch latest invoices", zap.Error(err))
		return nil, newFetchError("latest_invoices", "Failed to fetch the latest invoices.", err)
	}

	views := make([]LatestInvoiceView, len(invoices))
	g, gctx := errgroup.WithContext(ctx)
	for i, invoice := range invoices {
		i, invoice := i, invoice
		g.Go(func() error {
			customer, err := s.customers.FindByID(gctx, invoice.CustomerID)
			if err != nil {
				return err
			}
			views[i] = LatestInvoiceView{
				ID:         invoice.ID,
				CustomerID: invoice.CustomerID,
				Name:       customer.Name,
				Email:      customer.Email,
				ImageURL:   customer.ImageURL,
				Amount:     FormatCurrency(invoice.Amount),
				Status:     invoice.Status,
				Date:       invoice.Date,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to fetch customer for latest invoice", zap.Error(err))
		return nil, newFetchError("latest_invoices", "Failed to fetch the latest invoices.", err)
	}

	return views, nil
}

// CardData returns the four summary figures. The scalar fetches run
// concurrently; a failure in any of the four fails the whole summary.
func (s *DashboardService) CardData(ctx context.Context) (*CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		sumPaid       int64
		sumPending    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoices.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customers.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sumPaid, err = s.invoices.SumPaid(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sumPending, err = s.invoices.SumPending(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to fetch card data", zap.Error(err))
		return nil, newFetchError("card_data", "Failed to fetch card data.", err)
	}

	return &CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    FormatCurrency(sumPaid),
		TotalPendingInvoices: FormatCurrency(sumPending),
	}, nil
}

// Revenues returns the monthly revenue points for the chart, renaming the
// service's amount field to the view's revenue field
func (s *DashboardService) Revenues(ctx context.Context) ([]RevenueView, error) {
	revenues, err := s.revenues.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch revenue data", zap.Error(err))
		return nil, newFetchError("revenues", "Failed to fetch revenue data.", err)
	}

	views := make([]RevenueView, len(revenues))
	for i, r := range revenues {
		views[i] = RevenueView{Month: r.Month, Revenue: r.Amount}
	}
	return views, nil
}
