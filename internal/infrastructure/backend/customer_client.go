package backend

import (
	"context"
	"net/url"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
)

// CustomerClient talks to the remote customer service
type CustomerClient struct {
	client *Client
}

// NewCustomerClient creates a client for the customer service
func NewCustomerClient(client *Client) *CustomerClient {
	return &CustomerClient{client: client}
}

// FindAll returns every customer
func (c *CustomerClient) FindAll(ctx context.Context) ([]billing.Customer, error) {
	var customers []billing.Customer
	if err := c.client.get(ctx, "/customers/all", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByID returns a single customer
func (c *CustomerClient) FindByID(ctx context.Context, id string) (*billing.Customer, error) {
	var customer billing.Customer
	if err := c.client.get(ctx, "/customers/id/"+url.PathEscape(id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Count returns the total number of customers
func (c *CustomerClient) Count(ctx context.Context) (int64, error) {
	return c.client.getInt(ctx, "/customers/numberOfCustomers", nil)
}

// ListWithTotals returns customers matching the query with their
// pre-aggregated pending/paid totals
func (c *CustomerClient) ListWithTotals(ctx context.Context, query string) ([]billing.CustomerTotals, error) {
	params := url.Values{}
	params.Set("query", query)

	var customers []billing.CustomerTotals
	if err := c.client.get(ctx, "/customers/getFilteredAggregation", params, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

var _ billing.CustomerRepository = (*CustomerClient)(nil)
