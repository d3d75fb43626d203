package backend

import (
	"context"

	"github.com/acme/dashboard-gateway/internal/domain/billing"
)

// RevenueClient talks to the remote revenue service
type RevenueClient struct {
	client *Client
}

// NewRevenueClient creates a client for the revenue service
func NewRevenueClient(client *Client) *RevenueClient {
	return &RevenueClient{client: client}
}

// FindAll returns all monthly revenue data points
func (c *RevenueClient) FindAll(ctx context.Context) ([]billing.Revenue, error) {
	var revenues []billing.Revenue
	if err := c.client.get(ctx, "/revenues/all", nil, &revenues); err != nil {
		return nil, err
	}
	return revenues, nil
}

var _ billing.RevenueRepository = (*RevenueClient)(nil)
