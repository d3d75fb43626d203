package backend

import (
	"context"
	"net/url"

	"github.com/acme/dashboard-gateway/internal/domain/identity"
)

// UserClient talks to the remote user store
type UserClient struct {
	client *Client
}

// NewUserClient creates a client for the user store
func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

// FindByEmail returns the user registered under the given email address
func (c *UserClient) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	if err := c.client.get(ctx, "/users/email/"+url.PathEscape(email), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ identity.UserRepository = (*UserClient)(nil)
