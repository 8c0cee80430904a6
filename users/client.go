// Package users provides a client for the users namespace of the Dropbox
// v2 API: the current account's profile and space usage.
package users

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// Client exposes the users namespace of the Dropbox v2 API.
type Client struct {
	dbx    *dropbox.Client
	logger zerolog.Logger
}

// NewClient creates a users namespace client on top of the core client.
func NewClient(dbx *dropbox.Client, logger zerolog.Logger) *Client {
	return &Client{
		dbx:    dbx,
		logger: logger,
	}
}

// GetCurrentAccount returns the profile of the account the token belongs
// to. The route takes no parameters; the body is the JSON literal null.
func (c *Client) GetCurrentAccount(ctx context.Context) (*FullAccount, error) {
	var res FullAccount
	if err := c.dbx.RPC(ctx, "users/get_current_account", nil, &res); err != nil {
		return nil, fmt.Errorf("get current account failed: %w", err)
	}
	return &res, nil
}

// GetSpaceUsage returns the account's used and allocated storage.
func (c *Client) GetSpaceUsage(ctx context.Context) (*SpaceUsage, error) {
	var res SpaceUsage
	if err := c.dbx.RPC(ctx, "users/get_space_usage", nil, &res); err != nil {
		return nil, fmt.Errorf("get space usage failed: %w", err)
	}
	return &res, nil
}
