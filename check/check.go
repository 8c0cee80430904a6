// Package check provides the Dropbox connectivity probes: check/user
// verifies a user token, check/app verifies app credentials. Both echo the
// query string back on success.
package check

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// EchoArg is the probe payload. The server echoes Query back verbatim.
type EchoArg struct {
	Query string `json:"query,omitempty"`
}

// EchoResult is the probe response.
type EchoResult struct {
	Result string `json:"result"`
}

// Client exposes the check namespace of the Dropbox v2 API.
type Client struct {
	dbx    *dropbox.Client
	logger zerolog.Logger
}

// NewClient creates a check namespace client on top of the core client.
func NewClient(dbx *dropbox.Client, logger zerolog.Logger) *Client {
	return &Client{
		dbx:    dbx,
		logger: logger,
	}
}

// User probes the api host with the user token attached. A response
// echoing the query means the token is valid.
func (c *Client) User(ctx context.Context, arg EchoArg) (*EchoResult, error) {
	c.logger.Debug().Msg("Checking user token")

	var res EchoResult
	if err := c.dbx.RPC(ctx, "check/user", arg, &res); err != nil {
		return nil, fmt.Errorf("check user failed: %w", err)
	}
	return &res, nil
}

// App probes the api host with app credentials.
func (c *Client) App(ctx context.Context, arg EchoArg) (*EchoResult, error) {
	c.logger.Debug().Msg("Checking app credentials")

	var res EchoResult
	if err := c.dbx.RPC(ctx, "check/app", arg, &res); err != nil {
		return nil, fmt.Errorf("check app failed: %w", err)
	}
	return &res, nil
}
