package files

import (
	"github.com/rs/zerolog"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// Client exposes the files namespace of the Dropbox v2 API. Every method is
// one synchronous HTTP round-trip; batch methods hand back either an inline
// result or a job id for the paired check method, never a client-side loop.
type Client struct {
	dbx    *dropbox.Client
	logger zerolog.Logger
}

// NewClient creates a files namespace client on top of the core client.
func NewClient(dbx *dropbox.Client, logger zerolog.Logger) *Client {
	return &Client{
		dbx:    dbx,
		logger: logger,
	}
}
