package files

import (
	"context"
	"fmt"
)

// GetTemporaryLink returns a direct-download link for a file. The link
// expires after four hours.
func (c *Client) GetTemporaryLink(ctx context.Context, arg GetTemporaryLinkArg) (*GetTemporaryLinkResult, error) {
	if arg.Path == "" {
		return nil, ErrMissingPath
	}

	var res GetTemporaryLinkResult
	if err := c.dbx.RPC(ctx, "files/get_temporary_link", arg, &res); err != nil {
		return nil, fmt.Errorf("get temporary link failed: %w", err)
	}
	return &res, nil
}
