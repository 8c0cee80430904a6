package files

import (
	"context"
	"fmt"
)

// Search searches for files and folders matching the query. Recent changes
// may take a while to be reflected server-side.
func (c *Client) Search(ctx context.Context, arg SearchArg) (*SearchResult, error) {
	if arg.Query == "" {
		return nil, ErrMissingQuery
	}

	c.logger.Debug().Str("query", arg.Query).Msg("Searching")

	var res SearchResult
	if err := c.dbx.RPC(ctx, "files/search_v2", arg, &res); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return &res, nil
}

// SearchContinue returns the next page of search matches for a cursor from
// a previous Search call.
func (c *Client) SearchContinue(ctx context.Context, arg SearchContinueArg) (*SearchResult, error) {
	if arg.Cursor == "" {
		return nil, ErrMissingCursor
	}

	var res SearchResult
	if err := c.dbx.RPC(ctx, "files/search/continue_v2", arg, &res); err != nil {
		return nil, fmt.Errorf("search continue failed: %w", err)
	}
	return &res, nil
}
