package files

import (
	"context"
	"fmt"
)

// ListFolder returns the first page of entries under a folder. An empty
// path means the root folder. When the result reports HasMore, pass its
// cursor to ListFolderContinue unmodified.
func (c *Client) ListFolder(ctx context.Context, arg ListFolderArg) (*ListFolderResult, error) {
	c.logger.Debug().
		Str("path", arg.Path).
		Bool("recursive", arg.Recursive).
		Msg("Listing folder")

	var res ListFolderResult
	if err := c.dbx.RPC(ctx, "files/list_folder", arg, &res); err != nil {
		return nil, fmt.Errorf("list folder failed: %w", err)
	}
	return &res, nil
}

// ListFolderContinue returns the next page for a cursor from ListFolder,
// ListFolderGetLatestCursor, or a previous continue call.
func (c *Client) ListFolderContinue(ctx context.Context, arg ListFolderContinueArg) (*ListFolderResult, error) {
	if arg.Cursor == "" {
		return nil, ErrMissingCursor
	}

	var res ListFolderResult
	if err := c.dbx.RPC(ctx, "files/list_folder/continue", arg, &res); err != nil {
		return nil, fmt.Errorf("list folder continue failed: %w", err)
	}
	return &res, nil
}

// ListFolderGetLatestCursor returns a cursor for the folder's current state
// without returning any entries, for callers that only care about changes
// from now on.
func (c *Client) ListFolderGetLatestCursor(ctx context.Context, arg ListFolderArg) (*ListFolderGetLatestCursorResult, error) {
	var res ListFolderGetLatestCursorResult
	if err := c.dbx.RPC(ctx, "files/list_folder/get_latest_cursor", arg, &res); err != nil {
		return nil, fmt.Errorf("get latest cursor failed: %w", err)
	}
	return &res, nil
}

// ListFolderLongpoll blocks until the folder behind the cursor changes or
// the timeout (plus up to 90 seconds of server-side jitter) elapses. This is
// a pass-through of the notify host's own contract; the call is
// unauthenticated and adds no client-side scheduling.
func (c *Client) ListFolderLongpoll(ctx context.Context, arg ListFolderLongpollArg) (*ListFolderLongpollResult, error) {
	if arg.Cursor == "" {
		return nil, ErrMissingCursor
	}

	c.logger.Debug().Uint64("timeout", arg.Timeout).Msg("Longpolling folder changes")

	var res ListFolderLongpollResult
	if err := c.dbx.Notify(ctx, "files/list_folder/longpoll", arg, &res); err != nil {
		return nil, fmt.Errorf("longpoll failed: %w", err)
	}
	return &res, nil
}
