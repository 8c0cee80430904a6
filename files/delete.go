package files

import (
	"context"
	"fmt"

	"github.com/s0up4200/dropboxkit/async"
)

// Delete deletes a file or folder. Deleting a folder removes its contents
// recursively.
func (c *Client) Delete(ctx context.Context, arg DeleteArg) (*DeleteResult, error) {
	if arg.Path == "" {
		return nil, ErrMissingPath
	}

	c.logger.Debug().Str("path", arg.Path).Msg("Deleting entry")

	var res DeleteResult
	if err := c.dbx.RPC(ctx, "files/delete_v2", arg, &res); err != nil {
		return nil, fmt.Errorf("delete failed: %w", err)
	}
	return &res, nil
}

// DeleteBatch launches a batch delete.
func (c *Client) DeleteBatch(ctx context.Context, arg DeleteBatchArg) (*DeleteBatchLaunch, error) {
	if len(arg.Entries) == 0 {
		return nil, ErrNoEntries
	}
	for _, e := range arg.Entries {
		if e.Path == "" {
			return nil, ErrMissingPath
		}
	}

	c.logger.Debug().Int("entries", len(arg.Entries)).Msg("Launching delete batch")

	var res DeleteBatchLaunch
	if err := c.dbx.RPC(ctx, "files/delete_batch", arg, &res); err != nil {
		return nil, fmt.Errorf("delete batch failed: %w", err)
	}
	return &res, nil
}

// DeleteBatchCheck reports the status of a batch delete job.
func (c *Client) DeleteBatchCheck(ctx context.Context, arg async.PollArg) (*DeleteBatchJobStatus, error) {
	if arg.AsyncJobID == "" {
		return nil, async.ErrMissingJobID
	}

	var res DeleteBatchJobStatus
	if err := c.dbx.RPC(ctx, "files/delete_batch/check", arg, &res); err != nil {
		return nil, fmt.Errorf("delete batch check failed: %w", err)
	}
	return &res, nil
}
