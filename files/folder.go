package files

import (
	"context"
	"fmt"

	"github.com/s0up4200/dropboxkit/async"
)

// CreateFolder creates a folder at the given path.
func (c *Client) CreateFolder(ctx context.Context, arg CreateFolderArg) (*CreateFolderResult, error) {
	if arg.Path == "" {
		return nil, ErrMissingPath
	}

	c.logger.Debug().Str("path", arg.Path).Msg("Creating folder")

	var res CreateFolderResult
	if err := c.dbx.RPC(ctx, "files/create_folder_v2", arg, &res); err != nil {
		return nil, fmt.Errorf("create folder failed: %w", err)
	}
	return &res, nil
}

// CreateFolderBatch launches a batch folder creation.
func (c *Client) CreateFolderBatch(ctx context.Context, arg CreateFolderBatchArg) (*CreateFolderBatchLaunch, error) {
	if len(arg.Paths) == 0 {
		return nil, ErrNoEntries
	}
	for _, p := range arg.Paths {
		if p == "" {
			return nil, ErrMissingPath
		}
	}

	c.logger.Debug().Int("paths", len(arg.Paths)).Msg("Launching create folder batch")

	var res CreateFolderBatchLaunch
	if err := c.dbx.RPC(ctx, "files/create_folder_batch", arg, &res); err != nil {
		return nil, fmt.Errorf("create folder batch failed: %w", err)
	}
	return &res, nil
}

// CreateFolderBatchCheck reports the status of a batch folder-creation job.
func (c *Client) CreateFolderBatchCheck(ctx context.Context, arg async.PollArg) (*CreateFolderBatchJobStatus, error) {
	if arg.AsyncJobID == "" {
		return nil, async.ErrMissingJobID
	}

	var res CreateFolderBatchJobStatus
	if err := c.dbx.RPC(ctx, "files/create_folder_batch/check", arg, &res); err != nil {
		return nil, fmt.Errorf("create folder batch check failed: %w", err)
	}
	return &res, nil
}

// GetMetadata returns the metadata for a file or folder. The root folder is
// not a valid argument.
func (c *Client) GetMetadata(ctx context.Context, arg GetMetadataArg) (*Metadata, error) {
	if arg.Path == "" {
		return nil, ErrMissingPath
	}

	var res Metadata
	if err := c.dbx.RPC(ctx, "files/get_metadata", arg, &res); err != nil {
		return nil, fmt.Errorf("get metadata failed: %w", err)
	}
	return &res, nil
}
