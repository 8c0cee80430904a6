package files

import (
	"context"
	"fmt"
	"io"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// DownloadArg are the parameters for download.
type DownloadArg struct {
	Path string `json:"path"`
	Rev  string `json:"rev,omitempty"`
}

// Upload uploads the content as a single request and commits it at the
// given path. Dropbox caps single-request uploads at 150 MB; anything
// larger must go through an upload session, and slicing is the caller's
// responsibility either way.
func (c *Client) Upload(ctx context.Context, arg CommitInfo, content io.Reader) (*Metadata, error) {
	if arg.Path == "" {
		return nil, ErrMissingPath
	}

	c.logger.Debug().Str("path", arg.Path).Msg("Uploading file")

	var res Metadata
	if err := c.dbx.Upload(ctx, dropbox.HostContent, "files/upload", arg, content, &res); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	return &res, nil
}

// Download downloads a file. The metadata comes from the
// Dropbox-API-Result header; the returned ReadCloser is the file content
// and is owned by the caller.
func (c *Client) Download(ctx context.Context, arg DownloadArg) (*Metadata, io.ReadCloser, error) {
	if arg.Path == "" {
		return nil, nil, ErrMissingPath
	}

	c.logger.Debug().Str("path", arg.Path).Msg("Downloading file")

	var res Metadata
	body, err := c.dbx.Download(ctx, dropbox.HostContent, "files/download", arg, &res)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}
	return &res, body, nil
}
