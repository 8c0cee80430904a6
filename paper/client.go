package paper

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/s0up4200/dropboxkit/dropbox"
)

// Validation errors returned before any request is made.
var (
	// ErrMissingDocID is returned when a call is made without a doc id.
	ErrMissingDocID = errors.New("paper doc id is required")

	// ErrMissingCursor is returned when a continue call is made without a
	// cursor.
	ErrMissingCursor = errors.New("cursor is required")
)

// Client exposes the paper namespace of the Dropbox v2 API. The paper
// upload and download style routes live on the api host, unlike the files
// namespace.
type Client struct {
	dbx    *dropbox.Client
	logger zerolog.Logger
}

// NewClient creates a paper namespace client on top of the core client.
func NewClient(dbx *dropbox.Client, logger zerolog.Logger) *Client {
	return &Client{
		dbx:    dbx,
		logger: logger,
	}
}

// Create creates a new Paper doc from the content in the given import
// format.
func (c *Client) Create(ctx context.Context, arg CreateArg, content io.Reader) (*DocResult, error) {
	if arg.ImportFormat == "" {
		arg.ImportFormat = ImportFormatMarkdown
	}

	c.logger.Debug().
		Str("format", string(arg.ImportFormat)).
		Msg("Creating paper doc")

	var res DocResult
	if err := c.dbx.Upload(ctx, dropbox.HostAPI, "paper/docs/create", arg, content, &res); err != nil {
		return nil, fmt.Errorf("paper create failed: %w", err)
	}
	return &res, nil
}

// Update edits an existing Paper doc with the content, applied per the
// update policy against the given revision.
func (c *Client) Update(ctx context.Context, arg UpdateArg, content io.Reader) (*DocResult, error) {
	if arg.DocID == "" {
		return nil, ErrMissingDocID
	}
	if arg.DocUpdatePolicy == "" {
		arg.DocUpdatePolicy = DocUpdatePolicyAppend
	}
	if arg.ImportFormat == "" {
		arg.ImportFormat = ImportFormatMarkdown
	}

	c.logger.Debug().
		Str("doc_id", arg.DocID).
		Int64("revision", arg.Revision).
		Msg("Updating paper doc")

	var res DocResult
	if err := c.dbx.Upload(ctx, dropbox.HostAPI, "paper/docs/update", arg, content, &res); err != nil {
		return nil, fmt.Errorf("paper update failed: %w", err)
	}
	return &res, nil
}

// Download exports a Paper doc in the given format. The metadata comes
// from the Dropbox-API-Result header; the returned ReadCloser is the
// exported bytes and is owned by the caller.
func (c *Client) Download(ctx context.Context, arg DownloadArg) (*DownloadResult, io.ReadCloser, error) {
	if arg.DocID == "" {
		return nil, nil, ErrMissingDocID
	}
	if arg.ExportFormat == "" {
		arg.ExportFormat = ExportFormatMarkdown
	}

	c.logger.Debug().Str("doc_id", arg.DocID).Msg("Downloading paper doc")

	var res DownloadResult
	body, err := c.dbx.Download(ctx, dropbox.HostAPI, "paper/docs/download", arg, &res)
	if err != nil {
		return nil, nil, fmt.Errorf("paper download failed: %w", err)
	}
	return &res, body, nil
}

// List returns the first page of Paper docs accessible to the account.
func (c *Client) List(ctx context.Context, arg ListArg) (*ListResult, error) {
	var res ListResult
	if err := c.dbx.RPC(ctx, "paper/docs/list", arg, &res); err != nil {
		return nil, fmt.Errorf("paper list failed: %w", err)
	}
	return &res, nil
}

// ListContinue returns the next page for a cursor from a previous List
// call.
func (c *Client) ListContinue(ctx context.Context, arg ListContinueArg) (*ListResult, error) {
	if arg.Cursor == "" {
		return nil, ErrMissingCursor
	}

	var res ListResult
	if err := c.dbx.RPC(ctx, "paper/docs/list/continue", arg, &res); err != nil {
		return nil, fmt.Errorf("paper list continue failed: %w", err)
	}
	return &res, nil
}

// PermanentlyDelete deletes a Paper doc without moving it to the trash.
func (c *Client) PermanentlyDelete(ctx context.Context, arg RefArg) error {
	if arg.DocID == "" {
		return ErrMissingDocID
	}

	c.logger.Debug().Str("doc_id", arg.DocID).Msg("Permanently deleting paper doc")

	if err := c.dbx.RPC(ctx, "paper/docs/permanently_delete", arg, nil); err != nil {
		return fmt.Errorf("paper permanently delete failed: %w", err)
	}
	return nil
}
