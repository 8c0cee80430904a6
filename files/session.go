package files

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/s0up4200/dropboxkit/async"
	"github.com/s0up4200/dropboxkit/dropbox"
)

// UploadSessionStartArg are the parameters for upload_session/start. Close
// marks the session as done with appends, so only finish may follow.
type UploadSessionStartArg struct {
	Close bool `json:"close,omitempty"`
}

// UploadSessionStartResult carries the server-issued session id that every
// later append and finish call must repeat.
type UploadSessionStartResult struct {
	SessionID string `json:"session_id"`
}

// UploadSessionCursor names the session and the byte offset the next chunk
// starts at. The offset is the caller's bookkeeping; it is sent exactly as
// supplied and the server rejects mismatches with an incorrect_offset error.
type UploadSessionCursor struct {
	SessionID string `json:"session_id"`
	Offset    uint64 `json:"offset"`
}

// UploadSessionAppendArg are the parameters for upload_session/append_v2.
type UploadSessionAppendArg struct {
	Cursor UploadSessionCursor `json:"cursor"`
	Close  bool                `json:"close,omitempty"`
}

// UploadSessionFinishArg are the parameters for upload_session/finish.
type UploadSessionFinishArg struct {
	Cursor UploadSessionCursor `json:"cursor"`
	Commit CommitInfo          `json:"commit"`
}

// UploadSessionFinishBatchArg are the parameters for
// upload_session/finish_batch_v2.
type UploadSessionFinishBatchArg struct {
	Entries []UploadSessionFinishArg `json:"entries"`
}

// UploadSessionFinishBatchResult is the per-entry outcome of a finish
// batch. finish_batch_v2 returns it inline; the legacy check route wraps it
// in a job status.
type UploadSessionFinishBatchResult struct {
	Entries []UploadSessionFinishBatchEntry `json:"entries"`
}

// UploadSessionFinishBatchEntry is the per-entry result union. The success
// variant carries the file metadata fields inline next to the tag, so
// decoding is done by hand.
type UploadSessionFinishBatchEntry struct {
	Tag     string
	File    *Metadata
	Failure json.RawMessage
}

// UnmarshalJSON decodes the union: the failure payload sits in its own
// field, while a success entry is the file metadata itself with a .tag of
// "success" spliced in.
func (e *UploadSessionFinishBatchEntry) UnmarshalJSON(b []byte) error {
	var probe struct {
		Tag     string          `json:".tag"`
		Failure json.RawMessage `json:"failure"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	e.Tag = probe.Tag
	e.Failure = probe.Failure

	if probe.Tag == "success" {
		var md Metadata
		if err := json.Unmarshal(b, &md); err != nil {
			return err
		}
		md.Tag = MetadataFile
		e.File = &md
	}
	return nil
}

// UploadSessionFinishBatchJobStatus is the result of the legacy finish
// batch check call.
type UploadSessionFinishBatchJobStatus struct {
	Tag     string                          `json:".tag"`
	Entries []UploadSessionFinishBatchEntry `json:"entries,omitempty"`
}

// InProgress reports whether the job is still running.
func (s UploadSessionFinishBatchJobStatus) InProgress() bool { return s.Tag == "in_progress" }

// Complete reports whether the job finished.
func (s UploadSessionFinishBatchJobStatus) Complete() bool { return s.Tag == "complete" }

// UploadSessionStart opens an upload session, optionally consuming the
// first chunk of content. content may be nil to open an empty session.
func (c *Client) UploadSessionStart(ctx context.Context, arg UploadSessionStartArg, content io.Reader) (*UploadSessionStartResult, error) {
	c.logger.Debug().Bool("close", arg.Close).Msg("Starting upload session")

	var res UploadSessionStartResult
	if err := c.dbx.Upload(ctx, dropbox.HostContent, "files/upload_session/start", arg, content, &res); err != nil {
		return nil, fmt.Errorf("upload session start failed: %w", err)
	}
	return &res, nil
}

// UploadSessionAppend appends a chunk at the cursor's offset. The session
// id and offset pass through unmodified; there is no client-side
// continuity check.
func (c *Client) UploadSessionAppend(ctx context.Context, arg UploadSessionAppendArg, content io.Reader) error {
	if arg.Cursor.SessionID == "" {
		return ErrMissingSessionID
	}

	c.logger.Debug().
		Str("session_id", arg.Cursor.SessionID).
		Uint64("offset", arg.Cursor.Offset).
		Msg("Appending to upload session")

	if err := c.dbx.Upload(ctx, dropbox.HostContent, "files/upload_session/append_v2", arg, content, nil); err != nil {
		return fmt.Errorf("upload session append failed: %w", err)
	}
	return nil
}

// UploadSessionFinish closes the session and commits the file, optionally
// consuming a final chunk of content.
func (c *Client) UploadSessionFinish(ctx context.Context, arg UploadSessionFinishArg, content io.Reader) (*Metadata, error) {
	if arg.Cursor.SessionID == "" {
		return nil, ErrMissingSessionID
	}
	if arg.Commit.Path == "" {
		return nil, ErrMissingPath
	}

	c.logger.Debug().
		Str("session_id", arg.Cursor.SessionID).
		Uint64("offset", arg.Cursor.Offset).
		Str("path", arg.Commit.Path).
		Msg("Finishing upload session")

	var res Metadata
	if err := c.dbx.Upload(ctx, dropbox.HostContent, "files/upload_session/finish", arg, content, &res); err != nil {
		return nil, fmt.Errorf("upload session finish failed: %w", err)
	}
	return &res, nil
}

// UploadSessionFinishBatch commits several closed sessions in one call.
// Unlike the other batch launches this route always returns the per-entry
// results inline.
func (c *Client) UploadSessionFinishBatch(ctx context.Context, arg UploadSessionFinishBatchArg) (*UploadSessionFinishBatchResult, error) {
	if len(arg.Entries) == 0 {
		return nil, ErrNoEntries
	}
	for _, e := range arg.Entries {
		if e.Cursor.SessionID == "" {
			return nil, ErrMissingSessionID
		}
		if e.Commit.Path == "" {
			return nil, ErrMissingPath
		}
	}

	c.logger.Debug().Int("entries", len(arg.Entries)).Msg("Finishing upload session batch")

	var res UploadSessionFinishBatchResult
	if err := c.dbx.RPC(ctx, "files/upload_session/finish_batch_v2", arg, &res); err != nil {
		return nil, fmt.Errorf("upload session finish batch failed: %w", err)
	}
	return &res, nil
}

// UploadSessionFinishBatchCheck reports the status of a finish batch job
// launched through the legacy v1 route.
func (c *Client) UploadSessionFinishBatchCheck(ctx context.Context, arg async.PollArg) (*UploadSessionFinishBatchJobStatus, error) {
	if arg.AsyncJobID == "" {
		return nil, async.ErrMissingJobID
	}

	var res UploadSessionFinishBatchJobStatus
	if err := c.dbx.RPC(ctx, "files/upload_session/finish_batch/check", arg, &res); err != nil {
		return nil, fmt.Errorf("upload session finish batch check failed: %w", err)
	}
	return &res, nil
}
