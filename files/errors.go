package files

import "errors"

// Validation errors returned before any request is made.
var (
	// ErrMissingPath is returned when a required path parameter is empty.
	ErrMissingPath = errors.New("path is required")

	// ErrMissingCursor is returned when a continue or longpoll call is made
	// without a cursor.
	ErrMissingCursor = errors.New("cursor is required")

	// ErrMissingSessionID is returned when an upload-session call is made
	// without a session id.
	ErrMissingSessionID = errors.New("upload session id is required")

	// ErrNoEntries is returned when a batch call is made with no entries.
	ErrNoEntries = errors.New("at least one entry is required")

	// ErrMissingQuery is returned when a search call is made without a query.
	ErrMissingQuery = errors.New("search query is required")

	// ErrMissingTagText is returned when a tag call is made without tag text.
	ErrMissingTagText = errors.New("tag text is required")
)
