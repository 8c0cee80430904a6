package dropbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Common errors returned by the core client.
var (
	// ErrMissingToken is returned when a client is constructed without a token.
	ErrMissingToken = errors.New("dropbox access token is required")
)

// APIError is the failure half of the response envelope: any non-200
// response from Dropbox, carrying the parsed error body. The library never
// classifies, retries, or suppresses these; the helpers below exist for
// callers that want to.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int
	// Summary is the error_summary field of the error body, or the body
	// text itself when the response was not JSON (400 bad input errors
	// come back as text/plain).
	Summary string
	// UserMessage is the optional human-readable message Dropbox attaches
	// to some errors.
	UserMessage string
	// RetryAfterSec is the Retry-After header value on 429 responses.
	RetryAfterSec int
	// RawBody is the undecoded response body.
	RawBody []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("dropbox API error: status %d: %s", e.StatusCode, e.Summary)
}

// Tag returns the first segment of the error summary, which is the top-level
// .tag of the endpoint error union (e.g. "path" from "path/not_found/..").
func (e *APIError) Tag() string {
	tag, _, _ := strings.Cut(e.Summary, "/")
	return tag
}

// IsConflict reports whether the response was a 409, the status Dropbox
// uses for endpoint-specific errors.
func (e *APIError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

// IsUnauthorized reports whether the token was rejected.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether the error summary names a missing path.
func (e *APIError) IsNotFound() bool {
	return strings.Contains(e.Summary, "not_found")
}

// IsRateLimited reports whether the response was a 429.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// wireError is the JSON error body shape shared by every endpoint.
type wireError struct {
	ErrorSummary string `json:"error_summary"`
	UserMessage  string `json:"user_message"`
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RawBody:    body,
	}

	var we wireError
	if err := json.Unmarshal(body, &we); err == nil && we.ErrorSummary != "" {
		apiErr.Summary = we.ErrorSummary
		apiErr.UserMessage = we.UserMessage
	} else {
		apiErr.Summary = strings.TrimSpace(string(body))
	}

	if v := resp.Header.Get("Retry-After"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			apiErr.RetryAfterSec = sec
		}
	}

	return apiErr
}
