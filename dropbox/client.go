package dropbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/rs/zerolog"
)

// Default Dropbox v2 hosts. RPC routes live on the api host, upload and
// download style routes on the content host, and the unauthenticated
// longpoll route on the notify host.
const (
	defaultAPIHost     = "https://api.dropboxapi.com"
	defaultContentHost = "https://content.dropboxapi.com"
	defaultNotifyHost  = "https://notify.dropboxapi.com"
)

const defaultUserAgent = "dropboxkit/1.0"

// Longpoll requests block server-side for up to the caller-supplied timeout
// plus up to 90 seconds of jitter, so the notify client gets its own ceiling
// instead of the regular request timeout.
const longpollClientTimeout = 510 * time.Second

// Host selects which Dropbox host a content-style call goes to. The files
// namespace uploads to the content host; the paper namespace uses
// upload/download style routes that live on the api host.
type Host int

const (
	HostAPI Host = iota
	HostContent
)

// Client holds the bearer token and the HTTP plumbing shared by every
// namespace client. The token is immutable after construction and the
// client is safe for concurrent use.
type Client struct {
	token       string
	httpClient  *http.Client
	pollClient  *http.Client
	logger      zerolog.Logger
	apiHost     string
	contentHost string
	notifyHost  string
	userAgent   string
}

// NewClient creates a core client for the given bearer token. The token is
// sent as an Authorization header on every request except longpolls; it is
// never validated, refreshed, or persisted by this library.
func NewClient(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		token:       token,
		httpClient:  httpClient,
		pollClient:  &http.Client{Timeout: longpollClientTimeout},
		logger:      logger,
		apiHost:     strings.TrimRight(o.apiHost, "/"),
		contentHost: strings.TrimRight(o.contentHost, "/"),
		notifyHost:  strings.TrimRight(o.notifyHost, "/"),
		userAgent:   o.userAgent,
	}, nil
}

// RPC issues a metadata-style call against the api host: JSON body in,
// JSON body out. A nil arg is sent as the JSON literal null, which is what
// no-argument routes such as users/get_current_account expect. When res is
// non-nil a 200 body is decoded into it.
func (c *Client) RPC(ctx context.Context, route string, arg, res any) error {
	body, err := json.Marshal(arg)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiHost+"/2/"+route, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("route", route).Msg("Dropbox RPC request")

	return c.do(c.httpClient, req, route, res)
}

// Upload issues an upload-style call: the JSON arg travels in the
// Dropbox-API-Arg header and the raw content in the request body. content
// may be nil for routes that accept an empty body.
func (c *Client) Upload(ctx context.Context, host Host, route string, arg any, content io.Reader, res any) error {
	apiArg, err := apiArgHeader(arg)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	if content == nil {
		content = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.hostURL(host)+"/2/"+route, content)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Dropbox-API-Arg", apiArg)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("route", route).Msg("Dropbox upload request")

	return c.do(c.httpClient, req, route, res)
}

// Download issues a download-style call: the JSON arg travels in the
// Dropbox-API-Arg header, the JSON result comes back in the
// Dropbox-API-Result response header, and the payload is the response body.
// The caller owns the returned ReadCloser.
func (c *Client) Download(ctx context.Context, host Host, route string, arg, res any) (io.ReadCloser, error) {
	apiArg, err := apiArgHeader(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.hostURL(host)+"/2/"+route, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Dropbox-API-Arg", apiArg)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("route", route).Msg("Dropbox download request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		return nil, newAPIError(resp, body)
	}

	if res != nil {
		result := resp.Header.Get("Dropbox-API-Result")
		if err := json.Unmarshal([]byte(result), res); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to decode %s result header: %w", route, err)
		}
	}

	return resp.Body, nil
}

// Notify issues a call against the notify host. Longpoll routes reject the
// Authorization header, so none is sent, and the call may block for the
// caller-supplied timeout plus server-side jitter.
func (c *Client) Notify(ctx context.Context, route string, arg, res any) error {
	body, err := json.Marshal(arg)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.notifyHost+"/2/"+route, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("route", route).Msg("Dropbox notify request")

	return c.do(c.pollClient, req, route, res)
}

// do runs the request and classifies the response by status code: 200
// decodes into res, anything else becomes an *APIError around the decoded
// error body. Transport failures are returned wrapped, untouched.
func (c *Client) do(httpClient *http.Client, req *http.Request, route string, res any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("route", route).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Dropbox response")

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp, body)
	}

	if res == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, res); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", route, err)
	}
	return nil
}

func (c *Client) hostURL(host Host) string {
	if host == HostContent {
		return c.contentHost
	}
	return c.apiHost
}

// apiArgHeader serializes arg for the Dropbox-API-Arg header. HTTP headers
// must stay 7-bit safe, so every rune outside printable ASCII is escaped to
// its \uXXXX form (surrogate pairs for runes above the BMP).
func apiArgHeader(arg any) (string, error) {
	b, err := json.Marshal(arg)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, r := range string(b) {
		if r >= 0x20 && r <= 0x7e {
			sb.WriteRune(r)
			continue
		}
		for _, u := range utf16.Encode([]rune{r}) {
			fmt.Fprintf(&sb, `\u%04x`, u)
		}
	}
	return sb.String(), nil
}
