package dropbox

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout     time.Duration
	httpClient  *http.Client
	apiHost     string
	contentHost string
	notifyHost  string
	userAgent   string
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:     30 * time.Second,
		apiHost:     defaultAPIHost,
		contentHost: defaultContentHost,
		notifyHost:  defaultNotifyHost,
		userAgent:   defaultUserAgent,
	}
}

// WithTimeout sets the HTTP client timeout for api and content host calls.
// Longpoll calls keep their own, longer ceiling.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the default HTTP client for api and content host
// calls. Cancellation and timeout behavior of the supplied client is used
// as-is.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithAPIHost overrides the api host base URL. Intended for tests.
func WithAPIHost(url string) Option {
	return func(o *clientOptions) {
		o.apiHost = url
	}
}

// WithContentHost overrides the content host base URL. Intended for tests.
func WithContentHost(url string) Option {
	return func(o *clientOptions) {
		o.contentHost = url
	}
}

// WithNotifyHost overrides the notify host base URL. Intended for tests.
func WithNotifyHost(url string) Option {
	return func(o *clientOptions) {
		o.notifyHost = url
	}
}
