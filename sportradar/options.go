package sportradar

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "sportradar-sdk-go"
)

// Option configures a client.
type Option func(*clientOptions)

// clientOptions holds configuration options shared by every sport client.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	baseURL    string
	logger     zerolog.Logger
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
}

// WithHTTPClient sets the HTTP client requests are sent with. Its transport is
// wrapped, not replaced, so the api_key parameter is still injected.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the timeout for buffered requests. Streams never time out.
// A client passed to WithHTTPClient keeps its own Timeout unless that is zero.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithBaseURL overrides the sport base URL, e.g. to target a proxy.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
