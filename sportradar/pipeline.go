package sportradar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

// APIKeyParam is the query parameter that carries the account API key.
const APIKeyParam = "api_key"

const (
	maskStart = 2
	maskLen   = 5
	maskChar  = '*'
)

// Document is a decoded JSON response body, returned exactly as the API sent it.
type Document map[string]any

// Decode copies the document into v, typically a struct describing the
// subset of the response the caller cares about.
func (d Document) Decode(v any) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// ClientConfig is the immutable configuration of a RequestPipeline.
type ClientConfig struct {
	APIKey  string
	BaseURL string
}

// RequestPipeline issues authenticated GET requests against a single base URL.
// It is safe for concurrent use.
type RequestPipeline struct {
	baseURL      string
	apiKey       string
	userAgent    string
	httpClient   *http.Client
	streamClient *http.Client
	logger       zerolog.Logger
}

// NewRequestPipeline creates a pipeline for cfg.BaseURL. The HTTP transport is
// wrapped so every request carries cfg.APIKey as the api_key query parameter.
func NewRequestPipeline(cfg ClientConfig, opts ...Option) (*RequestPipeline, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("sportradar base URL is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newRequestPipeline(cfg, o), nil
}

func newRequestPipeline(cfg ClientConfig, o clientOptions) *RequestPipeline {
	var base http.Client
	if o.httpClient != nil {
		base = *o.httpClient
	}
	if base.Timeout == 0 {
		base.Timeout = o.timeout
	}
	transport := base.Transport
	if transport == nil {
		transport = cleanhttp.DefaultPooledTransport()
	}
	base.Transport = &apiKeyTransport{base: transport, apiKey: cfg.APIKey}

	buffered := base
	stream := base
	stream.Timeout = 0

	return &RequestPipeline{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		userAgent:    o.userAgent,
		httpClient:   &buffered,
		streamClient: &stream,
		logger:       o.logger,
	}
}

// BaseURL returns the URL every request path is appended to.
func (p *RequestPipeline) BaseURL() string {
	return p.baseURL
}

// Get performs one GET request and decodes the JSON body.
func (p *RequestPipeline) Get(ctx context.Context, path string, query url.Values) (Document, error) {
	resp, err := p.do(ctx, p.httpClient, path, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return doc, nil
}

// Stream performs one GET request and returns the open response body. The
// caller must close it; cancelling ctx also ends the stream.
func (p *RequestPipeline) Stream(ctx context.Context, path string, query url.Values) (io.ReadCloser, error) {
	resp, err := p.do(ctx, p.streamClient, path, query)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// do sends the request and routes every failure through onRequestError. On
// success the caller owns resp.Body.
func (p *RequestPipeline) do(ctx context.Context, client *http.Client, path string, query url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	p.logger.Debug().
		Str("method", req.Method).
		Str("path", path).
		Str("query", p.redact(req.URL.Query()).Encode()).
		Msg("Making Sportradar API request")

	resp, err := client.Do(req)
	if err != nil {
		return nil, p.onRequestError(req, nil, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, p.onRequestError(req, resp, body, nil)
	}

	return resp, nil
}

// onRequestError builds the error returned to callers: the original failure
// with the request query copied and its api_key masked.
func (p *RequestPipeline) onRequestError(req *http.Request, resp *http.Response, body []byte, cause error) error {
	sent := req
	if resp != nil && resp.Request != nil {
		sent = resp.Request
	}
	params := p.redact(sent.URL.Query())
	if cause != nil {
		cause = &redactedError{err: cause, apiKey: p.apiKey}
	}

	redactedURL := *sent.URL
	redactedURL.RawQuery = params.Encode()

	reqErr := &RequestError{
		Method: req.Method,
		Path:   req.URL.Path,
		URL:    redactedURL.String(),
		Params: params,
		Err:    cause,
	}
	if resp != nil {
		reqErr.StatusCode = resp.StatusCode
		reqErr.Status = resp.Status
		reqErr.Body = string(body)
	}

	p.logger.Debug().
		Int("status", reqErr.StatusCode).
		Str("url", reqErr.URL).
		Err(cause).
		Msg("Sportradar API request failed")

	return reqErr
}

// redact returns a copy of q carrying the masked API key. The key is always
// present because the transport adds it to every request.
func (p *RequestPipeline) redact(q url.Values) url.Values {
	out := make(url.Values, len(q)+1)
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	key := out.Get(APIKeyParam)
	if key == "" {
		key = p.apiKey
	}
	out.Set(APIKeyParam, MaskAPIKey(key))
	return out
}

// MaskAPIKey replaces the characters at positions 2 through 6 with '*'.
// Shorter keys are masked only where characters exist; the length never changes.
func MaskAPIKey(key string) string {
	runes := []rune(key)
	for i := maskStart; i < maskStart+maskLen && i < len(runes); i++ {
		runes[i] = maskChar
	}
	return string(runes)
}

// apiKeyTransport sets api_key on every outgoing request.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	q := out.URL.Query()
	q.Set(APIKeyParam, t.apiKey)
	out.URL.RawQuery = q.Encode()
	return t.base.RoundTrip(out)
}

// redactedError masks the API key wherever the wrapped error prints it.
// Inner transports may embed the request URL, key included, in their errors.
type redactedError struct {
	err    error
	apiKey string
}

func (e *redactedError) Error() string {
	msg := e.err.Error()
	masked := MaskAPIKey(e.apiKey)
	msg = strings.ReplaceAll(msg, e.apiKey, masked)
	if escaped := url.QueryEscape(e.apiKey); escaped != e.apiKey {
		msg = strings.ReplaceAll(msg, escaped, url.QueryEscape(masked))
	}
	return msg
}

func (e *redactedError) Unwrap() error {
	return e.err
}
