package sportradar

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
)

// recordingTransport answers every request with a fixed response and keeps
// the requests it saw.
type recordingTransport struct {
	mu       sync.Mutex
	requests []*http.Request
	status   int
	body     string
}

func newRecordingTransport(status int, body string) *recordingTransport {
	return &recordingTransport{status: status, body: body}
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.mu.Unlock()

	return &http.Response{
		StatusCode: t.status,
		Status:     http.StatusText(t.status),
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(t.body)),
		Request:    req,
	}, nil
}

func (t *recordingTransport) calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

func (t *recordingTransport) last() *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

func (t *recordingTransport) client() *http.Client {
	return &http.Client{Transport: t}
}

// failingTransport fails every request with an error that quotes the full
// request URL, the way retrying transports report giving up.
type failingTransport struct{}

func (failingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("failed for " + req.URL.String())}
}
