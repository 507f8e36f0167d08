package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/dmitrijs2005/gophsession/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBody = 1 << 20

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient creates a client for the API rooted at baseURL. A zero
// timeout falls back to 10 seconds.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) Get(ctx context.Context, path string, opts ...RequestOption) Envelope {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any, opts ...RequestOption) Envelope {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, opts []RequestOption) Envelope {
	o := ResolveOptions(opts...)

	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return errorEnvelope(0, ErrorKindTransport, fmt.Sprintf("invalid path %q: %v", path, err))
	}
	target := c.baseURL.ResolveReference(ref)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errorEnvelope(0, ErrorKindTransport, fmt.Sprintf("encode request body: %v", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return errorEnvelope(0, ErrorKindTransport, fmt.Sprintf("build request: %v", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if o.Bearer != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+o.Bearer)
	}

	log := c.log.With("method", method, "path", target.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "err", err)
		return errorEnvelope(0, ErrorKindTransport, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		log.Warn(ctx, "reading api response failed", "status", resp.StatusCode, "err", err)
		return errorEnvelope(resp.StatusCode, ErrorKindTransport, fmt.Sprintf("read response: %v", err))
	}

	env := normalize(resp.StatusCode, raw)
	log.Debug(ctx, "api request done", "status", env.Status)
	return env
}

// normalize turns an HTTP response into an Envelope. Bodies that already
// look like an envelope are passed through.
func normalize(status int, raw []byte) Envelope {
	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 {
		if status >= 200 && status < 300 {
			return Envelope{Status: status}
		}
		return errorEnvelope(status, ErrorKindHTTP, http.StatusText(status))
	}

	if !json.Valid(raw) {
		if status >= 200 && status < 300 {
			return errorEnvelope(status, ErrorKindDecode, "response is not valid JSON")
		}
		return errorEnvelope(status, ErrorKindHTTP, truncate(string(raw), 200))
	}

	if env, ok := asEnvelope(raw); ok {
		if env.Status == 0 {
			env.Status = status
		}
		return env
	}

	if status >= 200 && status < 300 {
		return Envelope{Status: status, Data: raw}
	}
	return Envelope{Status: status, Error: raw}
}

func asEnvelope(raw []byte) (Envelope, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Envelope{}, false
	}
	if _, ok := probe["status"]; !ok {
		return Envelope{}, false
	}
	_, hasData := probe["data"]
	_, hasErr := probe["error"]
	if !hasData && !hasErr {
		return Envelope{}, false
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, false
	}
	return env, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
