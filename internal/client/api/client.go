package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/feedlink/feedlink-go/internal/logging"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
)

// TokenSource yields the stored bearer token, empty when unauthenticated.
// The session store satisfies it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Request describes one API call.
type Request struct {
	Method string
	// Path is joined to the configured base URL unless it is already an
	// absolute URL.
	Path string
	// Body is JSON-encoded when non-nil. Ignored when Form is set.
	Body any
	// Form, when set, is sent as multipart/form-data with the form's own
	// content type (the default JSON content type is dropped).
	Form        *Form
	IncludeAuth bool
	// SuppressNotify skips the error notification side effect, for calls
	// whose failure is expected and handled by the caller.
	SuppressNotify bool
	// Timeout overrides the client default when positive.
	Timeout time.Duration
}

// Option tweaks a convenience-method request.
type Option func(*Request)

// WithoutAuth omits the Authorization header even when a token is stored.
func WithoutAuth() Option {
	return func(r *Request) { r.IncludeAuth = false }
}

// WithTimeout overrides the default per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(r *Request) { r.Timeout = d }
}

// Quiet suppresses the error notification side effect for this call.
func Quiet() Option {
	return func(r *Request) { r.SuppressNotify = true }
}

// Client dispatches requests against the FeedLink backend.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	tokens  TokenSource
	sink    NotificationSink
	log     logging.Logger
}

// New builds a Client. The sink may be NopSink{} when no UI surface exists.
func New(baseURL string, timeout time.Duration, tokens TokenSource, sink NotificationSink, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    cleanhttp.DefaultPooledClient(),
		tokens:  tokens,
		sink:    sink,
		log:     log,
	}
}

// Dispatch performs one call and normalizes its outcome. On any failure the
// returned error is an *Error carrying the taxonomy described in the
// package comment.
func (c *Client) Dispatch(ctx context.Context, req Request) (*Result, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http") {
		fullURL = c.baseURL + fullURL
	}

	var body io.Reader
	if req.Form != nil {
		body = req.Form.Reader()
		if err := req.Form.Err(); err != nil {
			return nil, fmt.Errorf("encode form: %w", err)
		}
	} else if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Form != nil {
		// let the multipart boundary win over the JSON default
		httpReq.Header.Set("Content-Type", req.Form.ContentType())
	} else {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	if req.IncludeAuth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "token lookup failed, sending unauthenticated", "error", err)
		} else if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug(ctx, "dispatching request", "method", req.Method, "url", fullURL)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, c.fail(ctx, req, localFailure(ctx, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// the deadline can also fire mid-body
		return nil, c.fail(ctx, req, localFailure(ctx, err))
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode, Message: errorMessage(isJSON, raw, resp.StatusCode)}
		if isJSON {
			apiErr.Details = json.RawMessage(raw)
		}
		return nil, c.fail(ctx, req, apiErr)
	}

	result := &Result{Status: resp.StatusCode, IsJSON: isJSON}
	if isJSON {
		result.Data = json.RawMessage(raw)
	} else {
		result.Text = string(raw)
	}
	return result, nil
}

// Get issues an authenticated GET against path.
func (c *Client) Get(ctx context.Context, path string, opts ...Option) (*Result, error) {
	return c.Dispatch(ctx, build(http.MethodGet, path, nil, nil, opts))
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...Option) (*Result, error) {
	return c.Dispatch(ctx, build(http.MethodPost, path, body, nil, opts))
}

// Put issues an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...Option) (*Result, error) {
	return c.Dispatch(ctx, build(http.MethodPut, path, body, nil, opts))
}

// Delete issues an authenticated DELETE against path.
func (c *Client) Delete(ctx context.Context, path string, opts ...Option) (*Result, error) {
	return c.Dispatch(ctx, build(http.MethodDelete, path, nil, nil, opts))
}

// PostMultipart issues an authenticated POST with a multipart form body,
// for file-upload endpoints.
func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, opts ...Option) (*Result, error) {
	return c.Dispatch(ctx, build(http.MethodPost, path, nil, form, opts))
}

// Notify forwards a message to the configured sink, for success toasts
// owned by callers.
func (c *Client) Notify(message string, kind NotificationKind) {
	if c.sink != nil {
		c.sink.Notify(message, kind)
	}
}

func build(method, path string, body any, form *Form, opts []Option) Request {
	req := Request{Method: method, Path: path, Body: body, Form: form, IncludeAuth: true}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

func (c *Client) fail(ctx context.Context, req Request, apiErr *Error) *Error {
	c.log.Debug(ctx, "request failed", "method", req.Method, "path", req.Path,
		"status", apiErr.Status, "message", apiErr.Message)
	if !req.SuppressNotify && c.sink != nil {
		c.sink.Notify(apiErr.Message, NotifyError)
	}
	return apiErr
}

func localFailure(ctx context.Context, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Status: http.StatusRequestTimeout, Message: TimeoutMessage}
	}
	return &Error{Status: 0, Message: NetworkMessage}
}

func errorMessage(isJSON bool, raw []byte, status int) string {
	if isJSON {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}
