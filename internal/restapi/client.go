package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/five82/roster/internal/employee"
)

// Service is the set of remote calls the rest of the application makes.
// *Client implements it; tests substitute fakes.
type Service interface {
	List(ctx context.Context) ([]employee.Record, error)
	Create(ctx context.Context, r employee.Record) error
	Update(ctx context.Context, id int64, r employee.Record) error
	Delete(ctx context.Context, id int64) error
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the employee REST API. It holds no record state.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "http://dummy.restapiexample.com/api/v1/"
	defaultUserAgent = "roster/0.1"
	defaultTimeout   = 5 * time.Second
	maxResponseBytes = 8 << 20
)

// NewClient builds a Client for baseURL. A zero timeout uses 5s.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// List fetches every employee.
func (c *Client) List(ctx context.Context) ([]employee.Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := c.do(ctx, "list", http.MethodGet, "employees", nil)
	if err != nil {
		return nil, err
	}
	records, err := decodeRecords(body)
	if err != nil {
		return nil, &CallError{Op: "list", Method: http.MethodGet, Path: "employees", Err: fmt.Errorf("decode response: %w", err)}
	}
	return records, nil
}

// Create posts a new employee. The response body is informational and
// ignored.
func (c *Client) Create(ctx context.Context, r employee.Record) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	_, err := c.do(ctx, "create", http.MethodPost, "create", newRecordPayload(r))
	return err
}

// Update replaces the employee stored under id.
func (c *Client) Update(ctx context.Context, id int64, r employee.Record) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	_, err := c.do(ctx, "update", http.MethodPut, "update/"+strconv.FormatInt(id, 10), newRecordPayload(r))
	return err
}

// Delete removes the employee stored under id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	_, err := c.do(ctx, "delete", http.MethodDelete, "delete/"+strconv.FormatInt(id, 10), nil)
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	fail := func(status int, err error) error {
		return &CallError{Op: op, Method: method, Path: path, StatusCode: status, Err: err}
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fail(0, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fail(0, fmt.Errorf("create request: %w", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	glog.V(2).Infof("[api] %s %s request_id=%s", method, reqURL.Path, requestID)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fail(0, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fail(resp.StatusCode, fmt.Errorf("api %s returned status %d", path, resp.StatusCode))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}
	glog.V(2).Infof("[api] %s %s request_id=%s status=%d bytes=%d", method, reqURL.Path, requestID, resp.StatusCode, len(data))
	return data, nil
}

// parseBaseURL normalizes the configured API root. The path is kept and
// always ends in "/" so relative endpoint paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
