package api

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

	"github.com/google/uuid"

	"github.com/moneytrack/moneytrack/internal/client/models"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// HTTPClient talks JSON over HTTP to the backend. A zero timeout means the
// client waits until the transport resolves or fails; no retries are
// attempted at this layer.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient constructs an HTTPClient for the given base URL
// (e.g. "http://127.0.0.1:5000"). timeout may be 0 for no limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.postJSON(ctx, "/api/auth/signin", "", signInRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, name, email, password string) (string, error) {
	var resp tokenResponse
	err := c.postJSON(ctx, "/api/auth/signup", "", signUpRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (models.Profile, error) {
	var profile models.Profile
	if err := c.getJSON(ctx, "/api/auth/me", nil, token, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (c *HTTPClient) AddTransaction(ctx context.Context, token string, tx models.NewTransaction) error {
	return c.postJSON(ctx, "/api/transactions", token, tx, nil)
}

func (c *HTTPClient) Transactions(ctx context.Context, token string, f models.TransactionFilter) (models.Report, error) {
	q := url.Values{}
	if f.Period != "" {
		q.Set("period", f.Period)
	}
	if f.DateRange != "" {
		q.Set("dateRange", f.DateRange)
	}
	if f.Month != "" {
		q.Set("month", f.Month)
	}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	if f.Tag != "" {
		q.Set("tag", f.Tag)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}

	var report models.Report
	if err := c.getJSON(ctx, "/api/transactions", q, token, &report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// postJSON issues a single POST with the given body. One request per call,
// no retries.
func (c *HTTPClient) postJSON(ctx context.Context, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req, token)

	return c.do(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, token string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setCommonHeaders(req, token)

	return c.do(req, out)
}

func (c *HTTPClient) setCommonHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %s", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.Unmarshal(data, &er)
		return newError(resp.StatusCode, er.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)
