package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stpnv0/Activities/internal/domain"
)

// Client calls the activities API. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for baseURL. A zero timeout leaves request deadlines
// to the caller's context and the transport.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type mutationResponse struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

func (c *Client) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/activities")
	if err != nil {
		return domain.Catalog{}, err
	}

	if !isSuccess(status) {
		return domain.Catalog{}, &APIError{StatusCode: status, Detail: detailOf(body)}
	}

	var catalog domain.Catalog
	if err = json.Unmarshal(body, &catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	return catalog, nil
}

func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	return c.mutate(ctx, activity, "signup", email)
}

func (c *Client) Unregister(ctx context.Context, activity, email string) (string, error) {
	return c.mutate(ctx, activity, "unregister", email)
}

// Ping checks that the API answers on /health.
func (c *Client) Ping(ctx context.Context) error {
	_, status, err := c.do(ctx, http.MethodGet, "/health")
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &APIError{StatusCode: status}
	}
	return nil
}

func (c *Client) mutate(ctx context.Context, activity, action, email string) (string, error) {
	path := "/activities/" + url.PathEscape(activity) + "/" + action + "?email=" + url.QueryEscape(email)

	body, status, err := c.do(ctx, http.MethodPost, path)
	if err != nil {
		return "", err
	}

	var resp mutationResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode %s response: %w", action, err)
	}

	if !isSuccess(status) {
		return "", &APIError{StatusCode: status, Detail: stringDetail(resp.Detail)}
	}

	return resp.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func detailOf(body []byte) string {
	var resp mutationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return stringDetail(resp.Detail)
}

// stringDetail ignores non-string details such as validation error lists.
func stringDetail(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
