// Package statusapi wraps the remote status-check service used as the contact
// form backend. The client is stateless; every method issues exactly one
// outbound request and reports failures as either a NetworkError (no response)
// or a ServerError (non-2xx response).
package statusapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "https://vivek-portfolio-api.onrender.com/api"

// ContactPayload is the contact form submission body.
type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Receipt is a server-acknowledged submission. The service's response shape is
// treated as opaque JSON; ID is extracted when present.
type Receipt struct {
	ID  string
	Raw json.RawMessage
}

// NetworkError means no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError means the service answered with a non-2xx status. Detail carries
// the "detail" field of the JSON error body when the service provides one.
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server error: %d", e.StatusCode)
}

// Client talks to one status-check service. It holds no session state and is
// safe for concurrent use.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// New builds a client for the given base URL, falling back to DefaultBaseURL
// when empty. Retries are disabled: the contact form contract is exactly one
// outbound call per submit.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = stdlog.New(io.Discard, "", 0)
	retryClient.RetryMax = 0
	retryClient.HTTPClient.Timeout = 30 * time.Second

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    retryClient,
	}
}

// BaseURL returns the configured endpoint address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitContact posts one contact form submission to POST {base}/status.
func (c *Client) SubmitContact(ctx context.Context, payload ContactPayload) (*Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	respBody, err := c.do(ctx, http.MethodPost, c.baseURL+"/status", body)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		ID:  gjson.GetBytes(respBody, "id").String(),
		Raw: respBody,
	}, nil
}

// FetchContacts retrieves prior submissions from GET {base}/status as raw
// JSON array elements.
func (c *Client) FetchContacts(ctx context.Context) ([]json.RawMessage, error) {
	respBody, err := c.do(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(respBody)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a JSON array, got: %.80s", string(respBody))
	}

	var records []json.RawMessage
	for _, item := range parsed.Array() {
		records = append(records, json.RawMessage(item.Raw))
	}
	return records, nil
}

// HealthCheck probes GET {base}/ and returns the service's message field, if
// any.
func (c *Client) HealthCheck(ctx context.Context) (string, error) {
	respBody, err := c.do(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(respBody, "message").String(), nil
}

// do performs one request and applies the shared error taxonomy.
func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Detail:     gjson.GetBytes(respBody, "detail").String(),
		}
	}

	return respBody, nil
}
