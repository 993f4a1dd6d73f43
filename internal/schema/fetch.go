package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultEndpoint is the public API root.
const DefaultEndpoint = "https://api.airtable.com"

// ErrMalformedResponse is returned when a successful response has no tables list.
var ErrMalformedResponse = errors.New("schema: response does not contain a tables list")

// APIError is returned when the remote call does not succeed.
type APIError struct {
	BaseID     string
	StatusCode int
	Body       string
}

// Error returns the error string.
func (e *APIError) Error() string {
	return fmt.Sprintf("schema: fetching base %s: status %d: %s", e.BaseID, e.StatusCode, strings.TrimSpace(e.Body))
}

// Fetcher retrieves the table descriptors of a base.
type Fetcher interface {
	Fetch(ctx context.Context, baseID, apiKey string) ([]Table, error)
}

// Client fetches base schemas over the metadata HTTP API.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given endpoint. An empty endpoint uses
// DefaultEndpoint and a nil httpClient uses http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("parsing endpoint: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: strings.TrimRight(endpoint, "/"), http: httpClient}, nil
}

type tablesResponse struct {
	Tables *[]Table `json:"tables"`
}

// Fetch queries the metadata API and returns all tables of the base in remote order.
func (c *Client) Fetch(ctx context.Context, baseID, apiKey string) ([]Table, error) {
	u := c.endpoint + "/v0/meta/bases/" + url.PathEscape(baseID) + "/tables"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting base %s: %w", baseID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response for base %s: %w", baseID, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{BaseID: baseID, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed tablesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding response for base %s: %w", baseID, err)
	}
	if parsed.Tables == nil {
		return nil, fmt.Errorf("base %s: %w", baseID, ErrMalformedResponse)
	}

	return *parsed.Tables, nil
}
