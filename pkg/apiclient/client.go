// Package apiclient provides a client for the unit conversion v1 HTTP API.
// Error responses are mapped back to the serrors kinds the server reported.
package apiclient

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

	"unitconv/pkg/domain"
	"unitconv/pkg/serrors"
)

// Conversion is the outcome of a conversion performed by the server.
type Conversion struct {
	Category  string      `json:"category"`
	From      domain.Unit `json:"from"`
	To        domain.Unit `json:"to"`
	Input     float64     `json:"input"`
	Value     float64     `json:"value"`
	Formatted string      `json:"formatted"`
	// Text is the formatted value followed by the output unit symbol.
	Text string `json:"text"`
	// Recorded reports whether the conversion was appended to the history log.
	Recorded bool `json:"recorded"`
}

// Client talks to a unit conversion server. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the server
	baseURL    string       // baseURL is the server root, e.g. http://localhost:8080
	token      string       // token is the bearer token sent to protected routes
}

// New constructs a Client for the server at baseURL. The token may be empty
// when the server runs without authentication.
func New(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

type items[T any] struct {
	Items []T `json:"items"`
}

// Categories lists the server's categories in catalog order.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out items[domain.Category]
	if err := c.do(ctx, http.MethodGet, "/v1/categories", nil, &out); err != nil {
		return nil, err
	}

	return out.Items, nil
}

// Units lists the units of category grouped by measurement system.
func (c *Client) Units(ctx context.Context, category string) ([]domain.UnitGroup, error) {
	var out items[domain.UnitGroup]
	if err := c.do(ctx, http.MethodGet, "/v1/categories/"+url.PathEscape(category)+"/units", nil, &out); err != nil {
		return nil, err
	}

	return out.Items, nil
}

// Convert asks the server to convert req, appending it to the history log
// when record is set.
func (c *Client) Convert(ctx context.Context, req domain.ConversionRequest, record bool) (*Conversion, error) {
	type convertReq struct {
		Category string `json:"category"`
		From     string `json:"from"`
		To       string `json:"to"`
		Value    string `json:"value"`
		Record   bool   `json:"record,omitempty"`
	}
	body, err := json.Marshal(convertReq{
		Category: req.Category,
		From:     req.From,
		To:       req.To,
		Value:    req.Input,
		Record:   record,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	out := &Conversion{}
	if err := c.do(ctx, http.MethodPost, "/v1/conversions", body, out); err != nil {
		return nil, err
	}

	return out, nil
}

// History lists recorded conversions, newest first. A zero limit lists the
// whole log.
func (c *Client) History(ctx context.Context, limit uint) ([]domain.HistoryEntry, error) {
	path := "/v1/history"
	if limit > 0 {
		path += "?limit=" + strconv.FormatUint(uint64(limit), 10)
	}

	var out items[domain.HistoryEntry]
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out.Items, nil
}

// ClearHistory deletes every recorded conversion.
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/v1/history", nil, nil)
}

// do sends a request and decodes a successful response into out, if any.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ParseError(resp.StatusCode, b)
	}

	// successful
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// ParseError converts an error response into a semantic error. Bodies that
// are not error payloads, or name an unknown code, become ErrInternal.
func ParseError(status int, body []byte) error {
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Code == "" {
		return serrors.With(serrors.ErrInternal, "request failed with status %d: %s", status, strings.TrimSpace(string(body)))
	}

	kind := serrors.ParseKind(payload.Code)
	if kind == nil {
		kind = serrors.ErrInternal
	}
	if payload.Message == "" {
		return serrors.KindOnly(kind)
	}

	return serrors.With(kind, "%s", payload.Message)
}
