// Package client is the HTTP client for the envelope API, used by the CLI
// commands.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"envelope/internal/ledger"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*ledger.CategoryBalance, error) {
	var result ledger.CategoryBalance
	if err := c.post(ctx, "/api/v1/categories", map[string]any{"name": name}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]ledger.CategoryBalance, error) {
	var result []ledger.CategoryBalance
	if err := c.get(ctx, "/api/v1/categories", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) DeleteCategory(ctx context.Context, name string) error {
	return c.del(ctx, "/api/v1/categories/"+url.PathEscape(name))
}

type TransactionResult struct {
	Transaction ledger.Transaction `json:"transaction"`
	Balance     float64            `json:"balance"`
}

func (c *Client) AddTransaction(ctx context.Context, category string, amount float64, description string, typ ledger.Type) (*TransactionResult, error) {
	body := map[string]any{
		"category":    category,
		"amount":      amount,
		"description": description,
		"type":        string(typ),
	}
	var result TransactionResult
	if err := c.post(ctx, "/api/v1/transactions", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListTransactions(ctx context.Context, category string) ([]ledger.Transaction, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	var result []ledger.Transaction
	if err := c.get(ctx, "/api/v1/transactions?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

type TransferResult struct {
	FromBalance float64 `json:"from_balance"`
	ToBalance   float64 `json:"to_balance"`
}

func (c *Client) Transfer(ctx context.Context, from, to string, amount float64) (*TransferResult, error) {
	body := map[string]any{
		"from_category": from,
		"to_category":   to,
		"amount":        amount,
	}
	var result TransferResult
	if err := c.post(ctx, "/api/v1/transfers", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportReport fetches a rendered report. Start and end are YYYY-MM-DD
// strings and only apply to the custom range.
func (c *Client) ExportReport(ctx context.Context, format string, detailed bool, rng, start, end string) ([]byte, error) {
	params := url.Values{}
	params.Set("format", format)
	if detailed {
		params.Set("detailed", "true")
	}
	if rng != "" {
		params.Set("range", rng)
	}
	if start != "" {
		params.Set("start", start)
	}
	if end != "" {
		params.Set("end", end)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/reports/export?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, serverError(resp.StatusCode, body)
	}
	return body, nil
}

// Ping checks if the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/categories", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

type apiError struct {
	Error          string   `json:"error"`
	CurrentBalance *float64 `json:"current_balance"`
}

func serverError(status int, body []byte) error {
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("server error (%d): %s", status, apiErr.Error)
	}
	return fmt.Errorf("server error (%d): %s", status, string(body))
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doRequest(req, result)
}

func (c *Client) del(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return serverError(resp.StatusCode, body)
	}
	return nil
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return serverError(resp.StatusCode, body)
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
