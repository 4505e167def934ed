// Package jlc provides catalog search against the JLCPCB SMT parts API.
package jlc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.CatalogSearcher = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL     = "https://jlcpcb.com"
	DefaultPageSize    = 10
	DefaultMinInterval = 1500 * time.Millisecond
	DefaultBackoffBase = 3 * time.Second
	DefaultBackoffCap  = time.Minute
	DefaultTimeout     = 15 * time.Second
)

// searchPath is the parts search endpoint under the base URL.
const searchPath = "/api/overseas-pcb-order/v1/shoppingCart/smtGood/selectSmtComponentList"

// browserHeaders mirrors what the parts search page sends; the
// endpoint rejects clients that look like scripts.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Content-Type":    "application/json",
	"Origin":          "https://jlcpcb.com",
	"Referer":         "https://jlcpcb.com/parts",
}

// Config holds configuration for the JLCPCB search client.
type Config struct {
	// BaseURL is the API root (default: https://jlcpcb.com).
	BaseURL string

	// PageSize is the number of candidates requested per search
	// (default: 10).
	PageSize int

	// MinInterval is the minimum gap between requests (default: 1.5s).
	MinInterval time.Duration

	// BackoffBase is the first backoff after a throttled response
	// (default: 3s).
	BackoffBase time.Duration

	// BackoffCap is the ceiling the backoff grows to (default: 1m).
	BackoffCap time.Duration

	// Timeout is the request timeout (default: 15s).
	Timeout time.Duration

	// HTTPClient overrides the HTTP client used for requests.
	HTTPClient *http.Client
}

// ConfigFromSettings maps stored API settings onto a client config.
func ConfigFromSettings(api domain.APISettings) Config {
	return Config{
		BaseURL:     api.BaseURL,
		PageSize:    api.PageSize,
		MinInterval: time.Duration(api.MinIntervalMs) * time.Millisecond,
		BackoffBase: time.Duration(api.BackoffBaseMs) * time.Millisecond,
		BackoffCap:  time.Duration(api.BackoffCapMs) * time.Millisecond,
		Timeout:     time.Duration(api.TimeoutS) * time.Second,
	}
}

// Client searches the JLCPCB SMT parts catalog.
type Client struct {
	client   *http.Client
	baseURL  string
	pageSize int
	throttle *Throttle
}

// searchRequest is the JLCPCB API request format.
type searchRequest struct {
	Keyword     string `json:"keyword"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
}

// searchResponse is the JLCPCB API response envelope.
type searchResponse struct {
	Code int `json:"code"`
	Data struct {
		ComponentPageInfo struct {
			List []searchProduct `json:"list"`
		} `json:"componentPageInfo"`
	} `json:"data"`
}

// searchProduct is one catalog entry in a search response.
type searchProduct struct {
	ComponentCode            string `json:"componentCode"`
	ComponentModelEn         string `json:"componentModelEn"`
	ComponentModelCn         string `json:"componentModelCn"`
	ComponentBrandEn         string `json:"componentBrandEn"`
	ComponentBrandCn         string `json:"componentBrandCn"`
	Describe                 string `json:"describe"`
	ComponentDescEn          string `json:"componentDescEn"`
	ComponentSpecificationEn string `json:"componentSpecificationEn"`
	StockCount               int    `json:"stockCount"`
	ComponentPrices          []struct {
		ProductPrice float64 `json:"productPrice"`
	} `json:"componentPrices"`
}

// NewClient creates a new JLCPCB search client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MinInterval == 0 {
		cfg.MinInterval = DefaultMinInterval
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = DefaultBackoffBase
	}
	if cfg.BackoffCap <= 0 {
		cfg.BackoffCap = DefaultBackoffCap
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client:   client,
		baseURL:  cfg.BaseURL,
		pageSize: cfg.PageSize,
		throttle: NewThrottle(cfg.MinInterval, cfg.BackoffBase, cfg.BackoffCap),
	}
}

// Search queries the catalog and returns candidates in the API's
// order. A throttled response (403 or 429) fails with a
// *domain.RateLimitError carrying the next backoff; the client never
// retries on its own.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(searchRequest{
		Keyword:     query,
		CurrentPage: 1,
		PageSize:    c.pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+searchPath,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "search", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return nil, c.throttle.Throttled()
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{
			Op:  "search",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	c.throttle.Succeeded()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: "read response", Err: err}
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &domain.TransportError{Op: "decode response", Err: err}
	}

	// The envelope signals soft failures (bad keyword, empty page)
	// with a non-200 code; those are no matches, not errors.
	if decoded.Code != 200 {
		return nil, nil
	}

	list := decoded.Data.ComponentPageInfo.List
	candidates := make([]domain.Candidate, 0, len(list))
	for _, item := range list {
		if item.ComponentCode == "" {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			ID:           item.ComponentCode,
			MfrPart:      firstNonEmpty(item.ComponentModelEn, item.ComponentModelCn),
			Manufacturer: firstNonEmpty(item.ComponentBrandEn, item.ComponentBrandCn),
			Description:  firstNonEmpty(item.Describe, item.ComponentDescEn),
			Package:      item.ComponentSpecificationEn,
			Stock:        item.StockCount,
			Price:        unitPrice(item),
			URL:          domain.SupplierProductURL(item.ComponentCode),
		})
		if len(candidates) == c.pageSize {
			break
		}
	}
	return candidates, nil
}

// Close releases resources.
func (c *Client) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// unitPrice returns the price at the lowest quantity break, 0 when
// the entry carries no price list.
func unitPrice(item searchProduct) float64 {
	if len(item.ComponentPrices) == 0 {
		return 0
	}
	return item.ComponentPrices[0].ProductPrice
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
