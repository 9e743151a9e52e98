// Package gateway provides typed accessors for the forecast backend API.
// Each accessor is one request/response round trip; the gateway holds no
// state beyond the configured HTTP client.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"stockcast/config"
	"stockcast/models"
)

// APIError is a non-2xx response from the backend. Detail carries the
// server's human-readable message when the body contained one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Client talks to the forecast backend.
type Client struct {
	client *resty.Client
}

// NewClient creates a backend client from the configuration.
func NewClient(cfg *config.Config) *Client {
	client := resty.New()
	client.SetBaseURL(cfg.APIBaseURL)
	client.SetTimeout(time.Duration(cfg.RequestTimeout) * time.Second)
	client.SetHeader("Content-Type", "application/json")

	return &Client{client: client}
}

// ApplyConfig updates the transport settings in place, used when the
// config file changes during a session. Requests already in flight
// finish against the old settings.
func (c *Client) ApplyConfig(cfg *config.Config) {
	c.client.SetBaseURL(cfg.APIBaseURL)
	c.client.SetTimeout(time.Duration(cfg.RequestTimeout) * time.Second)
}

// GetQuote gets the current market quote for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	var quote models.Quote
	if err := c.get(ctx, "/quote", map[string]string{"symbol": symbol}, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetPrediction gets the next-day price forecast for a symbol.
func (c *Client) GetPrediction(ctx context.Context, symbol string) (*models.Prediction, error) {
	var prediction models.Prediction
	if err := c.get(ctx, "/predict", map[string]string{"symbol": symbol}, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

// GetSignal gets the legacy strategy-unscoped trading signal.
func (c *Client) GetSignal(ctx context.Context, symbol string) (*models.Signal, error) {
	var signal models.Signal
	if err := c.get(ctx, "/signal", map[string]string{"symbol": symbol}, &signal); err != nil {
		return nil, err
	}
	return &signal, nil
}

// GetPortfolioSignal gets the trading signal scoped to a strategy.
func (c *Client) GetPortfolioSignal(ctx context.Context, symbol string, strategy models.Strategy) (*models.Signal, error) {
	var signal models.Signal
	params := map[string]string{
		"symbol": symbol,
		"type":   string(strategy),
	}
	if err := c.get(ctx, "/portfolio", params, &signal); err != nil {
		return nil, err
	}
	return &signal, nil
}

// GetChartData gets historical closes plus the forecast point.
func (c *Client) GetChartData(ctx context.Context, symbol string) (*models.ChartData, error) {
	var chart models.ChartData
	if err := c.get(ctx, "/chart", map[string]string{"symbol": symbol}, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// AnalyzeQuery runs the standard natural-language advisor.
func (c *Client) AnalyzeQuery(ctx context.Context, query string, strategy models.Strategy, budget float64) (*models.Analysis, error) {
	return c.analyze(ctx, "/analyze", query, strategy, budget)
}

// AnalyzeQueryGemini runs the Gemini-backed natural-language advisor.
// The argument shape is identical to AnalyzeQuery so the two providers
// are interchangeable.
func (c *Client) AnalyzeQueryGemini(ctx context.Context, query string, strategy models.Strategy, budget float64) (*models.Analysis, error) {
	return c.analyze(ctx, "/analyze-gemini", query, strategy, budget)
}

func (c *Client) analyze(ctx context.Context, path, query string, strategy models.Strategy, budget float64) (*models.Analysis, error) {
	params := map[string]string{
		"query":          query,
		"portfolio_type": string(strategy),
	}
	// Budget is only meaningful when positive; the backend treats a
	// missing budget as "no position sizing".
	if budget > 0 {
		params["budget"] = strconv.FormatFloat(budget, 'f', -1, 64)
	}

	var analysis models.Analysis
	if err := c.get(ctx, path, params, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GetTopStocks gets the ranked intraday movers list for a region.
func (c *Client) GetTopStocks(ctx context.Context, limit int, region models.Region) (*models.TopStocksResponse, error) {
	params := map[string]string{
		"limit":  strconv.Itoa(limit),
		"region": string(region),
	}
	var top models.TopStocksResponse
	if err := c.get(ctx, "/top-stocks", params, &top); err != nil {
		return nil, err
	}
	return &top, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)

	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}

	if resp.StatusCode() != 200 {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		var body struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(resp.Body(), &body); err == nil {
			apiErr.Detail = body.Detail
		}
		return apiErr
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("parse %s response: %w", path, err)
	}
	return nil
}
