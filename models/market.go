package models

import "github.com/shopspring/decimal"

// Quote is a point-in-time market snapshot for a single symbol.
type Quote struct {
	Symbol           string          `json:"symbol"`
	Price            decimal.Decimal `json:"price"`
	Change           decimal.Decimal `json:"change"`
	ChangePercent    string          `json:"change_percent"`
	Volume           int64           `json:"volume"`
	LatestTradingDay string          `json:"latest_trading_day"`
	Source           string          `json:"source,omitempty"`
}

// Prediction is the model's next-day price forecast for a symbol.
// It is per-symbol only; the strategy selection does not affect it.
type Prediction struct {
	Symbol                  string          `json:"symbol"`
	CurrentPrice            decimal.Decimal `json:"current_price"`
	PredictedPrice          decimal.Decimal `json:"predicted_price"`
	PredictionChange        decimal.Decimal `json:"prediction_change"`
	PredictionChangePercent decimal.Decimal `json:"prediction_change_percent"`
}

// Signal is a strategy-scoped trading recommendation. A signal is only
// valid for the (symbol, portfolio type) pair it was requested with and
// goes stale as soon as the strategy changes.
type Signal struct {
	Symbol              string                 `json:"symbol"`
	Signal              string                 `json:"signal"`     // BUY, SELL, HOLD
	Confidence          string                 `json:"confidence"` // LOW, MEDIUM, HIGH
	Reason              string                 `json:"reason"`
	Timing              string                 `json:"timing"`
	CurrentPrice        decimal.Decimal        `json:"current_price"`
	PredictedPrice      decimal.Decimal        `json:"predicted_price"`
	ChangePercent       decimal.Decimal        `json:"change_percent"`
	TechnicalIndicators map[string]interface{} `json:"technical_indicators,omitempty"`
	PortfolioType       Strategy               `json:"portfolio_type"`
}

// ChartData holds 30 days of closes plus the next-day forecast point.
type ChartData struct {
	Symbol       string          `json:"symbol"`
	Historical   ChartHistory    `json:"historical"`
	Prediction   ChartPoint      `json:"prediction"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// ChartHistory carries parallel date and price slices; the backend
// guarantees equal lengths and chart composition re-checks it.
type ChartHistory struct {
	Dates  []string          `json:"dates"`
	Prices []decimal.Decimal `json:"prices"`
}

// ChartPoint is a single dated price, used for the forecast slot.
type ChartPoint struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}
