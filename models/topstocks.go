package models

import "github.com/shopspring/decimal"

// Region selects which market watchlist the top-stocks screen covers.
type Region string

const (
	RegionUS    Region = "US"
	RegionIndia Region = "INDIA"
)

// TopStock is one entry in the intraday movers screen.
type TopStock struct {
	Symbol        string          `json:"symbol"`
	CompanyName   string          `json:"company_name"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	ChangePercent float64         `json:"change_percent"`
	Volume        int64           `json:"volume"`
	AvgVolume     int64           `json:"avg_volume"`
	VolumeSurge   float64         `json:"volume_surge"`
	Volatility    float64         `json:"volatility"`
	Momentum      float64         `json:"momentum"`
	TradingScore  float64         `json:"trading_score"`
	Signal        string          `json:"signal"`
	LastUpdated   string          `json:"last_updated"`
}

// TopStocksResponse wraps the ranked list as served by the backend.
type TopStocksResponse struct {
	Success bool       `json:"success"`
	Region  Region     `json:"region,omitempty"`
	Stocks  []TopStock `json:"stocks"`
	Error   string     `json:"error,omitempty"`
}
