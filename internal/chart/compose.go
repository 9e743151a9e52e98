// Package chart builds aligned plot series from raw chart data.
package chart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"stockcast/models"
)

// Series is a pair of aligned value tracks over a shared date axis.
// A nil entry means the track has no value at that position, so the
// historical track ends where the forecast track begins. The two
// tracks overlap at exactly one position, the last historical date,
// which lets a plot draw the forecast as a continuation.
type Series struct {
	Dates      []string
	Historical []*decimal.Decimal
	Forecast   []*decimal.Decimal
}

// Len returns the number of positions on the date axis.
func (s *Series) Len() int {
	return len(s.Dates)
}

// Compose aligns historical closes and the single-point forecast into
// one axis of len(historical)+1 positions. The forecast track carries
// the last close at the final historical position and the predicted
// price at the appended position; the historical track is nil there.
func Compose(data *models.ChartData) (*Series, error) {
	if data == nil {
		return nil, fmt.Errorf("no chart data")
	}
	dates := data.Historical.Dates
	prices := data.Historical.Prices
	if len(dates) != len(prices) {
		return nil, fmt.Errorf("misaligned history: %d dates, %d prices", len(dates), len(prices))
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("empty history for %s", data.Symbol)
	}

	n := len(dates)
	s := &Series{
		Dates:      make([]string, n+1),
		Historical: make([]*decimal.Decimal, n+1),
		Forecast:   make([]*decimal.Decimal, n+1),
	}
	copy(s.Dates, dates)
	s.Dates[n] = data.Prediction.Date

	for i := range prices {
		p := prices[i]
		s.Historical[i] = &p
	}

	lastClose := prices[n-1]
	predicted := data.Prediction.Price
	s.Forecast[n-1] = &lastClose
	s.Forecast[n] = &predicted

	return s, nil
}

// sparkline glyphs, lowest to highest.
var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the combined series as one line of block glyphs,
// forecast position included. Positions scale between the series min
// and max; a flat series renders at mid height.
func (s *Series) Sparkline() string {
	values := make([]decimal.Decimal, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		switch {
		case s.Historical[i] != nil:
			values = append(values, *s.Historical[i])
		case s.Forecast[i] != nil:
			values = append(values, *s.Forecast[i])
		}
	}
	if len(values) == 0 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}

	span := max.Sub(min)
	var b strings.Builder
	for _, v := range values {
		idx := len(sparks) / 2
		if !span.IsZero() {
			ratio, _ := v.Sub(min).Div(span).Float64()
			idx = int(ratio * float64(len(sparks)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(sparks) {
				idx = len(sparks) - 1
			}
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}
