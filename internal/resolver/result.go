package resolver

import (
	"stockcast/internal/query"
	"stockcast/models"
)

// Provider identifies which advisor answered a natural-language request.
type Provider string

const (
	ProviderGemini   Provider = "gemini"
	ProviderStandard Provider = "standard"
)

// Result is the outcome of one resolution. Exactly one of Success or
// Failure is set; transport errors never escape as Go errors past the
// resolver boundary.
type Result struct {
	Success *Success
	Failure *Failure
}

// Success carries everything the view needs to render one resolution.
// Which fields are populated depends on the mode: symbolic fills quote,
// prediction, signal, and chart; natural language fills analysis and
// mirrors quote/prediction/signal when the advisor embedded them.
type Success struct {
	Symbol   string
	Mode     query.Mode
	Strategy models.Strategy

	Quote      *models.Quote
	Prediction *models.Prediction
	Signal     *models.Signal
	Chart      *models.ChartData

	Analysis *models.Analysis
	Provider Provider
}

// Failure is a user-facing resolution failure.
type Failure struct {
	Message string
}

// OK reports whether the result is a success.
func (r *Result) OK() bool {
	return r != nil && r.Success != nil
}

func succeed(s *Success) *Result {
	return &Result{Success: s}
}

func fail(message string) *Result {
	return &Result{Failure: &Failure{Message: message}}
}
