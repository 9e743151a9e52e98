// Package resolver turns classified user input into a consolidated
// analysis result by orchestrating the backend gateway calls.
package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"

	"stockcast/internal/gateway"
	"stockcast/internal/query"
	"stockcast/models"
)

// genericFailureMessage is shown when the backend gave no detail.
const genericFailureMessage = "Failed to fetch stock data. Please check your input and try again."

var (
	// ErrEmptyInput rejects blank requests before any network call.
	ErrEmptyInput = errors.New("empty input")
	// ErrNoResolution is returned when a signal refresh is requested
	// before any successful resolution exists.
	ErrNoResolution = errors.New("no resolved symbol to refresh")
)

// Gateway is the slice of the backend client the resolver depends on.
type Gateway interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
	GetPrediction(ctx context.Context, symbol string) (*models.Prediction, error)
	GetPortfolioSignal(ctx context.Context, symbol string, strategy models.Strategy) (*models.Signal, error)
	GetChartData(ctx context.Context, symbol string) (*models.ChartData, error)
	AnalyzeQuery(ctx context.Context, q string, strategy models.Strategy, budget float64) (*models.Analysis, error)
	AnalyzeQueryGemini(ctx context.Context, q string, strategy models.Strategy, budget float64) (*models.Analysis, error)
}

// Resolver drives the gateway and folds every outcome into a Result.
type Resolver struct {
	gw Gateway
}

// New creates a resolver on top of a gateway.
func New(gw Gateway) *Resolver {
	return &Resolver{gw: gw}
}

// Resolve runs one full resolution. Empty input fails before any network
// call. Symbolic input fans out to the four per-symbol endpoints and is
// all-or-nothing; natural-language input goes through the primary advisor
// with a single fallback attempt.
func (r *Resolver) Resolve(ctx context.Context, input string, strategy models.Strategy, budget float64) *Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return fail(ErrEmptyInput.Error())
	}

	mode := query.Classify(input)
	log.Debug().Str("input", input).Str("mode", string(mode)).Msg("resolving request")

	if mode == query.ModeSymbolic {
		return r.resolveSymbol(ctx, input, strategy)
	}
	return r.resolveQuestion(ctx, input, strategy, budget)
}

func (r *Resolver) resolveSymbol(ctx context.Context, input string, strategy models.Strategy) *Result {
	symbol := strings.ToUpper(input)

	var (
		quote      *models.Quote
		prediction *models.Prediction
		signal     *models.Signal
		chart      *models.ChartData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := r.gw.GetQuote(gctx, symbol)
		if err != nil {
			return err
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		p, err := r.gw.GetPrediction(gctx, symbol)
		if err != nil {
			return err
		}
		prediction = p
		return nil
	})
	g.Go(func() error {
		s, err := r.gw.GetPortfolioSignal(gctx, symbol, strategy)
		if err != nil {
			return err
		}
		signal = s
		return nil
	})
	g.Go(func() error {
		c, err := r.gw.GetChartData(gctx, symbol)
		if err != nil {
			return err
		}
		chart = c
		return nil
	})

	// All four must land; one failure collapses the whole resolution.
	if err := g.Wait(); err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("symbol resolution failed")
		return fail(failureMessage(err))
	}

	return succeed(&Success{
		Symbol:     symbol,
		Mode:       query.ModeSymbolic,
		Strategy:   strategy,
		Quote:      quote,
		Prediction: prediction,
		Signal:     signal,
		Chart:      chart,
	})
}

func (r *Resolver) resolveQuestion(ctx context.Context, input string, strategy models.Strategy, budget float64) *Result {
	analysis, provider, err := r.analyzeWithFallback(ctx, input, strategy, budget)
	if err != nil {
		log.Warn().Str("query", input).Err(err).Msg("advisor resolution failed")
		return fail(failureMessage(err))
	}

	success := &Success{
		// The advisor reports which symbol it detected; trust it rather
		// than re-deriving anything from the raw question.
		Symbol:   analysis.Symbol,
		Mode:     query.ModeNaturalLanguage,
		Strategy: strategy,
		Analysis: analysis,
		Provider: provider,
	}

	// A payload-level failure (success:false) still resolves: the
	// embedded error and example queries are meant to be displayed.
	if analysis.Success {
		success.Quote = analysis.Quote
		success.Prediction = analysis.Prediction
		success.Signal = analysis.Signal
	}

	return succeed(success)
}

// analyzeWithFallback tries the Gemini advisor first and, only after
// observing its failure, makes exactly one attempt against the standard
// advisor with identical arguments.
func (r *Resolver) analyzeWithFallback(ctx context.Context, input string, strategy models.Strategy, budget float64) (*models.Analysis, Provider, error) {
	analysis, err := r.gw.AnalyzeQueryGemini(ctx, input, strategy, budget)
	if err == nil {
		return analysis, ProviderGemini, nil
	}

	log.Info().Err(err).Msg("gemini advisor unavailable, using standard analyzer")

	analysis, err = r.gw.AnalyzeQuery(ctx, input, strategy, budget)
	if err != nil {
		return nil, "", err
	}
	return analysis, ProviderStandard, nil
}

// RefreshSignal re-issues only the strategy-scoped call for an existing
// resolution. The caller splices the returned signal into its result;
// on error the previous signal stays in place.
func (r *Resolver) RefreshSignal(ctx context.Context, current *Success, strategy models.Strategy) (*models.Signal, error) {
	if current == nil || current.Symbol == "" {
		return nil, ErrNoResolution
	}
	return r.gw.GetPortfolioSignal(ctx, current.Symbol, strategy)
}

// failureMessage prefers the server-supplied detail over the generic
// fallback text.
func failureMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return genericFailureMessage
}
