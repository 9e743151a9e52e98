package view

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stockcast/internal/query"
	"stockcast/internal/resolver"
	"stockcast/models"
)

type scriptedResolver struct {
	resolveFn func(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result
	refreshFn func(ctx context.Context, current *resolver.Success, strategy models.Strategy) (*models.Signal, error)
}

func (s *scriptedResolver) Resolve(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result {
	return s.resolveFn(ctx, input, strategy, budget)
}

func (s *scriptedResolver) RefreshSignal(ctx context.Context, current *resolver.Success, strategy models.Strategy) (*models.Signal, error) {
	return s.refreshFn(ctx, current, strategy)
}

func successFor(symbol string, strategy models.Strategy) *resolver.Result {
	return &resolver.Result{Success: &resolver.Success{
		Symbol:   symbol,
		Mode:     query.ModeSymbolic,
		Strategy: strategy,
		Signal:   &models.Signal{Symbol: symbol, Signal: "BUY", PortfolioType: strategy},
	}}
}

func TestSubmitCommitsResult(t *testing.T) {
	r := &scriptedResolver{
		resolveFn: func(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result {
			return successFor("AAPL", strategy)
		},
	}
	c := NewController(r, models.StrategyBalanced)

	result := c.Submit(context.Background(), "AAPL")
	if result == nil || !result.OK() {
		t.Fatalf("expected committed success, got %+v", result)
	}

	state := c.Snapshot()
	if state.Loading {
		t.Error("loading must clear after commit")
	}
	if state.Result != result {
		t.Error("snapshot must carry the committed result")
	}
	if state.Input != "AAPL" {
		t.Errorf("input not recorded: %q", state.Input)
	}
}

func TestSubmitDiscardsSupersededResolution(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})

	r := &scriptedResolver{
		resolveFn: func(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result {
			if input == "SLOW" {
				close(slowStarted)
				<-release
			}
			return successFor(input, strategy)
		},
	}
	c := NewController(r, models.StrategyBalanced)

	var wg sync.WaitGroup
	var slowResult *resolver.Result
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowResult = c.Submit(context.Background(), "SLOW")
	}()

	select {
	case <-slowStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("slow resolution never started")
	}

	fast := c.Submit(context.Background(), "FAST")
	if fast == nil || fast.Success.Symbol != "FAST" {
		t.Fatalf("newer submission must commit, got %+v", fast)
	}

	close(release)
	wg.Wait()

	if slowResult != nil {
		t.Error("superseded resolution must be discarded, not returned")
	}
	state := c.Snapshot()
	if state.Result.Success.Symbol != "FAST" {
		t.Errorf("stale resolution overwrote the newer one: %s", state.Result.Success.Symbol)
	}
}

func TestSetStrategyRefreshesOnlySignal(t *testing.T) {
	r := &scriptedResolver{
		resolveFn: func(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result {
			return successFor(input, strategy)
		},
		refreshFn: func(ctx context.Context, current *resolver.Success, strategy models.Strategy) (*models.Signal, error) {
			return &models.Signal{Symbol: current.Symbol, Signal: "SELL", PortfolioType: strategy}, nil
		},
	}
	c := NewController(r, models.StrategyBalanced)

	first := c.Submit(context.Background(), "TCS.NS")
	quote := first.Success.Quote
	chart := first.Success.Chart

	if err := c.SetStrategy(context.Background(), models.StrategyAggressive); err != nil {
		t.Fatalf("SetStrategy: %v", err)
	}

	state := c.Snapshot()
	s := state.Result.Success
	if s.Signal.Signal != "SELL" || s.Signal.PortfolioType != models.StrategyAggressive {
		t.Errorf("signal not refreshed: %+v", s.Signal)
	}
	if s.Quote != quote || s.Chart != chart {
		t.Error("strategy change must not touch quote or chart")
	}
	if state.Strategy != models.StrategyAggressive {
		t.Errorf("strategy not recorded: %s", state.Strategy)
	}
}

func TestSetStrategyKeepsSignalOnError(t *testing.T) {
	refreshErr := errors.New("backend unavailable")
	r := &scriptedResolver{
		resolveFn: func(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result {
			return successFor(input, strategy)
		},
		refreshFn: func(ctx context.Context, current *resolver.Success, strategy models.Strategy) (*models.Signal, error) {
			return nil, refreshErr
		},
	}
	c := NewController(r, models.StrategyBalanced)

	first := c.Submit(context.Background(), "INFY.NS")
	oldSignal := first.Success.Signal

	if err := c.SetStrategy(context.Background(), models.StrategyLongTerm); !errors.Is(err, refreshErr) {
		t.Fatalf("expected refresh error to surface, got %v", err)
	}

	state := c.Snapshot()
	if state.Result.Success.Signal != oldSignal {
		t.Error("failed refresh must keep the previous signal")
	}
	if state.Strategy != models.StrategyLongTerm {
		t.Error("selected strategy must still be recorded after a failed refresh")
	}
}

func TestSetStrategyDiscardsSignalForReplacedResolution(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseResolve := make(chan struct{})
	refreshStarted := make(chan struct{})
	releaseRefresh := make(chan struct{})

	r := &scriptedResolver{
		resolveFn: func(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result {
			if input == "TSLA" {
				close(slowStarted)
				<-releaseResolve
			}
			return successFor(input, strategy)
		},
		refreshFn: func(ctx context.Context, current *resolver.Success, strategy models.Strategy) (*models.Signal, error) {
			close(refreshStarted)
			<-releaseRefresh
			return &models.Signal{Symbol: current.Symbol, Signal: "SELL", PortfolioType: strategy}, nil
		},
	}
	c := NewController(r, models.StrategyBalanced)

	c.Submit(context.Background(), "AAPL")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.Submit(context.Background(), "TSLA")
	}()

	select {
	case <-slowStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("second resolution never started")
	}

	// The refresh is issued while AAPL is still on screen.
	go func() {
		defer wg.Done()
		_ = c.SetStrategy(context.Background(), models.StrategyAggressive)
	}()

	select {
	case <-refreshStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh never started")
	}

	// TSLA commits first, then the AAPL-scoped refresh lands.
	close(releaseResolve)
	for c.Snapshot().Result.Success.Symbol != "TSLA" {
		time.Sleep(time.Millisecond)
	}
	close(releaseRefresh)
	wg.Wait()

	state := c.Snapshot()
	if state.Result.Success.Symbol != "TSLA" {
		t.Fatalf("unexpected on-screen resolution: %s", state.Result.Success.Symbol)
	}
	if got := state.Result.Success.Signal.Symbol; got != "TSLA" {
		t.Errorf("signal for %s spliced into the TSLA resolution", got)
	}
	if got := state.Result.Success.Signal.Signal; got != "BUY" {
		t.Errorf("stale refresh overwrote the committed signal: %s", got)
	}
}

func TestSetStrategyWithoutResolutionSkipsRefresh(t *testing.T) {
	r := &scriptedResolver{
		refreshFn: func(ctx context.Context, current *resolver.Success, strategy models.Strategy) (*models.Signal, error) {
			t.Error("refresh must not run without a resolution on screen")
			return nil, nil
		},
	}
	c := NewController(r, models.StrategyBalanced)

	if err := c.SetStrategy(context.Background(), models.StrategyAggressive); err != nil {
		t.Fatalf("SetStrategy: %v", err)
	}
	if got := c.Snapshot().Strategy; got != models.StrategyAggressive {
		t.Errorf("strategy not recorded: %s", got)
	}
}
