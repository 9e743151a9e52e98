// Package view holds the client-side presentation state and serializes
// concurrent resolutions against it.
package view

import (
	"context"
	"sync"

	"github.com/phuslu/log"

	"stockcast/internal/resolver"
	"stockcast/models"
)

// Resolving is the part of the resolver the controller drives.
type Resolving interface {
	Resolve(ctx context.Context, input string, strategy models.Strategy, budget float64) *resolver.Result
	RefreshSignal(ctx context.Context, current *resolver.Success, strategy models.Strategy) (*models.Signal, error)
}

// State is one snapshot of what the screen should show.
type State struct {
	Input    string
	Strategy models.Strategy
	Budget   float64
	Loading  bool
	Result   *resolver.Result
}

// Controller owns the view state. Every submission gets a generation
// number; a resolution may only commit while its generation is still the
// latest, so a slow response can never overwrite a newer one.
type Controller struct {
	mu         sync.Mutex
	generation uint64
	state      State
	resolver   Resolving
}

// NewController creates a controller with the given starting strategy.
func NewController(r Resolving, strategy models.Strategy) *Controller {
	return &Controller{
		resolver: r,
		state:    State{Strategy: strategy},
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetBudget stores the budget forwarded with natural-language requests.
func (c *Controller) SetBudget(budget float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Budget = budget
}

// Submit resolves input and commits the outcome, unless a newer
// submission started in the meantime. It returns the result, or nil
// when the resolution was superseded and discarded.
func (c *Controller) Submit(ctx context.Context, input string) *resolver.Result {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state.Input = input
	c.state.Loading = true
	strategy := c.state.Strategy
	budget := c.state.Budget
	c.mu.Unlock()

	result := c.resolver.Resolve(ctx, input, strategy, budget)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		log.Debug().Str("input", input).Msg("discarding superseded resolution")
		return nil
	}
	c.state.Loading = false
	c.state.Result = result
	return result
}

// SetStrategy records the new strategy and, when a resolution is on
// screen, refreshes only its signal. The rest of the result is left
// untouched; a failed refresh keeps the previous signal in place.
func (c *Controller) SetStrategy(ctx context.Context, strategy models.Strategy) error {
	c.mu.Lock()
	c.state.Strategy = strategy
	var current *resolver.Success
	if c.state.Result.OK() {
		current = c.state.Result.Success
	}
	c.mu.Unlock()

	if current == nil {
		return nil
	}

	signal, err := c.resolver.RefreshSignal(ctx, current, strategy)
	if err != nil {
		log.Warn().Str("symbol", current.Symbol).Err(err).Msg("signal refresh failed, keeping previous signal")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// The signal only belongs to the resolution it was requested for. If
	// another submission committed meanwhile, the on-screen result is a
	// different Success and the refreshed signal must not touch it.
	if !c.state.Result.OK() || c.state.Result.Success != current {
		log.Debug().Str("symbol", current.Symbol).Msg("discarding signal for superseded resolution")
		return nil
	}
	c.state.Result.Success.Signal = signal
	c.state.Result.Success.Strategy = strategy
	return nil
}
