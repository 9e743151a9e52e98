package models

import "fmt"

// Strategy is the trading horizon profile a signal is scoped to.
type Strategy string

const (
	StrategyAggressive Strategy = "aggressive"
	StrategyBalanced   Strategy = "balanced"
	StrategyLongTerm   Strategy = "long_term"
)

// ParseStrategy validates a strategy name as accepted by the backend.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAggressive, StrategyBalanced, StrategyLongTerm:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("invalid strategy %q (choose: aggressive, balanced, long_term)", s)
}

// GetDisplayName returns the human-readable strategy name.
func (s Strategy) GetDisplayName() string {
	switch s {
	case StrategyAggressive:
		return "Aggressive (Intraday)"
	case StrategyBalanced:
		return "Balanced (Swing)"
	case StrategyLongTerm:
		return "Long-Term (Investment)"
	default:
		return string(s)
	}
}
