package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"stockcast/models"
)

// PromptForQuery prompts the user for a ticker symbol or a question
func PromptForQuery() (string, error) {
	var input string
	prompt := &survey.Input{
		Message: "Enter a stock symbol or ask a question:",
		Help:    "Examples: AAPL, RELIANCE.NS, \"Should I invest in Tesla?\"",
	}

	err := survey.AskOne(prompt, &input, survey.WithValidator(func(val interface{}) error {
		if strings.TrimSpace(val.(string)) == "" {
			return fmt.Errorf("input cannot be empty")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(input), nil
}

// PromptForStrategy prompts the user to select a trading strategy
func PromptForStrategy(current models.Strategy) (models.Strategy, error) {
	options := []string{
		models.StrategyAggressive.GetDisplayName(),
		models.StrategyBalanced.GetDisplayName(),
		models.StrategyLongTerm.GetDisplayName(),
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select trading strategy:",
		Options: options,
		Help:    "The strategy scopes the trading signal. Quotes, forecasts, and charts are the same for every strategy.",
		Default: current.GetDisplayName(),
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	switch selected {
	case models.StrategyAggressive.GetDisplayName():
		return models.StrategyAggressive, nil
	case models.StrategyLongTerm.GetDisplayName():
		return models.StrategyLongTerm, nil
	default:
		return models.StrategyBalanced, nil
	}
}

// PromptForBudget prompts for an optional investment budget
func PromptForBudget() (float64, error) {
	var input string
	prompt := &survey.Input{
		Message: "Investment budget (press Enter to skip):",
		Help:    "When set, question answers include a position-sized trading plan.",
	}

	err := survey.AskOne(prompt, &input, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		if str == "" {
			return nil
		}
		budget, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("budget must be a number")
		}
		if budget <= 0 {
			return fmt.Errorf("budget must be positive")
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	return strconv.ParseFloat(input, 64)
}

// PromptForNextAction prompts the user after displaying a result
func PromptForNextAction() (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: "What next?",
		Options: []string{
			"New lookup",
			"Change strategy",
			"Show top stocks",
			"Exit",
		},
		Default: "New lookup",
	}

	err := survey.AskOne(prompt, &choice)
	return choice, err
}
