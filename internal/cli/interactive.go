package cli

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"stockcast/internal/query"
	"stockcast/models"
)

// runInteractiveMode starts the interactive lookup session
func runInteractiveMode(app *App) error {
	ctx := context.Background()

	DisplayWelcomeBanner()
	DisplayInfo(fmt.Sprintf("Strategy: %s | Backend: %s", app.Controller.Snapshot().Strategy.GetDisplayName(), app.CurrentConfig().APIBaseURL))
	fmt.Println()

	for {
		input, err := PromptForQuery()
		if err != nil {
			// Ctrl-C or closed stdin ends the session.
			fmt.Println("👋 Thanks for using StockCast!")
			return nil
		}

		// Questions can carry a budget for a position-sized plan.
		if query.Classify(input) == query.ModeNaturalLanguage {
			budget, err := PromptForBudget()
			if err != nil {
				return nil
			}
			app.Controller.SetBudget(budget)
		}

		fmt.Printf("\n🔄 Analyzing %q...\n\n", input)
		result := app.Controller.Submit(ctx, input)
		DisplayResult(result)

		if result.OK() && app.History != nil {
			if err := app.History.RecordResolution(ctx, input, result.Success); err != nil {
				log.Warn().Err(err).Msg("could not record lookup")
			}
		}

		if done := nextActionLoop(ctx, app); done {
			fmt.Println("👋 Thanks for using StockCast!")
			return nil
		}
		fmt.Println()
	}
}

// nextActionLoop handles post-result actions until the user starts a new
// lookup or exits. Returns true when the session should end.
func nextActionLoop(ctx context.Context, app *App) bool {
	for {
		choice, err := PromptForNextAction()
		if err != nil {
			return true
		}

		switch choice {
		case "New lookup":
			return false

		case "Change strategy":
			strategy, err := PromptForStrategy(app.Controller.Snapshot().Strategy)
			if err != nil {
				return true
			}
			changeStrategy(ctx, app, strategy)

		case "Show top stocks":
			cfg := app.CurrentConfig()
			top, err := app.Client.GetTopStocks(ctx, cfg.TopStocksLimit, models.Region(cfg.Region))
			if err != nil {
				DisplayError(fmt.Sprintf("Could not fetch top stocks: %v", err))
				continue
			}
			DisplayTopStocks(top)

		case "Exit":
			return true
		}
	}
}

// changeStrategy switches the strategy and re-renders the refreshed signal.
// Only the signal changes; the quote, forecast, and chart stay as they are.
func changeStrategy(ctx context.Context, app *App, strategy models.Strategy) {
	if err := app.Controller.SetStrategy(ctx, strategy); err != nil {
		DisplayError(fmt.Sprintf("Could not refresh signal: %v", err))
		DisplayInfo("Showing the previous signal.")
	}

	state := app.Controller.Snapshot()
	if state.Result.OK() && state.Result.Success.Signal != nil {
		displaySignal(state.Result.Success.Signal)
	} else {
		DisplayInfo(fmt.Sprintf("Strategy set to %s.", strategy.GetDisplayName()))
	}
}
