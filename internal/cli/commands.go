package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"stockcast/config"
	"stockcast/models"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg, manager := loadConfig()

	rootCmd := &cobra.Command{
		Use:   "stockcast",
		Short: "StockCast - Stock Quotes, Forecasts & Trading Signals",
		Long: `StockCast is a terminal client for stock analysis. Look up a ticker for
quotes, next-day forecasts, and strategy-scoped trading signals, or ask a
question in plain English and get an AI-backed recommendation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			app, err := NewApp(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			// Edits to config.json take effect without restarting the
			// session.
			if manager != nil {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				if err := manager.Watch(ctx, app.ApplyConfig); err != nil {
					log.Warn().Err(err).Msg("config file watching unavailable")
				}
			}

			return runInteractiveMode(app)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCmd(cfg))
	rootCmd.AddCommand(newTopCmd(cfg))
	rootCmd.AddCommand(newHistoryCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg, manager))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")

	return rootCmd
}

// loadConfig loads the managed config file and layers env overrides on top.
func loadConfig() (*config.Config, *config.Manager) {
	manager, err := config.NewManager()
	if err != nil {
		log.Warn().Err(err).Msg("could not load config file, using defaults")
		return config.DefaultConfig(), nil
	}
	cfg := manager.Get()
	cfg.ApplyEnv()
	return &cfg, manager
}

// newAnalyzeCmd creates the analyze command
func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [SYMBOL or QUESTION]",
		Short: "Look up a symbol or ask an investment question",
		Long: `Resolve a ticker symbol into a quote, forecast, signal, and chart, or
ask a natural-language question for a full AI-backed analysis.
Examples:
  stockcast analyze AAPL
  stockcast analyze "Should I invest in Tesla?" --budget 5000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategyName, _ := cmd.Flags().GetString("strategy")
			budget, _ := cmd.Flags().GetFloat64("budget")
			if strategyName != "" {
				cfg.DefaultStrategy = strategyName
			}

			app, err := NewApp(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			return runAnalyzeCommand(app, strings.Join(args, " "), budget)
		},
	}

	cmd.Flags().String("strategy", "", "Trading strategy: aggressive, balanced, or long_term")
	cmd.Flags().Float64("budget", 0, "Investment budget for a position-sized trading plan")

	return cmd
}

// newTopCmd creates the top stocks command
func newTopCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show today's top trading opportunities",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			region, _ := cmd.Flags().GetString("region")
			if limit <= 0 {
				limit = cfg.TopStocksLimit
			}
			if region == "" {
				region = cfg.Region
			}

			app, err := NewApp(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			top, err := app.Client.GetTopStocks(context.Background(), limit, models.Region(strings.ToUpper(region)))
			if err != nil {
				DisplayError(fmt.Sprintf("Could not fetch top stocks: %v", err))
				return nil
			}
			DisplayTopStocks(top)
			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "Number of stocks to show")
	cmd.Flags().String("region", "", "Market region: US or INDIA")

	return cmd
}

// newHistoryCmd creates the history command
func newHistoryCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			app, err := NewApp(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			if app.History == nil {
				DisplayInfo("History is disabled. Set STOCKCAST_HISTORY_ENABLED=true to enable it.")
				return nil
			}

			records, err := app.History.Recent(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			DisplayHistory(records)
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Number of entries to show")

	return cmd
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config, manager *config.Manager) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage StockCast configuration settings",
	}

	// config show subcommand
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg, manager)
		},
	})

	// config validate subcommand
	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and backend connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfg)
		},
	})

	// config set subcommand
	setCmd := &cobra.Command{
		Use:   "set JSON",
		Short: "Replace the config file with the given JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if manager == nil {
				return fmt.Errorf("no writable config file available")
			}
			if err := manager.UpdateFromJSON(args[0]); err != nil {
				return err
			}
			fmt.Println("✅ Configuration updated.")
			return nil
		},
	}
	configCmd.AddCommand(setCmd)

	return configCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("StockCast v1.0.0")
			fmt.Println("Stock Quotes, Forecasts & Trading Signals")
		},
	}
}

// runAnalyzeCommand executes one resolution and renders the outcome
func runAnalyzeCommand(app *App, input string, budget float64) error {
	ctx := context.Background()

	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("symbol or question is required")
	}

	if budget > 0 {
		app.Controller.SetBudget(budget)
	}

	fmt.Printf("🔄 Analyzing %q...\n\n", input)

	result := app.Controller.Submit(ctx, input)
	DisplayResult(result)

	if result.OK() && app.History != nil {
		if err := app.History.RecordResolution(ctx, input, result.Success); err != nil {
			log.Warn().Err(err).Msg("could not record lookup")
		}
	}

	return nil
}

// showConfig displays the current configuration
func showConfig(cfg *config.Config, manager *config.Manager) {
	fmt.Println("📋 Current StockCast Configuration:")
	fmt.Println("═══════════════════════════════════════")
	if manager != nil {
		fmt.Printf("Config File:          %s\n", manager.Path())
	}
	fmt.Printf("Backend URL:          %s\n", cfg.APIBaseURL)
	fmt.Printf("Request Timeout:      %ds\n", cfg.RequestTimeout)
	fmt.Printf("Data Directory:       %s\n", cfg.DataDir)
	fmt.Println()
	fmt.Printf("Default Strategy:     %s\n", cfg.DefaultStrategy)
	fmt.Printf("Top Stocks Limit:     %d\n", cfg.TopStocksLimit)
	fmt.Printf("Region:               %s\n", cfg.Region)
	fmt.Println()
	fmt.Printf("History Enabled:      %t\n", cfg.HistoryEnabled)
	fmt.Printf("Debug Mode:           %t\n", cfg.Debug)
}

// validateConfig validates the configuration and checks the backend
func validateConfig(cfg *config.Config) error {
	fmt.Println("🔍 Validating StockCast Configuration...")
	fmt.Println("═══════════════════════════════════════")

	fmt.Print("⚙️  Checking configuration values... ")
	if err := cfg.Validate(); err != nil {
		fmt.Println("❌")
		return err
	}
	fmt.Println("✅")

	fmt.Print("📁 Checking directories... ")
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Println("❌")
		return fmt.Errorf("directory validation failed: %w", err)
	}
	fmt.Println("✅")

	fmt.Print("🌐 Checking backend... ")
	app, err := NewApp(cfg)
	if err != nil {
		fmt.Println("❌")
		return err
	}
	defer app.Close()

	if _, err := app.Client.GetTopStocks(context.Background(), 1, models.Region(cfg.Region)); err != nil {
		fmt.Println("⚠️")
		fmt.Printf("  ⚠️  Backend not reachable at %s: %v\n", cfg.APIBaseURL, err)
		fmt.Println()
		fmt.Println("💡 Tips:")
		fmt.Println("  • Set STOCKCAST_API_URL to point at your analysis backend")
		fmt.Println("  • Make sure the backend server is running")
		return nil
	}
	fmt.Println("✅")

	fmt.Println()
	fmt.Println("✅ Configuration validation completed successfully!")
	return nil
}
