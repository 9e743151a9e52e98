package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/phuslu/log"

	"stockcast/config"
	"stockcast/internal/gateway"
	"stockcast/internal/history"
	"stockcast/internal/resolver"
	"stockcast/internal/view"
	"stockcast/models"
)

// App wires the gateway, resolver, view state, and history store for one
// CLI invocation.
type App struct {
	Resolver   *resolver.Resolver
	Controller *view.Controller
	Client     *gateway.Client
	History    *history.Store

	mu  sync.RWMutex
	cfg config.Config
}

// NewApp builds the application from a loaded config.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	setupLogging(cfg)

	strategy, err := models.ParseStrategy(cfg.DefaultStrategy)
	if err != nil {
		return nil, err
	}

	client := gateway.NewClient(cfg)
	res := resolver.New(client)

	app := &App{
		cfg:        *cfg,
		Client:     client,
		Resolver:   res,
		Controller: view.NewController(res, strategy),
	}

	if cfg.HistoryEnabled {
		store, err := history.Open(filepath.Join(cfg.DataDir, "history.db"))
		if err != nil {
			// History is a convenience; the client works without it.
			log.Warn().Err(err).Msg("history disabled, could not open store")
		} else {
			app.History = store
		}
	}

	return app, nil
}

// CurrentConfig returns the active config snapshot.
func (a *App) CurrentConfig() config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// ApplyConfig applies a reloaded config to the running session: the
// gateway picks up the new transport settings and a changed default
// strategy refreshes the on-screen signal. Matches the Manager.Watch
// callback signature.
func (a *App) ApplyConfig(cfg config.Config) {
	a.mu.Lock()
	prev := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	a.Client.ApplyConfig(&cfg)
	log.Info().Str("api_url", cfg.APIBaseURL).Msg("configuration reloaded")

	if cfg.DefaultStrategy != prev.DefaultStrategy {
		strategy, err := models.ParseStrategy(cfg.DefaultStrategy)
		if err != nil {
			log.Warn().Err(err).Msg("reloaded strategy not applied")
			return
		}
		if err := a.Controller.SetStrategy(context.Background(), strategy); err != nil {
			log.Warn().Err(err).Msg("signal refresh after config reload failed")
		}
	}
}

// Close releases the app's resources.
func (a *App) Close() {
	if a.History != nil {
		_ = a.History.Close()
	}
}

func setupLogging(cfg *config.Config) {
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}
	log.DefaultLogger = log.Logger{
		Level:      level,
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			ColorOutput:    true,
			EndWithMessage: true,
		},
	}
}
