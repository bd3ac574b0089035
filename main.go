package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/smazurov/fourzone/cmd"
	"github.com/smazurov/fourzone/internal/api"
	"github.com/smazurov/fourzone/internal/backend"
	"github.com/smazurov/fourzone/internal/config"
	"github.com/smazurov/fourzone/internal/engine"
	"github.com/smazurov/fourzone/internal/events"
	"github.com/smazurov/fourzone/internal/logging"
	"github.com/smazurov/fourzone/internal/metrics"
	"github.com/smazurov/fourzone/internal/snapshot"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"config.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8095" toml:"server.port" env:"SERVER_PORT"`

	// Hardware settings
	SysfsPath string `help:"fourzone driver sysfs attribute group" default:"" toml:"hardware.sysfs_path" env:"SYSFS_PATH"`

	// State settings
	StateFile string `help:"Persisted lighting state file" default:"/var/lib/fourzone/state.bin" toml:"state.file" env:"STATE_FILE"`

	// Metrics settings
	MetricsEnabled bool `help:"Enable Prometheus metrics" default:"true" toml:"metrics.enabled" env:"METRICS_ENABLED"`

	// Auth settings
	AuthUsername string `help:"Basic auth username" default:"" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Logging settings
	LoggingLevel   string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingEngine  string `help:"Engine logging level" default:"info" toml:"logging.engine" env:"LOGGING_ENGINE"`
	LoggingBackend string `help:"Hardware backend logging level" default:"info" toml:"logging.backend" env:"LOGGING_BACKEND"`
	LoggingAPI     string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
}

func main() {
	var cli humacli.CLI
	cli = humacli.New(func(hooks humacli.Hooks, opts *Options) {
		if loadErr := config.LoadConfig(opts, cli.Root()); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"engine":  opts.LoggingEngine,
				"backend": opts.LoggingBackend,
				"api":     opts.LoggingAPI,
			},
		})
		logger := logging.GetLogger("main")

		// Re-apply logging levels when the config file changes on disk
		var watcher *config.Watcher[logging.Config]
		if _, statErr := os.Stat(opts.Config); statErr == nil {
			watcher = config.NewWatcher(opts.Config, config.LoadLoggingConfig, logger)
			watcher.OnReload(func(cfg logging.Config) {
				logging.SetLevels(cfg)
			})
		}

		eventBus := events.New()

		var recorder *metrics.Recorder
		if opts.MetricsEnabled {
			recorder = metrics.NewRecorder()
			recorder.Attach(eventBus)
		}

		hw := backend.New(opts.SysfsPath, logging.GetLogger("backend"))
		store := snapshot.NewFileStore(opts.StateFile)

		eng := engine.New(engine.Config{
			Backend: hw,
			Store:   store,
			Bus:     eventBus,
			Metrics: recorder,
			Logger:  logging.GetLogger("engine"),
		})

		apiOpts := &api.Options{
			AuthUsername: opts.AuthUsername,
			AuthPassword: opts.AuthPassword,
			Lighting:     eng,
		}
		if recorder != nil {
			apiOpts.PrometheusHandler = recorder.Handler()
		}
		server := api.NewServer(apiOpts)

		hooks.OnStart(func() {
			if startErr := eng.Start(); startErr != nil {
				// Hardware sync is best-effort on startup; the engine
				// state is still consistent.
				logger.Warn("Initial hardware sync failed", "error", startErr)
			}

			if watcher != nil {
				if watchErr := watcher.Start(); watchErr != nil {
					logger.Warn("Failed to start config watcher", "error", watchErr)
				}
			}

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down")
			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}
			if watcher != nil {
				if stopErr := watcher.Stop(); stopErr != nil {
					logger.Warn("Error stopping config watcher", "error", stopErr)
				}
			}
			// Waits for any in-flight animation frame before the
			// process exits.
			if closeErr := eng.Close(); closeErr != nil {
				logger.Warn("Error restoring static colors", "error", closeErr)
			}
			if recorder != nil {
				recorder.Detach()
			}
		})
	})

	cli.Root().AddCommand(cmd.PreviewCmd)
	cli.Root().AddCommand(cmd.StateCmd)

	cli.Run()
}
