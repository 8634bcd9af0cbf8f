package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/viewkit/internal/config"
	"github.com/alexisbeaulieu97/viewkit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/viewkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/viewkit/internal/logger"
	"github.com/alexisbeaulieu97/viewkit/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	ConfigPath string
	Config     *config.Config
	// Log is the zerolog CLI logger.
	Log *logger.Logger
	// Logger is the structured logger handed to internal services.
	Logger    ports.Logger
	Publisher *events.LoggingPublisher
	// Lookup reads environment overrides; nil uses the process environment.
	Lookup config.LookupFunc
}

// init loads configuration and builds the loggers. It is called once per
// command invocation from the root PersistentPreRunE.
func (a *AppContext) init(flags *rootFlags, stderr io.Writer) error {
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.ApplyEnv(cfg, a.Lookup); err != nil {
		return fmt.Errorf("apply environment: %w", err)
	}
	if flags.dev {
		cfg.SetFeature(config.FeatureDev, true)
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        stderr,
		Dev:           cfg.Feature(config.FeatureDev),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	structured, err := logging.New(logging.Options{
		Writer: stderr,
		Level:  level,
		Layer:  "cli",
	})
	if err != nil {
		return fmt.Errorf("create structured logger: %w", err)
	}

	a.ConfigPath = flags.configPath
	a.Config = cfg
	a.Log = log.WithFields(map[string]any{"config": flags.configPath})
	a.Logger = structured
	a.Publisher = events.NewLoggingPublisher(structured.With("component", "events"))
	a.Log.Dev("config loaded", cfg.Thresholds, cfg.CellWidth)
	return nil
}

// CommandContext returns a context carrying a fresh correlation id and a
// logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	base := a.Logger
	if base == nil {
		base = logging.NewNoOpLogger()
	}
	return ctx, base.With("component", component)
}
