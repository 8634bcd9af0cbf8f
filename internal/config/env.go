package config

import (
	"os"
	"strconv"
	"strings"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

// Environment variables that override file settings.
const (
	EnvDev       = "VIEWKIT_DEV"
	EnvCookie    = "VIEWKIT_COOKIE"
	EnvCellWidth = "VIEWKIT_CELL_WIDTH"
	EnvLogLevel  = "VIEWKIT_LOG_LEVEL"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays environment overrides onto cfg and revalidates it.
// A nil lookup reads the process environment.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if val, ok := lookup(EnvDev); ok {
		cfg.SetFeature(FeatureDev, val)
	}
	if val, ok := lookup(EnvCookie); ok {
		cfg.Session.Cookie = val
	}
	if val, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(val) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(val))
	}
	if val, ok := lookup(EnvCellWidth); ok && strings.TrimSpace(val) != "" {
		width, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return apperrors.NewValidationError("cell_width", EnvCellWidth+" must be an integer", err)
		}
		cfg.CellWidth = width
	}

	return Validate(cfg)
}
