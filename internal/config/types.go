// Package config loads and validates viewkit's YAML configuration.
package config

import (
	"github.com/alexisbeaulieu97/viewkit/internal/boolish"
	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/cookie"
)

// Feature names read by the TUI.
const (
	FeatureDev         = "dev"
	FeatureShowAccount = "show_account"
	FeatureShowHistory = "show_history"
)

// Config is the root configuration document.
type Config struct {
	Thresholds breakpoint.Thresholds `yaml:"thresholds"`
	CellWidth  int                   `yaml:"cell_width" validate:"gte=1,lte=64"`
	LogLevel   string                `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Theme      Theme                 `yaml:"theme"`
	Features   map[string]any        `yaml:"features"`
	Session    Session               `yaml:"session"`
	Account    Account               `yaml:"account"`
}

// Theme customises breakpoint badge colors, keyed by breakpoint name.
type Theme struct {
	Badges map[string]string `yaml:"badges" validate:"dive,keys,breakpoint_name,endkeys,hex_rgb"`
}

// Session carries browser-style session data for the account view.
type Session struct {
	Cookie string `yaml:"cookie"`
}

// Account is the customer shown by the account view.
type Account struct {
	ID         string `yaml:"id"`
	Email      string `yaml:"email" validate:"omitempty,email"`
	Locale     string `yaml:"locale"`
	Country    string `yaml:"country"`
	Currency   string `yaml:"currency"`
	LastUserIP string `yaml:"last_user_ip" validate:"omitempty,ip"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Thresholds: breakpoint.DefaultThresholds(),
		CellWidth:  8,
		LogLevel:   "info",
		Features: map[string]any{
			FeatureShowAccount: true,
		},
	}
}

// Feature reads a boolean-like feature flag. Missing flags are off.
func (c *Config) Feature(name string) bool {
	if c == nil {
		return false
	}
	return boolish.HasTrueValue(c.Features[name])
}

// FeatureDisabled reports whether a flag is explicitly switched off. Flags
// that default to on are read this way so that a missing key keeps them on.
func (c *Config) FeatureDisabled(name string) bool {
	if c == nil {
		return false
	}
	return boolish.HasFalseValue(c.Features[name])
}

// SetFeature sets a feature flag value.
func (c *Config) SetFeature(name string, value any) {
	if c.Features == nil {
		c.Features = make(map[string]any)
	}
	c.Features[name] = value
}

// OverrideIP returns the overrideIP cookie from the session, if any.
func (c *Config) OverrideIP() (string, bool) {
	if c == nil {
		return "", false
	}
	return cookie.OverrideIP(c.Session.Cookie)
}
