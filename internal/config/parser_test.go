package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "viewkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, breakpoint.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, 8, cfg.CellWidth)
	assert.True(t, cfg.Feature(FeatureShowAccount))
	assert.False(t, cfg.Feature(FeatureDev))
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full document",
			contents: `thresholds:
  xs: 59
  sm: 95
  md: 127
  lg: 191
cell_width: 1
log_level: debug
theme:
  badges:
    xs: "#ff0000"
    xl: "0f0"
features:
  dev: "yes"
  show_account: 0
  show_history: "no"
session:
  cookie: "a=b; overrideIP=10.1.2.3"
account:
  id: "1"
  email: todo@test.nl
  locale: en_en
  country: England
  currency: Euro
  last_user_ip: 127.0.0.1
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, breakpoint.Thresholds{XS: 59, SM: 95, MD: 127, LG: 191}, cfg.Thresholds)
				assert.Equal(t, 1, cfg.CellWidth)
				assert.Equal(t, "#ff0000", cfg.Theme.Badges["xs"])
				assert.True(t, cfg.Feature(FeatureDev))
				assert.False(t, cfg.Feature(FeatureShowAccount))
				assert.True(t, cfg.FeatureDisabled(FeatureShowHistory))
				ip, ok := cfg.OverrideIP()
				assert.True(t, ok)
				assert.Equal(t, "10.1.2.3", ip)
				assert.Equal(t, "todo@test.nl", cfg.Account.Email)
			},
		},
		{
			name:     "partial document keeps defaults",
			contents: "cell_width: 10\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, 10, cfg.CellWidth)
				assert.Equal(t, breakpoint.DefaultThresholds(), cfg.Thresholds)
				assert.True(t, cfg.Feature(FeatureShowAccount))
				assert.False(t, cfg.FeatureDisabled(FeatureShowHistory))
			},
		},
		{
			name:     "empty document",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, Default().CellWidth, cfg.CellWidth)
			},
		},
		{
			name:     "syntax error reports line",
			contents: "cell_width: 8\nthresholds: [1, 2\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown field",
			contents: "cell_size: 8\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "overlapping thresholds",
			contents: "thresholds:\n  xs: 600\n  sm: 500\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "thresholds.sm", valErr.Field)
			},
		},
		{
			name:     "cell width out of range",
			contents: "cell_width: 0\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "cell_width", valErr.Field)
			},
		},
		{
			name:     "bad badge color",
			contents: "theme:\n  badges:\n    md: \"#12345\"\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Contains(t, valErr.Message, "hex_rgb")
			},
		},
		{
			name:     "bad badge key",
			contents: "theme:\n  badges:\n    xxl: \"#123456\"\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Contains(t, valErr.Message, "breakpoint_name")
			},
		},
		{
			name:     "bad email",
			contents: "account:\n  email: nope\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "account.email", valErr.Field)
			},
		},
		{
			name:     "bad log level",
			contents: "log_level: loud\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "log_level", valErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme.Badges = map[string]string{"lg": "#abcdef"}
	data, err := Marshal(cfg)
	require.NoError(t, err)

	parsed, err := Parse("inline", data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Thresholds, parsed.Thresholds)
	assert.Equal(t, "#abcdef", parsed.Theme.Badges["lg"])

	_, err = Marshal(nil)
	require.Error(t, err)
}
