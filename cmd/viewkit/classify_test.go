package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

func TestClassifyPrintsBreakpointPerWidth(t *testing.T) {
	res := execute(t, "classify", "599", "600", "1279", "1920")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 4)
	want := []string{"xs", "sm", "md", "xl"}
	for i, line := range lines {
		fields := strings.Fields(line)
		require.GreaterOrEqual(t, len(fields), 2, line)
		assert.Equal(t, want[i], fields[1])
	}
	assert.Contains(t, lines[1], "(min-width: 600px) and (max-width: 959px)")
}

func TestClassifyColumnsUsesCellWidth(t *testing.T) {
	path := writeConfig(t, "cell_width: 10\n")

	res := execute(t, "--config", path, "classify", "--columns", "100")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "1000"), res.stdout)
	assert.Contains(t, res.stdout, "md")
}

func TestClassifyHonoursConfiguredThresholds(t *testing.T) {
	path := writeConfig(t, "thresholds:\n  xs: 99\n  sm: 199\n  md: 299\n  lg: 399\n")

	res := execute(t, "--config", path, "classify", "250")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "md")
}

func TestClassifyRejectsBadWidth(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"classify", "wide"}},
		{"negative after separator", []string{"classify", "--", "-5"}},
		{"negative mixed with valid", []string{"classify", "--", "800", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			var valErr *apperrors.ValidationError
			require.ErrorAs(t, res.err, &valErr)
			assert.Equal(t, "width", valErr.Field)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestClassifyRequiresArgument(t *testing.T) {
	res := execute(t, "classify")
	require.Error(t, res.err)
}
