package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

func TestClassifyBoundaryExactness(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	cases := []struct {
		width int
		want  Breakpoint
	}{
		{-500, XS},
		{-1, XS},
		{0, XS},
		{599, XS},
		{600, SM},
		{959, SM},
		{960, MD},
		{1279, MD},
		{1280, LG},
		{1919, LG},
		{1920, XL},
		{10000, XL},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, th.Classify(tc.width), "width %d", tc.width)
	}
}

func TestPredicatesAreExclusiveAndExhaustive(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	preds := th.Predicates()

	for w := 0; w <= 2500; w++ {
		matches := 0
		for _, p := range preds {
			if p(w) {
				matches++
			}
		}
		require.LessOrEqual(t, matches, 1, "width %d matched more than one predicate", w)
		if matches == 0 {
			require.GreaterOrEqual(t, w, 1920, "width %d fell through to xl", w)
		} else {
			require.Less(t, w, 1920, "width %d should be xl", w)
		}
	}
}

func TestRangesAreContiguous(t *testing.T) {
	t.Parallel()

	ranges := DefaultThresholds().Ranges()
	require.Equal(t, 0, ranges[XS].Min)
	for i := 1; i < len(ranges); i++ {
		assert.Equal(t, ranges[i-1].Max+1, ranges[i].Min)
	}
	assert.Equal(t, Unbounded, ranges[XL].Max)
}

func TestRangeMediaQuery(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	assert.Equal(t, "screen and (max-width: 599px)", th.Range(XS).MediaQuery())
	assert.Equal(t, "screen and (min-width: 600px) and (max-width: 959px)", th.Range(SM).MediaQuery())
	assert.Equal(t, "screen and (min-width: 1920px)", th.Range(XL).MediaQuery())
	assert.Equal(t, Range{}, th.Range(Breakpoint(42)))
}

func TestThresholdsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultThresholds().Validate())

	cases := []struct {
		name  string
		th    Thresholds
		field string
	}{
		{"negative xs", Thresholds{XS: -1, SM: 10, MD: 20, LG: 30}, "thresholds.xs"},
		{"sm equals xs", Thresholds{XS: 10, SM: 10, MD: 20, LG: 30}, "thresholds.sm"},
		{"md below sm", Thresholds{XS: 10, SM: 20, MD: 15, LG: 30}, "thresholds.md"},
		{"lg below md", Thresholds{XS: 10, SM: 20, MD: 30, LG: 5}, "thresholds.lg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.th.Validate()
			var valErr *apperrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestParseBreakpoint(t *testing.T) {
	t.Parallel()

	for _, b := range All() {
		parsed, err := ParseBreakpoint(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}

	parsed, err := ParseBreakpoint(" LG ")
	require.NoError(t, err)
	assert.Equal(t, LG, parsed)

	_, err = ParseBreakpoint("xxl")
	require.Error(t, err)

	assert.Equal(t, "breakpoint(9)", Breakpoint(9).String())
	assert.False(t, Breakpoint(-1).Valid())
}

func TestBreakpointTextRoundTrip(t *testing.T) {
	t.Parallel()

	text, err := MD.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "md", string(text))

	var b Breakpoint
	require.NoError(t, b.UnmarshalText([]byte("xl")))
	assert.Equal(t, XL, b)

	_, err = Breakpoint(7).MarshalText()
	require.Error(t, err)
}
