package breakpoint

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

// Unbounded marks a Range without an upper limit.
const Unbounded = -1

// Range is an inclusive width interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether width falls inside the range.
func (r Range) Contains(width int) bool {
	if width < r.Min {
		return false
	}
	return r.Max == Unbounded || width <= r.Max
}

// MediaQuery renders the range as a screen media query.
func (r Range) MediaQuery() string {
	parts := []string{"screen"}
	if r.Min > 0 {
		parts = append(parts, fmt.Sprintf("(min-width: %dpx)", r.Min))
	}
	if r.Max != Unbounded {
		parts = append(parts, fmt.Sprintf("(max-width: %dpx)", r.Max))
	}
	return strings.Join(parts, " and ")
}

func (r Range) String() string {
	return r.MediaQuery()
}

// Predicate is a boundary test on a viewport width.
type Predicate func(width int) bool

// Thresholds holds the inclusive upper width of each bounded breakpoint.
// XL has no threshold: it covers everything above LG.
type Thresholds struct {
	XS int `yaml:"xs" validate:"gte=0"`
	SM int `yaml:"sm" validate:"gtfield=XS"`
	MD int `yaml:"md" validate:"gtfield=SM"`
	LG int `yaml:"lg" validate:"gtfield=MD"`
}

// DefaultThresholds returns the standard 599/959/1279/1919 boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{XS: 599, SM: 959, MD: 1279, LG: 1919}
}

// Validate rejects negative or non-increasing thresholds.
func (t Thresholds) Validate() error {
	if t.XS < 0 {
		return apperrors.NewValidationError("thresholds.xs", "must not be negative", nil)
	}
	checks := []struct {
		field string
		prev  string
		lo    int
		hi    int
	}{
		{"thresholds.sm", "thresholds.xs", t.XS, t.SM},
		{"thresholds.md", "thresholds.sm", t.SM, t.MD},
		{"thresholds.lg", "thresholds.md", t.MD, t.LG},
	}
	for _, c := range checks {
		if c.hi <= c.lo {
			return apperrors.NewValidationError(c.field, fmt.Sprintf("must be greater than %s (%d)", c.prev, c.lo), nil)
		}
	}
	return nil
}

// Ranges returns the contiguous ranges for XS, SM, MD, LG and XL in order.
func (t Thresholds) Ranges() [5]Range {
	return [5]Range{
		{Min: 0, Max: t.XS},
		{Min: t.XS + 1, Max: t.SM},
		{Min: t.SM + 1, Max: t.MD},
		{Min: t.MD + 1, Max: t.LG},
		{Min: t.LG + 1, Max: Unbounded},
	}
}

// Range returns the width range covered by b.
func (t Thresholds) Range(b Breakpoint) Range {
	if !b.Valid() {
		return Range{}
	}
	return t.Ranges()[b]
}

// Predicates returns the XS, SM, MD and LG boundary predicates in evaluation order.
func (t Thresholds) Predicates() [4]Predicate {
	ranges := t.Ranges()
	var out [4]Predicate
	for i := range out {
		r := ranges[i]
		out[i] = r.Contains
	}
	return out
}

// Classify runs the first-match chain XS, SM, MD, LG and falls back to XL.
// Negative widths classify as 0.
func (t Thresholds) Classify(width int) Breakpoint {
	if width < 0 {
		width = 0
	}
	for i, match := range t.Predicates() {
		if match(width) {
			return Breakpoint(i)
		}
	}
	return XL
}
