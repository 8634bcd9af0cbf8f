// Package breakpoint maps a viewport width to one of five named breakpoints and
// keeps that mapping in sync with viewport changes reported by the host.
package breakpoint

import (
	"fmt"
	"strings"
)

// Breakpoint is a named viewport-width range, ordered by increasing width.
type Breakpoint int

const (
	XS Breakpoint = iota
	SM
	MD
	LG
	XL
)

var names = [...]string{"xs", "sm", "md", "lg", "xl"}

// All returns every breakpoint in ascending width order.
func All() []Breakpoint {
	return []Breakpoint{XS, SM, MD, LG, XL}
}

func (b Breakpoint) String() string {
	if b < XS || b > XL {
		return fmt.Sprintf("breakpoint(%d)", int(b))
	}
	return names[b]
}

// Valid reports whether b is one of the five known breakpoints.
func (b Breakpoint) Valid() bool {
	return b >= XS && b <= XL
}

// ParseBreakpoint converts a name such as "md" into a Breakpoint.
func ParseBreakpoint(name string) (Breakpoint, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == needle {
			return Breakpoint(i), nil
		}
	}
	return XS, fmt.Errorf("unknown breakpoint %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (b Breakpoint) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("unknown breakpoint %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Breakpoint) UnmarshalText(text []byte) error {
	parsed, err := ParseBreakpoint(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
