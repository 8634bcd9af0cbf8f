package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToRGB(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#ff8800", RGB{255, 136, 0}, true},
		{"ff8800", RGB{255, 136, 0}, true},
		{"#F80", RGB{255, 136, 0}, true},
		{"abc", RGB{0xaa, 0xbb, 0xcc}, true},
		{"#000000", RGB{0, 0, 0}, true},
		{"#FFFFFF", RGB{255, 255, 255}, true},
		{"", RGB{}, false},
		{"#12345", RGB{}, false},
		{"#1234567", RGB{}, false},
		{"#gg0000", RGB{}, false},
		{"rgba(0,0,0,1)", RGB{}, false},
	}

	for _, tc := range cases {
		got, ok := HexToRGB(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestContrastColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Black, ContrastColor("#FFFFFF"))
	assert.Equal(t, White, ContrastColor("#000000"))
	assert.Equal(t, Black, ContrastColor("ffeb3b"))
	assert.Equal(t, White, ContrastColor("#1e88e5"))
	assert.Equal(t, "", ContrastColor("not-a-color"))
}

func TestContrastAroundThreshold(t *testing.T) {
	t.Parallel()

	dark, ok := HexToRGB("#b9b9b9")
	assert.True(t, ok)
	assert.Less(t, dark.Luma(), 186.0)
	assert.Equal(t, White, ContrastColor("#b9b9b9"))

	light, ok := HexToRGB("#bbbbbb")
	assert.True(t, ok)
	assert.Greater(t, light.Luma(), 186.0)
	assert.Equal(t, Black, ContrastColor("#bbbbbb"))
}
