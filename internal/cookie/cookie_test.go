package cookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideIP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"only cookie", "overrideIP=10.0.0.1", "10.0.0.1", true},
		{"among others", "session=abc; overrideIP= 192.168.1.7 ; theme=dark", "192.168.1.7", true},
		{"first match wins", "overrideIP=1.1.1.1;overrideIP=2.2.2.2", "1.1.1.1", true},
		{"missing", "session=abc; theme=dark", "", false},
		{"empty header", "", "", false},
		{"no value separator", "overrideIP", "", false},
		{"empty value", "overrideIP=", "", true},
		{"value stops at second equals", "overrideIP=a=b", "a", true},
		{"case sensitive", "overrideip=1.2.3.4", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := OverrideIP(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLookupPrefixMatch(t *testing.T) {
	t.Parallel()

	got, ok := Lookup("overrideIPv6=::1; overrideIP=10.0.0.2", OverrideIPName)
	assert.True(t, ok)
	assert.Equal(t, "::1", got, "entries are matched by prefix")

	_, ok = Lookup("a=b", "")
	assert.False(t, ok)
}
