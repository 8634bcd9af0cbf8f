// Package cookie reads values out of a raw Cookie header string.
package cookie

import "strings"

// OverrideIPName is the cookie that pins the client IP for debugging sessions.
const OverrideIPName = "overrideIP"

// Lookup returns the value of the first entry in header whose trimmed text
// starts with name. The value is the text between the first and second '='
// with surrounding whitespace removed.
func Lookup(header, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, part := range strings.Split(header, ";") {
		if !strings.HasPrefix(strings.TrimSpace(part), name) {
			continue
		}
		fields := strings.Split(part, "=")
		if len(fields) < 2 {
			return "", false
		}
		return strings.TrimSpace(fields[1]), true
	}
	return "", false
}

// OverrideIP returns the overrideIP cookie value, if set.
func OverrideIP(header string) (string, bool) {
	return Lookup(header, OverrideIPName)
}
