// Package boolish interprets loosely typed configuration values as booleans.
package boolish

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// HasTrueValue reports whether v should be read as true:
//   - a true bool
//   - any non-zero number
//   - a numeric string greater than zero
//   - "true" or "yes" in any case
//
// nil, empty strings and zero values are false.
func HasTrueValue(v any) bool {
	switch k, n, s := classify(v); k {
	case kindBool:
		return n != 0
	case kindNumber:
		return n != 0 && !math.IsNaN(n)
	case kindString:
		if f, ok := parseNumber(s); ok {
			return f > 0
		}
		s = strings.ToLower(s)
		return s == "true" || s == "yes"
	default:
		return false
	}
}

// HasFalseValue reports whether v should be read as an explicit false:
//   - a false bool
//   - the number zero
//   - a numeric string equal to zero
//   - "false" or "no" in any case
//
// nil and empty strings are neither true nor false, so they return false.
//
// Deprecated: model new settings as opt-in and test them with HasTrueValue.
func HasFalseValue(v any) bool {
	switch k, n, s := classify(v); k {
	case kindBool:
		return n == 0
	case kindNumber:
		return n == 0
	case kindString:
		if f, ok := parseNumber(s); ok {
			return f == 0
		}
		s = strings.ToLower(s)
		return s == "false" || s == "no"
	default:
		return false
	}
}

type kind int

const (
	kindNone kind = iota
	kindBool
	kindNumber
	kindString
)

// classify unwraps pointers and reduces v to a bool (as 0/1), number or
// non-empty string. Empty strings and nil classify as kindNone.
func classify(v any) (kind, float64, string) {
	if v == nil {
		return kindNone, 0, ""
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return kindNone, 0, ""
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return kindBool, 1, ""
		}
		return kindBool, 0, ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindNumber, float64(rv.Int()), ""
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindNumber, float64(rv.Uint()), ""
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return kindNone, 0, ""
		}
		return kindNumber, f, ""
	case reflect.String:
		if rv.Len() == 0 {
			return kindNone, 0, ""
		}
		return kindString, 0, rv.String()
	default:
		return kindNone, 0, ""
	}
}

// parseNumber accepts decimal numbers with surrounding whitespace. A blank
// string counts as zero.
func parseNumber(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
