package utils

import (
	"strconv"
	"strings"
)

// ToFloat64 converts various types to float64 using explicit type switching.
// Strings are trimmed and parsed; anything unparseable yields 0.
func ToFloat64(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case uint32:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case []byte:
		return ToFloat64(string(v))
	default:
		return 0
	}
}

// ToInt converts various types to int, truncating fractions.
func ToInt(val any) int {
	return int(ToFloat64(val))
}

// ParseLeadingInt reads an optionally signed run of decimal digits from the
// start of s, after leading whitespace, and ignores whatever follows.
// "1700000000.5" gives 1700000000, "42abc" gives 42, "abc" gives 0.
func ParseLeadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	if s == "" {
		return 0
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Out of range; saturate instead of dropping to zero.
		n = 1<<63 - 1
	}
	if neg {
		return -n
	}
	return n
}
