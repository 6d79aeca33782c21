package cookie

import (
	"math"
	"time"
)

// SecondsCeiling is the largest raw expiry still read as Unix seconds.
// Anything at or above it is taken to be milliseconds already.
const SecondsCeiling = 4_000_000_000

// NormalizeExpiry converts a raw expiry of unknown unit to milliseconds.
// Values below SecondsCeiling are seconds and get multiplied by 1000.
func NormalizeExpiry(raw int64) int64 {
	if raw < math.MinInt64/1000 {
		return math.MinInt64
	}
	if raw < SecondsCeiling {
		return raw * 1000
	}
	return raw
}

// NormalizeExpiryFloat is NormalizeExpiry for fractional inputs, as found in
// browser-extension exports ("expirationDate": 1735689600.123456).
func NormalizeExpiryFloat(raw float64) int64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	if raw == math.Trunc(raw) && math.Abs(raw) < 1<<53 {
		return NormalizeExpiry(int64(raw))
	}
	if raw < SecondsCeiling {
		return roundSaturating(raw * 1000)
	}
	return roundSaturating(raw)
}

// roundSaturating rounds f to the nearest int64, clamping values out of range.
func roundSaturating(f float64) int64 {
	f = math.Round(f)
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// NowMicros returns t in the store's access-timestamp unit.
func NowMicros(t time.Time) int64 {
	return t.UnixMicro()
}
