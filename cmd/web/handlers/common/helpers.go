package common

import (
	"errors"
	"math"
)

var (
	ErrSignalMissing    = errors.New("signal missing")
	ErrSignalNotNumeric = errors.New("signal is not a finite number")
)

// SignalInt reads a numeric datastar signal and rounds it to the nearest
// integer. JSON numbers decode as float64; numeric strings are rejected.
func SignalInt(signals map[string]any, key string) (int, error) {
	raw, ok := signals[key]
	if !ok || raw == nil {
		return 0, ErrSignalMissing
	}
	v, ok := raw.(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrSignalNotNumeric
	}
	// Keep the conversion inside int range; the value is clamped afterwards.
	v = math.Max(math.Min(math.Round(v), math.MaxInt32), math.MinInt32)
	return int(v), nil
}
