package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalInt(t *testing.T) {
	signals := map[string]any{
		"brightness": float64(120),
		"blur":       14.6,
		"sepia":      "50",
		"contrast":   nil,
		"huge":       1e30,
	}

	v, err := SignalInt(signals, "brightness")
	require.NoError(t, err)
	require.Equal(t, 120, v)

	v, err = SignalInt(signals, "blur")
	require.NoError(t, err)
	require.Equal(t, 15, v)

	v, err = SignalInt(signals, "huge")
	require.NoError(t, err)
	require.Greater(t, v, 200)

	_, err = SignalInt(signals, "sepia")
	require.ErrorIs(t, err, ErrSignalNotNumeric)

	_, err = SignalInt(signals, "contrast")
	require.ErrorIs(t, err, ErrSignalMissing)

	_, err = SignalInt(signals, "saturation")
	require.ErrorIs(t, err, ErrSignalMissing)
}
