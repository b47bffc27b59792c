package filters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_ReplaceOnWrite(t *testing.T) {
	s := NewStore()
	before := s.Current()

	next, err := s.Update("contrast", 150)
	require.NoError(t, err)
	require.Equal(t, 150, next.Contrast)
	require.Equal(t, next, s.Current())

	// Earlier snapshots are values and never change.
	require.Equal(t, 100, before.Contrast)
}

func TestStore_FailedUpdateKeepsState(t *testing.T) {
	s := NewStore()
	_, err := s.Update("hue", 50)
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.Equal(t, DefaultConfig(), s.Current())
}

func TestStore_ResetAndFrom(t *testing.T) {
	s := NewStoreFrom(Config{Brightness: 300, Blur: -1})
	require.Equal(t, 200, s.Current().Brightness)
	require.Equal(t, 0, s.Current().Blur)

	require.Equal(t, DefaultConfig(), s.Reset())
	require.Equal(t, DefaultConfig(), s.Current())
}
