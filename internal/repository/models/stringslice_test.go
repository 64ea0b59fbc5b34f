package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceValue(t *testing.T) {
	t.Run("serializes to a JSON array", func(t *testing.T) {
		v, err := StringSlice{"2025-03-09", "2025-03-10"}.Value()
		require.NoError(t, err)
		assert.Equal(t, `["2025-03-09","2025-03-10"]`, v)
	})

	t.Run("nil slice serializes to an empty array", func(t *testing.T) {
		v, err := StringSlice(nil).Value()
		require.NoError(t, err)
		assert.Equal(t, `[]`, v)
	})
}

func TestStringSliceScan(t *testing.T) {
	t.Run("scans a string column", func(t *testing.T) {
		var s StringSlice
		require.NoError(t, s.Scan(`["a","b"]`))
		assert.Equal(t, StringSlice{"a", "b"}, s)
	})

	t.Run("scans a byte column", func(t *testing.T) {
		var s StringSlice
		require.NoError(t, s.Scan([]byte(`["a"]`)))
		assert.Equal(t, StringSlice{"a"}, s)
	})

	t.Run("nil column yields an empty slice", func(t *testing.T) {
		var s StringSlice
		require.NoError(t, s.Scan(nil))
		assert.Empty(t, s)
	})

	t.Run("garbage is an error", func(t *testing.T) {
		var s StringSlice
		assert.Error(t, s.Scan(`not-json`))
	})
}
