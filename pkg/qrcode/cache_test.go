package qrcode_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("hit after miss", func(t *testing.T) {
		t.Parallel()
		var hits, misses atomic.Int32
		cache, err := qrcode.NewCache(4, qrcode.WithLookupHook(func(hit bool) {
			if hit {
				hits.Add(1)
			} else {
				misses.Add(1)
			}
		}))
		require.NoError(t, err)

		first, err := cache.Generate(defaultOptions(), qrcode.FormatPNG)
		require.NoError(t, err)
		second, err := cache.Generate(defaultOptions(), qrcode.FormatPNG)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), hits.Load())
		assert.Equal(t, int32(1), misses.Load())
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("format and options are part of the key", func(t *testing.T) {
		t.Parallel()
		cache, err := qrcode.NewCache(8)
		require.NoError(t, err)

		_, err = cache.Generate(defaultOptions(), qrcode.FormatPNG)
		require.NoError(t, err)
		_, err = cache.Generate(defaultOptions(), qrcode.FormatSVG)
		require.NoError(t, err)

		opts := defaultOptions()
		opts.QuietZone = 2
		_, err = cache.Generate(opts, qrcode.FormatPNG)
		require.NoError(t, err)

		assert.Equal(t, 3, cache.Len())
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		cache, err := qrcode.NewCache(2)
		require.NoError(t, err)

		for _, content := range []string{"a", "b", "c"} {
			opts := defaultOptions()
			opts.Content = content
			_, err := cache.Generate(opts, qrcode.FormatSVG)
			require.NoError(t, err)
		}
		assert.Equal(t, 2, cache.Len())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()
		cache, err := qrcode.NewCache(2)
		require.NoError(t, err)

		opts := defaultOptions()
		opts.Content = ""
		_, err = cache.Generate(opts, qrcode.FormatPNG)
		assert.ErrorIs(t, err, qrcode.ErrGeneration)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		cache, err := qrcode.NewCache(0)
		require.NoError(t, err)
		data, err := cache.Generate(defaultOptions(), qrcode.FormatPNG)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, 0, cache.Len())

		var nilCache *qrcode.Cache
		data, err = nilCache.Generate(defaultOptions(), qrcode.FormatPNG)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("negative size", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.NewCache(-1)
		assert.Error(t, err)
	})
}
