package customization_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/internal/customization"
)

func TestSizePixels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(150), customization.SizeSmall.Pixels())
	assert.Equal(t, uint32(300), customization.SizeMedium.Pixels())
	assert.Equal(t, uint32(600), customization.SizeLarge.Pixels())
	assert.Equal(t, uint32(500), customization.CustomSize(500).Pixels())

	var zero customization.Size
	assert.Equal(t, uint32(300), zero.Pixels(), "zero size is medium")
}

func TestSizeValidateBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    customization.Size
		wantErr string
	}{
		{name: "preset small", size: customization.SizeSmall},
		{name: "preset large", size: customization.SizeLarge},
		{name: "lower bound", size: customization.CustomSize(50)},
		{name: "upper bound", size: customization.CustomSize(2000)},
		{name: "below lower bound", size: customization.CustomSize(49), wantErr: "at least 50 pixels"},
		{name: "above upper bound", size: customization.CustomSize(2001), wantErr: "cannot exceed 2000 pixels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.size.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	t.Run("presets are case insensitive", func(t *testing.T) {
		t.Parallel()
		s, err := customization.ParseSize("LARGE")
		require.NoError(t, err)
		assert.Equal(t, customization.SizeLarge, s)
	})

	t.Run("numeric string becomes custom", func(t *testing.T) {
		t.Parallel()
		s, err := customization.ParseSize("70")
		require.NoError(t, err)
		assert.True(t, s.IsCustom())
		assert.Equal(t, uint32(70), s.Pixels())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := customization.ParseSize("abc")
		require.Error(t, err)
		assert.Equal(t, "Size must be 'small', 'medium', 'large', or a number", err.Error())
	})

	t.Run("negative is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := customization.ParseSize("-10")
		assert.Error(t, err)
	})
}

func TestSizeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "medium (300px)", customization.SizeMedium.String())
	assert.Equal(t, "custom (70px)", customization.CustomSize(70).String())
}

func TestSizeJSON(t *testing.T) {
	t.Parallel()

	t.Run("preset", func(t *testing.T) {
		t.Parallel()
		var s customization.Size
		require.NoError(t, json.Unmarshal([]byte(`"small"`), &s))
		assert.Equal(t, customization.SizeSmall, s)

		out, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `"small"`, string(out))
	})

	t.Run("custom object", func(t *testing.T) {
		t.Parallel()
		var s customization.Size
		require.NoError(t, json.Unmarshal([]byte(`{"custom": 420}`), &s))
		assert.Equal(t, customization.CustomSize(420), s)

		out, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `{"custom": 420}`, string(out))
	})

	t.Run("bare number", func(t *testing.T) {
		t.Parallel()
		var s customization.Size
		require.NoError(t, json.Unmarshal([]byte(`128`), &s))
		assert.Equal(t, customization.CustomSize(128), s)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		var s customization.Size
		assert.Error(t, json.Unmarshal([]byte(`"huge"`), &s))
	})
}
