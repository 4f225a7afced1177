package customization_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/internal/customization"
)

func TestValidateText(t *testing.T) {
	t.Parallel()

	v := customization.NewValidator(customization.DefaultMaxTextLength)

	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{name: "https url", text: "https://example.com/path?q=1"},
		{name: "plain text", text: "Hello, world"},
		{name: "mailto", text: "mailto:someone@example.com"},
		{name: "custom scheme", text: "myapp://open/item/42"},
		{name: "empty", text: "", wantErr: "URL cannot be empty"},
		{name: "whitespace only", text: "   \t ", wantErr: "URL cannot be empty"},
		{name: "too long", text: "https://example.com/" + strings.Repeat("a", 2048), wantErr: "URL too long (max 2048 characters)"},
		{name: "javascript scheme", text: "javascript:alert(1)", wantErr: "URL contains potentially unsafe protocol: javascript:"},
		{name: "uppercase data scheme", text: "  DATA:text/html,hi", wantErr: "URL contains potentially unsafe protocol: data:"},
		{name: "file scheme", text: "file:///etc/passwd", wantErr: "URL contains potentially unsafe protocol: file:"},
		{name: "bare unsafe scheme", text: "vbscript:", wantErr: "URL contains potentially unsafe protocol: vbscript:"},
		{name: "label followed by space", text: "Data: 42 units"},
		{name: "label followed by tab", text: "FTP:\tserver down"},
		{name: "embedded unsafe pattern", text: "https://example.com/?next=javascript:void(0)", wantErr: "URL contains potentially unsafe protocol: javascript:"},
		{name: "missing domain", text: "http://localhost", wantErr: "URL appears to be malformed (missing domain)"},
		{name: "newline in text", text: "line one\nline two", wantErr: "Text content cannot contain newlines"},
		{name: "carriage return in text", text: "line one\rline two", wantErr: "Text content cannot contain newlines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.ValidateText(tt.text)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, customization.IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidatorOptions(t *testing.T) {
	t.Parallel()

	v := customization.NewValidator(0)
	assert.Equal(t, customization.DefaultMaxTextLength, v.MaxTextLength())

	v = customization.NewValidator(10, customization.WithFieldName("Text"))
	err := v.ValidateText("")
	require.Error(t, err)
	assert.Equal(t, "Text cannot be empty", err.Error())

	err = v.ValidateText("01234567890")
	require.Error(t, err)
	assert.Equal(t, "Text too long (max 10 characters)", err.Error())
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	v := customization.NewValidator(customization.DefaultMaxTextLength)

	t.Run("defaults resolve to black on white at 300px", func(t *testing.T) {
		t.Parallel()
		rc, err := v.ValidateRequest("https://example.com", customization.DefaultCustomization())
		require.NoError(t, err)
		assert.Equal(t, uint32(300), rc.PixelSize)
		assert.Equal(t, customization.RGB{}, rc.Foreground)
		assert.Equal(t, customization.RGB{R: 255, G: 255, B: 255}, rc.Background)
		assert.Equal(t, uint32(4), rc.BorderWidth)
		assert.Equal(t, customization.ErrorCorrectionM, rc.ErrorCorrection)
		assert.Equal(t, "image/png", rc.ContentType)
		assert.Equal(t, "qrcode-300x300.png", rc.Filename())
	})

	t.Run("text is checked before customization", func(t *testing.T) {
		t.Parallel()
		c := customization.DefaultCustomization()
		c.BorderWidth = 100
		_, err := v.ValidateRequest("", c)
		require.Error(t, err)
		assert.Equal(t, "URL cannot be empty", err.Error())
	})

	t.Run("metadata", func(t *testing.T) {
		t.Parallel()
		c := customization.DefaultCustomization()
		c.Format = customization.FormatJPEG
		c.Size = customization.SizeLarge
		rc, err := v.ValidateRequest("hello", c)
		require.NoError(t, err)

		md := rc.Metadata()
		assert.Equal(t, "jpeg", md.Format)
		assert.Equal(t, "large (600px)", md.Size)
		assert.Equal(t, "M", md.ErrorCorrection)
		assert.Equal(t, customization.DefaultColors(), md.Colors)
		assert.Equal(t, "qrcode-600x600.jpg", rc.Filename())
		assert.Equal(t, c, rc.Customization())
	})
}

func TestNormalizeAndValidate(t *testing.T) {
	t.Parallel()

	v := customization.NewValidator(customization.DefaultMaxTextLength)
	n := customization.NewNormalizer(customization.Defaults{})

	t.Run("no input", func(t *testing.T) {
		t.Parallel()
		rc, err := customization.NormalizeAndValidate("https://example.com", customization.Input{}, v, n)
		require.NoError(t, err)
		assert.Equal(t, uint32(300), rc.PixelSize)
		assert.Equal(t, customization.FormatPNG, rc.Format)
	})

	t.Run("flattened wins over structured", func(t *testing.T) {
		t.Parallel()
		structured := customization.DefaultCustomization()
		structured.Size = customization.SizeLarge
		rc, err := customization.NormalizeAndValidate("hi", customization.Input{
			Structured: &structured,
			Flattened:  &customization.Flattened{Size: ptr("small")},
		}, v, n)
		require.NoError(t, err)
		assert.Equal(t, uint32(150), rc.PixelSize)
	})

	t.Run("structured is validated", func(t *testing.T) {
		t.Parallel()
		structured := customization.DefaultCustomization()
		structured.Colors.Foreground = "#ffffff"
		_, err := customization.NormalizeAndValidate("hi", customization.Input{Structured: &structured}, v, n)
		require.Error(t, err)
		assert.Equal(t, "Color validation failed: Foreground and background colors cannot be the same", err.Error())
	})

	t.Run("unsafe text is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := customization.NormalizeAndValidate("javascript:alert(1)", customization.Input{}, v, n)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsafe protocol")
	})

	t.Run("custom size from query", func(t *testing.T) {
		t.Parallel()
		rc, err := customization.NormalizeAndValidate("hi", customization.Input{
			Flattened: &customization.Flattened{Size: ptr("70"), Format: ptr("SVG")},
		}, v, n)
		require.NoError(t, err)
		assert.Equal(t, uint32(70), rc.PixelSize)
		assert.Equal(t, "qrcode-70x70.svg", rc.Filename())
	})
}
