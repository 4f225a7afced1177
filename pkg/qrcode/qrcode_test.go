package qrcode_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

func defaultOptions() qrcode.Options {
	return qrcode.Options{
		Content:    "hello",
		Size:       290,
		Level:      qrcode.LevelM,
		Foreground: color.Black,
		Background: color.White,
		QuietZone:  4,
	}
}

func TestBitmap(t *testing.T) {
	t.Parallel()

	t.Run("quiet zone is padded in modules", func(t *testing.T) {
		t.Parallel()
		bitmap, err := qrcode.Bitmap(defaultOptions())
		require.NoError(t, err)

		// A short string fits version 1 (21 modules).
		require.Len(t, bitmap, 21+2*4)
		for _, row := range bitmap {
			require.Len(t, row, len(bitmap))
		}

		for i := 0; i < 4; i++ {
			for j := range bitmap {
				assert.False(t, bitmap[i][j], "top quiet zone")
				assert.False(t, bitmap[j][i], "left quiet zone")
			}
		}
		// Finder pattern corner.
		assert.True(t, bitmap[4][4])
	})

	t.Run("zero quiet zone", func(t *testing.T) {
		t.Parallel()
		opts := defaultOptions()
		opts.QuietZone = 0
		bitmap, err := qrcode.Bitmap(opts)
		require.NoError(t, err)
		assert.Len(t, bitmap, 21)
		assert.True(t, bitmap[0][0])
	})

	t.Run("higher level needs more modules", func(t *testing.T) {
		t.Parallel()
		opts := defaultOptions()
		opts.Content = strings.Repeat("x", 40)
		opts.QuietZone = 0

		opts.Level = qrcode.LevelL
		low, err := qrcode.Bitmap(opts)
		require.NoError(t, err)

		opts.Level = qrcode.LevelH
		high, err := qrcode.Bitmap(opts)
		require.NoError(t, err)

		assert.Greater(t, len(high), len(low))
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		opts := defaultOptions()
		opts.Content = ""
		_, err := qrcode.Bitmap(opts)
		assert.ErrorIs(t, err, qrcode.ErrGeneration)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)

		opts = defaultOptions()
		opts.Level = qrcode.RecoveryLevel(9)
		_, err = qrcode.Bitmap(opts)
		assert.ErrorIs(t, err, qrcode.ErrInvalidOptions)

		opts = defaultOptions()
		opts.Level = qrcode.LevelH
		opts.Content = strings.Repeat("z", 5000)
		_, err = qrcode.Bitmap(opts)
		assert.ErrorIs(t, err, qrcode.ErrGeneration)
	})
}

func TestPNG(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.Foreground = color.RGBA{R: 0x11, G: 0x22, B: 0x88, A: 0xFF}
	opts.Background = color.RGBA{R: 0xFA, G: 0xFA, B: 0xF0, A: 0xFF}

	data, err := qrcode.PNG(opts)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 290, 290), img.Bounds())

	// 29 modules at 10px each: pixel (0,0) is quiet zone, (45,45) is the
	// finder corner.
	assertRGB(t, opts.Background, img.At(0, 0))
	assertRGB(t, opts.Foreground, img.At(45, 45))
}

func TestImageKeepsEveryModule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		size      int
		quietZone int
		// outgrows reports that the grid has more modules than size pixels.
		outgrows  bool
	}{
		{name: "exact multiple", content: "hello", size: 290, quietZone: 4},
		{name: "remainder becomes margin", content: "hello", size: 333, quietZone: 4},
		{name: "large canvas", content: "hello", size: 2000, quietZone: 4},
		{name: "wide quiet zone at minimum size", content: "https://example.com", size: 50, quietZone: 50, outgrows: true},
		{name: "long text at small size", content: "https://example.com/?q=" + strings.Repeat("a", 1500), size: 150, quietZone: 4, outgrows: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := defaultOptions()
			opts.Content = tt.content
			opts.Size = tt.size
			opts.QuietZone = tt.quietZone

			bitmap, err := qrcode.Bitmap(opts)
			require.NoError(t, err)
			n := len(bitmap)
			assert.Equal(t, tt.outgrows, n > tt.size, "modules=%d", n)

			img, err := qrcode.Image(opts)
			require.NoError(t, err)
			paletted, ok := img.(*image.Paletted)
			require.True(t, ok)

			edge, scale, offset := qrcode.Layout(n, tt.size)
			require.GreaterOrEqual(t, scale, 1)
			assert.Equal(t, max(tt.size, n), edge)
			assert.Equal(t, image.Rect(0, 0, edge, edge), img.Bounds())

			for y, row := range bitmap {
				for x, dark := range row {
					want := uint8(0)
					if dark {
						want = 1
					}
					x0, y0 := offset+x*scale, offset+y*scale
					x1, y1 := x0+scale-1, y0+scale-1
					if paletted.ColorIndexAt(x0, y0) != want || paletted.ColorIndexAt(x1, y1) != want {
						t.Fatalf("module (%d,%d) lost: want index %d", x, y, want)
					}
				}
			}

			// Margin left over by whole-pixel modules is background.
			assert.Equal(t, uint8(0), paletted.ColorIndexAt(0, 0))
			assert.Equal(t, uint8(0), paletted.ColorIndexAt(edge-1, edge-1))
		})
	}

	t.Run("invalid size", func(t *testing.T) {
		t.Parallel()
		opts := defaultOptions()
		opts.Size = 0
		_, err := qrcode.Image(opts)
		assert.ErrorIs(t, err, qrcode.ErrInvalidSize)
	})
}

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, size                      int
		wantEdge, wantScale, wantOff int
	}{
		{n: 29, size: 290, wantEdge: 290, wantScale: 10, wantOff: 0},
		{n: 29, size: 300, wantEdge: 300, wantScale: 10, wantOff: 5},
		{n: 29, size: 29, wantEdge: 29, wantScale: 1, wantOff: 0},
		{n: 125, size: 50, wantEdge: 125, wantScale: 1, wantOff: 0},
		{n: 153, size: 150, wantEdge: 153, wantScale: 1, wantOff: 0},
	}

	for _, tt := range tests {
		edge, scale, off := qrcode.Layout(tt.n, tt.size)
		assert.Equal(t, tt.wantEdge, edge, "n=%d size=%d", tt.n, tt.size)
		assert.Equal(t, tt.wantScale, scale, "n=%d size=%d", tt.n, tt.size)
		assert.Equal(t, tt.wantOff, off, "n=%d size=%d", tt.n, tt.size)
	}
}

func TestJPEG(t *testing.T) {
	t.Parallel()

	data, err := qrcode.JPEG(defaultOptions())
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 290, img.Bounds().Dx())
}

func TestSVG(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.Foreground = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	data, err := qrcode.SVG(opts)
	require.NoError(t, err)

	svg := string(data)
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `viewBox="0 0 29 29"`)
	assert.Contains(t, svg, `width="290" height="290"`)
	assert.Contains(t, svg, `<rect width="29" height="29" fill="#FFFFFF"/>`)
	assert.Contains(t, svg, `<rect x="4" y="4" width="1" height="1" fill="#0000FF"/>`)
	assert.True(t, strings.HasSuffix(svg, "</svg>"))

	opts = defaultOptions()
	opts.Size = 20
	data, err = qrcode.SVG(opts)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="29" height="29"`)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format qrcode.Format
		prefix []byte
	}{
		{format: qrcode.FormatPNG, prefix: []byte("\x89PNG")},
		{format: qrcode.FormatJPEG, prefix: []byte{0xFF, 0xD8}},
		{format: qrcode.FormatSVG, prefix: []byte("<?xml")},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			data, err := qrcode.Generate(defaultOptions(), tt.format)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, tt.prefix))
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Generate(defaultOptions(), qrcode.Format("gif"))
		assert.ErrorIs(t, err, qrcode.ErrUnknownFormat)
		assert.ErrorIs(t, err, qrcode.ErrGeneration)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		a, err := qrcode.Generate(defaultOptions(), qrcode.FormatPNG)
		require.NoError(t, err)
		b, err := qrcode.Generate(defaultOptions(), qrcode.FormatPNG)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()

	uri, err := qrcode.GenerateBase64Image("https://example.com", 256)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	_, err = qrcode.GenerateBase64Image("", 256)
	assert.Error(t, err)
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data:image/svg+xml;base64,PHN2Zy8+", qrcode.DataURI("image/svg+xml", []byte("<svg/>")))
}

func assertRGB(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	assert.Equal(t, [3]uint32{wr >> 8, wg >> 8, wb >> 8}, [3]uint32{gr >> 8, gg >> 8, gb >> 8})
}
