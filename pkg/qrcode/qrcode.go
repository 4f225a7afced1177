package qrcode

import (
	"fmt"
	"image"
	"image/color"

	goqr "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// RecoveryLevel is the share of damaged codewords a code can recover from.
type RecoveryLevel int

const (
	LevelL RecoveryLevel = iota // ~7%
	LevelM                      // ~15%
	LevelQ                      // ~25%
	LevelH                      // ~30%
)

func (l RecoveryLevel) lib() (goqr.RecoveryLevel, error) {
	switch l {
	case LevelL:
		return goqr.Low, nil
	case LevelM:
		return goqr.Medium, nil
	case LevelQ:
		return goqr.High, nil
	case LevelH:
		return goqr.Highest, nil
	default:
		return 0, fmt.Errorf("%w: recovery level %d", ErrInvalidOptions, l)
	}
}

// Options describe a single rendering.
type Options struct {
	Content    string
	Size       int // edge length in pixels
	Level      RecoveryLevel
	Foreground color.Color
	Background color.Color
	QuietZone  int // modules of background around the symbol
}

func (o Options) colors() (fg, bg color.Color) {
	fg, bg = o.Foreground, o.Background
	if fg == nil {
		fg = color.Black
	}
	if bg == nil {
		bg = color.White
	}
	return fg, bg
}

// Bitmap returns the module matrix including the quiet zone. true is a dark
// module.
func Bitmap(opts Options) ([][]bool, error) {
	if opts.Content == "" {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, ErrEmptyContent)
	}
	if opts.QuietZone < 0 {
		return nil, fmt.Errorf("%w: %w: negative quiet zone", ErrGeneration, ErrInvalidOptions)
	}
	level, err := opts.Level.lib()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	code, err := goqr.New(opts.Content, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	code.DisableBorder = true
	symbol := code.Bitmap()

	n := len(symbol) + 2*opts.QuietZone
	out := make([][]bool, n)
	for y := range out {
		out[y] = make([]bool, n)
	}
	for y, row := range symbol {
		copy(out[y+opts.QuietZone][opts.QuietZone:], row)
	}
	return out, nil
}

// Layout places an n-module grid on a canvas for a requested edge of size
// pixels. Every module is a whole scale×scale block, so none is lost to
// resampling; the remainder becomes extra background around the grid. When
// size is smaller than n the canvas grows to n so each module keeps one
// pixel.
func Layout(n, size int) (edge, scale, offset int) {
	edge = max(size, n)
	scale = edge / n
	offset = (edge - n*scale) / 2
	return edge, scale, offset
}

// Image rasterises the code on a Size×Size canvas, or larger when the module
// grid does not fit (see Layout).
func Image(opts Options) (image.Image, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, ErrInvalidSize)
	}
	bitmap, err := Bitmap(opts)
	if err != nil {
		return nil, err
	}

	fg, bg := opts.colors()
	palette := color.Palette{bg, fg}

	n := len(bitmap)
	grid := image.NewPaletted(image.Rect(0, 0, n, n), palette)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				grid.SetColorIndex(x, y, 1)
			}
		}
	}

	edge, scale, offset := Layout(n, opts.Size)
	dst := image.NewPaletted(image.Rect(0, 0, edge, edge), palette)
	target := image.Rect(offset, offset, offset+n*scale, offset+n*scale)
	xdraw.NearestNeighbor.Scale(dst, target, grid, grid.Bounds(), xdraw.Src, nil)
	return dst, nil
}
