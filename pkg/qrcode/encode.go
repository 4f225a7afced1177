package qrcode

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJPEG Format = "jpeg"
)

// JPEGQuality is the encoder quality for FormatJPEG.
const JPEGQuality = 90

// Generate renders opts in the requested format.
func Generate(opts Options, format Format) ([]byte, error) {
	switch format {
	case FormatPNG:
		return PNG(opts)
	case FormatJPEG:
		return JPEG(opts)
	case FormatSVG:
		return SVG(opts)
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrGeneration, ErrUnknownFormat, format)
	}
}

// PNG renders a paletted PNG.
func PNG(opts Options) ([]byte, error) {
	img, err := Image(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %w", ErrGeneration, err)
	}
	return buf.Bytes(), nil
}

// JPEG renders a JPEG at JPEGQuality.
func JPEG(opts Options) ([]byte, error) {
	img, err := Image(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("%w: encode jpeg: %w", ErrGeneration, err)
	}
	return buf.Bytes(), nil
}

// SVG renders a vector image whose viewBox is the module grid and whose
// width and height are Size, or the module count when that is larger.
func SVG(opts Options) ([]byte, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, ErrInvalidSize)
	}
	bitmap, err := Bitmap(opts)
	if err != nil {
		return nil, err
	}
	fg, bg := opts.colors()
	n := len(bitmap)
	edge := max(opts.Size, n)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		n, n, edge, edge,
	)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, n, n, hexColor(bg))

	fill := hexColor(fg)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`, x, y, fill)
			}
		}
	}
	sb.WriteString(`</svg>`)
	return []byte(sb.String()), nil
}

func hexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}
