// Package qrcode renders QR codes as PNG, JPEG or SVG with configurable
// colors, quiet zone and recovery level.
//
// Encoding is delegated to github.com/skip2/go-qrcode. The module matrix is
// built without the library's own border and padded with Options.QuietZone
// modules on every side, so the quiet zone is always measured in modules.
// Raster output is drawn at one pixel per module and scaled to exactly
// Size×Size pixels with nearest-neighbour sampling, which keeps module edges
// sharp at any size.
//
// # Usage
//
//	data, err := qrcode.Generate(qrcode.Options{
//		Content:    "https://example.com",
//		Size:       300,
//		Level:      qrcode.LevelM,
//		Foreground: color.Black,
//		Background: color.White,
//		QuietZone:  4,
//	}, qrcode.FormatPNG)
//
// For embedding in HTML or JSON, wrap the bytes in a data URI:
//
//	uri := qrcode.DataURI("image/png", data)
//
// # Caching
//
// Rendering the same options twice yields identical bytes. Cache keeps the
// most recently rendered images in an LRU keyed by a digest of the options:
//
//	cache, err := qrcode.NewCache(256)
//	data, err := cache.Generate(opts, qrcode.FormatSVG)
//
// # Errors
//
// Every failure wraps ErrGeneration, including content too long for the
// chosen recovery level.
package qrcode
