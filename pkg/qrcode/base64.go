package qrcode

import (
	"encoding/base64"
	"image/color"
)

// DataURI wraps data in a base64 data URI.
func DataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// GenerateBase64Image renders a black on white PNG with a 4 module quiet zone
// and medium recovery, and returns it as a data URI.
func GenerateBase64Image(content string, size int) (string, error) {
	data, err := PNG(Options{
		Content:    content,
		Size:       size,
		Level:      LevelM,
		Foreground: color.Black,
		Background: color.White,
		QuietZone:  4,
	})
	if err != nil {
		return "", err
	}
	return DataURI("image/png", data), nil
}
