package qrcode

import "errors"

var (
	ErrGeneration     = errors.New("qrcode: generation failed")
	ErrEmptyContent   = errors.New("qrcode: empty content")
	ErrInvalidSize    = errors.New("qrcode: size must be positive")
	ErrUnknownFormat  = errors.New("qrcode: unknown output format")
	ErrInvalidOptions = errors.New("qrcode: invalid options")
)
