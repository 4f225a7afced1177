// Package service ties request validation to rendering. Transports (the HTTP
// API and the CLI) hand it raw text plus one of the customization wire shapes
// and get back the resolved configuration and the encoded image.
package service
