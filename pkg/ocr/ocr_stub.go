//go:build !ocr

// Package ocr reads text from business card images with Tesseract.
//
// This is the stub used when the "ocr" build tag is not set: every call
// returns ErrOCRNotEnabled. Rebuild with
//
//	go build -tags ocr
//
// to enable image input.
package ocr

import (
	"context"
	"errors"
)

// EngineName identifies the Tesseract engine
const EngineName = "tesseract"

// Enabled reports whether OCR support was compiled in
const Enabled = false

// ErrOCRNotEnabled is returned when OCR support was not compiled in
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client
type Client struct{}

// New returns ErrOCRNotEnabled
func New(lang string) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Name implements interfaces.OCREngine
func (c *Client) Name() string {
	return EngineName
}

// Close is a no-op, safe on a nil client
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeImage returns ErrOCRNotEnabled
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeFile returns ErrOCRNotEnabled
func (c *Client) RecognizeFile(ctx context.Context, imagePath string) (string, error) {
	return "", ErrOCRNotEnabled
}
