//go:build ocr

// Package ocr reads text from business card images with Tesseract via
// gosseract. Tesseract must be installed, e.g.
//
//	apt-get install tesseract-ocr
package ocr

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// EngineName identifies the Tesseract engine
const EngineName = "tesseract"

// Enabled reports whether OCR support was compiled in
const Enabled = true

// Client wraps a Tesseract handle. gosseract clients are not safe for
// concurrent use, so calls are serialised.
type Client struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// New creates a new OCR client for the given language ("eng", "eng+deu").
// The client should be closed when no longer needed.
func New(lang string) (*Client, error) {
	c := &Client{client: gosseract.NewClient()}
	if lang != "" {
		if err := c.SetLanguage(lang); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

// Name implements interfaces.OCREngine
func (c *Client) Name() string {
	return EngineName
}

// Close releases OCR resources
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetLanguage sets the "+" separated recognition languages
func (c *Client) SetLanguage(lang string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// RecognizeImage performs OCR on encoded image data
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	return c.text()
}

// RecognizeFile implements interfaces.OCREngine
func (c *Client) RecognizeFile(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	return c.text()
}

func (c *Client) text() (string, error) {
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
