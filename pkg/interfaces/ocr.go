package interfaces

import "context"

// OCREngine recognises text in images
type OCREngine interface {
	// Name returns the name of the OCR engine
	Name() string

	// RecognizeFile extracts text from an image file
	RecognizeFile(ctx context.Context, imagePath string) (string, error)

	// Close releases engine resources
	Close() error
}
