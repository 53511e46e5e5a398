package providers

import (
	"context"
	"fmt"

	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

// ImageLoader reads card images through an OCR engine
type ImageLoader struct {
	name   string
	engine interfaces.OCREngine
}

// NewImageLoader creates an image loader. engine may be nil when OCR is
// unavailable; Load then fails with an unsupported error.
func NewImageLoader(engine interfaces.OCREngine) interfaces.DocumentLoader {
	return &ImageLoader{
		name:   "image-ocr",
		engine: engine,
	}
}

// Load runs OCR on the image file
func (l *ImageLoader) Load(ctx context.Context, inputFile string) (string, error) {
	if l.engine == nil {
		return "", utils.NewUnsupportedError("image input requires OCR support", nil)
	}

	text, err := l.engine.RecognizeFile(ctx, inputFile)
	if err != nil {
		return "", utils.NewOCRError(fmt.Sprintf("%s failed on %s", l.engine.Name(), inputFile), err)
	}

	return text, nil
}

// SupportsFile checks if this loader supports the given file type
func (l *ImageLoader) SupportsFile(fileInfo *types.FileInfo) bool {
	return fileInfo.MediaType == types.ImageMediaType
}

// Name returns the name of the loader
func (l *ImageLoader) Name() string {
	return l.name
}
