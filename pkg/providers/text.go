package providers

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

// TextLoader handles plain text files, typically OCR output
type TextLoader struct {
	name string
}

// NewTextLoader creates a new text file loader
func NewTextLoader() interfaces.DocumentLoader {
	return &TextLoader{
		name: "text-file",
	}
}

// Load reads a plain text file
func (l *TextLoader) Load(ctx context.Context, inputFile string) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	content, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("error reading text file: %w", err)
	}

	if !utf8.Valid(content) {
		return "", utils.NewInputError(fmt.Sprintf("%s is not valid UTF-8 text", inputFile), nil)
	}

	return string(content), nil
}

// SupportsFile checks if this loader supports the given file type
func (l *TextLoader) SupportsFile(fileInfo *types.FileInfo) bool {
	return utils.IsTextFile(fileInfo.Extension, fileInfo.MimeType)
}

// Name returns the name of the loader
func (l *TextLoader) Name() string {
	return l.name
}
