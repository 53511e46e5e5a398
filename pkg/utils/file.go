package utils

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/types"
)

// sniffLength is the number of bytes http.DetectContentType looks at
const sniffLength = 512

// GetFileInfo extracts basic information about a file
func GetFileInfo(filePath string) (*types.FileInfo, error) {
	// Get file stats
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filePath)
	}

	md5Hash, err := CalculateFileMD5(filePath)
	if err != nil {
		return nil, fmt.Errorf("error calculating hash: %w", err)
	}

	// Get file extension
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))

	// Get MIME type
	mimeType, err := getMimeType(filePath, extension)
	if err != nil {
		return nil, fmt.Errorf("error getting MIME type: %w", err)
	}

	return &types.FileInfo{
		Path:      filePath,
		MD5Hash:   md5Hash,
		Extension: extension,
		MimeType:  mimeType,
		Size:      stat.Size(),
		MediaType: determineMediaType(extension, mimeType),
	}, nil
}

// IsTextFile determines if a file is a plain text file
func IsTextFile(extension, mimeType string) bool {
	extension = strings.ToLower(extension)
	if slices.Contains(constants.TextExtensions, extension) {
		return true
	}
	if IsHTMLFile(extension, mimeType) || IsImageFile(extension) {
		return false
	}

	for _, prefix := range constants.TextMimePatterns {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}

// IsHTMLFile determines if a file is HTML or hOCR markup
func IsHTMLFile(extension, mimeType string) bool {
	if slices.Contains(constants.HTMLExtensions, strings.ToLower(extension)) {
		return true
	}
	for _, prefix := range constants.HTMLMimePatterns {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}

// IsImageFile determines if a file is an image file
func IsImageFile(extension string) bool {
	return slices.Contains(constants.ImageExtensions, strings.ToLower(extension))
}

// determineMediaType determines the media type based on extension and MIME type
func determineMediaType(extension, mimeType string) types.MediaType {
	switch {
	case IsImageFile(extension) || strings.HasPrefix(mimeType, "image/"):
		return types.ImageMediaType
	case IsHTMLFile(extension, mimeType):
		return types.MarkupMediaType
	case IsTextFile(extension, mimeType):
		return types.DocumentMediaType
	default:
		return types.UnknownMediaType
	}
}

// getMimeType resolves the MIME type from the extension, falling back to
// content sniffing
func getMimeType(filePath, extension string) (string, error) {
	if extension != "" {
		if byExt := mime.TypeByExtension("." + extension); byExt != "" {
			return stripMimeParams(byExt), nil
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	return stripMimeParams(http.DetectContentType(head[:n])), nil
}

func stripMimeParams(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.TrimSpace(mimeType)
}
