package constants

import "time"

// Application constants
const (
	AppName = "bizcard"
	// Note: the version is injected at build time via ldflags in main.go
	// Use cmd.GetVersionInfo() to get the current version at runtime
)

// Parser registry
const (
	DefaultParserName = "default"
	RulesParserName   = "rules"
)

// Extraction constants
const (
	// EntityPerson is the only named-entity category the name extractor inspects
	EntityPerson = "PERSON"

	// EntityOther marks tokens outside any named entity
	EntityOther = "O"

	// DefaultPhoneRegion is the region hint for the domestic phone fallback.
	// It is a fixed constant: numbers from other regions need a country code.
	DefaultPhoneRegion = "US"

	// NotFoundPlaceholder is rendered in place of an absent field
	NotFoundPlaceholder = "(not found)"
)

// File processing constants
const (
	// Default file permissions
	DefaultFilePermission = 0644
	DefaultDirPermission  = 0755

	// Retry and timeout settings
	DefaultMaxRetries      = 3
	DefaultTimeoutDuration = 5 * time.Minute
)

// File size limits (in bytes)
const (
	MaxFileSize       = 50 * 1024 * 1024 // 50MB
	WarnFileSizeLimit = 5 * 1024 * 1024  // 5MB
)

// File type groups
var (
	ImageExtensions = []string{
		"jpg", "jpeg", "png", "gif", "bmp",
		"webp", "tiff", "tif", "pnm",
	}

	HTMLExtensions = []string{
		"html", "htm", "hocr", "xhtml",
	}

	TextExtensions = []string{
		"txt", "text", "ocr", "",
	}
)

// MIME type patterns
var (
	TextMimePatterns = []string{
		"text/plain",
	}

	HTMLMimePatterns = []string{
		"text/html", "application/xhtml+xml",
	}
)
