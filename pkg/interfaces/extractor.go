package interfaces

import (
	"context"

	"github.com/nodewee/bizcard/pkg/types"
)

// DocumentLoader turns an input file into business card text
type DocumentLoader interface {
	// Load reads the given file and returns its text
	Load(ctx context.Context, inputFile string) (string, error)

	// SupportsFile checks if this loader supports the given file type
	SupportsFile(fileInfo *types.FileInfo) bool

	// Name returns the name of the loader
	Name() string
}

// LoaderFactory selects document loaders based on file type
type LoaderFactory interface {
	// CreateLoaderWithFallbacks returns the loaders to try, in order
	CreateLoaderWithFallbacks(fileInfo *types.FileInfo) ([]DocumentLoader, error)

	// RegisterLoader registers a new loader
	RegisterLoader(name string, loader DocumentLoader)

	// ListLoaders returns all registered loader names
	ListLoaders() []string
}

// ExtractionResult holds the result of parsing one input file
type ExtractionResult struct {
	RunID            string            `json:"run_id"`
	Source           string            `json:"source"`
	Contact          types.ContactInfo `json:"-"`
	LoaderUsed       string            `json:"loader_used"`
	ParserUsed       string            `json:"parser_used"`
	ProcessTime      int64             `json:"process_time_ms"`
	TextLength       int               `json:"text_length"`
	OutputFile       string            `json:"output_file,omitempty"`
	Error            string            `json:"error,omitempty"`
	FallbackUsed     bool              `json:"fallback_used,omitempty"`
	AttemptedLoaders []string          `json:"attempted_loaders,omitempty"`
}

// FileProcessor handles the overall load -> parse -> save workflow
type FileProcessor interface {
	// ProcessFile parses a file and optionally writes the result to outputFile
	ProcessFile(ctx context.Context, inputFile, outputFile string) (*ExtractionResult, error)

	// SetLoaderFactory sets the loader factory to use
	SetLoaderFactory(factory LoaderFactory)
}
