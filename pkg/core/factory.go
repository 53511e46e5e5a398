package core

import (
	"fmt"
	"sort"

	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/providers"
	"github.com/nodewee/bizcard/pkg/types"
)

// Registered loader names
const (
	LoaderText  = "text"
	LoaderHTML  = "html"
	LoaderImage = "image"
)

var _ interfaces.LoaderFactory = (*DefaultLoaderFactory)(nil)

// DefaultLoaderFactory implements LoaderFactory
type DefaultLoaderFactory struct {
	loaders map[string]interfaces.DocumentLoader
	logger  *logger.Logger
}

// NewLoaderFactory creates a loader factory with the built-in loaders.
// engine may be nil, in which case image input is rejected.
func NewLoaderFactory(engine interfaces.OCREngine, log *logger.Logger) *DefaultLoaderFactory {
	factory := &DefaultLoaderFactory{
		loaders: make(map[string]interfaces.DocumentLoader),
		logger:  log,
	}

	factory.RegisterLoader(LoaderText, providers.NewTextLoader())
	factory.RegisterLoader(LoaderHTML, providers.NewHTMLLoader())
	factory.RegisterLoader(LoaderImage, providers.NewImageLoader(engine))

	log.Debug("Registered %d loaders: %v", len(factory.loaders), factory.ListLoaders())
	return factory
}

// CreateLoaderWithFallbacks returns the loader chain for a file, primary first
func (f *DefaultLoaderFactory) CreateLoaderWithFallbacks(fileInfo *types.FileInfo) ([]interfaces.DocumentLoader, error) {
	var chain []string

	switch fileInfo.MediaType {
	case types.DocumentMediaType:
		chain = []string{LoaderText}
	case types.MarkupMediaType:
		// Markup that fails to parse is still readable as text
		chain = []string{LoaderHTML, LoaderText}
	case types.ImageMediaType:
		chain = []string{LoaderImage}
	default:
		f.logger.Debug("Unknown media type for %s, trying loaders that support it", fileInfo.Path)
		chain = f.supporting(fileInfo)
	}

	var loaders []interfaces.DocumentLoader
	for _, name := range chain {
		if loader, exists := f.loaders[name]; exists {
			loaders = append(loaders, loader)
			f.logger.Debug("Added %s loader for file type: %s", name, fileInfo.Extension)
		}
	}

	if len(loaders) == 0 {
		return nil, fmt.Errorf("no suitable loaders found for file type: %s (MIME: %s)",
			fileInfo.Extension, fileInfo.MimeType)
	}

	return loaders, nil
}

// supporting lists registered loaders that accept the file, by name
func (f *DefaultLoaderFactory) supporting(fileInfo *types.FileInfo) []string {
	var names []string
	for _, name := range f.ListLoaders() {
		if f.loaders[name].SupportsFile(fileInfo) {
			names = append(names, name)
		}
	}
	return names
}

// RegisterLoader registers a new loader, replacing any with the same name
func (f *DefaultLoaderFactory) RegisterLoader(name string, loader interfaces.DocumentLoader) {
	f.loaders[name] = loader
	f.logger.Debug("Registered loader: %s", name)
}

// ListLoaders returns all registered loader names, sorted
func (f *DefaultLoaderFactory) ListLoaders() []string {
	names := make([]string, 0, len(f.loaders))
	for name := range f.loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
