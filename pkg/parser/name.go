package parser

import (
	"strings"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/types"
)

// NameExtractor picks the person name from the first sentence that holds
// PERSON-tagged tokens
type NameExtractor struct {
	tagger interfaces.Tagger
	log    *logger.Logger
}

// NewNameExtractor creates a name extractor around tagger
func NewNameExtractor(tagger interfaces.Tagger, log *logger.Logger) *NameExtractor {
	return &NameExtractor{tagger: tagger, log: log}
}

// Extract returns the PERSON tokens of the first sentence that has any,
// joined by single spaces. Later sentences are not inspected. Tokens of one
// sentence are joined even when they are not contiguous.
func (e *NameExtractor) Extract(document string) types.Optional[string] {
	sentences, err := e.tagger.Tag(document)
	if err != nil {
		e.log.Warn("Name tagging failed: %v", err)
		sentences = nil
	}

	for _, sentence := range sentences {
		var parts []string
		for _, token := range sentence {
			if token.Entity == constants.EntityPerson {
				parts = append(parts, token.Text)
			}
		}
		if name := strings.Join(parts, " "); name != "" {
			return types.Some(name)
		}
	}

	e.log.Warn("Name not found in document: %q", document)
	return types.None[string]()
}
