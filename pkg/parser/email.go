package parser

import (
	"regexp"

	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/types"
)

// emailPattern is derived from the RFC 5322 addr-spec grammar: a dot-atom or
// quoted local part, then a domain name or a bracketed IPv4 literal.
var emailPattern = regexp.MustCompile("(?i)(?:[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
	`|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*")` +
	`@(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?` +
	`|\[(?:(?:2(?:5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9])\.){3}(?:2(?:5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9]|[a-z0-9-]*[a-z0-9]:` +
	`(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\])`)

// EmailExtractor finds the first email address in the raw text
type EmailExtractor struct {
	log *logger.Logger
}

// NewEmailExtractor creates an email extractor
func NewEmailExtractor(log *logger.Logger) *EmailExtractor {
	return &EmailExtractor{log: log}
}

// Extract returns the first address exactly as written
func (e *EmailExtractor) Extract(document string) types.Optional[string] {
	if match := emailPattern.FindString(document); match != "" {
		return types.Some(match)
	}

	e.log.Warn("Email address not found in document: %q", document)
	return types.None[string]()
}
