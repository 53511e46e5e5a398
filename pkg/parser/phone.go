package parser

import (
	"regexp"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/types"
)

var nonDigits = regexp.MustCompile(`\D`)

// PhoneExtractor finds the first phone number, preferring numbers written
// with a country code over the domestic reading
type PhoneExtractor struct {
	matcher interfaces.PhoneMatcher
	log     *logger.Logger
}

// NewPhoneExtractor creates a phone extractor around matcher
func NewPhoneExtractor(matcher interfaces.PhoneMatcher, log *logger.Logger) *PhoneExtractor {
	return &PhoneExtractor{matcher: matcher, log: log}
}

// Extract returns the digits of the first phone number found, country code
// included when it was written
func (e *PhoneExtractor) Extract(document string) types.Optional[string] {
	raw, ok := e.matcher.FindFirst(document, "")
	if !ok {
		raw, ok = e.matcher.FindFirst(document, constants.DefaultPhoneRegion)
	}

	if ok {
		if digits := nonDigits.ReplaceAllString(raw, ""); digits != "" {
			return types.Some(digits)
		}
	}

	e.log.Warn("Phone number not found in document: %q", document)
	return types.None[string]()
}
