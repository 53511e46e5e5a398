package interfaces

import "github.com/nodewee/bizcard/pkg/types"

// Tagger splits text into sentences of tokens tagged with a named-entity
// category. Sentences and tokens keep document order.
type Tagger interface {
	Tag(text string) ([]types.TaggedSentence, error)
}

// PhoneMatcher finds phone numbers in free text
type PhoneMatcher interface {
	// FindFirst returns the raw text of the first phone number in text.
	// An empty region only recognises numbers written with a country code.
	FindFirst(text, region string) (string, bool)
}

// BusinessCardParser extracts contact information from business card text
type BusinessCardParser interface {
	// GetContactInfo parses the document. It never fails: fields that
	// cannot be found are absent in the result.
	GetContactInfo(document string) types.ContactInfo

	// Name returns the registry identifier of the parser
	Name() string
}
