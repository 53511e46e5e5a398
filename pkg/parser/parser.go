// Package parser extracts a name, a phone number and an email address from
// the text of one business card.
package parser

import (
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/types"
)

// Parser composes the three field extractors. It is safe for concurrent use
// when its tagger is.
type Parser struct {
	name   string
	names  *NameExtractor
	phones *PhoneExtractor
	emails *EmailExtractor
}

// New creates a parser registered under name
func New(name string, tagger interfaces.Tagger, matcher interfaces.PhoneMatcher, log *logger.Logger) *Parser {
	return &Parser{
		name:   name,
		names:  NewNameExtractor(tagger, log),
		phones: NewPhoneExtractor(matcher, log),
		emails: NewEmailExtractor(log),
	}
}

// GetContactInfo implements interfaces.BusinessCardParser. Each field is
// extracted independently; a missing field never blocks the others.
func (p *Parser) GetContactInfo(document string) types.ContactInfo {
	return types.NewContactInfo(
		p.names.Extract(document),
		p.phones.Extract(document),
		p.emails.Extract(document),
	)
}

// Name implements interfaces.BusinessCardParser
func (p *Parser) Name() string {
	return p.name
}
