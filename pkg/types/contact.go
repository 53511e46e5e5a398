package types

import (
	"fmt"
	"strings"

	"github.com/nodewee/bizcard/pkg/constants"
)

// Field labels of the canonical text rendering, in output order
const (
	NameLabel  = "Name: "
	PhoneLabel = "Phone: "
	EmailLabel = "Email: "
)

// ContactInfo is the immutable result of parsing one business card.
// Two values are equal when all three fields are equal.
type ContactInfo struct {
	name         Optional[string]
	phoneNumber  Optional[string]
	emailAddress Optional[string]
}

// NewContactInfo creates a ContactInfo from the three extracted fields
func NewContactInfo(name, phoneNumber, emailAddress Optional[string]) ContactInfo {
	return ContactInfo{
		name:         name,
		phoneNumber:  phoneNumber,
		emailAddress: emailAddress,
	}
}

// Name returns the person's name
func (c ContactInfo) Name() Optional[string] {
	return c.name
}

// PhoneNumber returns the phone number as a digit string
func (c ContactInfo) PhoneNumber() Optional[string] {
	return c.phoneNumber
}

// EmailAddress returns the email address as written in the source text
func (c ContactInfo) EmailAddress() Optional[string] {
	return c.emailAddress
}

// IsEmpty reports whether no field was found
func (c ContactInfo) IsEmpty() bool {
	return !c.name.IsPresent() && !c.phoneNumber.IsPresent() && !c.emailAddress.IsPresent()
}

// String renders the canonical three-line form. Absent fields are rendered
// as constants.NotFoundPlaceholder.
func (c ContactInfo) String() string {
	lines := []string{
		NameLabel + c.name.OrElse(constants.NotFoundPlaceholder),
		PhoneLabel + c.phoneNumber.OrElse(constants.NotFoundPlaceholder),
		EmailLabel + c.emailAddress.OrElse(constants.NotFoundPlaceholder),
	}
	return strings.Join(lines, "\n")
}

// ParseContactInfo reads back the rendering produced by String
func ParseContactInfo(text string) (ContactInfo, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 3 {
		return ContactInfo{}, fmt.Errorf("expected 3 lines, got %d", len(lines))
	}

	labels := []string{NameLabel, PhoneLabel, EmailLabel}
	values := make([]Optional[string], len(labels))
	for i, label := range labels {
		value, ok := strings.CutPrefix(lines[i], label)
		if !ok {
			return ContactInfo{}, fmt.Errorf("line %d: expected prefix %q", i+1, label)
		}
		if value == constants.NotFoundPlaceholder {
			values[i] = None[string]()
			continue
		}
		values[i] = Some(value)
	}

	return NewContactInfo(values[0], values[1], values[2]), nil
}
