// Package phone finds phone numbers in free text using the libphonenumber
// metadata.
package phone

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

// candidatePattern matches runs that could hold a phone number. Runs never
// cross a line break, so numbers on adjacent card lines stay apart.
var candidatePattern = regexp.MustCompile(`\+?\(?\d[\d \t().\-]{5,}\d`)

var groupPattern = regexp.MustCompile(`\S+`)

// Matcher implements interfaces.PhoneMatcher. It is stateless and safe for
// concurrent use.
type Matcher struct{}

// NewMatcher creates a phone matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// FindFirst returns the raw text of the first valid phone number in text.
// With an empty region only numbers that carry a "+" country code parse.
func (m *Matcher) FindFirst(text, region string) (string, bool) {
	for _, loc := range candidatePattern.FindAllStringIndex(text, -1) {
		if raw, ok := firstValid(text[loc[0]:loc[1]], region); ok {
			return raw, true
		}
	}
	return "", false
}

// firstValid tries the whitespace-separated groups of a candidate run, the
// leftmost start first and the longest span first, and returns the first
// span that is a valid number. A run may hold two numbers side by side.
func firstValid(candidate, region string) (string, bool) {
	groups := groupPattern.FindAllStringIndex(candidate, -1)

	for start := range groups {
		for end := len(groups); end > start; end-- {
			span := candidate[groups[start][0]:groups[end-1][1]]
			if isValid(span, region) {
				return span, true
			}
		}
	}
	return "", false
}

func isValid(raw, region string) bool {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
