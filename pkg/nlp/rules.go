package nlp

import (
	"regexp"
	"strings"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/types"
)

const (
	minNameWords = 2
	maxNameWords = 4
)

var nameWordPattern = regexp.MustCompile(`^[A-Z][A-Za-z'.\-]*$`)

// nonNameWords mark a line as a title, company or address rather than a name
var nonNameWords = map[string]struct{}{
	"analyst": {}, "analytic": {}, "and": {}, "assistant": {}, "associate": {},
	"avenue": {}, "ave": {}, "bank": {}, "ceo": {}, "cfo": {}, "chief": {},
	"co": {}, "company": {}, "consultant": {}, "corp": {}, "corporation": {},
	"cto": {}, "developer": {}, "director": {}, "email": {}, "engineer": {},
	"executive": {}, "fax": {}, "founder": {}, "group": {}, "head": {},
	"inc": {}, "junior": {}, "lead": {}, "llc": {}, "ltd": {}, "manager": {},
	"marketing": {}, "mobile": {}, "of": {}, "officer": {}, "partner": {},
	"phone": {}, "president": {}, "road": {}, "sales": {}, "senior": {},
	"software": {}, "solutions": {}, "street": {}, "suite": {}, "systems": {},
	"tech": {}, "technologies": {}, "technology": {}, "tel": {}, "the": {},
	"university": {}, "vp": {}, "www": {},
}

// RuleTagger is a deterministic tagger for card layouts: a line of two to
// four capitalised words that are not title, company or address keywords is
// tagged PERSON, everything else O. It needs no model and is safe for
// concurrent use.
type RuleTagger struct{}

// NewRuleTagger creates a rule-based tagger
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

// Tag implements interfaces.Tagger
func (t *RuleTagger) Tag(text string) ([]types.TaggedSentence, error) {
	lines := SplitSentences(text)
	sentences := make([]types.TaggedSentence, 0, len(lines))

	for _, line := range lines {
		words := strings.Fields(line)
		entity := constants.EntityOther
		if looksLikeName(words) {
			entity = constants.EntityPerson
		}

		sentence := make(types.TaggedSentence, 0, len(words))
		for _, w := range words {
			sentence = append(sentence, types.TaggedToken{Text: w, Entity: entity})
		}
		sentences = append(sentences, sentence)
	}

	return sentences, nil
}

func looksLikeName(words []string) bool {
	if len(words) < minNameWords || len(words) > maxNameWords {
		return false
	}
	for _, w := range words {
		if !nameWordPattern.MatchString(w) {
			return false
		}
		if _, ok := nonNameWords[strings.ToLower(strings.Trim(w, ".'-"))]; ok {
			return false
		}
	}
	return true
}
