package nlp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/types"
)

// ProseTagger runs the prose named-entity model over the whole document and
// maps its tokens back onto card lines. The model is loaded once and calls
// are serialised, so one instance can be shared by every parser in the
// process.
type ProseTagger struct {
	mu    sync.Mutex
	model *prose.Model
}

// NewProseTagger loads the prose tagging and entity models
func NewProseTagger() (*ProseTagger, error) {
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("loading prose model failed: %w", err)
	}
	if doc.Model == nil {
		return nil, fmt.Errorf("loading prose model failed: no model")
	}
	return &ProseTagger{model: doc.Model}, nil
}

// Tag implements interfaces.Tagger
func (t *ProseTagger) Tag(text string) ([]types.TaggedSentence, error) {
	lines := SplitSentences(text)
	if len(lines) == 0 {
		return nil, nil
	}

	t.mu.Lock()
	doc, err := prose.NewDocument(strings.Join(lines, "\n"),
		prose.WithSegmentation(false), prose.UsingModel(t.model))
	t.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("prose tagging failed: %w", err)
	}

	tokens := make([]types.TaggedToken, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, types.TaggedToken{Text: tok.Text, Entity: entityFromLabel(tok.Label)})
	}

	return groupByLine(lines, tokens), nil
}

// groupByLine assigns tokens to the line they were cut from. A token that
// cannot be located in the current or the next line stays in the current one.
func groupByLine(lines []string, tokens []types.TaggedToken) []types.TaggedSentence {
	sentences := make([]types.TaggedSentence, len(lines))
	line, pos := 0, 0

	for _, tok := range tokens {
		if idx := strings.Index(lines[line][pos:], tok.Text); idx >= 0 {
			pos += idx + len(tok.Text)
		} else if line+1 < len(lines) {
			if idx := strings.Index(lines[line+1], tok.Text); idx >= 0 {
				line++
				pos = idx + len(tok.Text)
			}
		}
		sentences[line] = append(sentences[line], tok)
	}

	out := sentences[:0]
	for _, s := range sentences {
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// entityFromLabel strips the IOB prefix from a prose entity label
func entityFromLabel(label string) string {
	if label == "" || label == constants.EntityOther {
		return constants.EntityOther
	}
	if len(label) > 2 && label[1] == '-' {
		return label[2:]
	}
	return label
}
