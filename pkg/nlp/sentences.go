// Package nlp tags business card text with named-entity categories.
//
// Card text has no reliable punctuation, so both taggers treat each
// non-blank line as one sentence.
package nlp

import "strings"

// SplitSentences returns the trimmed non-blank lines of text in order
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	return sentences
}
