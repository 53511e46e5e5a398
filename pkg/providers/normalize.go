package providers

import (
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// foldText maps full-width and compatibility forms onto their plain
// equivalents, so "０１２" and "＠" reach the extractors as ASCII
var foldText = transform.Chain(width.Fold, norm.NFKC)

// NormalizeText prepares loaded text for parsing: compatibility forms are
// folded, line endings become "\n", lines are trimmed and blank lines are
// dropped. Letter case is never changed.
func NormalizeText(text string) string {
	if folded, _, err := transform.String(foldText, text); err == nil {
		text = folded
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
