package providers

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	spaceAroundLF   = regexp.MustCompile(` *\n *`)
	repeatedLF      = regexp.MustCompile(`\n{2,}`)
)

// hOCR classes that hold one line of recognised text
var hocrLineClasses = []string{"ocr_line", "ocr_textfloat", "ocr_header", "ocr_caption"}

// blockElements end a line of card text
var blockElements = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Article:    true,
	atom.Section:    true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Li:         true,
	atom.Table:      true,
	atom.Tr:         true,
	atom.Td:         true,
	atom.Th:         true,
	atom.Address:    true,
}

// HTMLLoader handles HTML pages and Tesseract hOCR output
type HTMLLoader struct {
	name string
}

// NewHTMLLoader creates a new HTML loader
func NewHTMLLoader() interfaces.DocumentLoader {
	return &HTMLLoader{
		name: "html",
	}
}

// Load extracts one line of text per block element or hOCR line
func (l *HTMLLoader) Load(ctx context.Context, inputFile string) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	content, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return l.extractText(string(content))
}

// SupportsFile checks if this loader supports the given file type
func (l *HTMLLoader) SupportsFile(fileInfo *types.FileInfo) bool {
	return utils.IsHTMLFile(fileInfo.Extension, fileInfo.MimeType)
}

// Name returns the name of the loader
func (l *HTMLLoader) Name() string {
	return l.name
}

// extractText extracts readable text from HTML content
func (l *HTMLLoader) extractText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var textBuilder strings.Builder
	l.extractTextFromNode(doc, &textBuilder)

	return cleanupText(textBuilder.String()), nil
}

// extractTextFromNode recursively extracts text from HTML nodes
func (l *HTMLLoader) extractTextFromNode(node *html.Node, textBuilder *strings.Builder) {
	lineBreak := false

	if node.Type == html.ElementNode {
		// Skip non-content elements completely
		if node.DataAtom == atom.Script || node.DataAtom == atom.Style || node.DataAtom == atom.Head {
			return
		}

		lineBreak = blockElements[node.DataAtom] || isHOCRLine(node)
		if lineBreak {
			textBuilder.WriteString("\n")
		} else if node.DataAtom == atom.A || node.DataAtom == atom.Span {
			writeSeparator(textBuilder)
		}
	}

	if node.Type == html.TextNode {
		text := strings.TrimSpace(node.Data)
		if text != "" {
			if strings.TrimLeft(node.Data, " \t\n") != node.Data {
				writeSeparator(textBuilder)
			}
			textBuilder.WriteString(text)
			if strings.TrimRight(node.Data, " \t\n") != node.Data {
				textBuilder.WriteString(" ")
			}
		}
	}

	// Recursively process child nodes
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		l.extractTextFromNode(child, textBuilder)
	}

	if lineBreak {
		textBuilder.WriteString("\n")
	}
}

// writeSeparator adds a space unless the text already ends in whitespace
func writeSeparator(textBuilder *strings.Builder) {
	current := textBuilder.String()
	if len(current) > 0 {
		lastChar := current[len(current)-1]
		if lastChar != ' ' && lastChar != '\n' {
			textBuilder.WriteString(" ")
		}
	}
}

// isHOCRLine reports whether node carries one of the hOCR line classes
func isHOCRLine(node *html.Node) bool {
	for _, attr := range node.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			if slices.Contains(hocrLineClasses, class) {
				return true
			}
		}
	}
	return false
}

// cleanupText collapses whitespace while keeping one line per block
func cleanupText(text string) string {
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = spaceAroundLF.ReplaceAllString(text, "\n")
	text = repeatedLF.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
