// Package tool exposes the business card parser as an MCP tool.
package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/providers"
)

// MetadataParseBusinessCard describes the parse_business_card tool.
var MetadataParseBusinessCard = &mcp.Tool{
	Name: "parse_business_card",
	Description: "Extract the contact's name, phone number and email address from the OCR text " +
		"of one business card. Put each line of the card on its own line. " +
		"Fields that cannot be found are omitted from the result. " +
		"The phone number is returned as digits only, with the country code when the card shows one.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Text of the business card, one card line per line",
			},
			"parser": map[string]interface{}{
				"type":        "string",
				"description": "Parser to use. Unknown names fall back to the default parser.",
				"enum":        []string{constants.DefaultParserName, constants.RulesParserName},
			},
		},
	},
}

// InputParseBusinessCard is the input for the ParseBusinessCard tool.
type InputParseBusinessCard struct {
	Content string `json:"content"`
	Parser  string `json:"parser,omitempty"`
}

// OutputParseBusinessCard is the output for the ParseBusinessCard tool.
type OutputParseBusinessCard struct {
	Name         string `json:"name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	// ParserUsed is the parser that produced the result, after any fallback.
	ParserUsed string `json:"parser_used"`
}

// ParserSource resolves parser identifiers, falling back to the default
type ParserSource interface {
	Create(name string) (interfaces.BusinessCardParser, error)
}

// NewParseBusinessCard returns the tool handler backed by source
func NewParseBusinessCard(source ParserSource) func(context.Context, *mcp.CallToolRequest, InputParseBusinessCard) (*mcp.CallToolResult, OutputParseBusinessCard, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input InputParseBusinessCard) (*mcp.CallToolResult, OutputParseBusinessCard, error) {
		if strings.TrimSpace(input.Content) == "" {
			return nil, OutputParseBusinessCard{}, fmt.Errorf("content is required")
		}
		if err := ctx.Err(); err != nil {
			return nil, OutputParseBusinessCard{}, err
		}

		p, err := source.Create(input.Parser)
		if err != nil {
			return nil, OutputParseBusinessCard{}, err
		}

		info := p.GetContactInfo(providers.NormalizeText(input.Content))

		return nil, OutputParseBusinessCard{
			Name:         info.Name().OrElse(""),
			PhoneNumber:  info.PhoneNumber().OrElse(""),
			EmailAddress: info.EmailAddress().OrElse(""),
			ParserUsed:   p.Name(),
		}, nil
	}
}

// NewServer creates an MCP server with the parse_business_card tool
// registered. Run it with server.Run(ctx, &mcp.StdioTransport{}).
func NewServer(source ParserSource, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    constants.AppName,
		Version: version,
	}, nil)

	mcp.AddTool(server, MetadataParseBusinessCard, NewParseBusinessCard(source))

	return server
}
