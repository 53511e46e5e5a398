package core

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodewee/bizcard/pkg/config"
	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/interfaces"
	"github.com/nodewee/bizcard/pkg/logger"
	"github.com/nodewee/bizcard/pkg/nlp"
	"github.com/nodewee/bizcard/pkg/parser"
	"github.com/nodewee/bizcard/pkg/phone"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

const card = "ASYMMETRIK LTD\nMike Smith\nSenior Software Engineer\n(410)555-1234\nmsmith@asymmetrik.com\n"

var mikeSmith = types.NewContactInfo(types.Some("Mike Smith"), types.Some("4105551234"), types.Some("msmith@asymmetrik.com"))

func rulesParser() interfaces.BusinessCardParser {
	return parser.New(constants.RulesParserName, nlp.NewRuleTagger(), phone.NewMatcher(), nil)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fakeEngine returns canned OCR output
type fakeEngine struct {
	text string
	err  error
}

func (f *fakeEngine) Name() string { return "fake-ocr" }
func (f *fakeEngine) RecognizeFile(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.text, f.err
}
func (f *fakeEngine) Close() error { return nil }

func TestParserFactory_Create(t *testing.T) {
	f := NewParserFactory(nil)
	assert.Equal(t, []string{constants.DefaultParserName, constants.RulesParserName}, f.List())

	rules, err := f.Create(constants.RulesParserName)
	require.NoError(t, err)
	assert.Equal(t, constants.RulesParserName, rules.Name())

	again, err := f.Create(constants.RulesParserName)
	require.NoError(t, err)
	assert.Same(t, rules, again, "parsers are built once")

	def, err := f.Create("")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultParserName, def.Name())
}

func TestDefaultParser_Scenarios(t *testing.T) {
	p, err := NewParserFactory(nil).Create("")
	require.NoError(t, err)
	require.Equal(t, constants.DefaultParserName, p.Name())

	tests := []struct {
		name string
		card string
		want types.ContactInfo
	}{
		{
			name: "domestic number",
			card: "Mike Smith\nSenior Engineer\n410-555-1234\nmsmith@asymmetrik.com",
			want: types.NewContactInfo(types.Some("Mike Smith"), types.Some("4105551234"), types.Some("msmith@asymmetrik.com")),
		},
		{
			name: "country code retained",
			card: "Arthur Wilson\n+1 703-555-1259\nawilson@abctech.com",
			want: types.NewContactInfo(types.Some("Arthur Wilson"), types.Some("17035551259"), types.Some("awilson@abctech.com")),
		},
		{
			name: "no phone number",
			card: "Mike Smith\nSenior Engineer\nmsmith@asymmetrik.com",
			want: types.NewContactInfo(types.Some("Mike Smith"), types.None[string](), types.Some("msmith@asymmetrik.com")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.GetContactInfo(tt.card))
		})
	}
}

func TestParserFactory_UnknownFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	f := NewParserFactory(logger.NewWriterLogger(&buf, "error", false))

	p, err := f.Create("com.example.FancyParser")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultParserName, p.Name())
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), `unknown parser type "com.example.FancyParser"`)
}

func TestParserFactory_FailingConstructorFallsBack(t *testing.T) {
	var buf bytes.Buffer
	f := NewParserFactory(logger.NewWriterLogger(&buf, "error", false))
	f.Register("broken", func(*logger.Logger) (interfaces.BusinessCardParser, error) {
		return nil, errors.New("model missing")
	})

	p, err := f.Create("broken")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultParserName, p.Name())
	assert.Contains(t, buf.String(), "model missing")
}

func TestParserFactory_BrokenDefault(t *testing.T) {
	f := NewParserFactory(nil)
	f.Register(constants.DefaultParserName, func(*logger.Logger) (interfaces.BusinessCardParser, error) {
		return nil, errors.New("model missing")
	})

	_, err := f.Create("nope")
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeConfiguration, utils.GetErrorType(err))
}

func TestLoaderFactory_Chains(t *testing.T) {
	f := NewLoaderFactory(nil, nil)
	assert.Equal(t, []string{LoaderHTML, LoaderImage, LoaderText}, f.ListLoaders())

	tests := []struct {
		info *types.FileInfo
		want []string
	}{
		{info: &types.FileInfo{Extension: "txt", MediaType: types.DocumentMediaType}, want: []string{"text-file"}},
		{info: &types.FileInfo{Extension: "hocr", MediaType: types.MarkupMediaType}, want: []string{"html", "text-file"}},
		{info: &types.FileInfo{Extension: "png", MediaType: types.ImageMediaType}, want: []string{"image-ocr"}},
		{info: &types.FileInfo{Extension: "dat", MimeType: "text/plain", MediaType: types.UnknownMediaType}, want: []string{"text-file"}},
	}

	for _, tt := range tests {
		t.Run(tt.info.Extension, func(t *testing.T) {
			loaders, err := f.CreateLoaderWithFallbacks(tt.info)
			require.NoError(t, err)
			var names []string
			for _, l := range loaders {
				names = append(names, l.Name())
			}
			assert.Equal(t, tt.want, names)
		})
	}

	_, err := f.CreateLoaderWithFallbacks(&types.FileInfo{Extension: "bin", MimeType: "application/octet-stream", MediaType: types.UnknownMediaType})
	assert.Error(t, err)
}

func TestProcessFile_Text(t *testing.T) {
	p := NewFileProcessor(config.DefaultConfig(), rulesParser(), nil, nil)
	input := writeTemp(t, "card.txt", card)

	result, err := p.ProcessFile(context.Background(), input, "")
	require.NoError(t, err)
	assert.Equal(t, mikeSmith, result.Contact)
	assert.Equal(t, "text-file", result.LoaderUsed)
	assert.Equal(t, constants.RulesParserName, result.ParserUsed)
	assert.Equal(t, input, result.Source)
	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.FallbackUsed)
	assert.Empty(t, result.OutputFile)
}

func TestProcessFile_WritesOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewFileProcessor(cfg, rulesParser(), nil, nil)
	out := filepath.Join(t.TempDir(), "results", "card.out")

	result, err := p.ProcessFile(context.Background(), writeTemp(t, "card.txt", card), out)
	require.NoError(t, err)
	assert.Equal(t, out, result.OutputFile)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	parsed, err := types.ParseContactInfo(string(data))
	require.NoError(t, err)
	assert.Equal(t, mikeSmith, parsed)
}

func TestProcessFile_JSONOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputFormat = types.OutputFormatJSON
	p := NewFileProcessor(cfg, rulesParser(), nil, nil)
	out := filepath.Join(t.TempDir(), "card.json")

	_, err := p.ProcessFile(context.Background(), writeTemp(t, "card.txt", card), out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Mike Smith","phone_number":"4105551234","email_address":"msmith@asymmetrik.com"}`, string(data))
}

func TestProcessFile_Image(t *testing.T) {
	engine := &fakeEngine{text: "Mike Smith\n410-555-1234\nmsmith@asymmetrik.com"}
	p := NewFileProcessor(config.DefaultConfig(), rulesParser(), engine, nil)

	result, err := p.ProcessFile(context.Background(), writeTemp(t, "card.png", "\x89PNG\r\n\x1a\n"), "")
	require.NoError(t, err)
	assert.Equal(t, mikeSmith, result.Contact)
	assert.Equal(t, "image-ocr", result.LoaderUsed)
}

func TestProcessFile_ImageWithoutOCR(t *testing.T) {
	p := NewFileProcessor(config.DefaultConfig(), rulesParser(), nil, nil)

	result, err := p.ProcessFile(context.Background(), writeTemp(t, "card.png", "\x89PNG\r\n\x1a\n"), "")
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeInput, utils.GetErrorType(err))
	require.NotNil(t, result)
	assert.Equal(t, []string{"image-ocr"}, result.AttemptedLoaders)
	assert.True(t, result.Contact.IsEmpty(), "extraction is not attempted")
}

func TestProcessFile_HOCRFallsBackToText(t *testing.T) {
	p := NewFileProcessor(config.DefaultConfig(), rulesParser(), nil, nil)
	p.factory.(*DefaultLoaderFactory).RegisterLoader(LoaderHTML, &failingLoader{})

	result, err := p.ProcessFile(context.Background(), writeTemp(t, "card.htm", card), "")
	require.NoError(t, err)
	assert.True(t, result.FallbackUsed)
	assert.Equal(t, []string{"failing", "text-file"}, result.AttemptedLoaders)
	assert.Equal(t, mikeSmith, result.Contact)
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, string) (string, error) {
	return "", utils.NewInputError("broken markup", nil)
}
func (failingLoader) SupportsFile(*types.FileInfo) bool { return true }
func (failingLoader) Name() string                      { return "failing" }

func TestProcessFile_InputErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxInputSizeMB = 1
	p := NewFileProcessor(cfg, rulesParser(), nil, nil)

	_, err := p.ProcessFile(context.Background(), "", "")
	assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))

	_, err = p.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.Equal(t, utils.ErrorTypeNotFound, utils.GetErrorType(err))

	_, err = p.ProcessFile(context.Background(), t.TempDir(), "")
	assert.Equal(t, utils.ErrorTypeInput, utils.GetErrorType(err))

	big := writeTemp(t, "big.txt", string(bytes.Repeat([]byte("a"), 1024*1024+1)))
	_, err = p.ProcessFile(context.Background(), big, "")
	assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
}

func TestProcessFile_Cancelled(t *testing.T) {
	p := NewFileProcessor(config.DefaultConfig(), rulesParser(), &fakeEngine{text: "x"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ProcessFile(ctx, writeTemp(t, "card.png", "\x89PNG\r\n\x1a\n"), "")
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeTimeout, utils.GetErrorType(err))
}

func TestProcessText(t *testing.T) {
	p := NewFileProcessor(config.DefaultConfig(), rulesParser(), nil, nil)

	result := p.ProcessText("stdin", "Arthur Wilson\r\n+1 703-555-1259\r\nawilson@abctech.com\r\n")
	assert.Equal(t, "stdin", result.Source)
	assert.Equal(t,
		types.NewContactInfo(types.Some("Arthur Wilson"), types.Some("17035551259"), types.Some("awilson@abctech.com")),
		result.Contact)

	empty := p.ProcessText("stdin", "")
	assert.True(t, empty.Contact.IsEmpty())
}
