package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodewee/bizcard/pkg/utils"
)

const card = "Foobar Technologies\nAnalytic Developer\nLisa Haung\n1234 Sentry Road\nColumbia, MD 12345\nTel: (410) 555-1234\nFax: (410) 555-4321\nlisa.haung@foobartech.com\n"

// withFlags sets the command line flags for one test
func withFlags(t *testing.T, parser, format, output string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	parserName, outputFormat, outputPath, logLevel = parser, format, output, "error"
	t.Cleanup(func() {
		parserName, outputFormat, outputPath, logLevel = "", "", "", ""
	})
}

func TestProcessReader(t *testing.T) {
	withFlags(t, "rules", "", "")

	var stdout bytes.Buffer
	require.NoError(t, NewAppHandler(&stdout).ProcessReader(strings.NewReader(card)))
	assert.Equal(t, "Name: Lisa Haung\nPhone: 4105551234\nEmail: lisa.haung@foobartech.com\n", stdout.String())
}

func TestProcessFile_JSONAndOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "contact.json")
	withFlags(t, "rules", "json", out)

	input := filepath.Join(t.TempDir(), "card.txt")
	require.NoError(t, os.WriteFile(input, []byte(card), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, NewAppHandler(&stdout).ProcessFile(context.Background(), input))

	want := `{"name":"Lisa Haung","phone_number":"4105551234","email_address":"lisa.haung@foobartech.com"}`
	assert.JSONEq(t, want, stdout.String())

	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, want, string(saved))
}

func TestProcessFile_Errors(t *testing.T) {
	withFlags(t, "rules", "", "")

	err := NewAppHandler(&bytes.Buffer{}).ProcessFile(context.Background(), "missing.txt")
	assert.Equal(t, utils.ErrorTypeNotFound, utils.GetErrorType(err))

	outputFormat = "xml"
	err = NewAppHandler(&bytes.Buffer{}).ProcessReader(strings.NewReader(card))
	assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
}

func TestGetDisplayValue(t *testing.T) {
	assert.Equal(t, "(not set)", getDisplayValue(""))
	assert.Equal(t, "rules", getDisplayValue("rules"))
}
