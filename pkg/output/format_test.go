package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

var partial = types.NewContactInfo(types.Some("Lisa Haung"), types.None[string](), types.Some("lisa.haung@foobartech.com"))

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{in: "text", want: types.OutputFormatText},
		{in: "JSON", want: types.OutputFormatJSON},
		{in: " yml ", want: types.OutputFormatYAML},
		{in: "", want: types.OutputFormatText},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Text(t *testing.T) {
	data, err := Render(partial, types.OutputFormatText)
	require.NoError(t, err)
	assert.Equal(t, "Name: Lisa Haung\nPhone: (not found)\nEmail: lisa.haung@foobartech.com\n", string(data))
}

func TestRender_JSON(t *testing.T) {
	data, err := Render(partial, types.OutputFormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Lisa Haung","phone_number":null,"email_address":"lisa.haung@foobartech.com"}`, string(data))

	var record Record
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, partial, record.ContactInfo())
}

func TestRender_YAML(t *testing.T) {
	data, err := Render(partial, types.OutputFormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Lisa Haung")
	assert.Contains(t, string(data), "phone_number: null")

	var record Record
	require.NoError(t, yaml.Unmarshal(data, &record))
	assert.Equal(t, partial, record.ContactInfo())
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(partial, "xml")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "card.txt")
	require.NoError(t, WriteFile(path, partial, types.OutputFormatText))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	parsed, err := types.ParseContactInfo(string(data))
	require.NoError(t, err)
	assert.Equal(t, partial, parsed)
}
