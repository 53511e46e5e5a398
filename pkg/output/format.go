// Package output serialises parsed contact information.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/nodewee/bizcard/pkg/constants"
	"github.com/nodewee/bizcard/pkg/types"
	"github.com/nodewee/bizcard/pkg/utils"
)

// Record is the structured form of a ContactInfo. Absent fields are null.
type Record struct {
	Name         *string `json:"name" yaml:"name"`
	PhoneNumber  *string `json:"phone_number" yaml:"phone_number"`
	EmailAddress *string `json:"email_address" yaml:"email_address"`
}

// NewRecord converts a ContactInfo to its structured form
func NewRecord(info types.ContactInfo) Record {
	return Record{
		Name:         info.Name().Ptr(),
		PhoneNumber:  info.PhoneNumber().Ptr(),
		EmailAddress: info.EmailAddress().Ptr(),
	}
}

// ContactInfo converts the record back. Empty strings count as absent.
func (r Record) ContactInfo() types.ContactInfo {
	return types.NewContactInfo(optional(r.Name), optional(r.PhoneNumber), optional(r.EmailAddress))
}

func optional(s *string) types.Optional[string] {
	if s == nil {
		return types.None[string]()
	}
	return types.Some(*s)
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (types.OutputFormat, error) {
	switch format := types.OutputFormat(strings.ToLower(strings.TrimSpace(name))); format {
	case types.OutputFormatText, types.OutputFormatJSON, types.OutputFormatYAML:
		return format, nil
	case "yml":
		return types.OutputFormatYAML, nil
	case "":
		return types.OutputFormatText, nil
	default:
		return "", utils.NewValidationError(fmt.Sprintf("unsupported output format: %s", name), nil)
	}
}

// Render serialises info in the given format. Every format ends with a
// newline.
func Render(info types.ContactInfo, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputFormatText, "":
		return []byte(info.String() + "\n"), nil
	case types.OutputFormatJSON:
		data, err := json.MarshalIndent(NewRecord(info), "", "  ")
		if err != nil {
			return nil, utils.WrapError(err, utils.ErrorTypeSystem, "failed to encode JSON")
		}
		return append(data, '\n'), nil
	case types.OutputFormatYAML:
		data, err := yaml.Marshal(NewRecord(info))
		if err != nil {
			return nil, utils.WrapError(err, utils.ErrorTypeSystem, "failed to encode YAML")
		}
		return data, nil
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// WriteFile renders info and writes it to path, creating parent directories
func WriteFile(path string, info types.ContactInfo, format types.OutputFormat) error {
	data, err := Render(info, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DefaultDirPermission); err != nil {
			return utils.WrapError(err, utils.ErrorTypeIO, "failed to create output directory")
		}
	}

	if err := os.WriteFile(path, data, constants.DefaultFilePermission); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to write output file")
	}

	return nil
}
