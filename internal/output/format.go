package output

import (
	"fmt"
	"strings"
)

// OutputFormat specifies how listing commands render their result.
type OutputFormat string

const (
	// FormatText renders human-oriented cards and prose.
	FormatText OutputFormat = "text"

	// FormatTable renders a lipgloss table.
	FormatTable OutputFormat = "table"

	// FormatJSON renders indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML renders YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a --output flag value. The empty string means
// text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(s))
	switch f {
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	if !f.Valid() {
		return "", fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
	return f, nil
}

// ValidFormats returns the valid output format strings.
func ValidFormats() []string {
	return []string{"text", "table", "json", "yaml"}
}
