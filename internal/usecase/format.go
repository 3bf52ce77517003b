// Package usecase contains the application use cases.
package usecase

import (
	"fmt"

	"github.com/runoshun/duke/internal/domain"
)

// Interchange formats for export and import.
const (
	FormatText = "text" // Storage line format
	FormatYAML = "yaml"
)

func checkFormat(format string) (string, error) {
	switch format {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s or %s)", domain.ErrUnknownFormat, format, FormatText, FormatYAML)
	}
}
