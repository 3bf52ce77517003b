package domain

import (
	_ "embed"
	"strings"
)

//go:embed help.txt
var usageText string

// Usage returns the static help text listing every command.
func Usage() string {
	return strings.TrimRight(usageText, "\n")
}
