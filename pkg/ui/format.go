package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders the card with colors and borders
	FormatTerminal
	// FormatText renders the card as plain indented text
	FormatText
	// FormatTree renders the raw node tree
	FormatTree
	// FormatJSON renders the node tree as JSON
	FormatJSON
	// FormatXAML renders the node tree as XAML-like markup
	FormatXAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatTree:
		return "tree"
	case FormatJSON:
		return "json"
	case FormatXAML:
		return "xaml"
	default:
		return "unknown"
	}
}

// Formats lists the names accepted by ParseFormat, for flag help
func Formats() []string {
	return []string{"auto", "term", "text", "tree", "json", "xaml"}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "tree":
		return FormatTree, nil
	case "json":
		return FormatJSON, nil
	case "xaml", "xml":
		return FormatXAML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
