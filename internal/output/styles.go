package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: component names, release names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "declared" application origin (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "detected" application origin (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "excluded" application origin.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (component names, release names, bundle paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (resolving, compiling, assembling).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Application origin constants, describing how an entry earned its place in
// the release application list.
const (
	OriginFoundation = "foundation"
	OriginDeclared   = "declared"
	OriginDetected   = "detected"
	OriginInstalled  = "installed"
	OriginExcluded   = "excluded"
)

// OriginStyle returns the lipgloss style for a given application origin.
// Unknown origins return an unstyled default.
func OriginStyle(origin string) lipgloss.Style {
	switch origin {
	case OriginFoundation:
		return lipgloss.NewStyle().Faint(true)
	case OriginDeclared:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case OriginDetected:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case OriginInstalled:
		return lipgloss.NewStyle().Foreground(ColorCyan)
	case OriginExcluded:
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minAppColumnWidth is the minimum width for the name-version column before
// the origin suffix. This ensures origin words align consistently.
const minAppColumnWidth = 40

// FormatAppLine renders an application entry with a right-aligned,
// color-coded origin suffix.
//
// Format: a:<name>-<version>  <origin>
//
// The "a:" prefix is dim, the name-version pair is cyan, and the origin uses
// OriginStyle.
func FormatAppLine(name, version, origin string) string {
	pair := fmt.Sprintf("%s-%s", name, version)

	padding := minAppColumnWidth - len(pair)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("a:")
	styledPair := StyleNoun.Render(pair)
	styledOrigin := OriginStyle(origin).Render(origin)

	return prefix + styledPair + strings.Repeat(" ", padding) + styledOrigin
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
