package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Diff section styles.
var (
	styleDiffAdded   = lipgloss.NewStyle().Foreground(ColorGreen)
	styleDiffRemoved = lipgloss.NewStyle().Foreground(ColorRed)
	styleDiffChanged = lipgloss.NewStyle().Foreground(ColorYellow)
)

// ChangedItem represents a changed application for rendering.
type ChangedItem struct {
	Name string
	Diff string
}

// RenderDiff renders a release diff result: applications added to, removed
// from, or changed between two release specifications.
func RenderDiff(added, removed []string, changed []ChangedItem) string {
	if len(added) == 0 && len(removed) == 0 && len(changed) == 0 {
		return "No changes detected.\n"
	}

	var sb strings.Builder

	if len(added) > 0 {
		sb.WriteString(styleDiffAdded.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range added {
			sb.WriteString("  + ")
			sb.WriteString(styleDiffAdded.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(removed) > 0 {
		sb.WriteString(styleDiffRemoved.Render("Removed:"))
		sb.WriteString("\n")
		for _, name := range removed {
			sb.WriteString("  - ")
			sb.WriteString(styleDiffRemoved.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(changed) > 0 {
		sb.WriteString(styleDiffChanged.Render("Changed:"))
		sb.WriteString("\n")
		for _, ch := range changed {
			sb.WriteString("  ~ ")
			sb.WriteString(styleDiffChanged.Render(ch.Name))
			sb.WriteString("\n")
			if ch.Diff != "" {
				for _, line := range strings.Split(ch.Diff, "\n") {
					if line != "" {
						sb.WriteString("    ")
						sb.WriteString(line)
						sb.WriteString("\n")
					}
				}
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(removed), len(changed)))
	sb.WriteString("\n")

	return sb.String()
}

// diffSummary returns a summary string of changes.
func diffSummary(added, removed, changed int) string {
	if added == 0 && removed == 0 && changed == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, strconv.Itoa(added)+" added")
	}
	if removed > 0 {
		parts = append(parts, strconv.Itoa(removed)+" removed")
	}
	if changed > 0 {
		parts = append(parts, strconv.Itoa(changed)+" changed")
	}

	return strings.Join(parts, ", ")
}
