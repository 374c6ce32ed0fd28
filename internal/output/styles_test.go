package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestOriginStyle(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		wantBold bool
		wantFG   lipgloss.Color
		wantDim  bool
	}{
		{
			name:    "foundation returns faint",
			origin:  OriginFoundation,
			wantDim: true,
		},
		{
			name:   "declared returns green",
			origin: OriginDeclared,
			wantFG: ColorGreen,
		},
		{
			name:   "detected returns yellow",
			origin: OriginDetected,
			wantFG: ColorYellow,
		},
		{
			name:   "installed returns cyan",
			origin: OriginInstalled,
			wantFG: ColorCyan,
		},
		{
			name:   "excluded returns red",
			origin: OriginExcluded,
			wantFG: ColorRed,
		},
		{
			name:   "unknown returns default unstyled",
			origin: "unknown-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := OriginStyle(tt.origin)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
			if tt.wantDim {
				assert.True(t, style.GetFaint(), "expected faint")
			}
		})
	}
}

func TestFormatAppLine(t *testing.T) {
	t.Run("contains name, version and origin", func(t *testing.T) {
		line := FormatAppLine("web", "1.2.0", OriginDeclared)
		assert.Contains(t, line, "web-1.2.0")
		assert.Contains(t, line, OriginDeclared)
	})

	t.Run("pads short pairs to the alignment column", func(t *testing.T) {
		line := FormatAppLine("a", "1", OriginDetected)
		assert.Contains(t, line, strings.Repeat(" ", 10), "short name-version pairs should be padded")
	})

	t.Run("keeps minimum gap for long pairs", func(t *testing.T) {
		longName := strings.Repeat("x", minAppColumnWidth)
		line := FormatAppLine(longName, "1.0.0", OriginDeclared)
		assert.Contains(t, line, "  "+OriginStyle(OriginDeclared).Render(OriginDeclared))
	})
}

func TestFormatCheckmark(t *testing.T) {
	msg := FormatCheckmark("bundle assembled")
	assert.Contains(t, msg, "✔")
	assert.Contains(t, msg, "bundle assembled")
}
