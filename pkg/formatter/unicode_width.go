package formatter

import (
	"strings"

	"github.com/younsl/widthscan/pkg/analyzer"
)

// StringWidth returns the display width of a string
// CJK characters and emoji have width 2, tabs have width 4
func StringWidth(s string) int {
	return analyzer.DisplayWidth(s)
}

// PadString right-pads a string to the specified display width
func PadString(s string, width int) string {
	currentWidth := StringWidth(s)
	if currentWidth >= width {
		return s
	}

	// Add space padding
	return s + strings.Repeat(" ", width-currentWidth)
}

// Underline returns a dashed rule as wide as s
func Underline(s string) string {
	return strings.Repeat("-", StringWidth(s))
}

// TruncateString cuts s so it fits in maxWidth columns, marking the cut with "..."
func TruncateString(s string, maxWidth int) string {
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", max(maxWidth, 0))
	}

	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := analyzer.RuneWidth(r)
		if width+rw > maxWidth-3 {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + "..."
}
