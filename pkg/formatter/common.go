package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	maxLabelWidth   = 32
	maxPreviewWidth = 24
)

// printTimestamp prints the scan timestamp and duration
func printTimestamp(w io.Writer, scanStartTime time.Time, scanDuration time.Duration) {
	// Format the scan time
	timeStr := scanStartTime.Format("2006-01-02 15:04:05")

	// Format the duration
	durationStr := fmt.Sprintf("%.2fs", scanDuration.Seconds())

	fmt.Fprintf(w, "Scan completed at %s (took %s)\n", timeStr, durationStr)
}

// displayLabel makes a label safe for a single table cell
func displayLabel(label string) string {
	return cellText(label, maxLabelWidth)
}

// textPreview shortens analyzed text for the aligned output
func textPreview(text string) string {
	return cellText(text, maxPreviewWidth)
}

func cellText(s string, maxWidth int) string {
	if s == "" {
		return `""`
	}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		s = strconv.Quote(s)
	}
	return TruncateString(s, maxWidth)
}
