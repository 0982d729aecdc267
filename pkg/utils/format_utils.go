package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes formats a byte count in a human readable form (e.g. 1.2 kB)
func FormatBytes(n int64) string {
	if n < 0 {
		return "N/A"
	}
	return humanize.Bytes(uint64(n))
}

// FormatCount formats an integer with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDuration formats a duration as seconds with two decimals
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
