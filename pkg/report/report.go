// Package report assembles analyzer output into printable reports.
package report

import (
	"sort"

	"github.com/mattn/go-runewidth"
	"github.com/younsl/widthscan/internal/models"
	"github.com/younsl/widthscan/pkg/analyzer"
)

// New analyzes text and returns its report. ReferenceWidth uses the East
// Asian Width tables and is only reported, never used for layout.
func New(label, source, text string) models.TextReport {
	return models.TextReport{
		Label:          label,
		Source:         source,
		Text:           text,
		Bytes:          int64(len(text)),
		Result:         analyzer.Analyze(text),
		Breakdown:      analyzer.Breakdown(text),
		ReferenceWidth: runewidth.StringWidth(text),
	}
}

// Totals sums the results of all reports
func Totals(reports []models.TextReport) models.AnalysisResult {
	var t models.AnalysisResult
	for _, r := range reports {
		t.ASCIICount += r.Result.ASCIICount
		t.CJKCount += r.Result.CJKCount
		t.EmojiCount += r.Result.EmojiCount
		t.UnicodeCount += r.Result.UnicodeCount
		t.TotalCount += r.Result.TotalCount
		t.DisplayWidth += r.Result.DisplayWidth
	}
	return t
}

// ClassTotals sums the exclusive class breakdowns of all reports
func ClassTotals(reports []models.TextReport) map[models.CharClass]int {
	totals := make(map[models.CharClass]int)
	for _, r := range reports {
		for class, n := range r.Breakdown {
			totals[class] += n
		}
	}
	return totals
}

// SortByWidth orders reports by display width, widest first
func SortByWidth(reports []models.TextReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Result.DisplayWidth > reports[j].Result.DisplayWidth
	})
}
