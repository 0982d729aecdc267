package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/younsl/widthscan/internal/models"
	"github.com/younsl/widthscan/pkg/report"
	"github.com/younsl/widthscan/pkg/utils"
)

// PrintReportTable writes one row per analyzed text plus a totals footer
func PrintReportTable(w io.Writer, reports []models.TextReport, scanStartTime time.Time, scanDuration time.Duration) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "\nNo texts analyzed")
		return
	}

	printTimestamp(w, scanStartTime, scanDuration)
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"LABEL", "SOURCE", "SIZE", "TOTAL", "ASCII", "CJK", "EMOJI", "UNICODE", "WIDTH", "REF WIDTH"})

	var totalBytes int64
	refTotal := 0
	for _, r := range reports {
		t.AppendRow(table.Row{
			displayLabel(r.Label),
			r.Source,
			utils.FormatBytes(r.Bytes),
			r.Result.TotalCount,
			r.Result.ASCIICount,
			r.Result.CJKCount,
			r.Result.EmojiCount,
			r.Result.UnicodeCount,
			r.Result.DisplayWidth,
			r.ReferenceWidth,
		})
		totalBytes += r.Bytes
		refTotal += r.ReferenceWidth
	}

	totals := report.Totals(reports)
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d texts", len(reports)),
		"",
		utils.FormatBytes(totalBytes),
		totals.TotalCount,
		totals.ASCIICount,
		totals.CJKCount,
		totals.EmojiCount,
		totals.UnicodeCount,
		totals.DisplayWidth,
		refTotal,
	})

	var configs []table.ColumnConfig
	for col := 4; col <= 10; col++ {
		configs = append(configs, table.ColumnConfig{Number: col, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	t.Render()
}

// PrintReportSummary writes the class breakdown and flags texts whose naive
// width differs from the reference width
func PrintReportSummary(w io.Writer, reports []models.TextReport) {
	if len(reports) == 0 {
		return
	}

	classes := report.ClassTotals(reports)
	totals := report.Totals(reports)

	fmt.Fprintln(w, "\nSUMMARY:")
	fmt.Fprintf(w, "Total codepoints: %s\n", utils.FormatCount(totals.TotalCount))
	for _, class := range models.AllClasses() {
		n := classes[class]
		pct := 0.0
		if totals.TotalCount > 0 {
			pct = float64(n) / float64(totals.TotalCount) * 100.0
		}
		fmt.Fprintf(w, "  %-13s %8s  (%.1f%%)\n", class.String()+":", utils.FormatCount(n), pct)
	}
	fmt.Fprintf(w, "Estimated display width: %s columns\n", utils.FormatCount(totals.DisplayWidth))

	warn := color.New(color.FgYellow).SprintFunc()
	ok := color.New(color.FgGreen).SprintFunc()

	var drifted []models.TextReport
	for _, r := range reports {
		if r.WidthDrift() != 0 {
			drifted = append(drifted, r)
		}
	}

	if len(drifted) == 0 {
		fmt.Fprintf(w, "\n%s Naive width matches reference width for all texts\n", ok("✓"))
		return
	}

	fmt.Fprintf(w, "\n%s %d of %d texts differ from reference width:\n", warn("!"), len(drifted), len(reports))
	for _, r := range drifted {
		fmt.Fprintf(w, "  %s  naive %d, reference %d (%+d)\n",
			PadString(displayLabel(r.Label), maxLabelWidth), r.Result.DisplayWidth, r.ReferenceWidth, r.WidthDrift())
	}
}
