package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/younsl/widthscan/internal/models"
	"github.com/younsl/widthscan/pkg/utils"
)

// Output formats
const (
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputAligned = "aligned"
)

// IsValidOutput checks if an output format is supported
func IsValidOutput(format string) bool {
	switch format {
	case OutputTable, OutputJSON, OutputAligned:
		return true
	}
	return false
}

// PrintReportJSON writes the reports as an indented JSON array
func PrintReportJSON(w io.Writer, reports []models.TextReport) error {
	if reports == nil {
		reports = []models.TextReport{}
	}
	out, err := utils.FormatJSON(reports)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// PrintAlignedRows writes header, a rule as wide as the header and the rows.
// Cells are padded to the widest cell of their column using display width.
func PrintAlignedRows(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && StringWidth(cell) > widths[i] {
				widths[i] = StringWidth(cell)
			}
		}
	}

	headerLine := joinPadded(header, widths)
	fmt.Fprintln(w, headerLine)
	fmt.Fprintln(w, Underline(headerLine))
	for _, row := range rows {
		fmt.Fprintln(w, joinPadded(row, widths))
	}
}

// PrintReportAligned writes reports using PrintAlignedRows
func PrintReportAligned(w io.Writer, reports []models.TextReport) {
	header := []string{"LABEL", "TOTAL", "WIDTH", "REF", "PREVIEW"}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			displayLabel(r.Label),
			fmt.Sprint(r.Result.TotalCount),
			fmt.Sprint(r.Result.DisplayWidth),
			fmt.Sprint(r.ReferenceWidth),
			textPreview(r.Text),
		})
	}
	PrintAlignedRows(w, header, rows)
}

func joinPadded(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 || i >= len(widths) {
			padded[i] = cell
			continue
		}
		padded[i] = PadString(cell, widths[i])
	}
	return strings.Join(padded, " | ")
}
