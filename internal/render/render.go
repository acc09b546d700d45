// Package render draws parse results as aligned ANSI tables for terminals
// and as plain TSV for pipes.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/abcgmn74-spec/teampick/internal/report"
)

const (
	colorReset  = "\033[0m"
	colorHeader = "\033[1;34m" // bold blue
	colorTeam   = "\033[1;32m" // bold green
	colorUnres  = "\033[1;31m" // bold red
	colorDim    = "\033[2m"
)

// Records renders the user table. Color output is for terminals; use
// RecordsTSV for pipes.
func Records(res *report.Result) string {
	rows := make([][]string, 0, len(res.Records))
	for _, rec := range res.Records {
		rows = append(rows, rec.Row())
	}

	widths := columnWidths(report.Header, rows)

	var b strings.Builder
	b.WriteString(colorHeader)
	writeRow(&b, report.Header, widths)
	b.WriteString(colorReset)
	b.WriteString("\n")
	b.WriteString(colorDim + strings.Repeat("-", totalWidth(widths)) + colorReset + "\n")

	for i, row := range rows {
		rec := res.Records[i]
		cells := make([]string, len(row))
		copy(cells, row)
		if len(rec.Teams) > 0 {
			cells[2] = colorTeam + cells[2] + colorReset
		}
		if len(rec.Unresolved) > 0 {
			cells[4] = colorUnres + cells[4] + colorReset
		}
		writeColoredRow(&b, row, cells, widths)
		b.WriteString("\n")
	}
	return b.String()
}

// RecordsTSV renders the user table as tab-separated plain text.
func RecordsTSV(res *report.Result) string {
	var b strings.Builder
	b.WriteString(strings.Join(report.Header, "\t"))
	b.WriteString("\n")
	for _, rec := range res.Records {
		b.WriteString(strings.Join(rec.Row(), "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

// Unknowns renders the admin worklist, most frequent token first.
func Unknowns(unknowns []report.UnknownCount) string {
	if len(unknowns) == 0 {
		return colorDim + "(no unknown tokens)" + colorReset + "\n"
	}

	header := []string{"Unknown", "Count"}
	rows := make([][]string, 0, len(unknowns))
	for _, u := range unknowns {
		rows = append(rows, []string{u.Token, fmt.Sprintf("%d", u.Count)})
	}
	widths := columnWidths(header, rows)

	var b strings.Builder
	b.WriteString(colorHeader)
	writeRow(&b, header, widths)
	b.WriteString(colorReset)
	b.WriteString("\n")
	b.WriteString(colorDim + strings.Repeat("-", totalWidth(widths)) + colorReset + "\n")
	for _, row := range rows {
		writeRow(&b, row, widths)
		b.WriteString("\n")
	}
	return b.String()
}

// UnknownsTSV renders the worklist as tab-separated plain text.
func UnknownsTSV(unknowns []report.UnknownCount) string {
	var b strings.Builder
	for _, u := range unknowns {
		fmt.Fprintf(&b, "%s\t%d\n", u.Token, u.Count)
	}
	return b.String()
}

// columnWidths sizes each column to its widest cell, measured in display
// columns so Myanmar and other wide scripts align.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	return total
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
	}
}

// writeColoredRow pads by the plain cell width so ANSI codes in the colored
// cell do not skew alignment.
func writeColoredRow(b *strings.Builder, plain, colored []string, widths []int) {
	for i := range colored {
		b.WriteString(colored[i])
		b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(plain[i])+2))
	}
}
