package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ibstat/cli/internal/ui/style"
)

// NoData is rendered in place of a table without rows.
const NoData = "No data"

// TableOptions narrows and bounds a rendered table.
type TableOptions struct {
	// Columns selects a subset of columns. Unknown names are ignored and the
	// source column order is kept. Empty means all columns.
	Columns []string
	// MaxRows limits the number of rendered rows. Zero means unlimited.
	MaxRows int
}

// RenderTable renders rows as a bordered table. columns gives the source
// column order; rows are keyed by column name.
func RenderTable(columns []string, rows []map[string]string, opts TableOptions) string {
	if len(rows) == 0 {
		return NoData
	}

	headers := selectColumns(columns, opts.Columns)
	if len(headers) == 0 {
		return NoData
	}

	shown := rows
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		shown = rows[:opts.MaxRows]
	}

	data := make([][]string, 0, len(shown))
	for _, row := range shown {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = row[h]
		}
		data = append(data, cells)
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	head := cell.Bold(style.Enabled())

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.BorderStyle()).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		})

	var b strings.Builder
	b.WriteString(t.Render())
	if hidden := len(rows) - len(shown); hidden > 0 {
		b.WriteString("\n")
		b.WriteString(style.Muted(fmt.Sprintf("... %d more rows", hidden)))
	}
	return b.String()
}

// selectColumns keeps the source order of columns, filtered by selected.
func selectColumns(columns, selected []string) []string {
	if len(selected) == 0 {
		return columns
	}
	want := make(map[string]bool, len(selected))
	for _, s := range selected {
		want[strings.TrimSpace(s)] = true
	}
	var out []string
	for _, c := range columns {
		if want[c] {
			out = append(out, c)
		}
	}
	return out
}
