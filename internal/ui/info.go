package ui

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintInfoSection prints a formatted block of key-value information in
// the given order.
func PrintInfoSection(title string, entries [][2]string) {
	if verbosityLevel == VerbosityLevelSilent {
		return
	}

	fmt.Println()
	fmt.Println(Colors.Cyan(title))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false

	for _, entry := range entries {
		t.AppendRow(table.Row{Colors.Bold(entry[0]), entry[1]})
	}

	t.Render()
	fmt.Println()
}

// PrintTable renders rows under a header.
func PrintTable(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, 0, len(header))
	for _, h := range header {
		headerRow = append(headerRow, h)
	}

	t.AppendHeader(headerRow)

	for _, row := range rows {
		r := make(table.Row, 0, len(row))
		for _, cell := range row {
			r = append(r, cell)
		}

		t.AppendRow(r)
	}

	t.Render()
}
