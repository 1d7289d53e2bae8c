// Copyright Zainab Saad, 2026. All rights reserved.

// Package format renders an answer accumulator as Markdown. Consecutive
// cleaned rows of equal width become pipe tables; everything else becomes
// bullet lines.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Zainab-Saad/BankAssist-LLM/internal/redact"
)

// Answer renders the cell groups collected for one question. Each group is
// cleaned first; groups that clean to nothing disappear entirely, so they
// neither emit output nor interrupt a table run. A cleaned row of two or more
// cells followed by a row of equal width opens a table that greedily consumes
// every following row of that width. All other rows emit one "- " bullet per
// cell. Returns "" when nothing survives cleaning.
func Answer(groups [][]string) string {
	var rows [][]string
	for _, group := range groups {
		if row := cleanRow(group); len(row) > 0 {
			rows = append(rows, row)
		}
	}

	var lines []string
	for i := 0; i < len(rows); {
		row := rows[i]
		if len(row) >= 2 && i+1 < len(rows) && len(rows[i+1]) == len(row) {
			lines = append(lines, pipeRow(row), separatorRow(len(row)))
			for i++; i < len(rows) && len(rows[i]) == len(row); i++ {
				lines = append(lines, pipeRow(rows[i]))
			}
			continue
		}
		for _, cell := range row {
			lines = append(lines, "- "+cell)
		}
		i++
	}
	return strings.Join(lines, "\n")
}

// cleanRow drops noise cells and renders the rest. Empty cells, the "nan" a
// null cell stringifies to, and the exact sheet label "Main" are dropped.
// Values parsing as a fraction in [0,1] render as fixed two-decimal
// percentages and bypass redaction; everything else is trimmed and redacted.
func cleanRow(cells []string) []string {
	var row []string
	for _, cell := range cells {
		trimmed := strings.TrimSpace(cell)
		switch trimmed {
		case "", "nan", "Main":
			continue
		}
		row = append(row, renderCell(trimmed))
	}
	return row
}

func renderCell(trimmed string) string {
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil && v >= 0 && v <= 1 {
		return fmt.Sprintf("%.2f%%", v*100)
	}
	return redact.Apply(trimmed)
}

func pipeRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func separatorRow(n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = "---"
	}
	return pipeRow(cells)
}
