// Copyright Zainab Saad, 2026. All rights reserved.

// Package segment slices a sheet's rows into question/answer segments. A row
// either introduces a new question or contributes its cells to the answer of
// the question above it.
package segment

import (
	"regexp"
	"strings"
)

// questionPrefixes match as plain prefixes, not whole words, so "Islamic
// savings account" reads as a question. The over-match is accepted: product
// sheets lead answer rows with data, not prose.
var questionPrefixes = []string{
	"what", "how", "is", "are", "do", "does", "can",
	"who", "when", "where", "why", "shall", "will", "has", "have",
}

// topicPhrases are imperative question forms that appear mid-sentence.
var topicPhrases = regexp.MustCompile(`\b(explain|describe|tell me about)\b`)

// IsQuestion reports whether a cell's text reads as a question: it ends with
// "?", starts with an interrogative or modal word, or asks for a topic
// ("explain", "describe", "tell me about"). Empty cells and the literal "nan"
// a null cell stringifies to are never questions. Matching is
// case-insensitive.
func IsQuestion(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "nan" {
		return false
	}
	lower := strings.ToLower(trimmed)
	if strings.HasSuffix(lower, "?") {
		return true
	}
	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return topicPhrases.MatchString(lower)
}

// SplitRow scans a row left to right for its question. Cells reading "main"
// (any case) are sheet labels and are passed over. On the first cell that
// satisfies IsQuestion it returns that cell's trimmed text and the cells
// strictly after it, untouched. Rows without a question yield ("", nil).
func SplitRow(row []string) (question string, tail []string) {
	for i, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if strings.EqualFold(trimmed, "main") {
			continue
		}
		if IsQuestion(trimmed) {
			return trimmed, row[i+1:]
		}
	}
	return "", nil
}

// A Segment is one detected question and the raw cell groups accumulated for
// its answer, one group per contributing row.
type Segment struct {
	Question string
	Rows     [][]string
}

// Split runs the two-state sheet machine over rows in order. A question row
// closes any open segment and opens a new one seeded with the row's trailing
// cells; other rows append their non-empty cells to the open segment. Rows
// before the first question are discarded, and the last open segment is
// flushed at end of sheet.
func Split(rows [][]string) []Segment {
	var segments []Segment
	var current Segment
	open := false

	for _, row := range rows {
		question, tail := SplitRow(row)
		if question != "" {
			if open {
				segments = append(segments, current)
			}
			current = Segment{Question: question}
			if len(tail) > 0 {
				current.Rows = [][]string{tail}
			}
			open = true
			continue
		}
		if !open {
			continue
		}
		if cells := nonEmpty(row); len(cells) > 0 {
			current.Rows = append(current.Rows, cells)
		}
	}

	if open {
		segments = append(segments, current)
	}
	return segments
}

func nonEmpty(row []string) []string {
	var cells []string
	for _, cell := range row {
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
