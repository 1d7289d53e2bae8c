// Copyright Zainab Saad, 2026. All rights reserved.

package segment

import (
	"reflect"
	"testing"
)

func TestIsQuestion(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"What is the minimum balance?", true},
		{"Branch timings?", true},
		{"WHAT ARE THE CHARGES", true},
		{"will the bank charge a fee", true},
		{"Please describe the process", true},
		{"Tell me about car financing", true},
		{"Explain the markup calculation", true},
		// Prefixes are not word-anchored, so "is" catches this.
		{"Islamic savings account", true},
		{"  How do I apply  ", true},
		{"Eligibility criteria", false},
		{"Gold", false},
		{"5000", false},
		{"", false},
		{"   ", false},
		{"nan", false},
		{"NaN", false},
	}

	for _, tt := range tests {
		if got := IsQuestion(tt.text); got != tt.want {
			t.Errorf("IsQuestion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name     string
		row      []string
		question string
		tail     []string
	}{
		{
			name:     "question in first cell",
			row:      []string{"What is Zakat deduction?", "Applied yearly", "2.5"},
			question: "What is Zakat deduction?",
			tail:     []string{"Applied yearly", "2.5"},
		},
		{
			name:     "main label skipped any case",
			row:      []string{"MAIN", "what about fees?"},
			question: "what about fees?",
			tail:     []string{},
		},
		{
			name:     "scan continues past non-question cells",
			row:      []string{"Eligibility", "Who can apply?", "Residents"},
			question: "Who can apply?",
			tail:     []string{"Residents"},
		},
		{
			name:     "question text is trimmed, tail is raw",
			row:      []string{"  How do I close an account?  ", "", "visit branch"},
			question: "How do I close an account?",
			tail:     []string{"", "visit branch"},
		},
		{
			name: "no question",
			row:  []string{"Gold", "5000"},
		},
		{
			name: "empty row",
			row:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question, tail := SplitRow(tt.row)
			if question != tt.question {
				t.Errorf("question = %q, want %q", question, tt.question)
			}
			if !reflect.DeepEqual(tail, tt.tail) {
				t.Errorf("tail = %#v, want %#v", tail, tt.tail)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	rows := [][]string{
		{"Product guide"},
		{"What is the account fee?", "Rs 100"},
		{"waived for minors", ""},
		{"How do I apply?"},
		{"Step 1", "visit a branch"},
		{"Step 2"},
	}

	want := []Segment{
		{
			Question: "What is the account fee?",
			Rows:     [][]string{{"Rs 100"}, {"waived for minors"}},
		},
		{
			Question: "How do I apply?",
			Rows:     [][]string{{"Step 1", "visit a branch"}, {"Step 2"}},
		},
	}

	got := Split(rows)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %#v, want %#v", got, want)
	}
}

func TestSplitDiscardsRowsBeforeFirstQuestion(t *testing.T) {
	rows := [][]string{
		{"orphan", "cells"},
		{"another orphan"},
	}
	if got := Split(rows); got != nil {
		t.Errorf("Split = %#v, want nil", got)
	}
}

func TestSplitQuestionWithNoAnswerRows(t *testing.T) {
	rows := [][]string{
		{"Any early settlement charges?"},
		{"", ""},
	}

	got := Split(rows)
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if got[0].Question != "Any early settlement charges?" {
		t.Errorf("question = %q", got[0].Question)
	}
	// The all-empty row contributes nothing.
	if got[0].Rows != nil {
		t.Errorf("rows = %#v, want nil", got[0].Rows)
	}
}

// A question row's trailing cells seed the accumulator untouched; empty cells
// in the tail are the formatter's problem, not the segmenter's.
func TestSplitSeedsTailRaw(t *testing.T) {
	rows := [][]string{
		{"What documents are needed?", "", "CNIC copy"},
	}

	got := Split(rows)
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if want := [][]string{{"", "CNIC copy"}}; !reflect.DeepEqual(got[0].Rows, want) {
		t.Errorf("rows = %#v, want %#v", got[0].Rows, want)
	}
}
