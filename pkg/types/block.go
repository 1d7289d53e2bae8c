// Copyright Zainab Saad, 2026. All rights reserved.

// Package types defines shared data structures for the bankassist pipeline:
// the question/answer Block emitted by conversion and the per-stage
// configuration structs.
package types

// Block is one question/answer unit detected in a workbook sheet, with the
// answer already formatted as Markdown and redacted.
type Block struct {
	// ID is a stable identifier for this block, consistent across
	// re-conversions of unchanged content.
	ID string `json:"id" yaml:"id"`

	// SheetName is the workbook sheet the block was detected in.
	SheetName string `json:"sheet_name" yaml:"sheet_name"`

	// Question is the detected question text, verbatim from the sheet.
	Question string `json:"question" yaml:"question"`

	// Answer is the formatted Markdown answer body (lists and pipe tables),
	// with redaction placeholders already substituted.
	Answer string `json:"answer" yaml:"answer"`

	// Source identifies the originating workbook file.
	Source string `json:"source" yaml:"source"`

	// Position is the zero-based emission order within the document.
	Position int `json:"position" yaml:"position"`
}
