// Copyright Zainab Saad, 2026. All rights reserved.

// Package convert runs the workbook-to-blocks pipeline: load sheets, segment
// rows into questions and answers, format and redact the answers, and write
// the block document.
package convert

import (
	"fmt"
	"io"

	"github.com/Zainab-Saad/BankAssist-LLM/internal/blocks"
	"github.com/Zainab-Saad/BankAssist-LLM/internal/format"
	"github.com/Zainab-Saad/BankAssist-LLM/internal/segment"
	"github.com/Zainab-Saad/BankAssist-LLM/internal/workbook"
	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

// Summary holds the outcome of a conversion run.
type Summary struct {
	// Sheets is the number of sheets processed.
	Sheets int
	// Skipped is the number of sheets dropped by the exclusion set.
	Skipped int
	// Blocks is the number of blocks written to the output document.
	Blocks int
	// EmptyDropped counts detected questions whose answer formatted to
	// nothing; they are dropped rather than written as empty blocks.
	EmptyDropped int
}

// Total returns the number of sheets seen, processed plus skipped.
func (s Summary) Total() int {
	return s.Sheets + s.Skipped
}

// Run converts the workbook named by cfg into a block document at
// cfg.OutputPath, printing per-sheet progress to w. Sheets are processed in
// workbook order and blocks keep that order in the document. A question whose
// answer cleans to nothing produces no block.
func Run(cfg types.ConversionConfig, w io.Writer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("conversion config: %w", err)
	}

	wb, err := workbook.Load(cfg)
	if err != nil {
		return Summary{}, err
	}

	var result Summary
	result.Skipped = len(wb.Skipped)
	for _, name := range wb.Skipped {
		fmt.Fprintf(w, "skipped: %s (excluded)\n", name)
	}

	var all []types.Block
	for _, sheet := range wb.Sheets {
		count := 0
		for _, seg := range segment.Split(sheet.Rows) {
			answer := format.Answer(seg.Rows)
			if answer == "" {
				result.EmptyDropped++
				continue
			}
			all = append(all, blocks.New(sheet.Name, seg.Question, answer, cfg.WorkbookPath, len(all)))
			count++
		}
		result.Sheets++
		fmt.Fprintf(w, "converted: %s (%d blocks)\n", sheet.Name, count)
	}

	if err := blocks.WriteDocument(cfg.OutputPath, all); err != nil {
		return result, err
	}
	result.Blocks = len(all)

	fmt.Fprintf(w, "\nConversion summary: %d sheets converted, %d skipped, %d blocks written to %s (%d empty answers dropped)\n",
		result.Sheets, result.Skipped, result.Blocks, cfg.OutputPath, result.EmptyDropped)
	return result, nil
}
