// Copyright Zainab Saad, 2026. All rights reserved.

// Package workbook loads the product-knowledge spreadsheet into ordered
// in-memory sheets. Every row is data: the bank's sheets carry no header row,
// so rows are read positionally with raw cell values.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

// Sheet is one named tabular page of the workbook.
type Sheet struct {
	// Name is the sheet's tab name.
	Name string

	// Rows holds the sheet's cells in row-major order. Absent and malformed
	// cells appear as empty strings.
	Rows [][]string
}

// Workbook is the loaded spreadsheet: sheets in tab order, minus the
// exclusion set.
type Workbook struct {
	// Path is the file the workbook was loaded from.
	Path string

	// Sheets holds the retained sheets in workbook order.
	Sheets []Sheet

	// Skipped lists the sheet names dropped by the exclusion set, in order.
	Skipped []string
}

// Load reads every sheet of the workbook at cfg.WorkbookPath. Sheets named in
// cfg.ExcludeSheets are dropped before processing. Cell values are raw
// (unformatted), so a cell displayed as "15.5%" is read back as "0.155" and
// left to the formatter to render.
func Load(cfg types.ConversionConfig) (*Workbook, error) {
	f, err := excelize.OpenFile(cfg.WorkbookPath)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", cfg.WorkbookPath, err)
	}
	defer f.Close()

	wb := &Workbook{Path: cfg.WorkbookPath}

	for _, name := range f.GetSheetList() {
		if cfg.Excluded(name) {
			wb.Skipped = append(wb.Skipped, name)
			continue
		}

		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}

		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}

	return wb, nil
}
