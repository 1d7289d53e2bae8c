// Copyright Zainab Saad, 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Zainab-Saad/BankAssist-LLM/internal/blocks"
	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

// writeWorkbook builds the test workbook. Alongside excelize's default
// "Sheet1" it carries a "Main" index sheet (both in the default exclusion
// set), an "Accounts" sheet whose answer forms a table, and a "Loans" sheet
// whose first question has no answer rows.
func writeWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Main", [][]any{{"Main"}, {"index of products"}}},
		{"Accounts", [][]any{
			{"What is the minimum balance?"},
			{"Tier", "Amount"},
			{"Gold", "5000"},
		}},
		{"Loans", [][]any{
			{"How do I apply?"},
			{"Who can apply?"},
			{"Residents"},
		}},
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			t.Fatalf("NewSheet(%s): %v", sheet.name, err)
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}

	path := filepath.Join(dir, "products.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := types.ConversionConfig{
		WorkbookPath:  writeWorkbook(t, dir),
		OutputPath:    filepath.Join(dir, "output.md"),
		ExcludeSheets: types.DefaultExcludeSheets,
	}

	var progress bytes.Buffer
	summary, err := Run(cfg, &progress)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := Summary{Sheets: 2, Skipped: 2, Blocks: 2, EmptyDropped: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if summary.Total() != 4 {
		t.Errorf("Total = %d, want 4", summary.Total())
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	doc := string(data)

	// The minimum-balance answer must come through as a table with the
	// four-digit amount intact: 5000 is below the long-number floor and
	// outside the grouped-amount pattern.
	if !strings.Contains(doc, "| Gold | 5000 |") {
		t.Errorf("document missing unredacted table row:\n%s", doc)
	}

	table := "| Tier | Amount |\n| --- | --- |\n| Gold | 5000 |"
	wantDoc := blocks.Render(blocks.New("Accounts", "What is the minimum balance?", table, cfg.WorkbookPath, 0)) +
		"\n" +
		blocks.Render(blocks.New("Loans", "Who can apply?", "- Residents", cfg.WorkbookPath, 1)) +
		"\n"
	if doc != wantDoc {
		t.Errorf("document =\n%q\nwant:\n%q", doc, wantDoc)
	}

	out := progress.String()
	for _, line := range []string{
		"skipped: Sheet1 (excluded)",
		"skipped: Main (excluded)",
		"converted: Accounts (1 blocks)",
		"converted: Loans (1 blocks)",
		"2 sheets converted",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("progress output missing %q:\n%s", line, out)
		}
	}
}

func TestRunReadsBackEqual(t *testing.T) {
	dir := t.TempDir()
	cfg := types.ConversionConfig{
		WorkbookPath:  writeWorkbook(t, dir),
		OutputPath:    filepath.Join(dir, "output.md"),
		ExcludeSheets: types.DefaultExcludeSheets,
	}

	if _, err := Run(cfg, &bytes.Buffer{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	read, err := blocks.ReadDocument(cfg.OutputPath)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if len(read) != 2 {
		t.Fatalf("read %d blocks, want 2", len(read))
	}
	if read[0].SheetName != "Accounts" || read[1].SheetName != "Loans" {
		t.Errorf("sheet order = %s, %s", read[0].SheetName, read[1].SheetName)
	}
}

func TestRunMissingWorkbook(t *testing.T) {
	dir := t.TempDir()
	cfg := types.ConversionConfig{
		WorkbookPath: filepath.Join(dir, "absent.xlsx"),
		OutputPath:   filepath.Join(dir, "output.md"),
	}
	if _, err := Run(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	if _, err := Run(types.ConversionConfig{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected validation error for empty config")
	}
}
