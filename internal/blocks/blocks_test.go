// Copyright Zainab Saad, 2026. All rights reserved.

package blocks

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

func TestRender(t *testing.T) {
	b := New("Accounts", "What is the monthly fee?", "- no fee applies", "bank.xlsx", 0)

	want := "---\n" +
		"sheet_name: \"Accounts\"\n" +
		"question: \"What is the monthly fee?\"\n" +
		"source: \"bank.xlsx\"\n" +
		"---\n" +
		"\n" +
		"**Answer:**  \n" +
		"- no fee applies\n" +
		"\n" +
		"---\n"

	if got := Render(b); got != want {
		t.Errorf("Render =\n%q\nwant:\n%q", got, want)
	}
}

func TestStableID(t *testing.T) {
	a := New("Accounts", "What is the fee?", "- none", "bank.xlsx", 0)
	b := New("Accounts", "What is the fee?", "- different answer", "bank.xlsx", 7)
	c := New("Loans", "What is the fee?", "- none", "bank.xlsx", 0)

	if len(a.ID) != 12 {
		t.Errorf("ID length = %d, want 12", len(a.ID))
	}
	// The ID covers sheet, question, and source; not answer or position.
	if a.ID != b.ID {
		t.Errorf("IDs differ for same sheet/question/source: %s vs %s", a.ID, b.ID)
	}
	if a.ID == c.ID {
		t.Errorf("IDs collide across sheets: %s", a.ID)
	}
}

func TestWriteDocumentLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.md")

	b1 := New("Accounts", "What is the fee?", "- none", "bank.xlsx", 0)
	b2 := New("Loans", "Who can apply?", "- residents", "bank.xlsx", 1)

	if err := WriteDocument(path, []types.Block{b1, b2}); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := Render(b1) + "\n" + Render(b2) + "\n"; string(data) != want {
		t.Errorf("document =\n%q\nwant:\n%q", data, want)
	}

	// The temp file is renamed away, not left beside the output.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want just the document", len(entries))
	}
}

func TestWriteDocumentReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.md")

	old := New("Old", "What was here?", "- stale", "v1.xlsx", 0)
	if err := WriteDocument(path, []types.Block{old}); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	fresh := New("Accounts", "What is new?", "- current", "v2.xlsx", 0)
	if err := WriteDocument(path, []types.Block{fresh}); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if len(got) != 1 || got[0].Question != "What is new?" {
		t.Errorf("got %#v, want only the fresh block", got)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.md")

	table := "| Tier | Amount |\n| --- | --- |\n| Gold | 5000 |"
	wrote := []types.Block{
		New("Accounts", "What is the minimum balance?", table, "bank.xlsx", 0),
		New("Accounts", `Is the "Roshan" account free?`, "- yes\n- conditions apply", "bank.xlsx", 1),
		New("Loans", "How do I apply?", "- visit a branch", "bank.xlsx", 2),
	}

	if err := WriteDocument(path, wrote); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if !reflect.DeepEqual(got, wrote) {
		t.Errorf("round trip changed blocks:\ngot  %#v\nwant %#v", got, wrote)
	}
}

func TestReadDocumentEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.md")
	if err := WriteDocument(path, nil); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if got != nil {
		t.Errorf("got %#v, want nil", got)
	}
}

func TestReadDocumentMissing(t *testing.T) {
	if _, err := ReadDocument(filepath.Join(t.TempDir(), "absent.md")); err == nil {
		t.Fatal("expected error for missing document")
	}
}
