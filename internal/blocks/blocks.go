// Copyright Zainab Saad, 2026. All rights reserved.

// Package blocks assembles question/answer blocks and reads and writes the
// Markdown block document.
package blocks

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

// answerHeading opens every answer body. The two trailing spaces are part of
// the document format (a Markdown hard line break).
const answerHeading = "**Answer:**  "

// New builds a block with its deterministic ID filled in.
func New(sheet, question, answer, source string, position int) types.Block {
	return types.Block{
		ID:        stableID(sheet, question, source),
		SheetName: sheet,
		Question:  question,
		Answer:    answer,
		Source:    source,
		Position:  position,
	}
}

// stableID generates a deterministic ID from sheet name, question, and source.
// The ID is the first 12 hex characters of SHA-256 over the three fields, so
// re-running a conversion reproduces the same IDs.
func stableID(sheet, question, source string) string {
	h := sha256.New()
	h.Write([]byte(sheet))
	h.Write([]byte(question))
	h.Write([]byte(source))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

// Render emits one block in the document format: a front matter fence with
// sheet_name, question, and source, the answer heading, the answer body, and
// a terminator line. Field values are quoted with Go escaping, which YAML
// double-quoted scalars parse back unchanged.
func Render(b types.Block) string {
	return fmt.Sprintf("---\nsheet_name: %q\nquestion: %q\nsource: %q\n---\n\n%s\n%s\n\n---\n",
		b.SheetName, b.Question, b.Source, answerHeading, b.Answer)
}

// WriteDocument renders blocks in order and writes them to path. Every
// rendered block ends with its own newline, so joining with one more leaves a
// blank line between blocks and after the last. The document is written to a
// temp file in the destination directory and renamed into place, so a failed
// run never leaves a truncated document behind.
func WriteDocument(path string, blocks []types.Block) error {
	var doc strings.Builder
	for i, b := range blocks {
		if i > 0 {
			doc.WriteString("\n")
		}
		doc.WriteString(Render(b))
	}
	if len(blocks) > 0 {
		doc.WriteString("\n")
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".blocks-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.WriteString(doc.String())
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

type blockMeta struct {
	SheetName string `yaml:"sheet_name"`
	Question  string `yaml:"question"`
	Source    string `yaml:"source"`
}

// ReadDocument parses a block document back into blocks. IDs and positions
// are recomputed, so a written document reads back equal to what produced it.
func ReadDocument(path string) ([]types.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var out []types.Block
	for i, chunk := range splitChunks(string(data)) {
		var meta blockMeta
		body, err := frontmatter.Parse(strings.NewReader(chunk), &meta)
		if err != nil {
			return nil, fmt.Errorf("block %d in %s: %w", i, path, err)
		}
		answer, err := parseAnswer(string(body))
		if err != nil {
			return nil, fmt.Errorf("block %d in %s: %w", i, path, err)
		}
		out = append(out, New(meta.SheetName, meta.Question, answer, meta.Source, i))
	}
	return out, nil
}

// splitChunks cuts the document at block boundaries. Every block carries
// exactly three bare "---" lines: the two front matter fences and the
// terminator. Answer bodies never contain one (bullet lines start with "- ",
// table lines with "| "), so counting fences is unambiguous.
func splitChunks(doc string) []string {
	var chunks []string
	var current []string
	fences := 0

	for _, line := range strings.Split(doc, "\n") {
		if fences == 0 && line != "---" {
			continue
		}
		current = append(current, line)
		if line == "---" {
			if fences++; fences == 3 {
				chunks = append(chunks, strings.Join(current, "\n")+"\n")
				current = nil
				fences = 0
			}
		}
	}
	return chunks
}

// parseAnswer strips the answer heading and the terminator from a block body,
// leaving the answer text exactly as it was rendered.
func parseAnswer(body string) (string, error) {
	s := strings.TrimPrefix(body, "\n")
	s, ok := strings.CutPrefix(s, answerHeading+"\n")
	if !ok {
		return "", fmt.Errorf("missing %q heading", "**Answer:**")
	}
	s, ok = strings.CutSuffix(s, "\n\n---\n")
	if !ok {
		return "", fmt.Errorf("unterminated answer body")
	}
	return s, nil
}
