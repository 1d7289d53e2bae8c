// Copyright Zainab Saad, 2026. All rights reserved.

// Package render turns block documents into HTML for human review.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

// engine is stateless and safe for reuse across calls.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Document renders blocks as an HTML fragment: per block a question heading,
// a provenance line, and the answer body. Pipe tables in answers need the GFM
// extension to render as tables.
func Document(blks []types.Block, w io.Writer) error {
	var md strings.Builder
	for i, b := range blks {
		if i > 0 {
			md.WriteString("\n")
		}
		fmt.Fprintf(&md, "## %s\n\n", headingText(b.Question))
		fmt.Fprintf(&md, "*sheet %s, source %s*\n\n", b.SheetName, b.Source)
		md.WriteString(b.Answer)
		md.WriteString("\n")
	}

	if err := engine.Convert([]byte(md.String()), w); err != nil {
		return fmt.Errorf("rendering blocks: %w", err)
	}
	return nil
}

// headingText collapses newlines so multi-line cell text stays a single
// heading.
func headingText(question string) string {
	return strings.Join(strings.Fields(question), " ")
}
