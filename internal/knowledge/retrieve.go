// Copyright Zainab Saad, 2026. All rights reserved.

package knowledge

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

// QueryOptions holds parameters for block index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string, matched against question
	// and answer text.
	Query string

	// Sheet filters by originating sheet name.
	Sheet string

	// Source filters by originating workbook.
	Source string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Sheet == "" && q.Source == ""
}

// QueryResult is a block with the document it was indexed from.
type QueryResult struct {
	types.Block
	DocumentPath string `json:"document_path" yaml:"document_path"`
}

// Retrieve queries the block index with optional full-text search and
// structured filters. Results are ranked by relevance for full-text queries
// or kept in document order for structured-only queries.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT b.id, b.sheet_name, b.question, b.answer, b.source, b.document_path, b.position
			FROM blocks_fts
			JOIN blocks b ON b.rowid = blocks_fts.rowid
			WHERE blocks_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT b.id, b.sheet_name, b.question, b.answer, b.source, b.document_path, b.position
			FROM blocks b
			WHERE 1=1`)
	}

	if opts.Sheet != "" {
		qb.WriteString(` AND b.sheet_name = ?`)
		args = append(args, opts.Sheet)
	}

	if opts.Source != "" {
		qb.WriteString(` AND b.source = ?`)
		args = append(args, opts.Source)
	}

	if useFTS {
		qb.WriteString(` ORDER BY blocks_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY b.document_path, b.position`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying block index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var qr QueryResult
		if err := rows.Scan(
			&qr.ID, &qr.SheetName, &qr.Question, &qr.Answer, &qr.Source,
			&qr.DocumentPath, &qr.Position,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, qr)
	}

	return results, rows.Err()
}

// Get looks up a single block by its ID.
func (s *Store) Get(ctx context.Context, id string) (QueryResult, error) {
	var qr QueryResult
	err := s.db.QueryRowContext(ctx,
		`SELECT id, sheet_name, question, answer, source, document_path, position
		 FROM blocks WHERE id = ?`, id,
	).Scan(&qr.ID, &qr.SheetName, &qr.Question, &qr.Answer, &qr.Source, &qr.DocumentPath, &qr.Position)

	if err != nil {
		if err == sql.ErrNoRows {
			return QueryResult{}, fmt.Errorf("block %s not found", id)
		}
		return QueryResult{}, fmt.Errorf("looking up block: %w", err)
	}

	return qr, nil
}
