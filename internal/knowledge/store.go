// Copyright Zainab Saad, 2026. All rights reserved.

// Package knowledge indexes emitted blocks in a local SQLite database with
// full-text retrieval and export.
package knowledge

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Zainab-Saad/BankAssist-LLM/internal/blocks"
	"github.com/Zainab-Saad/BankAssist-LLM/pkg/types"
)

const dbFile = "bankassist.db"

// Store manages the block index SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// NewStore opens or creates the block index at indexDir/bankassist.db. It
// creates the schema if it does not exist.
func NewStore(cfg types.KnowledgeBaseConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("knowledge base config: %w", err)
	}
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			source TEXT,
			file_mod_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS blocks (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			sheet_name TEXT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			source TEXT,
			document_path TEXT NOT NULL REFERENCES documents(path),
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_blocks_document_path ON blocks(document_path)`,
		`CREATE INDEX IF NOT EXISTS idx_blocks_sheet_name ON blocks(sheet_name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='blocks_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE blocks_fts USING fts5(question, answer, content=blocks, content_rowid=rowid)`,
			`CREATE TRIGGER blocks_ai AFTER INSERT ON blocks BEGIN
				INSERT INTO blocks_fts(rowid, question, answer) VALUES (new.rowid, new.question, new.answer);
			END`,
			`CREATE TRIGGER blocks_ad AFTER DELETE ON blocks BEGIN
				INSERT INTO blocks_fts(blocks_fts, rowid, question, answer) VALUES('delete', old.rowid, old.question, old.answer);
			END`,
			`CREATE TRIGGER blocks_au AFTER UPDATE ON blocks BEGIN
				INSERT INTO blocks_fts(blocks_fts, rowid, question, answer) VALUES('delete', old.rowid, old.question, old.answer);
				INSERT INTO blocks_fts(rowid, question, answer) VALUES (new.rowid, new.question, new.answer);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a block index ingestion run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
	Blocks  int
}

// Total returns the number of documents processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads the named block documents and populates the index. Documents
// whose modification time matches the stored one are skipped, changed ones
// are re-read and their old blocks replaced. On success it refreshes
// export.yaml.
func (s *Store) Ingest(ctx context.Context, docPaths []string, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	for _, path := range docPaths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		// Check whether the document has changed since last ingestion.
		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM documents WHERE path = ?`, path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", path)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		blks, err := blocks.ReadDocument(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		if err := s.ingestDocument(ctx, path, blks, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		summary.Blocks += len(blks)
		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d blocks)\n", path, len(blks))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d blocks)\n", path, len(blks))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	// Refresh export.yaml after a change.
	if summary.Indexed > 0 || summary.Updated > 0 {
		if err := s.ExportYAML(ctx, QueryOptions{}); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return summary, nil
}

func (s *Store) ingestDocument(ctx context.Context, path string, blks []types.Block, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Remove the document's old blocks if updating.
	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM blocks WHERE document_path = ?`, path); err != nil {
			return fmt.Errorf("deleting old blocks: %w", err)
		}
	}

	source := ""
	if len(blks) > 0 {
		source = blks[0].Source
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (path, source, file_mod_time) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			source=excluded.source, file_mod_time=excluded.file_mod_time`,
		path, source, modTime,
	); err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO blocks (id, sheet_name, question, answer, source, document_path, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range blks {
		if _, err := stmt.ExecContext(ctx,
			b.ID, b.SheetName, b.Question, b.Answer, b.Source, path, b.Position,
		); err != nil {
			return fmt.Errorf("inserting block %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}
