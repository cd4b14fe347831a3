// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists listing records in a SQLite database.
// Records are ingested once from YAML source documents and reloaded
// across invocations in a stable order; the engine treats the loaded
// slice as an immutable store.
// Implements: prd001-records (R5-R7);
//
//	docs/ARCHITECTURE § Catalog.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/listing-engine/internal/adapter"
	"github.com/pdiddy/listing-engine/pkg/types"
)

const dbFile = "listings.db"

// Store manages the record catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
}

// NewStore opens or creates the catalog database at
// catalogDir/listings.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.CatalogDir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db, catalogDir: dir}
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
		// No FTS table: the engine's contract is substring matching
		// over the precomputed blob, which FTS tokenization would
		// change.
		`CREATE TABLE IF NOT EXISTS records (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			search_blob TEXT NOT NULL,
			year INTEGER NOT NULL DEFAULT 0,
			title_lower TEXT NOT NULL,
			tags TEXT,
			citation TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			source_path TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from a catalog ingestion run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of source documents processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads YAML source documents from contentDir through each
// adapter and populates the catalog. Unchanged files are skipped via
// stored modification times; changed files are re-read and upserted.
// Upserts keep the original rowid, so store order stays stable across
// re-ingests.
func (s *Store) Ingest(ctx context.Context, adapters []adapter.Adapter, contentDir string, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	for _, a := range adapters {
		dir := filepath.Join(contentDir, a.Dir())
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return summary, fmt.Errorf("reading content directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !isYAML(entry.Name()) {
				continue
			}

			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			default:
			}

			path := filepath.Join(dir, entry.Name())
			s.ingestFile(ctx, a, path, entry, w, &summary)
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestFile(ctx context.Context, a adapter.Adapter, path string, entry os.DirEntry, w io.Writer, summary *IngestSummary) {
	info, err := entry.Info()
	if err != nil {
		fmt.Fprintf(w, "failed  %s: %v\n", path, err)
		summary.Failed++
		return
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	var storedModTime string
	err = s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM ingest_status WHERE source_path = ?`, path,
	).Scan(&storedModTime)

	if err == nil && storedModTime == modTime {
		fmt.Fprintf(w, "skipped %s\n", path)
		summary.Skipped++
		return
	}
	isUpdate := err == nil

	rec, err := a.Read(path)
	if err != nil {
		fmt.Fprintf(w, "failed  %s: %v\n", path, err)
		summary.Failed++
		return
	}

	if err := s.upsertRecord(ctx, rec, path, modTime); err != nil {
		fmt.Fprintf(w, "failed  %s: %v\n", path, err)
		summary.Failed++
		return
	}

	if isUpdate {
		fmt.Fprintf(w, "updated %s\n", rec.ID)
		summary.Updated++
	} else {
		fmt.Fprintf(w, "indexed %s\n", rec.ID)
		summary.Indexed++
	}
}

func (s *Store) upsertRecord(ctx context.Context, rec types.Record, sourcePath, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	tagsJSON, _ := json.Marshal(rec.Tags)
	var citationJSON any
	if rec.Citation != nil {
		data, _ := json.Marshal(rec.Citation)
		citationJSON = string(data)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO records (id, kind, title, category, search_blob, year, title_lower, tags, citation)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			kind=excluded.kind, title=excluded.title, category=excluded.category,
			search_blob=excluded.search_blob, year=excluded.year,
			title_lower=excluded.title_lower, tags=excluded.tags,
			citation=excluded.citation`,
		rec.ID, string(rec.Kind), rec.Title, rec.Category, rec.SearchBlob,
		rec.SortKeys.Year, rec.SortKeys.TitleLower, string(tagsJSON), citationJSON,
	)
	if err != nil {
		return fmt.Errorf("upserting record %s: %w", rec.ID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_status (source_path, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(source_path) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		sourcePath, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating ingest status: %w", err)
	}

	return tx.Commit()
}

// Load returns the records of one kind (or all kinds when kind is
// empty) in stable ingestion order. The returned slice is the engine's
// immutable store for a page session.
func (s *Store) Load(ctx context.Context, kind types.RecordKind) ([]types.Record, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT id, kind, title, category, search_blob, year, title_lower, tags, citation
		 FROM records`)
	if kind != "" {
		qb.WriteString(` WHERE kind = ?`)
		args = append(args, string(kind))
	}
	qb.WriteString(` ORDER BY rowid`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns the record with the given ID.
func (s *Store) Get(ctx context.Context, id string) (types.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, title, category, search_blob, year, title_lower, tags, citation
		 FROM records WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return types.Record{}, fmt.Errorf("record %s not found", id)
	}
	return rec, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (types.Record, error) {
	var (
		rec          types.Record
		kind         string
		tagsJSON     sql.NullString
		citationJSON sql.NullString
	)
	err := row.Scan(
		&rec.ID, &kind, &rec.Title, &rec.Category, &rec.SearchBlob,
		&rec.SortKeys.Year, &rec.SortKeys.TitleLower, &tagsJSON, &citationJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return rec, err
		}
		return rec, fmt.Errorf("scanning record: %w", err)
	}

	rec.Kind = types.RecordKind(kind)
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &rec.Tags)
	}
	if citationJSON.Valid && citationJSON.String != "" {
		var cf types.CitationFields
		if json.Unmarshal([]byte(citationJSON.String), &cf) == nil {
			rec.Citation = &cf
		}
	}
	return rec, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
