// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge persists reference-document chunks with their embedding
// vectors and answers similarity queries over them. The index lives in a
// single SQLite database; embeddings are computed once at build time and
// the store is read-only afterwards, so concurrent queries need no
// locking. See docs/ARCHITECTURE § Knowledge Index.
package knowledge

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/viant/sqlite-vec/vector"

	"github.com/pdiddy/cad-engine/pkg/types"
)

const dbFile = "knowledge.db"

// Store manages the knowledge index SQLite database.
type Store struct {
	db       *sql.DB
	embedder Embedder
	cfg      types.KnowledgeConfig
}

// NewStore opens or creates the knowledge index at cfg.Dir/knowledge.db and
// creates the schema if it does not exist.
func NewStore(cfg types.KnowledgeConfig, embedder Embedder) (*Store, error) {
	cfg.ApplyDefaults()

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, embedder: embedder, cfg: cfg}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// NewMemoryStore opens an in-memory index, used by tests and by retrieval
// runs that build a throwaway index from a document directory.
func NewMemoryStore(cfg types.KnowledgeConfig, embedder Embedder) (*Store, error) {
	cfg.ApplyDefaults()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	s := &Store{db: db, embedder: embedder, cfg: cfg}

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
		`CREATE TABLE IF NOT EXISTS chunks (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			page INTEGER NOT NULL,
			text TEXT NOT NULL,
			embedding BLOB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chunks_source ON chunks(source)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// embedWorkers bounds the goroutines embedding chunks during Index.
const embedWorkers = 4

// Index embeds the given chunks and stores them in one transaction, so a
// failed build never leaves a partial index behind. Embedding runs on a
// small worker pool; results land back in chunk order, keeping the stored
// index independent of goroutine scheduling. Already-present chunk IDs are
// replaced.
func (s *Store) Index(ctx context.Context, chunks []types.KnowledgeChunk, w io.Writer) error {
	if len(chunks) == 0 {
		fmt.Fprintln(w, "indexed 0 chunks")
		return nil
	}

	embedded := make([]types.KnowledgeChunk, len(chunks))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range embedWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				c := chunks[i]
				c.Embedding = s.embedder.Embed(c.Text)
				embedded[i] = c
			}
		}()
	}
	for i := range chunks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO chunks (id, source, page, text, embedding)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range embedded {
		blob, err := vector.EncodeEmbedding(c.Embedding)
		if err != nil {
			return fmt.Errorf("encoding embedding for chunk %s: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.Source, c.Page, c.Text, blob); err != nil {
			return fmt.Errorf("inserting chunk %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index build: %w", err)
	}

	fmt.Fprintf(w, "indexed %d chunks\n", len(embedded))
	return nil
}

// Count returns the number of indexed chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM chunks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return n, nil
}
