package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/akashic-lore/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	path    string
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		path:    dbPath,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		summary     TEXT NOT NULL DEFAULT '',
		keywords    TEXT,
		passage     TEXT,
		source      TEXT,
		revision    INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_entries_source ON entries(source);
	CREATE INDEX IF NOT EXISTS idx_entries_deleted ON entries(deleted_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// OpenReadOnly opens an existing database without creating or migrating
// it. Writes through the returned store fail.
func OpenReadOnly(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &SQLiteStore{db: db, path: dbPath}, nil
}

// dbtx is satisfied by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Put creates an entry or replaces the one with the same id, bumping its
// revision. A soft-deleted entry is revived.
func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.StoredEntry, error) {
	id, err := s.put(ctx, s.db, p)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *SQLiteStore) put(ctx context.Context, q dbtx, p PutParams) (string, error) {
	if strings.TrimSpace(p.Title) == "" {
		return "", fmt.Errorf("title is required")
	}
	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = s.newID()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	var keywordsJSON *string
	if len(p.Keywords) > 0 {
		b, err := json.Marshal(p.Keywords)
		if err != nil {
			return "", fmt.Errorf("encode keywords: %w", err)
		}
		k := string(b)
		keywordsJSON = &k
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO entries (id, title, summary, keywords, passage, source, revision, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   summary = excluded.summary,
		   keywords = excluded.keywords,
		   passage = excluded.passage,
		   source = excluded.source,
		   revision = entries.revision + 1,
		   updated_at = excluded.updated_at,
		   deleted_at = NULL`,
		id, p.Title, p.Summary, keywordsJSON, nullable(p.Passage), nullable(p.Source), now, now)
	if err != nil {
		return "", fmt.Errorf("upsert entry: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.StoredEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ? AND deleted_at IS NULL`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.StoredEntry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"deleted_at IS NULL"}
	var args []interface{}
	if p.Source != "" {
		where = append(where, "source = ?")
		args = append(args, p.Source)
	}
	args = append(args, limit)

	query := `SELECT ` + entryColumns + ` FROM entries WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY seq LIMIT ?`
	return s.queryEntries(ctx, query, args...)
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	var res sql.Result
	var err error
	if p.Hard {
		res, err = s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, p.ID)
	} else {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		res, err = s.db.ExecContext(ctx,
			`UPDATE entries SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, p.ID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const entryColumns = `id, title, summary, keywords, passage, source, revision, created_at, updated_at`

func (s *SQLiteStore) queryEntries(ctx context.Context, query string, args ...interface{}) ([]model.StoredEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.StoredEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (model.StoredEntry, error) {
	var e model.StoredEntry
	var keywordsJSON, passage, source sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&e.ID, &e.Title, &e.Summary, &keywordsJSON, &passage, &source,
		&e.Revision, &createdAt, &updatedAt,
	)
	if err != nil {
		return e, err
	}

	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	if keywordsJSON.Valid {
		if err := json.Unmarshal([]byte(keywordsJSON.String), &e.Keywords); err != nil {
			return e, fmt.Errorf("decode keywords of %s: %w", e.ID, err)
		}
	}
	e.Passage = passage.String
	e.Source = source.String

	return e, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
