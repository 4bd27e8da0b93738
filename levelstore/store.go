package levelstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/platformer/levels"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound     = errors.New("levelstore: level not found")
	ErrNameRequired = errors.New("levelstore: name is required")
)

// Record is a stored level.
type Record struct {
	ID        string
	Name      string
	Document  *levels.Document
	Digest    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store keeps level documents in a SQLite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
	now func() time.Time
}

// Open opens or creates the database at path. ":memory:" gives a private
// in-memory store.
func Open(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("levelstore: empty db path")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("levelstore: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("levelstore: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, log: log, now: time.Now}, nil
}

func initPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("levelstore: %s: %w", p, err)
		}
	}
	return nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const stmt = `CREATE TABLE IF NOT EXISTS levels (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		document TEXT NOT NULL,
		digest TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("levelstore: init schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func prepare(name string, doc *levels.Document, fillMap bool) (string, *levels.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, ErrNameRequired
	}
	if doc == nil {
		doc = &levels.Document{}
	}
	doc = doc.Clone()
	if fillMap && len(doc.Map) == 0 {
		doc.Map = levels.DefaultMap()
	}
	doc.Name = name
	doc.Normalize()
	return name, doc, nil
}

// timeLayout is fixed width so the text columns sort in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func timestamp(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// Create stores a new level. A document without a map gets the default
// grid.
func (s *Store) Create(ctx context.Context, name string, doc *levels.Document) (*Record, error) {
	name, doc, err := prepare(name, doc, true)
	if err != nil {
		return nil, err
	}
	data, err := levels.Encode(doc)
	if err != nil {
		return nil, err
	}
	now := s.now()
	rec := &Record{
		ID:        uuid.NewString(),
		Name:      name,
		Document:  doc,
		Digest:    levels.DigestString(doc),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO levels (id, name, document, digest, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, string(data), rec.Digest, timestamp(now), timestamp(now))
	if err != nil {
		return nil, fmt.Errorf("levelstore: create %q: %w", name, err)
	}
	s.log.Info("level created", zap.String("id", rec.ID), zap.String("name", name))
	return rec, nil
}

// Get loads one level.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, document, digest, created_at, updated_at FROM levels WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("levelstore: get %s: %w", id, err)
	}
	return rec, nil
}

// List returns every level, newest first.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, document, digest, created_at, updated_at FROM levels ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("levelstore: list: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("levelstore: list: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("levelstore: list: %w", err)
	}
	return out, nil
}

// Update replaces the name and document of an existing level.
func (s *Store) Update(ctx context.Context, id, name string, doc *levels.Document) (*Record, error) {
	name, doc, err := prepare(name, doc, false)
	if err != nil {
		return nil, err
	}
	data, err := levels.Encode(doc)
	if err != nil {
		return nil, err
	}
	now := s.now()
	digest := levels.DigestString(doc)
	res, err := s.db.ExecContext(ctx,
		`UPDATE levels SET name = ?, document = ?, digest = ?, updated_at = ? WHERE id = ?`,
		name, string(data), digest, timestamp(now), id)
	if err != nil {
		return nil, fmt.Errorf("levelstore: update %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.log.Info("level updated", zap.String("id", id), zap.String("digest", digest))
	return s.Get(ctx, id)
}

// Delete removes a level.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM levels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("levelstore: delete %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.log.Info("level deleted", zap.String("id", id))
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		rec              Record
		data             string
		created, updated string
	)
	if err := sc.Scan(&rec.ID, &rec.Name, &data, &rec.Digest, &created, &updated); err != nil {
		return nil, err
	}
	doc, err := levels.Parse([]byte(data))
	if err != nil {
		return nil, err
	}
	rec.Document = doc
	if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, err
	}
	return &rec, nil
}
