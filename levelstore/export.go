package levelstore

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/milk9111/platformer/levels"
	"go.uber.org/zap"
)

type exportLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Export writes every level to w as zstd-compressed JSON lines and returns
// the number written.
func (s *Store) Export(ctx context.Context, w io.Writer) (int, error) {
	recs, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("levelstore: export: %w", err)
	}
	bw := bufio.NewWriter(enc)
	je := json.NewEncoder(bw)

	for i := len(recs) - 1; i >= 0; i-- {
		r := recs[i]
		data, err := levels.Encode(r.Document)
		if err != nil {
			_ = enc.Close()
			return 0, err
		}
		line := exportLine{ID: r.ID, Name: r.Name, Document: data, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
		if err := je.Encode(line); err != nil {
			_ = enc.Close()
			return 0, fmt.Errorf("levelstore: export %s: %w", r.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return 0, fmt.Errorf("levelstore: export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("levelstore: export: %w", err)
	}
	return len(recs), nil
}

// Import reads an Export stream. Records with a known id replace the stored
// level; the rest are inserted. Every document is validated before anything
// is written, and the whole import runs in one transaction.
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("levelstore: import: %w", err)
	}
	defer dec.Close()

	type pending struct {
		line exportLine
		doc  *levels.Document
	}
	var batch []pending
	jd := json.NewDecoder(bufio.NewReader(dec))
	for {
		var line exportLine
		if err := jd.Decode(&line); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("levelstore: import line %d: %w", len(batch)+1, err)
		}
		if _, err := uuid.Parse(line.ID); err != nil {
			return 0, fmt.Errorf("levelstore: import line %d: bad id %q: %w", len(batch)+1, line.ID, err)
		}
		if strings.TrimSpace(line.Name) == "" {
			return 0, fmt.Errorf("levelstore: import line %d: %w", len(batch)+1, ErrNameRequired)
		}
		doc, err := levels.Parse(line.Document)
		if err != nil {
			return 0, fmt.Errorf("levelstore: import line %d: %w", len(batch)+1, err)
		}
		batch = append(batch, pending{line: line, doc: doc})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("levelstore: import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range batch {
		p.doc.Name = strings.TrimSpace(p.line.Name)
		data, err := levels.Encode(p.doc)
		if err != nil {
			return 0, err
		}
		created, updated := p.line.CreatedAt, p.line.UpdatedAt
		if created.IsZero() {
			created = s.now()
		}
		if updated.IsZero() {
			updated = created
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO levels (id, name, document, digest, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				document = excluded.document,
				digest = excluded.digest,
				updated_at = excluded.updated_at`,
			p.line.ID, p.doc.Name, string(data), levels.DigestString(p.doc), timestamp(created), timestamp(updated))
		if err != nil {
			return 0, fmt.Errorf("levelstore: import %s: %w", p.line.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("levelstore: import: %w", err)
	}
	s.log.Info("levels imported", zap.Int("count", len(batch)))
	return len(batch), nil
}
