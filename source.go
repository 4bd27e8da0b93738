package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/levelstore"
)

// levelSource says where the played level comes from: a store id, a file on
// disk or an embedded level name, in that order of preference.
type levelSource struct {
	name  string
	id    string
	store *levelstore.Store
}

func (s levelSource) String() string {
	switch {
	case s.id != "":
		return "db:" + s.id
	case s.name != "":
		return s.name
	default:
		return levels.DefaultLevel
	}
}

// path returns the file backing the level, if it is on disk.
func (s levelSource) path() (string, bool) {
	if s.id != "" || s.name == "" {
		return "", false
	}
	fi, err := os.Stat(s.name)
	if err != nil || fi.IsDir() {
		return "", false
	}
	abs, err := filepath.Abs(s.name)
	if err != nil {
		return s.name, true
	}
	return abs, true
}

func (s levelSource) load(ctx context.Context) (*levels.Document, error) {
	if s.id != "" {
		if s.store == nil {
			return nil, errors.New("level id given without a level store")
		}
		rec, err := s.store.Get(ctx, s.id)
		if err != nil {
			return nil, err
		}
		return rec.Document, nil
	}
	if p, ok := s.path(); ok {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", p, err)
		}
		doc, err := levels.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse level %s: %w", p, err)
		}
		return doc, nil
	}
	name := s.name
	if name == "" {
		name = levels.DefaultLevel
	}
	return levels.LoadFromFS(name)
}
