package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/levelstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelSourceEmbedded(t *testing.T) {
	ctx := context.Background()
	doc, err := levelSource{}.load(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Map)
	assert.Equal(t, levels.DefaultLevel, levelSource{}.String())

	doc, err = levelSource{name: "cavern"}.load(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Enemies)

	_, err = levelSource{name: "nope"}.load(ctx)
	assert.Error(t, err)
}

func TestLevelSourceFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mine.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"name":"mine","map":[[1,1]]}`), 0o644))

	src := levelSource{name: p}
	got, ok := src.path()
	require.True(t, ok)
	assert.Equal(t, p, got)

	doc, err := src.load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mine", doc.Name)

	require.NoError(t, os.WriteFile(p, []byte(`{"map":[[-1]]}`), 0o644))
	_, err = src.load(context.Background())
	assert.ErrorIs(t, err, levels.ErrInvalidDocument)
}

func TestLevelSourceStore(t *testing.T) {
	ctx := context.Background()
	store, err := levelstore.Open(ctx, filepath.Join(t.TempDir(), "levels.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	rec, err := store.Create(ctx, "stored", nil)
	require.NoError(t, err)

	src := levelSource{id: rec.ID, store: store}
	assert.Equal(t, "db:"+rec.ID, src.String())
	_, ok := src.path()
	assert.False(t, ok)
	doc, err := src.load(ctx)
	require.NoError(t, err)
	assert.Equal(t, levels.DefaultMap(), doc.Map)

	_, err = levelSource{id: rec.ID}.load(ctx)
	assert.Error(t, err)
}
