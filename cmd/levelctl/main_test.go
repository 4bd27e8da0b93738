package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/platformer/levelstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommands(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := levelstore.Open(ctx, filepath.Join(dir, "levels.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	exec := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		require.NoError(t, run(ctx, store, &out, args))
		return strings.TrimSpace(out.String())
	}

	id := exec("init-default", "blank")
	assert.NotEmpty(t, id)

	file := filepath.Join(dir, "lvl.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"map":[[1,1,1]],"enemies":[{"x":1,"y":2}]}`), 0o644))
	other := exec("create", "small", file)

	list := exec("list")
	assert.Contains(t, list, id)
	assert.Contains(t, list, "1x3")
	assert.Contains(t, list, "15x24")
	assert.Less(t, strings.Index(list, other), strings.Index(list, id), "newest first")

	assert.Contains(t, exec("show", other), `"name":"small"`)
	assert.Len(t, exec("update", other, "renamed", file), 16)

	archive := filepath.Join(dir, "all.zst")
	assert.Equal(t, "exported 2 level(s)", exec("export", archive))

	exec("delete", id)
	assert.NotContains(t, exec("list"), id)
	assert.Equal(t, "imported 2 level(s)", exec("import", archive))
	assert.Contains(t, exec("list"), id)
}

func TestRunRejectsBadUsage(t *testing.T) {
	ctx := context.Background()
	store, err := levelstore.Open(ctx, filepath.Join(t.TempDir(), "levels.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	var out bytes.Buffer
	assert.ErrorIs(t, run(ctx, store, &out, nil), errUsage)
	assert.ErrorIs(t, run(ctx, store, &out, []string{"show"}), errUsage)
	assert.ErrorIs(t, run(ctx, store, &out, []string{"frobnicate"}), errUsage)
	assert.ErrorIs(t, run(ctx, store, &out, []string{"show", "missing"}), levelstore.ErrNotFound)
}
