package levels

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullDocument(t *testing.T) {
	data := []byte(`{
		"name": "demo",
		"map": [[0,0,0],[1],[1,2,1]],
		"tileUrls": ["a.png", "b.png"],
		"goalTileId": 2,
		"props": [{"id": 7, "x": 1, "y": 2}, {"id": "tree", "x": 3.5, "y": 4}],
		"propUrls": [{"id": 7, "url": "seven.png"}, {"id": "tree", "url": "tree.png"}],
		"enemies": [{"x": 10, "y": 20}],
		"enemyUrl": "enemy.png",
		"spriteUrl": "player.png"
	}`)
	doc, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "demo", doc.Name)
	assert.Equal(t, [][]int{{0, 0, 0}, {1, 0, 0}, {1, 2, 1}}, doc.Map, "ragged rows padded")
	require.NotNil(t, doc.GoalTileID)
	assert.Equal(t, 2, *doc.GoalTileID)
	assert.Equal(t, AssetID("7"), doc.Props[0].ID)
	assert.Equal(t, AssetID("tree"), doc.Props[1].ID)
	assert.Equal(t, map[string]string{"7": "seven.png", "tree": "tree.png"}, doc.PropURLMap())
	assert.Equal(t, []EnemySeed{{X: 10, Y: 20}}, doc.Enemies)

	u, ok := doc.TileURL(2)
	assert.True(t, ok)
	assert.Equal(t, "b.png", u)
	_, ok = doc.TileURL(3)
	assert.False(t, ok)
	_, ok = doc.TileURL(0)
	assert.False(t, ok)

	rows, cols := doc.Size()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)

	assert.Equal(t, []string{"a.png", "b.png", "seven.png", "tree.png", "player.png", "enemy.png"}, doc.AssetURLs())
}

func TestParseOptionalFields(t *testing.T) {
	doc, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, doc.GoalTileID)
	assert.Empty(t, doc.Map)
	assert.Empty(t, doc.Props)
	assert.Empty(t, doc.AssetURLs())

	doc, err = Parse([]byte(`{"map": [[1]], "goalTileId": null}`))
	require.NoError(t, err)
	assert.Nil(t, doc.GoalTileID)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"not_json":       `{`,
		"negative_tile":  `{"map": [[0, -1]]}`,
		"fractional":     `{"map": [[0.5]]}`,
		"string_tile":    `{"map": [["1"]]}`,
		"bad_enemy":      `{"enemies": [{"x": "left", "y": 0}]}`,
		"missing_prop_x": `{"props": [{"id": 1, "y": 0}]}`,
		"bad_url":        `{"spriteUrl": 5}`,
		"zero_goal":      `{"goalTileId": 0}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDocument), "got %v", err)
		})
	}
}

func TestAssetIDDecoding(t *testing.T) {
	var ids []AssetID
	require.NoError(t, json.Unmarshal([]byte(`[1, "x", 2.5, null]`), &ids))
	assert.Equal(t, []AssetID{"1", "x", "2.5", ""}, ids)

	var id AssetID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestDefaultMap(t *testing.T) {
	g := DefaultMap()
	require.Len(t, g, 15)
	for r, row := range g {
		require.Len(t, row, 24)
		for _, v := range row {
			if r == 14 {
				assert.Equal(t, 1, v)
			} else {
				assert.Equal(t, 0, v)
			}
		}
	}
}

func TestDigestTracksContent(t *testing.T) {
	a, err := Parse([]byte(`{"name": "a", "map": [[1, 1]]}`))
	require.NoError(t, err)
	b := a.Clone()
	assert.Equal(t, Digest(a), Digest(b))
	assert.Len(t, DigestString(a), 16)

	b.Map[0][0] = 0
	assert.NotEqual(t, Digest(a), Digest(b))
	assert.Equal(t, 1, a.Map[0][0], "clone is deep")
}

func TestEmbeddedLevels(t *testing.T) {
	names := Names()
	require.Contains(t, names, DefaultLevel)
	assert.NotContains(t, names, "level.schema.json")

	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			doc, err := LoadFromFS(n)
			require.NoError(t, err)
			rows, cols := doc.Size()
			assert.Positive(t, rows)
			assert.Positive(t, cols)
			require.NotNil(t, doc.GoalTileID)
		})
	}

	_, err := LoadFromFS("meadow")
	assert.NoError(t, err, "suffix optional")
	_, err = LoadFromFS("nope")
	assert.Error(t, err)
}
