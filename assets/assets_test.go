package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		"  ":                       "",
		"player.png":               "player.png",
		"assets/tiles/goal.png":    "tiles/goal.png",
		"./props/tree.png":         "props/tree.png",
		"/home/x/assets/enemy.png": "enemy.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}

func TestEmbeddedImages(t *testing.T) {
	for _, p := range []string{"tiles/ground.png", "tiles/goal.png", "player.png", "player_action.png", "enemy.png", "props/tree.png", "props/rock.png", "background.png"} {
		img, err := LoadImage(p)
		require.NoError(t, err, p)
		assert.False(t, img.Bounds().Empty(), p)
	}
	img, err := LoadImage("player.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(256, 64), img.Bounds().Size())

	_, err = LoadImage("")
	assert.ErrorIs(t, err, ErrEmptyPath)
	_, err = LoadImage("missing.png")
	assert.Error(t, err)
}

func TestSourceDirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 5))
	img.Set(1, 1, color.White)
	f, err := os.Create(filepath.Join(dir, "player.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	got, err := Source{Dir: dir}.LoadImage("player.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 5), got.Bounds().Size())

	// Missing on disk falls back to the embedded copy.
	got, err = Source{Dir: dir}.LoadImage("enemy.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(96, 96), got.Bounds().Size())
}

func TestLoaderPoll(t *testing.T) {
	l := NewLoader(Source{}, func(img image.Image) image.Image { return img }, nil)
	defer l.Close()

	assert.ErrorIs(t, l.Err("enemy.png"), ErrNotReady)
	l.Request("enemy.png", "missing.png", "", "enemy.png")
	require.NoError(t, l.Wait())

	assert.Equal(t, 1, l.Poll())
	img, ok := l.Image("enemy.png")
	require.True(t, ok)
	assert.Equal(t, image.Pt(96, 96), img.Bounds().Size())
	w, h, ok := l.Size("enemy.png")
	assert.True(t, ok)
	assert.Equal(t, 96, w)
	assert.Equal(t, 96, h)
	assert.NoError(t, l.Err("enemy.png"))

	_, ok = l.Image("missing.png")
	assert.False(t, ok)
	assert.Error(t, l.Err("missing.png"))
	assert.NotErrorIs(t, l.Err("missing.png"), ErrNotReady)
	assert.ErrorIs(t, l.Err(""), ErrEmptyPath)

	assert.Equal(t, 0, l.Poll())
}
