package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

//go:embed *.png tiles props
var assetsFS embed.FS

var ErrEmptyPath = errors.New("assets: empty path")

// Source resolves asset paths. Files under Dir win over the embedded copies.
type Source struct {
	Dir string
}

// LoadFile reads an asset by assets-relative path.
func (s Source) LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, ErrEmptyPath
	}
	if s.Dir != "" {
		b, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(clean)))
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return assetsFS.ReadFile(clean)
}

// LoadImage decodes an asset into an image.
func (s Source) LoadImage(path string) (image.Image, error) {
	b, err := s.LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", path, err)
	}
	return img, nil
}

// LoadImage decodes an embedded asset.
func LoadImage(path string) (image.Image, error) {
	return Source{}.LoadImage(path)
}

func cleanAssetPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) || strings.HasPrefix(s, "/") {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, "assets/")
}
