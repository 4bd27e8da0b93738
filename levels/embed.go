package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is played when no level is requested.
const DefaultLevel = "meadow.json"

// LoadFromFS parses the embedded level called name. The .json suffix is
// optional.
func LoadFromFS(name string) (*Document, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return doc, nil
}

// Names lists the embedded levels, schema excluded.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || path.Ext(n) != ".json" || strings.HasSuffix(n, ".schema.json") {
			continue
		}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
