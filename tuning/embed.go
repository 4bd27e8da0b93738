package tuning

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"
)

//go:embed default.yaml
var defaultYAML []byte

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript returns a tengo brain script. name is first tried as a disk
// path, then as an embedded script under scripts/ (the .tengo suffix is
// optional).
func LoadScript(name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tuning: empty script name")
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := strings.TrimPrefix(path.Clean(strings.ReplaceAll(name, "\\", "/")), "scripts/")
	if !strings.HasSuffix(clean, ".tengo") {
		clean += ".tengo"
	}
	data, err := ScriptsFS.ReadFile("scripts/" + clean)
	if err != nil {
		return nil, fmt.Errorf("tuning: load script %s: %w", name, err)
	}
	return data, nil
}
