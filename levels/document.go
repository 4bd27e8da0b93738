package levels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// AssetID names a prop asset. Level files written by the editor use either
// numbers or strings for it, so both decode to the same textual id.
type AssetID string

func (id *AssetID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AssetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("levels: asset id must be a string or number: %w", err)
	}
	*id = AssetID(n.String())
	return nil
}

// PropPlacement places one prop in world pixels.
type PropPlacement struct {
	ID AssetID `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// PropURL maps a prop asset id to its image.
type PropURL struct {
	ID  AssetID `json:"id"`
	URL string  `json:"url"`
}

// EnemySeed is the spawn position of one enemy in world pixels.
type EnemySeed struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is a level as stored and exchanged. TileURLs[i] is the image of
// tile id i+1. A nil GoalTileID means the level has no goal tile; empty urls
// mean the matching visual is skipped.
type Document struct {
	Name          string          `json:"name,omitempty"`
	Map           [][]int         `json:"map"`
	TileURLs      []string        `json:"tileUrls,omitempty"`
	GoalTileID    *int            `json:"goalTileId,omitempty"`
	Props         []PropPlacement `json:"props,omitempty"`
	PropURLs      []PropURL       `json:"propUrls,omitempty"`
	Enemies       []EnemySeed     `json:"enemies,omitempty"`
	EnemyURL      string          `json:"enemyUrl,omitempty"`
	SpriteURL     string          `json:"spriteUrl,omitempty"`
	ActionURL     string          `json:"actionUrl,omitempty"`
	BackgroundURL string          `json:"backgroundUrl,omitempty"`
}

// Normalize pads every row with empty tiles to the width of the widest row.
func (d *Document) Normalize() {
	if d == nil {
		return
	}
	width := 0
	for _, row := range d.Map {
		width = max(width, len(row))
	}
	for i, row := range d.Map {
		if len(row) < width {
			d.Map[i] = append(row, make([]int, width-len(row))...)
		}
	}
}

// Size returns rows and columns of the grid.
func (d *Document) Size() (rows, cols int) {
	if d == nil || len(d.Map) == 0 {
		return 0, 0
	}
	return len(d.Map), len(d.Map[0])
}

// TileURL returns the image url of tile id.
func (d *Document) TileURL(id int) (string, bool) {
	if d == nil || id < 1 || id > len(d.TileURLs) {
		return "", false
	}
	u := strings.TrimSpace(d.TileURLs[id-1])
	return u, u != ""
}

// PropURLMap returns prop urls keyed by asset id. Later entries win.
func (d *Document) PropURLMap() map[string]string {
	out := map[string]string{}
	if d == nil {
		return out
	}
	for _, p := range d.PropURLs {
		if p.URL == "" {
			continue
		}
		out[string(p.ID)] = p.URL
	}
	return out
}

// AssetURLs lists every distinct non-empty asset url the level references,
// tiles first.
func (d *Document) AssetURLs() []string {
	if d == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		out = append(out, u)
	}
	for _, u := range d.TileURLs {
		add(u)
	}
	for _, p := range d.PropURLs {
		add(p.URL)
	}
	add(d.SpriteURL)
	add(d.ActionURL)
	add(d.EnemyURL)
	add(d.BackgroundURL)
	return out
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Map = make([][]int, len(d.Map))
	for i, row := range d.Map {
		c.Map[i] = append([]int(nil), row...)
	}
	c.TileURLs = append([]string(nil), d.TileURLs...)
	if d.GoalTileID != nil {
		g := *d.GoalTileID
		c.GoalTileID = &g
	}
	c.Props = append([]PropPlacement(nil), d.Props...)
	c.PropURLs = append([]PropURL(nil), d.PropURLs...)
	c.Enemies = append([]EnemySeed(nil), d.Enemies...)
	return &c
}

// DefaultMap is the grid given to new levels: 15 rows of 24 columns with a
// solid floor.
func DefaultMap() [][]int {
	const rows, cols = 15, 24
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
	}
	for c := range grid[rows-1] {
		grid[rows-1][c] = 1
	}
	return grid
}
