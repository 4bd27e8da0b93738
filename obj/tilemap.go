package obj

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// GroundResult is the outcome of a ground collision query.
type GroundResult struct {
	Y        float64
	VY       float64
	OnGround bool
}

// TileMap is the immutable tile grid of a level session. Id 0 is empty, any
// positive id is solid and goalID (when set) marks the level-end tile.
type TileMap struct {
	grid      [][]int
	cols      int
	goalID    int
	hasGoal   bool
	tileW     float64
	tileH     float64
	sizeKnown bool
	footInset float64
}

// NewTileMap copies grid into a new map. tileAssets is the number of tile
// images the level references; when it is zero there is nothing to wait for
// and the default tile size is final straight away. Otherwise the size stays
// unknown until SetTileSize is called.
func NewTileMap(grid [][]int, goalID *int, tileAssets int) *TileMap {
	m := &TileMap{
		tileW:     common.DefaultTileSize,
		tileH:     common.DefaultTileSize,
		sizeKnown: tileAssets == 0,
		footInset: common.FootInset,
	}
	if goalID != nil {
		m.goalID = *goalID
		m.hasGoal = true
	}
	m.grid = make([][]int, len(grid))
	for i, row := range grid {
		m.grid[i] = append([]int(nil), row...)
		if len(row) > m.cols {
			m.cols = len(row)
		}
	}
	return m
}

// SetFootInset overrides the footprint inset used by the sampling queries.
func (m *TileMap) SetFootInset(inset float64) {
	if m == nil || inset < 0 {
		return
	}
	m.footInset = inset
}

// SetDefaultTileSize changes the square tile size used while no tile image
// has reported its size. Non-positive sizes are ignored.
func (m *TileMap) SetDefaultTileSize(size float64) {
	if m == nil || size <= 0 {
		return
	}
	m.tileW = size
	m.tileH = size
}

// SetTileSize records the pixel size of the loaded tile images and marks the
// size as known. Non-positive sizes are ignored.
func (m *TileMap) SetTileSize(w, h float64) {
	if m == nil || w <= 0 || h <= 0 {
		return
	}
	m.tileW = w
	m.tileH = h
	m.sizeKnown = true
}

func (m *TileMap) TileSize() (float64, float64) {
	if m == nil {
		return common.DefaultTileSize, common.DefaultTileSize
	}
	return m.tileW, m.tileH
}

func (m *TileMap) SizeKnown() bool { return m != nil && m.sizeKnown }

func (m *TileMap) Rows() int {
	if m == nil {
		return 0
	}
	return len(m.grid)
}

func (m *TileMap) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// GoalID returns the goal tile id and whether one is configured.
func (m *TileMap) GoalID() (int, bool) {
	if m == nil {
		return 0, false
	}
	return m.goalID, m.hasGoal
}

// TileAt returns the id at (row, col), or 0 outside the grid.
func (m *TileMap) TileAt(row, col int) int {
	if m == nil || row < 0 || col < 0 || row >= len(m.grid) {
		return 0
	}
	r := m.grid[row]
	if col >= len(r) {
		return 0
	}
	return r[col]
}

func (m *TileMap) IsSolid(row, col int) bool {
	return m.TileAt(row, col) > 0
}

func (m *TileMap) IsGoal(row, col int) bool {
	if m == nil || !m.hasGoal {
		return false
	}
	return m.TileAt(row, col) == m.goalID
}

// WidthPx returns the level width in pixels. ok is false while the tile size
// is unknown or the grid is empty; callers then only clamp against the left
// edge.
func (m *TileMap) WidthPx() (width float64, ok bool) {
	if m == nil || !m.sizeKnown || len(m.grid) == 0 {
		return 0, false
	}
	return float64(m.cols) * m.tileW, true
}

func (m *TileMap) HeightPx() float64 {
	if m == nil {
		return 0
	}
	return float64(len(m.grid)) * m.tileH
}

// DeathY is the world y below which a falling entity is considered dead.
func (m *TileMap) DeathY(margin float64) float64 {
	return m.HeightPx() + margin
}

func (m *TileMap) footColumns(x, width float64) (int, int) {
	left := common.FloorDiv(x+m.footInset, m.tileW)
	right := common.FloorDiv(x+width-m.footInset, m.tileW)
	return left, right
}

func (m *TileMap) rowUnder(y, height float64) int {
	return common.FloorDiv(y+height, m.tileH)
}

// FindSpawnY scans rows bottom to top under the entity footprint at x and
// returns the y that rests the entity on the first solid tile found.
func (m *TileMap) FindSpawnY(x, width, height float64) (float64, bool) {
	if m == nil || len(m.grid) == 0 {
		return 0, false
	}
	left, right := m.footColumns(x, width)
	for row := len(m.grid) - 1; row >= 0; row-- {
		if m.IsSolid(row, left) || m.IsSolid(row, right) {
			return float64(row)*m.tileH - height, true
		}
	}
	return 0, false
}

// ResolveGroundCollision snaps a falling entity onto the row under its feet.
// Upward velocity never snaps. Only the row directly under the feet is
// sampled, so a fast fall can pass through a thin platform in one step.
func (m *TileMap) ResolveGroundCollision(x, y, vy, width, height float64) GroundResult {
	res := GroundResult{Y: y, VY: vy}
	if m == nil || vy < 0 {
		return res
	}
	left, right := m.footColumns(x, width)
	row := m.rowUnder(y, height)
	if !m.IsSolid(row, left) && !m.IsSolid(row, right) {
		return res
	}
	return GroundResult{Y: float64(row)*m.tileH - height, VY: 0, OnGround: true}
}

// GoalReached reports whether either footprint column under the entity's feet
// is a goal tile.
func (m *TileMap) GoalReached(x, y, width, height float64) bool {
	if m == nil || !m.hasGoal {
		return false
	}
	left, right := m.footColumns(x, width)
	row := m.rowUnder(y, height)
	return m.IsGoal(row, left) || m.IsGoal(row, right)
}

// TileSpan is the half-open window of rows and columns intersecting a view.
type TileSpan struct {
	StartRow, EndRow int
	StartCol, EndCol int
}

// Visible returns the tiles intersecting a view of viewW by viewH at the
// camera offset, padded by two tiles on the far edges.
func (m *TileMap) Visible(camX, camY, viewW, viewH float64) TileSpan {
	if m == nil || len(m.grid) == 0 {
		return TileSpan{}
	}
	startCol := max(0, common.FloorDiv(camX, m.tileW))
	endCol := min(m.cols, startCol+int(math.Ceil(viewW/m.tileW))+2)
	startRow := max(0, common.FloorDiv(camY, m.tileH))
	endRow := min(len(m.grid), startRow+int(math.Ceil(viewH/m.tileH))+2)
	return TileSpan{StartRow: startRow, EndRow: endRow, StartCol: startCol, EndCol: endCol}
}

// EachVisible calls fn for every non-empty tile in the view with its screen
// position.
func (m *TileMap) EachVisible(camX, camY, viewW, viewH float64, fn func(id int, screenX, screenY float64)) {
	if m == nil || fn == nil {
		return
	}
	span := m.Visible(camX, camY, viewW, viewH)
	for row := span.StartRow; row < span.EndRow; row++ {
		for col := span.StartCol; col < span.EndCol; col++ {
			id := m.TileAt(row, col)
			if id <= 0 {
				continue
			}
			fn(id, float64(col)*m.tileW-camX, float64(row)*m.tileH-camY)
		}
	}
}
