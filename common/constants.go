package common

const (
	// DefaultTileSize is used until the first tile image reports its size.
	DefaultTileSize = 64

	// FootInset keeps collision columns off an entity's exact left/right edges.
	FootInset = 6.0
)
