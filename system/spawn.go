package system

import (
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

func countTileAssets(doc *levels.Document) int {
	n := 0
	for _, u := range doc.TileURLs {
		if strings.TrimSpace(u) != "" {
			n++
		}
	}
	return n
}

func enemySeeds(doc *levels.Document) []cp.Vector {
	seeds := make([]cp.Vector, 0, len(doc.Enemies))
	for _, e := range doc.Enemies {
		seeds = append(seeds, cp.Vector{X: e.X, Y: e.Y})
	}
	return seeds
}

func propPlacements(doc *levels.Document) []obj.Prop {
	props := make([]obj.Prop, 0, len(doc.Props))
	for _, p := range doc.Props {
		props = append(props, obj.Prop{AssetID: string(p.ID), X: p.X, Y: p.Y})
	}
	return props
}
