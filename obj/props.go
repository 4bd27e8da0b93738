package obj

// Prop is a static decoration. It never collides.
type Prop struct {
	AssetID string
	X, Y    float64
}

// SizeFunc returns the pixel size of an asset and whether it is ready.
type SizeFunc func(assetID string) (w, h float64, ok bool)

// Props holds the decorations of a level and the asset url for each id.
type Props struct {
	items []Prop
	urls  map[string]string
}

func NewProps(items []Prop, urls map[string]string) *Props {
	p := &Props{items: append([]Prop(nil), items...), urls: make(map[string]string, len(urls))}
	for id, u := range urls {
		p.urls[id] = u
	}
	return p
}

// URL returns the asset url registered for id.
func (p *Props) URL(id string) (string, bool) {
	if p == nil {
		return "", false
	}
	u, ok := p.urls[id]
	return u, ok
}

func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// EachVisible calls fn with the screen position of every prop whose asset is
// ready and whose box intersects the view. Props without a ready asset are
// skipped.
func (p *Props) EachVisible(camX, camY, viewW, viewH float64, size SizeFunc, fn func(prop Prop, screenX, screenY float64)) {
	if p == nil || size == nil || fn == nil {
		return
	}
	for _, prop := range p.items {
		w, h, ok := size(prop.AssetID)
		if !ok {
			continue
		}
		if w <= 0 {
			w = 64
		}
		if h <= 0 {
			h = 64
		}
		x := prop.X - camX
		y := prop.Y - camY
		if x+w < 0 || x > viewW || y+h < 0 || y > viewH {
			continue
		}
		fn(prop, x, y)
	}
}
