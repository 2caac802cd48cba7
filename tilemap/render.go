package tilemap

import "strings"

// Glyphs used by Render.
const (
	GlyphFloor = '-'
	GlyphWall  = 'X'
	GlyphPath  = '*'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// Render draws m one row per line. Cells on path are drawn with GlyphPath,
// except the first (GlyphStart) and last (GlyphGoal). Path cells outside m
// are ignored.
func Render(m Map, path []Cell) string {
	w, h := m.Width(), m.Height()
	marks := make(map[Cell]rune, len(path))
	for i, c := range path {
		switch i {
		case 0:
			marks[c] = GlyphStart
		case len(path) - 1:
			marks[c] = GlyphGoal
		default:
			marks[c] = GlyphPath
		}
	}

	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, ok := marks[Cell{X: x, Y: y}]; ok {
				b.WriteRune(r)
				continue
			}
			if m.Walkable(x, y) {
				b.WriteRune(GlyphFloor)
			} else {
				b.WriteRune(GlyphWall)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
