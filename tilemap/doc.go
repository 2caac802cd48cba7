// Package tilemap holds the 2D tile maps that path queries run over.
//
// What:
//
//   - Cell is an (x, y) coordinate; x grows east, y grows south.
//   - Map is the read-only contract consumed by searchgraph.Build:
//     Width, Height and a per-cell Walkable predicate.
//   - Grid is a dense rectangular map built from [][]int rows
//     (values[y][x] == 0 is walkable, anything else is blocked).
//   - Sparse stores only its blocked cells, for large mostly-open maps.
//   - Parse reads ASCII maps; Render draws a map with an overlaid path.
//
// Out-of-range coordinates are never walkable: Walkable returns false
// instead of panicking, so callers can probe neighbors freely.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a mutation addressed a cell outside the map.
//   - ErrBadGlyph: Parse met a character that is neither floor nor wall.
//
// Example ASCII map (S=start, G=goal are only produced by Render):
//
//	----X--
//	XXXXXX-
//	-X---X-
package tilemap
