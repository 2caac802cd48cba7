// Package searchgraph turns a tilemap.Map into the node graph that path
// searches run over.
//
// What:
//
//   - One node per walkable cell; blocked cells have no node at all.
//   - Nodes live in an arena and are addressed by dense integer ids,
//     assigned in row-major scan order.
//   - Each node links to up to four orthogonal walkable neighbors in the
//     fixed order North (y-1), South (y+1), West (x-1), East (x+1).
//     A missing neighbor is NoNode, never a dangling id.
//   - Links are symmetric: if a lists b, b lists a.
//
// Topology is fixed once Build returns; edit the map and rebuild to change
// it. Graphs carry no per-search state, so one Graph may be shared by any
// number of concurrent readers.
//
// Complexity:
//
//   - Build: O(W×H) time and memory.
//   - Lookup, Neighbor, Position: O(1).
//
// Errors:
//
//   - ErrNilMap: Build was given a nil map.
//   - ErrEmptyMap: width or height is not positive.
package searchgraph
