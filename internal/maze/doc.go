// Package maze generates two-dimensional labyrinths of walls, corridors, and
// rectangular rooms, deterministically reproducible from a seed.
//
// A generation pass places up to maxRooms padded rectangles on an
// odd-coordinate lattice, fills the remaining interior with depth-first
// corridor trees, joins every room and tree into a single floor component,
// opens extra connections with a configurable probability, and prunes
// dead-end corridors. The result is published as two character grids: the
// entity layer ('*' wall, ' ' floor, plus spawn/object tokens) and the
// variations layer ('.' background, one letter per room zone).
//
// Randomness comes from a math/rand stream seeded once per instance; the
// draw order is fixed (room placement, carving, connection, token
// placement), so a seed fully determines every pass of an instance's
// lifetime. Reproducibility is guaranteed within this implementation only,
// not against other PRNGs.
package maze
