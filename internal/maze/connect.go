package maze

// connector is a wall cell whose removal would join two different regions
// (a room or a corridor tree on either side).
type connector struct {
	at   point
	a, b int // region ids on the two sides
}

// connectRegions opens connectors until all rooms and corridor trees form a
// single floor component, then independently opens each remaining connector
// with the configured extra-connection probability. The first phase is the
// reachability guarantee; the second only ever adds edges, so connectivity
// can only improve.
func (p *pass) connectRegions() {
	regionCount := len(p.rooms) + p.treeCount
	if regionCount <= 1 {
		return
	}

	connectors := p.findConnectors()
	p.rng.Shuffle(len(connectors), func(i, j int) {
		connectors[i], connectors[j] = connectors[j], connectors[i]
	})

	// Disjoint-set over region ids with path compression and union by rank.
	parent := make([]int, regionCount)
	rank := make([]int, regionCount)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// Spanning phase: one opened connector per region merge.
	remaining := connectors[:0]
	for _, c := range connectors {
		if find(c.a) != find(c.b) {
			p.tiles[c.at.Y][c.at.X] = TileFloor
			union(c.a, c.b)
		} else {
			remaining = append(remaining, c)
		}
	}

	// Extra-connection phase: independent draw per leftover connector.
	for _, c := range remaining {
		if p.rng.Float64() < p.cfg.extraConnProb {
			p.tiles[c.at.Y][c.at.X] = TileFloor
		}
	}
}

// findConnectors scans interior wall cells for floor cells of different
// regions on opposite sides. A single wall cell can separate regions both
// horizontally and vertically; it then yields two candidates.
func (p *pass) findConnectors() []connector {
	var out []connector
	for y := 1; y < p.cfg.height-1; y++ {
		for x := 1; x < p.cfg.width-1; x++ {
			if p.tiles[y][x] != TileWall {
				continue
			}
			if left, right := p.region[y][x-1], p.region[y][x+1]; left >= 0 && right >= 0 && left != right {
				out = append(out, connector{at: point{X: x, Y: y}, a: left, b: right})
			}
			if up, down := p.region[y-1][x], p.region[y+1][x]; up >= 0 && down >= 0 && up != down {
				out = append(out, connector{at: point{X: x, Y: y}, a: up, b: down})
			}
		}
	}
	return out
}
