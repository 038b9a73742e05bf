package maze

// removeDeadEnds prunes corridor cells with fewer than two open orthogonal
// neighbors back to wall, repeating until nothing changes. Room cells are
// never pruned. Whole corridor branches that lead nowhere vanish cell by
// cell; any corridor on a path between two connections survives.
//
// The caller skips this step when no rooms were placed, otherwise the
// fallback pure-corridor maze would prune down to nothing.
func (p *pass) removeDeadEnds() {
	for {
		changed := false
		for y := 1; y < p.cfg.height-1; y++ {
			for x := 1; x < p.cfg.width-1; x++ {
				if p.tiles[y][x] != TileFloor || p.inRoom[y][x] {
					continue
				}
				if p.openNeighbors(x, y) < 2 {
					p.tiles[y][x] = TileWall
					p.region[y][x] = -1
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

func (p *pass) openNeighbors(x, y int) int {
	count := 0
	if p.isFloor(x-1, y) {
		count++
	}
	if p.isFloor(x+1, y) {
		count++
	}
	if p.isFloor(x, y-1) {
		count++
	}
	if p.isFloor(x, y+1) {
		count++
	}
	return count
}
