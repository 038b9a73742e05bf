package maze

// carveDirs are the lattice steps available to the carver: two cells at a
// time, with the wall in between opened on acceptance.
var carveDirs = [4]point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}

// carveCorridors grows a randomized depth-first spanning maze over every
// odd-coordinate cell not claimed by a room. The walk restarts for each
// still-unvisited lattice cell, so free pockets isolated by room placement
// each receive their own corridor tree; connectRegions later joins the trees
// and rooms into one component. No cycles are introduced here.
func (p *pass) carveCorridors() {
	for y := 1; y < p.cfg.height-1; y += 2 {
		for x := 1; x < p.cfg.width-1; x += 2 {
			if p.tiles[y][x] == TileWall && !p.inRoom[y][x] {
				p.carveTree(point{X: x, Y: y}, len(p.rooms)+p.treeCount)
				p.treeCount++
			}
		}
	}
}

// carveTree runs an iterative recursive-backtracker walk from start,
// labelling every carved cell with the given region id.
func (p *pass) carveTree(start point, regionID int) {
	p.openCorridorCell(start.X, start.Y, regionID)
	stack := []point{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Shuffle the step order for this cell.
		dirs := carveDirs
		p.rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		moved := false
		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx < 1 || nx > p.cfg.width-2 || ny < 1 || ny > p.cfg.height-2 {
				continue
			}
			if p.tiles[ny][nx] != TileWall || p.inRoom[ny][nx] {
				continue
			}
			// Open the wall between the two lattice cells, then the cell.
			p.openCorridorCell(cur.X+d.X/2, cur.Y+d.Y/2, regionID)
			p.openCorridorCell(nx, ny, regionID)
			stack = append(stack, point{X: nx, Y: ny})
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}
}

func (p *pass) openCorridorCell(x, y, regionID int) {
	p.tiles[y][x] = TileFloor
	p.region[y][x] = regionID
}
