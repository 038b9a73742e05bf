package maze

import "math/rand"

// point is a grid coordinate (column X, row Y).
type point struct {
	X, Y int
}

// pass holds the scratch state of a single generation run. A fresh pass is
// built for every call to New and Regenerate so nothing can leak between
// passes; only the rendered grids are published at the end.
type pass struct {
	cfg *config
	rng *rand.Rand

	tiles  [][]Tile
	inRoom [][]bool
	// region holds a region id per floor cell (-1 for walls): one id per
	// room, then one per carved corridor tree.
	region [][]int

	rooms     []Room
	spawns    []point
	objects   []point
	treeCount int
}

func newPass(cfg *config, rng *rand.Rand) *pass {
	p := &pass{cfg: cfg, rng: rng}
	p.tiles = make([][]Tile, cfg.height)
	p.inRoom = make([][]bool, cfg.height)
	p.region = make([][]int, cfg.height)
	for y := 0; y < cfg.height; y++ {
		p.tiles[y] = make([]Tile, cfg.width)
		p.inRoom[y] = make([]bool, cfg.width)
		p.region[y] = make([]int, cfg.width)
		for x := 0; x < cfg.width; x++ {
			p.tiles[y][x] = TileWall
			p.region[y][x] = -1
		}
	}
	return p
}

// run executes the full pipeline in order. Randomness is consumed strictly
// in this sequence, which is what makes a seeded maze reproducible:
// room placement, corridor carving, region connection, token placement.
func (p *pass) run() {
	p.placeRooms()
	p.carveCorridors()
	p.connectRegions()
	if p.cfg.simplify && len(p.rooms) > 0 {
		p.removeDeadEnds()
	}
	p.placeTokens()
}

func (p *pass) inBounds(x, y int) bool {
	return x >= 0 && x < p.cfg.width && y >= 0 && y < p.cfg.height
}

func (p *pass) isFloor(x, y int) bool {
	return p.inBounds(x, y) && p.tiles[y][x].IsFloor()
}
