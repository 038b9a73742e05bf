package maze

// placeRooms attempts up to cfg.maxRooms room placements. Each room gets at
// most cfg.retryCount attempts; a room that never fits is skipped without
// failing the pass, so the final count may fall short of maxRooms.
//
// Rooms live on the corridor lattice: drawn sizes and positions are rounded
// down to odd values, which keeps every room edge one wall away from a
// corridor cell. Candidates are tested with one cell of padding so two
// accepted rooms never share or touch a floor cell.
func (p *pass) placeRooms() {
	for i := 0; i < p.cfg.maxRooms; i++ {
		for attempt := 0; attempt < p.cfg.retryCount; attempt++ {
			room, ok := p.proposeRoom()
			if !ok {
				continue
			}
			if p.roomFits(room) {
				p.acceptRoom(room)
				break
			}
		}
	}
}

// proposeRoom draws one candidate rectangle. The draw order is fixed:
// height, width, row, column.
func (p *pass) proposeRoom() (Room, bool) {
	h := makeOdd(p.cfg.roomMinSize + p.rng.Intn(p.cfg.roomMaxSize-p.cfg.roomMinSize+1))
	w := makeOdd(p.cfg.roomMinSize + p.rng.Intn(p.cfg.roomMaxSize-p.cfg.roomMinSize+1))

	y, ok := p.randomOddOffset(h, p.cfg.height)
	if !ok {
		return Room{}, false
	}
	x, ok := p.randomOddOffset(w, p.cfg.width)
	if !ok {
		return Room{}, false
	}
	return Room{X: x, Y: y, Width: w, Height: h}, true
}

// randomOddOffset draws an odd top/left coordinate such that a span of the
// given size stays inside the interior of a grid with the given extent.
// Returns false when the span cannot fit at all.
func (p *pass) randomOddOffset(size, extent int) (int, bool) {
	max := extent - 1 - size // last workable offset, boundary excluded
	if max < 1 {
		return 0, false
	}
	positions := (max-1)/2 + 1 // odd values in [1, max]
	return 1 + 2*p.rng.Intn(positions), true
}

func (p *pass) roomFits(room Room) bool {
	padded := room.padded()
	for _, other := range p.rooms {
		if padded.Intersects(other) {
			return false
		}
	}
	return true
}

func (p *pass) acceptRoom(room Room) {
	id := len(p.rooms)
	p.rooms = append(p.rooms, room)
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			p.tiles[y][x] = TileFloor
			p.inRoom[y][x] = true
			p.region[y][x] = id
		}
	}
}

// makeOdd rounds an even value down to the nearest odd one.
func makeOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}
