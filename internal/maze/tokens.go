package maze

// placeTokens draws spawn and object cells inside each room, without
// replacement: a cell holds at most one token. Rooms smaller than the
// requested counts simply hold fewer tokens.
func (p *pass) placeTokens() {
	if p.cfg.spawnsPerRoom == 0 && p.cfg.objectsPerRoom == 0 {
		return
	}
	for _, room := range p.rooms {
		cells := make([]point, 0, room.Width*room.Height)
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				cells = append(cells, point{X: x, Y: y})
			}
		}
		p.rng.Shuffle(len(cells), func(i, j int) {
			cells[i], cells[j] = cells[j], cells[i]
		})

		take := min(p.cfg.spawnsPerRoom, len(cells))
		p.spawns = append(p.spawns, cells[:take]...)
		cells = cells[take:]

		take = min(p.cfg.objectsPerRoom, len(cells))
		p.objects = append(p.objects, cells[:take]...)
	}
}
