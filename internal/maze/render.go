package maze

// renderEntity projects the structural state into the entity layer:
// '*' for walls, ' ' for floors, and the configured tokens at spawn and
// object cells.
func (p *pass) renderEntity() TextGrid {
	grid := NewTextGrid(p.cfg.height, p.cfg.width, TileWall.Rune())
	for y := 0; y < p.cfg.height; y++ {
		for x := 0; x < p.cfg.width; x++ {
			grid.Set(y, x, p.tiles[y][x].Rune())
		}
	}
	for _, s := range p.spawns {
		grid.Set(s.Y, s.X, p.cfg.spawnToken)
	}
	for _, o := range p.objects {
		grid.Set(o.Y, o.X, p.cfg.objectToken)
	}
	return grid
}

// renderVariations projects zone membership: every cell of room i carries
// the letter 'A'+(i mod maxVariations), everything else the background dot.
// With maxVariations of zero the layer is uniform background.
func (p *pass) renderVariations() TextGrid {
	grid := NewTextGrid(p.cfg.height, p.cfg.width, VariationBackground)
	if p.cfg.maxVariations == 0 {
		return grid
	}
	for i, room := range p.rooms {
		label := rune('A' + i%p.cfg.maxVariations)
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				grid.Set(y, x, label)
			}
		}
	}
	return grid
}
