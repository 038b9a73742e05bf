package maze

import (
	"context"
	"testing"
)

func TestMazeReproducibility(t *testing.T) {
	// Two instances with the same seed must stay identical across passes.
	ctx := context.Background()
	opts := []Option{
		WithHeight(51), WithWidth(31),
		WithMaxRooms(5), WithRoomMinSize(9), WithRoomMaxSize(19),
		WithRandomSeed(12345),
	}

	m1, err := New(ctx, opts...)
	if err != nil {
		t.Fatalf("Failed to construct first maze: %v", err)
	}
	m2, err := New(ctx, opts...)
	if err != nil {
		t.Fatalf("Failed to construct second maze: %v", err)
	}

	for pass := 1; pass <= 3; pass++ {
		if !m1.EntityLayer().Equal(m2.EntityLayer()) {
			t.Errorf("Entity layers diverged on pass %d", pass)
		}
		if !m1.VariationsLayer().Equal(m2.VariationsLayer()) {
			t.Errorf("Variations layers diverged on pass %d", pass)
		}
		if len(m1.Rooms()) != len(m2.Rooms()) {
			t.Errorf("Room count mismatch on pass %d: %d != %d", pass, len(m1.Rooms()), len(m2.Rooms()))
		}
		m1.Regenerate(ctx)
		m2.Regenerate(ctx)
	}
}

func TestMazeDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	base := []Option{
		WithHeight(51), WithWidth(31),
		WithMaxRooms(5), WithRoomMinSize(9), WithRoomMaxSize(19),
	}

	m1, err := New(ctx, append(base, WithRandomSeed(12345))...)
	if err != nil {
		t.Fatalf("Failed to construct maze: %v", err)
	}
	m2, err := New(ctx, append(base, WithRandomSeed(54321))...)
	if err != nil {
		t.Fatalf("Failed to construct maze: %v", err)
	}

	if m1.EntityLayer().Equal(m2.EntityLayer()) {
		t.Error("Mazes with different seeds should not be identical")
	}
}

func TestRegenerateChangesLayout(t *testing.T) {
	ctx := context.Background()
	m, err := New(ctx,
		WithHeight(51), WithWidth(31),
		WithMaxRooms(5), WithRoomMinSize(9), WithRoomMaxSize(19),
		WithRandomSeed(12345))
	if err != nil {
		t.Fatalf("Failed to construct maze: %v", err)
	}

	prevEntity := m.EntityLayer()
	prevVariations := m.VariationsLayer()

	for pass := 0; pass < 5; pass++ {
		m.Regenerate(ctx)

		entity := m.EntityLayer()
		variations := m.VariationsLayer()
		if entity.Equal(prevEntity) {
			t.Errorf("Entity layer unchanged after regeneration %d", pass+1)
		}
		if variations.Equal(prevVariations) {
			t.Errorf("Variations layer unchanged after regeneration %d", pass+1)
		}
		prevEntity = entity
		prevVariations = variations
	}

	if got := m.Passes(); got != 6 {
		t.Errorf("Passes() = %d, want 6", got)
	}
}

func TestRenderingIsIdempotent(t *testing.T) {
	m, err := New(context.Background(),
		WithHeight(17), WithWidth(17), WithMaxRooms(9), WithRandomSeed(12345))
	if err != nil {
		t.Fatalf("Failed to construct maze: %v", err)
	}

	e1, e2 := m.EntityLayer(), m.EntityLayer()
	if !e1.Equal(e2) {
		t.Error("Entity layer differs between renders without regeneration")
	}
	if e1.Sum64() != e2.Sum64() {
		t.Error("Entity fingerprints differ between renders without regeneration")
	}
	if e1.String() != e2.String() {
		t.Error("Entity renderings differ between renders without regeneration")
	}

	v1, v2 := m.VariationsLayer(), m.VariationsLayer()
	if !v1.Equal(v2) {
		t.Error("Variations layer differs between renders without regeneration")
	}

	// The returned grids are copies: mutating one must not leak back.
	e1.Set(0, 0, 'X')
	if m.EntityLayer().At(0, 0) != rune(TileWall) {
		t.Error("Mutating a returned grid leaked into the maze state")
	}
}
