package maze

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/telemetry"
)

// Maze owns one validated configuration, one PRNG stream, and the two grids
// published by the most recent generation pass. A Maze is not safe for
// concurrent use; callers wanting parallel generation should own one
// instance per goroutine.
type Maze struct {
	cfg config
	rng *rand.Rand
	id  uuid.UUID

	passes     uint64
	seed       int64
	entity     TextGrid
	variations TextGrid
	rooms      []Room
}

// New validates the configuration, then runs the first generation pass.
// It fails atomically with a *ConfigError before consuming any randomness:
// on error no Maze exists and no grids were ever published.
func New(ctx context.Context, opts ...Option) (*Maze, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	seed := cfg.seed
	if !cfg.seedSet {
		seed = time.Now().UnixNano()
	}
	m := &Maze{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		id:   uuid.New(),
		seed: seed,
	}
	m.generate(ctx)
	return m, nil
}

// Regenerate runs a fresh generation pass in place, reusing the stored
// configuration and the already-advanced PRNG stream. The new grids replace
// the old ones only once the pass has fully completed; a pass is never
// observable half-applied.
func (m *Maze) Regenerate(ctx context.Context) {
	m.generate(ctx)
}

// generate runs the pipeline on scratch state and publishes the results.
func (m *Maze) generate(ctx context.Context) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	p := newPass(&m.cfg, m.rng)
	p.run()
	entity := p.renderEntity()
	variations := p.renderVariations()

	// Publish: everything above worked on pass-local state.
	m.entity = entity
	m.variations = variations
	m.rooms = p.rooms
	m.passes++

	span.SetAttributes(
		attribute.String("maze.id", m.id.String()),
		attribute.Int("maze.height", m.cfg.height),
		attribute.Int("maze.width", m.cfg.width),
		attribute.Int("maze.room_count", len(m.rooms)),
		attribute.Int64("maze.pass", int64(m.passes)),
		attribute.Int64("maze.entity_fingerprint", int64(entity.Sum64())),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)
}

// EntityLayer returns a copy of the structural grid. Successive calls
// without an intervening Regenerate return identical grids.
func (m *Maze) EntityLayer() TextGrid {
	return m.entity.Clone()
}

// VariationsLayer returns a copy of the zone-membership grid.
func (m *Maze) VariationsLayer() TextGrid {
	return m.variations.Clone()
}

// Rooms returns a copy of the rooms placed by the latest pass.
func (m *Maze) Rooms() []Room {
	out := make([]Room, len(m.rooms))
	copy(out, m.rooms)
	return out
}

// Height returns the grid height.
func (m *Maze) Height() int {
	return m.cfg.height
}

// Width returns the grid width.
func (m *Maze) Width() int {
	return m.cfg.width
}

// Seed returns the seed that initialized this instance's PRNG stream.
func (m *Maze) Seed() int64 {
	return m.seed
}

// ID returns the instance identifier reported in telemetry.
func (m *Maze) ID() uuid.UUID {
	return m.id
}

// Passes returns how many generation passes have run, including the one at
// construction.
func (m *Maze) Passes() uint64 {
	return m.passes
}
