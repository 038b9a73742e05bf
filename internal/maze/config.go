package maze

import "unicode/utf8"

// Default construction parameters. A default maze is an 11x11 grid holding a
// single 3x3 room with every dead-end corridor pruned away.
const (
	DefaultHeight                     = 11
	DefaultWidth                      = 11
	DefaultMaxRooms                   = 1
	DefaultRoomMinSize                = 3
	DefaultRoomMaxSize                = 3
	DefaultRetryCount                 = 1000
	DefaultExtraConnectionProbability = 0.0
	DefaultMaxVariations              = 26
	DefaultSpawnToken                 = 'P'
	DefaultObjectToken                = 'G'
)

// config holds every construction parameter. It is immutable after New
// validates it; Regenerate reuses it untouched.
type config struct {
	height         int
	width          int
	maxRooms       int
	roomMinSize    int
	roomMaxSize    int
	retryCount     int
	extraConnProb  float64
	maxVariations  int
	simplify       bool
	spawnToken     rune
	spawnsPerRoom  int
	objectToken    rune
	objectsPerRoom int
	seed           int64
	seedSet        bool

	// set by the token options when the supplied string is not one rune
	badSpawnToken  bool
	badObjectToken bool
}

func defaultConfig() config {
	return config{
		height:        DefaultHeight,
		width:         DefaultWidth,
		maxRooms:      DefaultMaxRooms,
		roomMinSize:   DefaultRoomMinSize,
		roomMaxSize:   DefaultRoomMaxSize,
		retryCount:    DefaultRetryCount,
		extraConnProb: DefaultExtraConnectionProbability,
		maxVariations: DefaultMaxVariations,
		simplify:      true,
		spawnToken:    DefaultSpawnToken,
		objectToken:   DefaultObjectToken,
	}
}

// Option configures a Maze at construction time.
type Option func(*config)

// WithHeight sets the total grid height, boundary walls included.
// Must be a positive odd integer.
func WithHeight(h int) Option {
	return func(c *config) { c.height = h }
}

// WithWidth sets the total grid width, boundary walls included.
// Must be a positive odd integer.
func WithWidth(w int) Option {
	return func(c *config) { c.width = w }
}

// WithMaxRooms sets the number of room placements attempted per generation
// pass. Fewer rooms may be placed when the grid runs out of space; zero
// yields a pure corridor maze.
func WithMaxRooms(n int) Option {
	return func(c *config) { c.maxRooms = n }
}

// WithRoomMinSize sets the smallest room dimension drawn by the planner.
// Even draws are rounded down to stay on the corridor lattice.
func WithRoomMinSize(n int) Option {
	return func(c *config) { c.roomMinSize = n }
}

// WithRoomMaxSize sets the largest room dimension drawn by the planner.
func WithRoomMaxSize(n int) Option {
	return func(c *config) { c.roomMaxSize = n }
}

// WithRetryCount bounds the placement attempts spent on each room before the
// planner gives up on that room and moves on.
func WithRetryCount(n int) Option {
	return func(c *config) { c.retryCount = n }
}

// WithExtraConnectionProbability sets the chance, per candidate wall, of
// opening an extra connection between already-connected regions. Zero keeps
// the corridor network a tree; one opens every candidate.
func WithExtraConnectionProbability(p float64) Option {
	return func(c *config) { c.extraConnProb = p }
}

// WithMaxVariations bounds the zone alphabet used by the variations layer,
// between 0 (no zones) and 26 ('A' through 'Z').
func WithMaxVariations(n int) Option {
	return func(c *config) { c.maxVariations = n }
}

// WithSimplify toggles dead-end pruning after generation. On by default.
func WithSimplify(on bool) Option {
	return func(c *config) { c.simplify = on }
}

// WithSpawnToken sets the single character marking spawn cells in the entity
// layer.
func WithSpawnToken(tok string) Option {
	return func(c *config) { c.spawnToken = tokenRune(tok, &c.badSpawnToken) }
}

// WithSpawnsPerRoom sets how many spawn cells are drawn inside each room.
func WithSpawnsPerRoom(n int) Option {
	return func(c *config) { c.spawnsPerRoom = n }
}

// WithObjectToken sets the single character marking object cells in the
// entity layer.
func WithObjectToken(tok string) Option {
	return func(c *config) { c.objectToken = tokenRune(tok, &c.badObjectToken) }
}

// WithObjectsPerRoom sets how many object cells are drawn inside each room.
func WithObjectsPerRoom(n int) Option {
	return func(c *config) { c.objectsPerRoom = n }
}

// WithRandomSeed fixes the PRNG seed so that the full sequence of generation
// passes is reproducible. Without it the seed derives from the clock.
func WithRandomSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// validate checks every field in a fixed order and stops at the first
// violation. It consumes no randomness.
func (c *config) validate() error {
	if c.height <= 0 || c.height%2 == 0 {
		return heightWidthErr("height", c.height)
	}
	if c.width <= 0 || c.width%2 == 0 {
		return heightWidthErr("width", c.width)
	}
	if c.maxRooms < 0 {
		return configErr("max_rooms", ConstraintSign, "max_rooms must be a non-negative integer, got %d", c.maxRooms)
	}
	if c.roomMinSize <= 0 {
		return configErr("room_min_size", ConstraintSign, "room_min_size must be a positive integer, got %d", c.roomMinSize)
	}
	if c.roomMaxSize <= 0 {
		return configErr("room_max_size", ConstraintSign, "room_max_size must be a positive integer, got %d", c.roomMaxSize)
	}
	if c.roomMinSize > c.roomMaxSize {
		return configErr("room_min_size", ConstraintCrossField,
			"room_min_size must be less than or equal to room_max_size, got %d > %d", c.roomMinSize, c.roomMaxSize)
	}
	if c.retryCount <= 0 {
		return configErr("retry_count", ConstraintSign, "retry_count must be a positive integer, got %d", c.retryCount)
	}
	if c.extraConnProb < 0 || c.extraConnProb > 1 {
		return configErr("extra_connection_probability", ConstraintRange,
			"extra_connection_probability must be between 0.0 and 1.0, got %v", c.extraConnProb)
	}
	if c.maxVariations < 0 || c.maxVariations > 26 {
		return configErr("max_variations", ConstraintRange, "max_variations must be between 0 and 26, got %d", c.maxVariations)
	}
	if c.spawnsPerRoom < 0 {
		return configErr("spawns_per_room", ConstraintSign, "spawns_per_room must be a non-negative integer, got %d", c.spawnsPerRoom)
	}
	if c.objectsPerRoom < 0 {
		return configErr("objects_per_room", ConstraintSign, "objects_per_room must be a non-negative integer, got %d", c.objectsPerRoom)
	}
	if c.badSpawnToken {
		return configErr("spawn_token", ConstraintLength, "spawn_token must be a single character")
	}
	if c.badObjectToken {
		return configErr("object_token", ConstraintLength, "object_token must be a single character")
	}
	return nil
}

func heightWidthErr(field string, got int) *ConfigError {
	constraint := ConstraintSign
	if got > 0 {
		constraint = ConstraintParity
	}
	return configErr(field, constraint, "%s must be a positive odd integer, got %d", field, got)
}

// tokenRune decodes a one-character token, flagging anything else for the
// validator so the error surfaces at construction rather than at option time.
func tokenRune(tok string, bad *bool) rune {
	r, size := utf8.DecodeRuneInString(tok)
	if r == utf8.RuneError || size != len(tok) {
		*bad = true
		return 0
	}
	return r
}
