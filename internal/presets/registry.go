package presets

import (
	"errors"
	"sort"

	"github.com/samdwyer/mazeband/internal/maze"
)

// Preset is a named maze configuration. Zero-valued numeric fields fall back
// to the engine defaults; the seed is only applied when Seeded is true so a
// preset can stay non-deterministic.
type Preset struct {
	Name                       string  `json:"name"`
	Description                string  `json:"description"`
	Height                     int     `json:"height"`
	Width                      int     `json:"width"`
	MaxRooms                   int     `json:"maxRooms"`
	RoomMinSize                int     `json:"roomMinSize"`
	RoomMaxSize                int     `json:"roomMaxSize"`
	ExtraConnectionProbability float64 `json:"extraConnectionProbability"`
	MaxVariations              *int    `json:"maxVariations,omitempty"`
	Seeded                     bool    `json:"seeded"`
	Seed                       int64   `json:"seed"`
}

// Options expands the preset into engine construction options.
func (p Preset) Options() []maze.Option {
	var opts []maze.Option
	if p.Height != 0 {
		opts = append(opts, maze.WithHeight(p.Height))
	}
	if p.Width != 0 {
		opts = append(opts, maze.WithWidth(p.Width))
	}
	if p.MaxRooms != 0 {
		opts = append(opts, maze.WithMaxRooms(p.MaxRooms))
	}
	if p.RoomMinSize != 0 {
		opts = append(opts, maze.WithRoomMinSize(p.RoomMinSize))
	}
	if p.RoomMaxSize != 0 {
		opts = append(opts, maze.WithRoomMaxSize(p.RoomMaxSize))
	}
	if p.ExtraConnectionProbability != 0 {
		opts = append(opts, maze.WithExtraConnectionProbability(p.ExtraConnectionProbability))
	}
	if p.MaxVariations != nil {
		opts = append(opts, maze.WithMaxVariations(*p.MaxVariations))
	}
	if p.Seeded {
		opts = append(opts, maze.WithRandomSeed(p.Seed))
	}
	return opts
}

// Registry holds loaded presets keyed by name.
type Registry struct {
	presets map[string]*Preset
}

// NewRegistry creates a registry from preset definitions.
func NewRegistry(defs []Preset) *Registry {
	r := &Registry{presets: make(map[string]*Preset, len(defs))}
	for i := range defs {
		r.presets[defs[i].Name] = &defs[i]
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	defs, err := Load[[]Preset]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(defs), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the preset with the given name, or nil if not found.
func (r *Registry) Get(name string) *Preset {
	return r.presets[name]
}

// Names returns all preset names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.presets)
}
