// Package main is the entry point for the mazeband viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cenkalti/backoff/v5"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/presets"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
)

func main() {
	var (
		presetName = flag.String("preset", "", "named preset from the embedded registry (overridden by explicit flags)")
		height     = flag.Int("height", 0, "grid height (positive odd integer)")
		width      = flag.Int("width", 0, "grid width (positive odd integer)")
		seed       = flag.Int64("seed", 0, "random seed (omit for a clock-derived seed)")
		rooms      = flag.Int("rooms", -1, "maximum room count")
		roomMin    = flag.Int("room-min", 0, "minimum room dimension")
		roomMax    = flag.Int("room-max", 0, "maximum room dimension")
		extra      = flag.Float64("extra", -1, "extra connection probability in [0,1]")
		variations = flag.Int("variations", -1, "zone alphabet size in [0,26]")
		ascii      = flag.Bool("ascii", false, "print both layers to stdout and exit")
	)
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry; the OTLP endpoint can be briefly unavailable at
	// startup, so exporter setup is retried with exponential backoff.
	shutdown, err := backoff.Retry(ctx,
		func() (func(context.Context) error, error) { return telemetry.Setup(ctx) },
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3),
	)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Viewer will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	opts, err := buildOptions(*presetName, *height, *width, *seed, *rooms, *roomMin, *roomMax, *extra, *variations, seedFlagSet())
	if err != nil {
		log.Fatal(err)
	}

	m, err := maze.New(ctx, opts...)
	if err != nil {
		log.Fatalf("Failed to generate maze: %v", err)
	}

	if *ascii {
		fmt.Print(m.EntityLayer().String())
		fmt.Println()
		fmt.Print(m.VariationsLayer().String())
		return
	}

	if err := runViewer(ctx, m); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// buildOptions resolves the preset (if any) and layers explicit flags on top.
func buildOptions(presetName string, height, width int, seed int64, rooms, roomMin, roomMax int, extra float64, variations int, seedSet bool) ([]maze.Option, error) {
	var opts []maze.Option

	if presetName != "" {
		registry, err := presets.LoadRegistry()
		if err != nil {
			return nil, err
		}
		p := registry.Get(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", presetName, strings.Join(registry.Names(), ", "))
		}
		opts = p.Options()
	}

	if height != 0 {
		opts = append(opts, maze.WithHeight(height))
	}
	if width != 0 {
		opts = append(opts, maze.WithWidth(width))
	}
	if rooms >= 0 {
		opts = append(opts, maze.WithMaxRooms(rooms))
	}
	if roomMin != 0 {
		opts = append(opts, maze.WithRoomMinSize(roomMin))
	}
	if roomMax != 0 {
		opts = append(opts, maze.WithRoomMaxSize(roomMax))
	}
	if extra >= 0 {
		opts = append(opts, maze.WithExtraConnectionProbability(extra))
	}
	if variations >= 0 {
		opts = append(opts, maze.WithMaxVariations(variations))
	}
	if seedSet {
		opts = append(opts, maze.WithRandomSeed(seed))
	}
	return opts, nil
}

// seedFlagSet reports whether -seed was passed explicitly, so that zero stays
// a usable seed value.
func seedFlagSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}

// runViewer drives the interactive terminal loop.
func runViewer(ctx context.Context, m *maze.Maze) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	showVariations := false

	for {
		renderer.Render(m, showVariations)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
				m.Regenerate(ctx)
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'v' || ev.Rune() == 'V'):
				showVariations = !showVariations
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_MAZEBAND_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MAZEBAND_DATASET")
	if dataset == "" {
		dataset = "mazeband"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
