// Command physics2d drives a World from a JSON scene file or a
// procedurally generated one, stepping it at a fixed timestep and
// reporting statistics until the requested duration elapses or the
// process receives an interrupt.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	physics2d "github.com/agossen/physics2d"
)

// Build information, set by the build script via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// SceneConfig is the on-disk JSON shape for a scene file.
type SceneConfig struct {
	Gravity  physics2d.Vec2 `json:"gravity"`
	CellSize float64        `json:"cellSize,omitempty"`
	Duration float64        `json:"duration"`
	Bodies   []BodyConfig   `json:"bodies"`
}

// BodyConfig describes one body: a box needs Width/Height, a polygon
// needs Sides/Radius. Mass 0 makes the body static.
type BodyConfig struct {
	Type        string         `json:"type"`
	Mass        float64        `json:"mass"`
	Position    physics2d.Vec2 `json:"position"`
	Velocity    physics2d.Vec2 `json:"velocity"`
	Rotation    float64        `json:"rotation"`
	Width       float64        `json:"width,omitempty"`
	Height      float64        `json:"height,omitempty"`
	Sides       int            `json:"sides,omitempty"`
	Radius      float64        `json:"radius,omitempty"`
	Restitution float64        `json:"restitution"`
	Friction    float64        `json:"friction"`
	Damping     float64        `json:"friction_dynamic"`
}

func loadSceneFromFile(filename string) (*SceneConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var config SceneConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func loadScene(w *physics2d.World, config *SceneConfig) error {
	w.SetGravity(config.Gravity)
	if config.CellSize > 0 {
		w.SetCellSize(config.CellSize)
	}

	for _, bc := range config.Bodies {
		var body *physics2d.RigidBody

		switch strings.ToLower(bc.Type) {
		case "circle":
			body = physics2d.NewRegularPolygonBody(24, bc.Radius, bc.Mass)
		case "polygon":
			if bc.Sides < 3 {
				return fmt.Errorf("polygon body needs sides >= 3, got %d", bc.Sides)
			}
			body = physics2d.NewRegularPolygonBody(bc.Sides, bc.Radius, bc.Mass)
		case "box":
			body = physics2d.NewBoxBody(bc.Width, bc.Height, bc.Mass)
		default:
			return fmt.Errorf("unknown body type: %q", bc.Type)
		}

		body.SnapTo(bc.Position)
		body.Rotate(bc.Rotation)
		body.SetLinearVelocity(bc.Velocity)
		body.SetRestitution(bc.Restitution)
		body.SetFriction(bc.Friction, bc.Damping)

		w.AddBody(*body)
	}

	return nil
}

func generateScene(w *physics2d.World, sceneType string, bodyCount int) {
	switch sceneType {
	case "pyramid":
		generatePyramidScene(w, bodyCount)
	case "rain":
		generateRainScene(w, bodyCount)
	default:
		generateDefaultScene(w, bodyCount)
	}
}

// generateDefaultScene drops bodyCount boxes, in rows of ten, onto a wide
// static floor.
func generateDefaultScene(w *physics2d.World, bodyCount int) {
	floor := physics2d.NewBoxBody(50, 4, 0)
	floor.SnapTo(physics2d.Vec2{0, -20})
	floor.SetFriction(0.3, 0.2)
	w.AddBody(*floor)

	for i := 0; i < bodyCount; i++ {
		box := physics2d.NewBoxBody(1, 1, 1)
		box.SnapTo(physics2d.Vec2{float64(i%10) - 4.5, 5 + float64(i/10)*1.5})
		box.SetRestitution(0.2)
		box.SetFriction(0.3, 0.2)
		w.AddBody(*box)
	}
}

// generatePyramidScene stacks boxes in a triangular pile above a floor.
func generatePyramidScene(w *physics2d.World, rows int) {
	floor := physics2d.NewBoxBody(60, 4, 0)
	floor.SnapTo(physics2d.Vec2{0, -20})
	floor.SetFriction(0.4, 0.3)
	w.AddBody(*floor)

	const size = 1.0
	baseY := -20 + 2 + size/2
	for row := 0; row < rows; row++ {
		count := rows - row
		startX := -float64(count-1) * size / 2
		for i := 0; i < count; i++ {
			box := physics2d.NewBoxBody(size, size, 1)
			box.SnapTo(physics2d.Vec2{
				startX + float64(i)*size,
				baseY + float64(row)*size,
			})
			box.SetRestitution(0.05)
			box.SetFriction(0.5, 0.4)
			w.AddBody(*box)
		}
	}
}

// generateRainScene drops many small circles from staggered heights.
func generateRainScene(w *physics2d.World, bodyCount int) {
	floor := physics2d.NewBoxBody(80, 4, 0)
	floor.SnapTo(physics2d.Vec2{0, -30})
	floor.SetFriction(0.2, 0.1)
	w.AddBody(*floor)

	for i := 0; i < bodyCount; i++ {
		ball := physics2d.NewRegularPolygonBody(16, 0.4, 0.3)
		x := float64(i%20)*2 - 19
		y := 10 + float64(i/20)*2
		ball.SnapTo(physics2d.Vec2{x, y})
		ball.SetRestitution(0.6)
		ball.SetFriction(0.1, 0.05)
		w.AddBody(*ball)
	}
}

type config struct {
	GravityX, GravityY float64
	TimeStep           float64
	Duration           float64
	Iterations         int
	CellSize           float64
	YBounds            float64

	Verbose       bool
	Quiet         bool
	StatsInterval float64
	ProfileCPU    string
	ProfileMem    string

	SceneFile   string
	SceneType   string
	BodiesCount int

	ShowVersion bool
}

func parseFlags() *config {
	c := &config{}

	flag.Float64Var(&c.GravityX, "gravity-x", 0.0, "gravity X component")
	flag.Float64Var(&c.GravityY, "gravity-y", -9.81, "gravity Y component")
	flag.Float64Var(&c.TimeStep, "timestep", 1.0/120.0, "physics time step in seconds")
	flag.Float64Var(&c.Duration, "duration", 0, "simulation duration in seconds (0 = run until interrupted)")
	flag.IntVar(&c.Iterations, "iterations", physics2d.DefaultSolverIterations, "collision resolution iterations per step")
	flag.Float64Var(&c.CellSize, "cell-size", physics2d.DefaultCellSize, "broad-phase grid cell size")
	flag.Float64Var(&c.YBounds, "y-bounds", physics2d.DefaultYBounds, "bodies below -y-bounds are culled")

	flag.BoolVar(&c.Verbose, "verbose", false, "verbose output")
	flag.BoolVar(&c.Quiet, "quiet", false, "minimal output")
	flag.Float64Var(&c.StatsInterval, "stats-interval", 2.0, "statistics reporting interval in seconds")
	flag.StringVar(&c.ProfileCPU, "profile-cpu", "", "CPU profile output file")
	flag.StringVar(&c.ProfileMem, "profile-mem", "", "memory profile output file")

	flag.StringVar(&c.SceneFile, "scene", "", "JSON scene file to load")
	flag.StringVar(&c.SceneType, "scene-type", "default", "generated scene type (default, pyramid, rain)")
	flag.IntVar(&c.BodiesCount, "bodies", 20, "number of bodies for generated scenes (number of rows for pyramid)")

	flag.BoolVar(&c.ShowVersion, "version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "physics2d - a 2D rigid-body physics core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -bodies 30 -scene-type pyramid\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -scene scene.json -duration 10\n", os.Args[0])
	}

	flag.Parse()
	return c
}

func main() {
	c := parseFlags()

	if c.ShowVersion {
		fmt.Printf("physics2d %s (built %s)\n", Version, BuildTime)
		return
	}

	if c.Quiet {
		log.SetOutput(io.Discard)
	} else if c.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	if c.ProfileCPU != "" {
		f, err := os.Create(c.ProfileCPU)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if !c.Quiet {
		log.Printf("starting physics2d %s", Version)
	}

	w := physics2d.NewWorld()
	w.SetGravity(physics2d.Vec2{c.GravityX, c.GravityY})
	w.SetSolverIterations(c.Iterations)
	w.SetCellSize(c.CellSize)
	w.SetYBounds(c.YBounds)

	if c.SceneFile != "" {
		sceneConfig, err := loadSceneFromFile(c.SceneFile)
		if err != nil {
			log.Fatalf("failed to load scene: %v", err)
		}
		if err := loadScene(w, sceneConfig); err != nil {
			log.Fatalf("failed to set up scene: %v", err)
		}
		if sceneConfig.Duration > 0 {
			c.Duration = sceneConfig.Duration
		}
		if !c.Quiet {
			log.Printf("loaded scene from %s (%d bodies)", c.SceneFile, len(w.Bodies()))
		}
	} else {
		generateScene(w, c.SceneType, c.BodiesCount)
		if !c.Quiet {
			log.Printf("generated %s scene with %d bodies", c.SceneType, len(w.Bodies()))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if c.Duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.Duration*float64(time.Second)))
		defer cancel()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		if !c.Quiet {
			log.Println("shutting down...")
		}
		cancel()
	}()

	if !c.Quiet {
		if c.Duration > 0 {
			log.Printf("running for %.2f seconds at dt=%.5f", c.Duration, c.TimeStep)
		} else {
			log.Println("running until interrupted, press Ctrl+C to stop")
		}
	}

	run(ctx, w, c)

	if c.ProfileMem != "" {
		f, err := os.Create(c.ProfileMem)
		if err != nil {
			log.Printf("could not create memory profile: %v", err)
		} else {
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Printf("could not write memory profile: %v", err)
			}
		}
	}

	if !c.Quiet {
		stats := w.Stats()
		log.Printf("simulation completed:")
		log.Printf("  steps:              %d", stats.Steps)
		log.Printf("  bodies remaining:   %d", len(w.Bodies()))
		log.Printf("  broad-phase checks: %d", stats.BroadChecks)
		log.Printf("  narrow checks:      %d", stats.NarrowChecks)
		log.Printf("  contacts resolved:  %d", stats.ContactsResolved)
	}
}

// run steps the world at a fixed rate until ctx is cancelled, printing
// periodic stats. It never spawns a goroutine to touch the World itself:
// Step is single-threaded, so only the reporting ticker runs concurrently.
func run(ctx context.Context, w *physics2d.World, c *config) {
	dt := c.TimeStep
	if dt <= 0 {
		dt = 1.0 / 120.0
	}

	var reportTicker *time.Ticker
	if !c.Quiet && c.StatsInterval > 0 {
		reportTicker = time.NewTicker(time.Duration(c.StatsInterval * float64(time.Second)))
		defer reportTicker.Stop()
	}

	stepTicker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer stepTicker.Stop()

	var reportChan <-chan time.Time
	if reportTicker != nil {
		reportChan = reportTicker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-stepTicker.C:
			w.Step(dt)
		case <-reportChan:
			stats := w.Stats()
			log.Printf("step %d | bodies %d | contacts resolved %d",
				stats.Steps, len(w.Bodies()), stats.ContactsResolved)
		}
	}
}
