// Command fractree grows motif fractals in a window, a terminal, or
// headlessly into PNG files.
//
//	fractree -motifs "🌿,🌸,🍃" -depth 7
//	fractree -mode png -shapes -animate -frames 5 -seed 42 -out frames
//	fractree -mode term -count 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/phanxgames/fractree"
	"github.com/phanxgames/fractree/ebitenhost"
	"github.com/phanxgames/fractree/ggsurface"
	"github.com/phanxgames/fractree/termsurface"
)

type options struct {
	mode    string
	motifs  string
	count   int
	depth   int
	animate bool
	debug   bool
	shapes  bool
	delay   time.Duration
	seed    uint64
	width   int
	height  int
	frames  int
	out     string
	script  string
	verbose bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("fractree: %v", err)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	fractree.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		fractree.Logger().Warn("config adjusted", "err", err)
	}

	var script []byte
	if opts.script != "" {
		if script, err = os.ReadFile(opts.script); err != nil {
			return fmt.Errorf("read script: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch opts.mode {
	case "window":
		return ebitenhost.Run(ebitenhost.RunConfig{
			Title:           "fractree",
			Width:           opts.width,
			Height:          opts.height,
			Config:          cfg,
			Seed:            opts.seed,
			Script:          script,
			ExitAfterScript: len(script) > 0,
			SnapshotDir:     opts.out,
		})
	case "term":
		return termsurface.Run(ctx, termsurface.Options{Config: cfg, Seed: opts.seed})
	case "png":
		return renderPNG(ctx, opts, cfg, script)
	default:
		return fmt.Errorf("unknown mode %q (want window, png or term)", opts.mode)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("fractree", flag.ContinueOnError)
	fs.StringVar(&o.mode, "mode", "window", "output: window, png or term")
	fs.StringVar(&o.motifs, "motifs", "*,o,+,x", "comma-separated motif strings")
	fs.IntVar(&o.count, "count", fractree.DefaultFractalCount, "random seed points placed at start")
	fs.IntVar(&o.depth, "depth", fractree.DefaultDepth, fmt.Sprintf("generations per tree (0-%d)", fractree.MaxDepthLimit))
	fs.BoolVar(&o.animate, "animate", false, "regrow every frame continuously")
	fs.BoolVar(&o.debug, "debug", false, "draw growth lines and the summary overlay")
	fs.BoolVar(&o.shapes, "shapes", false, "draw palette circles instead of motifs")
	fs.DurationVar(&o.delay, "delay", fractree.DefaultStepDelay, "pause before each branch step")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (0 uses the clock)")
	fs.IntVar(&o.width, "width", 800, "canvas width in pixels")
	fs.IntVar(&o.height, "height", 600, "canvas height in pixels")
	fs.IntVar(&o.frames, "frames", 1, "frames to render in png mode")
	fs.StringVar(&o.out, "out", "out", "directory for PNG frames and snapshots")
	fs.StringVar(&o.script, "script", "", "JSON session script to replay")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.width <= 0 || o.height <= 0 {
		return o, fmt.Errorf("invalid size %dx%d", o.width, o.height)
	}
	return o, nil
}

func (o options) config() fractree.Config {
	cfg := fractree.DefaultConfig()
	cfg.Motifs = fractree.ParseMotifs(o.motifs)
	cfg.FractalCount = o.count
	cfg.MaxDepth = o.depth
	cfg.Animate = o.animate
	cfg.Debug = o.debug
	cfg.UseMotifs = !o.shapes
	cfg.StepDelay = o.delay
	return cfg
}

// renderPNG grows frames on a gg surface against a manual clock, so export
// runs as fast as the rasterizer allows and a fixed seed gives identical
// files. Every completed frame is written to the output directory.
func renderPNG(ctx context.Context, opts options, cfg fractree.Config, scriptJSON []byte) error {
	surf, err := ggsurface.New(opts.width, opts.height)
	if err != nil {
		return err
	}
	defer surf.Close()

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	clock := fractree.NewManualClock(time.Now())
	loop := fractree.NewLoop(time.Millisecond)
	loop.StopOnError = true
	orch := fractree.NewOrchestrator(
		fractree.NewSeedStore(),
		fractree.NewScheduler(clock, fractree.NewRand(seed)),
		loop,
		cfg,
	)

	var saveErr error
	save := func(label string) {
		path := fractree.SnapshotPath(opts.out, label, orch.Frame())
		if err := surf.SavePNG(path); err != nil {
			saveErr = errors.Join(saveErr, err)
			return
		}
		fractree.Logger().Info("wrote", "path", path)
		fmt.Println(path)
	}

	var script *fractree.ScriptRunner
	if len(scriptJSON) > 0 {
		if script, err = fractree.LoadScript(scriptJSON); err != nil {
			return err
		}
		script.OnSnapshot = save
	} else {
		orch.OnFrame = func(fractree.FrameStats) { save("frame") }
	}

	orch.Start(float64(opts.width), float64(opts.height))
	err = loop.Run(ctx, orch, surf, func() bool {
		clock.Advance(orch.Config().StepDelay)
		if script != nil {
			script.Step(orch)
			return !script.Done() || !settled(orch)
		}
		return !settled(orch) || (orch.State() == fractree.FrameScheduled && orch.Frame() < uint64(opts.frames))
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return errors.Join(err, saveErr)
}

func settled(o *fractree.Orchestrator) bool {
	s := o.State()
	return s == fractree.FrameIdle || s == fractree.FrameScheduled
}
