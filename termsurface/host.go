package termsurface

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fractree"
)

// Options configures Run.
type Options struct {
	Config fractree.Config

	// Seed fixes the random sequence. Zero seeds from the clock.
	Seed uint64

	CellWidth, CellHeight float64

	// Tick is the refresh interval; zero means fractree.DefaultTick.
	Tick time.Duration
}

// runeBindings maps keys to fractree command names.
var runeBindings = map[rune]string{
	'a': "animate",
	'd': "debug",
	's': "shapes",
	'c': "clear",
	'r': "reseed",
}

// Run takes over the terminal and grows fractals until the user quits with
// q, Esc or Ctrl-C, or ctx ends. Mouse clicks add seed points. Quitting and
// ctx ending both return nil.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termsurface: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termsurface: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	return run(ctx, screen, opts)
}

func run(ctx context.Context, screen tcell.Screen, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	surf := New(screen, opts.CellWidth, opts.CellHeight)
	defer surf.Close()

	rng := fractree.NewTimeRand()
	if opts.Seed != 0 {
		rng = fractree.NewRand(opts.Seed)
	}
	loop := fractree.NewLoop(opts.Tick)
	orch := fractree.NewOrchestrator(
		fractree.NewSeedStore(),
		fractree.NewScheduler(fractree.SystemClock{}, rng),
		loop,
		opts.Config,
	)
	orch.Start(surf.Size())

	in := &input{screen: screen, surf: surf, orch: orch, quit: cancel}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}
			loop.Post(func() { in.handle(ev) })
		}
	}()

	err := loop.Run(ctx, orch, surf, func() bool {
		surf.Show()
		return true
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// input applies terminal events to the orchestrator. It runs on the loop
// goroutine.
type input struct {
	screen tcell.Screen
	surf   *Surface
	orch   *fractree.Orchestrator
	quit   func()
	down   bool
}

func (in *input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.quit()
		case tcell.KeyUp:
			in.command("deeper")
		case tcell.KeyDown:
			in.command("shallower")
		case tcell.KeyRune:
			r := unicode.ToLower(ev.Rune())
			if r == 'q' {
				in.quit()
				return
			}
			if name, ok := runeBindings[r]; ok {
				in.command(name)
			}
		}

	case *tcell.EventMouse:
		// Cells are too coarse for a drag dead zone, so a click fires on
		// press.
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !in.down {
			col, row := ev.Position()
			in.orch.Click(in.surf.CellToPixel(col, row))
		}
		in.down = pressed

	case *tcell.EventResize:
		in.screen.Sync()
		in.orch.Request()
	}
}

func (in *input) command(name string) {
	if cmd, ok := fractree.LookupCommand(name); ok {
		fractree.Logger().Debug("key", "command", name)
		cmd.Apply(in.orch)
	}
}
