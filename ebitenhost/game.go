// Package ebitenhost runs fractree in a desktop window using Ebitengine.
//
// Left click adds a seed point. Keys: A toggles animation, D debug mode,
// S circles instead of glyphs, Up/Down change depth, C clears every seed,
// R reseeds, Esc quits.
package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/fractree"
)

// RunConfig holds the window and session settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Config        fractree.Config

	// Seed fixes the random sequence. Zero seeds from the clock.
	Seed uint64

	// Script is an optional JSON session script replayed from the first tick.
	Script []byte
	// ExitAfterScript closes the window once the script has finished.
	ExitAfterScript bool

	// SnapshotDir receives PNGs for script snapshot steps. Defaults to
	// "snapshots".
	SnapshotDir string
}

// Run opens a window and blocks until it is closed.
func Run(rc RunConfig) error {
	g, err := NewGame(rc)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(g.width, g.height)
	fractree.Logger().Info("window opened", "width", g.width, "height", g.height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Game implements ebiten.Game around a fractree orchestrator. The fractal
// grows on an offscreen canvas that persists across ticks; ripples and the
// FPS readout are composited on top in Draw.
type Game struct {
	orch    *fractree.Orchestrator
	surface *Canvas

	width, height int
	pointer       pointer
	injected      injectQueue
	next          []func()
	ripples       fractree.Ripples

	script      *fractree.ScriptRunner
	exitOnDone  bool
	snapshotDir string
	snapshots   []string
}

var _ fractree.FrameScheduler = (*Game)(nil)

// NewGame builds the orchestrator, canvas and optional script for rc.
func NewGame(rc RunConfig) (*Game, error) {
	if rc.Width <= 0 || rc.Height <= 0 {
		return nil, fmt.Errorf("ebitenhost: invalid window size %dx%d", rc.Width, rc.Height)
	}
	surface, err := NewCanvas(rc.Width, rc.Height)
	if err != nil {
		return nil, err
	}

	rng := fractree.NewTimeRand()
	if rc.Seed != 0 {
		rng = fractree.NewRand(rc.Seed)
	}

	g := &Game{
		surface:     surface,
		width:       rc.Width,
		height:      rc.Height,
		pointer:     pointer{deadZone: DefaultClickDeadZone},
		exitOnDone:  rc.ExitAfterScript,
		snapshotDir: rc.SnapshotDir,
	}
	if g.snapshotDir == "" {
		g.snapshotDir = "snapshots"
	}
	if len(rc.Script) > 0 {
		g.script, err = fractree.LoadScript(rc.Script)
		if err != nil {
			surface.Close()
			return nil, err
		}
		g.script.OnSnapshot = func(label string) { g.snapshots = append(g.snapshots, label) }
	}

	sched := fractree.NewScheduler(fractree.SystemClock{}, rng)
	g.orch = fractree.NewOrchestrator(fractree.NewSeedStore(), sched, g, rc.Config)
	g.orch.Start(float64(rc.Width), float64(rc.Height))
	return g, nil
}

// Orchestrator returns the orchestrator driven by the game.
func (g *Game) Orchestrator() *fractree.Orchestrator { return g.orch }

// ScheduleNextFrame runs fn at the start of the next Update.
func (g *Game) ScheduleNextFrame(fn func()) {
	g.next = append(g.next, fn)
}

// InjectClick queues a synthetic click at screen coordinates (x, y). It is
// processed through the same dead-zone logic as the mouse.
func (g *Game) InjectClick(x, y float64) {
	g.injected.click(x, y)
}

// Close releases the offscreen canvas.
func (g *Game) Close() {
	g.surface.Close()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	pending := g.next
	g.next = nil
	for _, fn := range pending {
		fn()
	}

	g.handleKeys()
	g.handlePointer()

	if g.script != nil {
		g.script.Step(g.orch)
		if g.script.Done() && g.exitOnDone && len(g.snapshots) == 0 && g.settled() {
			return ebiten.Termination
		}
	}

	if err := g.orch.Tick(g.surface); err != nil {
		fractree.Logger().Warn("tick failed", "err", err)
	}
	g.ripples.Update(float32(1 / float64(ebiten.TPS())))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)

	overlay := g.surface.on(screen)
	if err := g.ripples.Draw(overlay); err != nil {
		fractree.Logger().Warn("ripple draw failed", "err", err)
	}
	if g.orch.Config().Debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			10, g.height-20)
	}

	g.flushSnapshots(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *Game) settled() bool {
	s := g.orch.State()
	return s == fractree.FrameIdle || s == fractree.FrameScheduled
}

func (g *Game) handleKeys() {
	for _, b := range keyBindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if cmd, ok := fractree.LookupCommand(b.command); ok {
			fractree.Logger().Debug("key", "command", cmd.Name)
			cmd.Apply(g.orch)
		}
	}
}

func (g *Game) handlePointer() {
	var x, y float64
	var pressed bool
	if evt, ok := g.injected.pop(); ok {
		x, y, pressed = evt.x, evt.y, evt.pressed
	} else {
		mx, my := ebiten.CursorPosition()
		x, y = float64(mx), float64(my)
		pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	if cx, cy, ok := g.pointer.update(x, y, pressed); ok {
		g.click(cx, cy)
	}
}

func (g *Game) click(x, y float64) {
	p := g.orch.Click(x, y)
	g.ripples.Add(p.X, p.Y, g.orch.Config().Foreground)
}

// flushSnapshots captures the composed frame for every queued label.
func (g *Game) flushSnapshots(screen *ebiten.Image) {
	if len(g.snapshots) == 0 {
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := fractree.NRGBAFromPremultiplied(pixels, b.Dx(), b.Dy())

	for _, label := range g.snapshots {
		path := fractree.SnapshotPath(g.snapshotDir, label, g.orch.Frame())
		if err := fractree.WritePNG(path, img); err != nil {
			fractree.Logger().Warn("snapshot failed", "label", label, "err", err)
			continue
		}
		fractree.Logger().Info("snapshot", "path", path)
	}
	g.snapshots = g.snapshots[:0]
}
