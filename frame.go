package fractree

// FrameState is the position of the orchestrator in its per-frame cycle.
type FrameState uint8

const (
	FrameIdle      FrameState = iota // waiting for a request
	FrameClearing                    // next Tick paints the background and starts expansion
	FrameExpanding                   // trees are growing
	FrameOverlay                     // every tree finished; overlay and continuation pending
	FrameScheduled                   // animation callback registered with the host
)

func (s FrameState) String() string {
	switch s {
	case FrameIdle:
		return "idle"
	case FrameClearing:
		return "clearing"
	case FrameExpanding:
		return "expanding"
	case FrameOverlay:
		return "overlay"
	case FrameScheduled:
		return "scheduled"
	default:
		return "unknown"
	}
}

// Orchestrator runs the frame cycle: clear the canvas, grow a tree from every
// seed point, draw the debug overlay, then either schedule the next frame
// (Animate) or go idle until something requests a redraw.
//
// All methods must be called from the goroutine that calls Tick.
type Orchestrator struct {
	store  *SeedStore
	sched  *Scheduler
	frames FrameScheduler

	cfg    Config
	state  FrameState
	exp    *Expansion
	gen    uint64 // bumped by every Request; stale callbacks compare against it
	frame  uint64
	bounds Vec2
	stats  FrameStats

	// OnFrame is called after every completed frame, before the next one is
	// scheduled.
	OnFrame func(FrameStats)
}

// NewOrchestrator creates an idle orchestrator. frames may be nil, in which
// case Animate has no effect.
func NewOrchestrator(store *SeedStore, sched *Scheduler, frames FrameScheduler, cfg Config) *Orchestrator {
	return &Orchestrator{
		store:  store,
		sched:  sched,
		frames: frames,
		cfg:    cfg.Normalize(),
	}
}

// Start populates an empty store with Config.FractalCount random seeds inside
// width x height and requests the first frame.
func (o *Orchestrator) Start(width, height float64) {
	o.bounds = Vec2{X: width, Y: height}
	o.store.Initialize(o.cfg.FractalCount, width, height, o.sched.Rand)
	o.Request()
}

// Request abandons any frame in progress and starts a fresh one on the next
// Tick. The in-flight expansion is cancelled immediately rather than left to
// finish against its stale snapshot.
func (o *Orchestrator) Request() {
	o.gen++
	if o.exp != nil {
		o.exp.Cancel()
	}
	o.state = FrameClearing
}

// Config returns a copy of the active configuration.
func (o *Orchestrator) Config() Config {
	c := o.cfg
	c.Motifs = append([]string(nil), o.cfg.Motifs...)
	return c
}

// SetConfig replaces the configuration and requests a new frame.
func (o *Orchestrator) SetConfig(cfg Config) {
	o.cfg = cfg.Normalize()
	o.Request()
}

// Edit applies fn to a copy of the configuration and installs the result.
func (o *Orchestrator) Edit(fn func(*Config)) {
	c := o.Config()
	fn(&c)
	o.SetConfig(c)
}

// Click appends a seed point at canvas coordinates (x, y) and redraws.
func (o *Orchestrator) Click(x, y float64) SeedPoint {
	p := o.store.Append(x, y, o.sched.Rand)
	o.Request()
	return p
}

// ClearAll removes every seed point and redraws an empty canvas.
func (o *Orchestrator) ClearAll() {
	o.store.Clear()
	o.Request()
}

// Reseed replaces the seed points with Config.FractalCount fresh random ones
// inside the last known canvas bounds.
func (o *Orchestrator) Reseed() {
	o.store.Clear()
	o.store.Initialize(o.cfg.FractalCount, o.bounds.X, o.bounds.Y, o.sched.Rand)
	o.Request()
}

// Store returns the seed store.
func (o *Orchestrator) Store() *SeedStore { return o.store }

// State returns the current frame state.
func (o *Orchestrator) State() FrameState { return o.state }

// Frame returns the number of frames started so far.
func (o *Orchestrator) Frame() uint64 { return o.frame }

// Expansion returns the expansion of the current or last frame, or nil.
func (o *Orchestrator) Expansion() *Expansion { return o.exp }

// Tick advances the frame cycle by one host refresh. A surface failure
// aborts the frame, leaves the orchestrator idle, and is returned as a
// *FrameError; the next Request starts over.
func (o *Orchestrator) Tick(s Surface) error {
	if o.state == FrameClearing {
		if err := o.beginFrame(s); err != nil {
			return o.abort(err)
		}
	}
	if o.state == FrameExpanding {
		if err := o.exp.Advance(s); err != nil {
			return o.abort(err)
		}
		if !o.exp.Complete() {
			return nil
		}
		o.state = FrameOverlay
	}
	if o.state == FrameOverlay {
		return o.endFrame(s)
	}
	return nil
}

func (o *Orchestrator) beginFrame(s Surface) error {
	o.frame++
	t0 := o.sched.Clock.Now()

	w, h := s.Size()
	o.bounds = Vec2{X: w, Y: h}
	if err := s.Fill(o.cfg.Background); err != nil {
		return surfaceErr("fill", err)
	}

	points := o.store.Points()
	o.stats = FrameStats{
		Frame:     o.frame,
		Seeds:     len(points),
		Depth:     o.cfg.MaxDepth,
		ClearTime: o.sched.Clock.Now().Sub(t0),
	}
	o.exp = o.sched.ExpandAll(points, o.cfg)
	o.state = FrameExpanding
	return nil
}

func (o *Orchestrator) endFrame(s Surface) error {
	st := o.exp.Stats()
	o.stats.Rendered = st.Rendered
	o.stats.ExpandTime = st.Elapsed

	if o.cfg.Debug {
		if err := drawOverlay(s, o.cfg, o.stats.Seeds); err != nil {
			return o.abort(err)
		}
		o.stats.Overlay = true
		debugLog(o.stats)
		if want := expectedRenders(o.stats.Seeds, o.stats.Depth); st.Rendered != want {
			Logger().Warn("render count mismatch", "frame", o.frame, "got", st.Rendered, "want", want)
		}
	}

	gen := o.gen
	if o.OnFrame != nil {
		o.OnFrame(o.stats)
		if o.gen != gen {
			// The callback requested a new frame.
			return nil
		}
	}

	if !o.cfg.Animate || o.frames == nil {
		o.state = FrameIdle
		return nil
	}
	o.state = FrameScheduled
	o.frames.ScheduleNextFrame(func() {
		if o.gen == gen && o.state == FrameScheduled {
			o.state = FrameClearing
		}
	})
	return nil
}

func (o *Orchestrator) abort(err error) error {
	if o.exp != nil {
		o.exp.Cancel()
	}
	o.state = FrameIdle
	Logger().Warn("frame aborted", "frame", o.frame, "err", err)
	return &FrameError{Frame: o.frame, Err: err}
}
