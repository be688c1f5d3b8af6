package fractree

import (
	"context"
	"time"
)

// DefaultTick is the refresh interval of a headless Loop (60 Hz).
const DefaultTick = time.Second / 60

// Loop is a headless host: it ticks an Orchestrator at a fixed interval and
// implements FrameScheduler by running callbacks on the following tick.
// Other goroutines hand work to the loop with Post, so the orchestrator and
// the surface are only ever touched by the goroutine inside Run.
type Loop struct {
	Tick time.Duration

	// StopOnError makes Run return the first frame error instead of logging
	// it and continuing.
	StopOnError bool

	posts chan func()
	next  []func()
}

// NewLoop creates a loop ticking every tick (DefaultTick if tick <= 0).
func NewLoop(tick time.Duration) *Loop {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Loop{Tick: tick, posts: make(chan func(), 64)}
}

// ScheduleNextFrame implements FrameScheduler. It must be called from the
// loop goroutine, which is where the orchestrator calls it.
func (l *Loop) ScheduleNextFrame(fn func()) {
	l.next = append(l.next, fn)
}

// Post queues fn to run on the loop goroutine between ticks. It is safe to
// call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.posts <- fn
}

// Run ticks o against s until ctx ends or step returns false. step is called
// after every tick; a nil step runs until ctx ends.
func (l *Loop) Run(ctx context.Context, o *Orchestrator, s Surface, step func() bool) error {
	ticker := time.NewTicker(l.Tick)
	defer ticker.Stop()

	for {
		l.runNext()
		if err := o.Tick(s); err != nil && l.StopOnError {
			return err
		}
		if step != nil && !step() {
			return nil
		}

	wait:
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case fn := <-l.posts:
				fn()
			case <-ticker.C:
				break wait
			}
		}
	}
}

// runNext fires the callbacks registered during the previous tick.
func (l *Loop) runNext() {
	if len(l.next) == 0 {
		return
	}
	pending := l.next
	l.next = nil
	for _, fn := range pending {
		fn()
	}
}
