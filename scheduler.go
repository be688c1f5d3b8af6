package fractree

import (
	"container/heap"
	"context"
	"time"
)

// DefaultBudget caps how many branch steps a single Advance call executes,
// so a zero step delay still yields back to the host every tick.
const DefaultBudget = 1024

// Scheduler grows every tree of a frame through one shared work queue.
// Branches are not recursed into directly: each pending step is a queued
// item that becomes runnable StepDelay after its parent ran.
type Scheduler struct {
	Clock  Clock
	Rand   Rand
	Budget int // max steps per Advance; 0 means unlimited
}

// NewScheduler creates a scheduler using clock and rng with DefaultBudget.
func NewScheduler(clock Clock, rng Rand) *Scheduler {
	return &Scheduler{Clock: clock, Rand: rng, Budget: DefaultBudget}
}

// TreeStats reports progress of one seed point's tree.
type TreeStats struct {
	Rendered int  // motifs drawn so far
	Complete bool // every branch reached the target depth
}

// ExpansionStats summarizes an expansion.
type ExpansionStats struct {
	Trees     int
	Completed int
	Rendered  int
	Pending   int
	Elapsed   time.Duration
}

// ExpandAll starts one tree per point using the cfg snapshot. The i-th tree
// starts at motif index i modulo the active list length. Nothing is drawn
// until Advance runs the first steps, one StepDelay from now.
func (s *Scheduler) ExpandAll(points []SeedPoint, cfg Config) *Expansion {
	now := s.Clock.Now()
	e := &Expansion{
		cfg:     cfg,
		clock:   s.Clock,
		rng:     s.Rand,
		budget:  s.Budget,
		trees:   make([]TreeStats, len(points)),
		pending: make([]int, len(points)),
		done:    make(chan struct{}),
		started: now,
	}

	n := cfg.ActiveLen()
	for i, p := range points {
		root := Branch{
			X:      p.X,
			Y:      p.Y,
			Size:   cfg.InitialSize,
			Angle:  p.Angle,
			Motif:  wrapIndex(i, n),
			Target: cfg.MaxDepth,
			Tree:   i,
		}
		if root.Terminal() {
			e.trees[i].Complete = true
			continue
		}
		e.push(root, now.Add(cfg.StepDelay))
	}
	if len(e.queue) == 0 {
		e.finish(nil)
	}
	return e
}

// Expansion is the in-flight growth of every tree in one frame. It is driven
// by a single goroutine calling Advance; only Done may be observed from
// other goroutines.
type Expansion struct {
	cfg    Config
	clock  Clock
	rng    Rand
	budget int

	queue   branchQueue
	seq     uint64
	trees   []TreeStats
	pending []int // queued steps per tree

	started  time.Time
	elapsed  time.Duration
	finished bool
	err      error
	done     chan struct{}
}

// Advance runs every step whose delay has elapsed, in due order, up to the
// scheduler budget. A surface error aborts the whole expansion and is
// returned; later calls return the same error.
func (e *Expansion) Advance(s Surface) error {
	if e.finished {
		return e.err
	}

	now := e.clock.Now()
	steps := 0
	for len(e.queue) > 0 {
		if e.budget > 0 && steps >= e.budget {
			break
		}
		if e.queue[0].due.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queuedBranch)
		steps++

		b := item.branch
		children, grew, err := expand(s, b, e.cfg, e.rng)
		if err != nil {
			e.finish(err)
			return err
		}
		if grew {
			e.trees[b.Tree].Rendered++
			for _, c := range children {
				if !c.Terminal() {
					e.push(c, now.Add(e.cfg.StepDelay))
				}
			}
		}

		e.pending[b.Tree]--
		if e.pending[b.Tree] == 0 {
			e.trees[b.Tree].Complete = true
			if e.cfg.Debug {
				Logger().Debug("tree complete", "tree", b.Tree, "rendered", e.trees[b.Tree].Rendered)
			}
		}
	}

	if len(e.queue) == 0 {
		e.finish(nil)
	}
	return nil
}

// Run drives the expansion to completion against the real clock, sleeping
// until the next step is due. It returns ctx's error if ctx ends first, in
// which case the expansion is cancelled.
func (e *Expansion) Run(ctx context.Context, s Surface) error {
	for {
		if err := e.Advance(s); err != nil {
			return err
		}
		if e.finished {
			return e.err
		}
		wait := time.Duration(0)
		if due, ok := e.NextDue(); ok {
			wait = max(0, due.Sub(e.clock.Now()))
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			e.Cancel()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Cancel aborts the expansion. Pending steps are dropped and Err reports
// ErrCancelled. Cancelling a finished expansion has no effect.
func (e *Expansion) Cancel() {
	if !e.finished {
		e.finish(ErrCancelled)
	}
}

// Done is closed once every tree has completed or the expansion was aborted.
func (e *Expansion) Done() <-chan struct{} {
	return e.done
}

// Complete reports whether every tree finished without error.
func (e *Expansion) Complete() bool {
	return e.finished && e.err == nil
}

// Err returns the error that ended the expansion, if any.
func (e *Expansion) Err() error {
	return e.err
}

// NextDue returns the time the earliest pending step becomes runnable.
func (e *Expansion) NextDue() (time.Time, bool) {
	if len(e.queue) == 0 {
		return time.Time{}, false
	}
	return e.queue[0].due, true
}

// Tree returns the progress of tree i.
func (e *Expansion) Tree(i int) TreeStats {
	return e.trees[i]
}

// Stats summarizes progress across all trees.
func (e *Expansion) Stats() ExpansionStats {
	st := ExpansionStats{Trees: len(e.trees), Pending: len(e.queue), Elapsed: e.elapsed}
	if !e.finished {
		st.Elapsed = e.clock.Now().Sub(e.started)
	}
	for _, t := range e.trees {
		st.Rendered += t.Rendered
		if t.Complete {
			st.Completed++
		}
	}
	return st
}

func (e *Expansion) push(b Branch, due time.Time) {
	e.seq++
	heap.Push(&e.queue, queuedBranch{branch: b, due: due, seq: e.seq})
	e.pending[b.Tree]++
}

func (e *Expansion) finish(err error) {
	e.finished = true
	e.err = err
	e.queue = nil
	e.elapsed = e.clock.Now().Sub(e.started)
	close(e.done)
}

// --- Queue ---

// queuedBranch orders steps by due time, then by enqueue order so that
// equal-time steps run first-in first-out.
type queuedBranch struct {
	branch Branch
	due    time.Time
	seq    uint64
}

type branchQueue []queuedBranch

func (q branchQueue) Len() int { return len(q) }

func (q branchQueue) Less(i, j int) bool {
	if !q[i].due.Equal(q[j].due) {
		return q[i].due.Before(q[j].due)
	}
	return q[i].seq < q[j].seq
}

func (q branchQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *branchQueue) Push(x any) { *q = append(*q, x.(queuedBranch)) }

func (q *branchQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
