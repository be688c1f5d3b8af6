// Package fractree grows recursive branching fractals made of repeated
// motifs, either glyph strings or palette circles, from seed points on a 2D
// canvas.
//
// # Quick start
//
// The windowed host in package ebitenhost wires everything together:
//
//	cfg := fractree.DefaultConfig()
//	cfg.Motifs = fractree.ParseMotifs("A,B,C")
//	ebitenhost.Run(ebitenhost.RunConfig{
//		Title: "fractree", Width: 800, Height: 600, Config: cfg,
//	})
//
// For full control, build the pieces yourself and tick the orchestrator from
// your own refresh loop:
//
//	store := fractree.NewSeedStore()
//	sched := fractree.NewScheduler(fractree.SystemClock{}, fractree.NewTimeRand())
//	orch := fractree.NewOrchestrator(store, sched, host, cfg)
//	orch.Start(width, height)
//	// every refresh:
//	if err := orch.Tick(surface); err != nil { ... }
//
// # Growth
//
// Each branch step draws its motif at the branch origin, moves Size pixels
// along its angle, and splits into two children whose angles differ from the
// parent by a random spread (10 to 60 degrees by default) and whose size is
// scaled by a random factor (0.7 to 0.9). A tree of depth d draws exactly
// 2^d - 1 motifs.
//
// # Scheduling
//
// Steps are not run recursively. Every pending step is an item in one queue
// shared by all trees of a frame, runnable Config.StepDelay after its parent
// ran, so trees visibly grow and interleave while the host keeps refreshing.
// A new frame request cancels the expansion in flight.
//
// # Surfaces
//
// Drawing goes through the [Surface] interface. Implementations live in
// ebitenhost (window), ggsurface (headless PNG) and termsurface (terminal).
package fractree
