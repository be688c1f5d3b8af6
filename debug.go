package fractree

import (
	"fmt"
	"time"
)

// Overlay placement for the debug summary line.
const (
	overlayX    = 10
	overlayY    = 10
	overlaySize = 14
)

// FrameStats holds per-frame timing and draw counts. It is passed to
// Orchestrator.OnFrame after every completed frame.
type FrameStats struct {
	Frame      uint64
	Seeds      int
	Depth      int
	Rendered   int
	ClearTime  time.Duration
	ExpandTime time.Duration
	Overlay    bool
}

// overlayText is the one-line summary drawn in debug mode.
func overlayText(cfg Config, seeds int) string {
	motifs := cfg.MotifString()
	if !cfg.UseMotifs {
		motifs = "(circles)"
	}
	return fmt.Sprintf("motifs: %s | seeds: %d | depth: %d", motifs, seeds, cfg.MaxDepth)
}

// drawOverlay paints the debug summary in the top-left corner.
func drawOverlay(s Surface, cfg Config, seeds int) error {
	err := s.DrawText(overlayText(cfg, seeds), overlayX, overlayY, overlaySize, cfg.Foreground)
	return surfaceErr("text", err)
}

// debugLog writes frame stats at debug level. Only called when Config.Debug.
func debugLog(stats FrameStats) {
	Logger().Debug("frame",
		"frame", stats.Frame,
		"seeds", stats.Seeds,
		"depth", stats.Depth,
		"rendered", stats.Rendered,
		"clear", stats.ClearTime,
		"expand", stats.ExpandTime,
	)
}

// expectedRenders is the number of motifs a complete frame draws:
// 2^depth - 1 per seed.
func expectedRenders(seeds, depth int) int {
	if depth <= 0 {
		return 0
	}
	return seeds * (1<<depth - 1)
}
