package fractree

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// scriptStep is a single action in a session script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Key    string  `json:"key,omitempty"`
	Value  string  `json:"value,omitempty"`
}

// script is the top-level JSON structure of a session script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Controller is the part of the orchestrator a script drives.
type Controller interface {
	Click(x, y float64) SeedPoint
	ClearAll()
	Reseed()
	Edit(fn func(*Config))
	State() FrameState
}

var _ Controller = (*Orchestrator)(nil)

// ScriptRunner replays clicks, config edits and snapshots across ticks so a
// session can be reproduced without a pointer. Supported actions:
//
//	click    {"x", "y"}          append a seed point
//	clear                        remove every seed point
//	reseed                       replace seeds with random ones
//	set      {"key", "value"}    animate, debug, shapes, depth, count, motifs
//	wait     {"frames"}          idle for that many ticks
//	settle                       wait until the current frame has finished
//	snapshot {"label"}           call OnSnapshot
type ScriptRunner struct {
	// OnSnapshot receives the label of every snapshot step.
	OnSnapshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON session script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one tick.
func (r *ScriptRunner) Step(c Controller) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	if st.Action == "settle" {
		if s := c.State(); s != FrameIdle && s != FrameScheduled {
			return
		}
	}
	r.cursor++

	switch st.Action {
	case "click":
		c.Click(st.X, st.Y)
	case "clear":
		c.ClearAll()
	case "reseed":
		c.Reseed()
	case "set":
		c.Edit(func(cfg *Config) { applySetting(cfg, st.Key, st.Value) })
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "snapshot":
		if r.OnSnapshot != nil {
			r.OnSnapshot(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// check validates a step when the script is loaded, so a bad script fails
// up front instead of halfway through a session.
func (st scriptStep) check() error {
	switch st.Action {
	case "click", "clear", "reseed", "wait", "settle", "snapshot":
		return nil
	case "set":
		var probe Config
		return applySetting(&probe, st.Key, st.Value)
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// applySetting edits one named field of cfg from its string form.
func applySetting(cfg *Config, key, value string) error {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return b, nil
	}
	parseInt := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	switch key {
	case "animate":
		b, err := parseBool()
		if err != nil {
			return err
		}
		cfg.Animate = b
	case "debug":
		b, err := parseBool()
		if err != nil {
			return err
		}
		cfg.Debug = b
	case "shapes":
		b, err := parseBool()
		if err != nil {
			return err
		}
		cfg.UseMotifs = !b
	case "depth":
		n, err := parseInt()
		if err != nil {
			return err
		}
		cfg.MaxDepth = clampDepth(n)
	case "count":
		n, err := parseInt()
		if err != nil {
			return err
		}
		cfg.FractalCount = max(0, n)
	case "motifs":
		cfg.Motifs = ParseMotifs(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
