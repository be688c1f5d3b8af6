package fractree

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrCancelled is reported by an expansion that was superseded by a newer
	// frame request before it finished.
	ErrCancelled = errors.New("fractree: expansion cancelled")

	// ErrClosed is returned by surfaces that have been closed.
	ErrClosed = errors.New("fractree: surface closed")
)

// ConfigError describes one invalid configuration field. Normalize replaces
// the offending value with a fallback; Validate reports it.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fractree: config %s: %s", e.Field, e.Reason)
}

// SurfaceError wraps a failed drawing primitive. It is fatal to the frame
// that triggered it.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("fractree: surface %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// FrameError reports a frame that was aborted before completing.
type FrameError struct {
	Frame uint64
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("fractree: frame %d aborted: %v", e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// surfaceErr wraps err from op unless it is nil or already a SurfaceError.
func surfaceErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *SurfaceError
	if errors.As(err, &se) {
		return err
	}
	return &SurfaceError{Op: op, Err: err}
}
