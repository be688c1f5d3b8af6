package fractree

import "sync"

// SeedPoint is the origin of one fractal tree. Angle is in degrees,
// counter-clockwise from the positive X axis.
type SeedPoint struct {
	X, Y  float64
	Angle float64
}

// SeedStore owns the list of seed points. Points are never edited in place:
// the list is only replaced, appended to, or cleared. It is safe for
// concurrent use so input goroutines can append while a frame is running.
type SeedStore struct {
	mu     sync.Mutex
	points []SeedPoint
}

// NewSeedStore creates an empty store.
func NewSeedStore() *SeedStore {
	return &SeedStore{}
}

// Initialize fills an empty store with count points placed uniformly in
// [0, width) x [0, height) with random angles. It reports whether the store
// was populated; a non-empty store is left untouched.
func (s *SeedStore) Initialize(count int, width, height float64, rng Rand) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points) > 0 || count <= 0 {
		return false
	}
	points := make([]SeedPoint, count)
	for i := range points {
		points[i] = SeedPoint{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Angle: rng.Float64() * 360,
		}
	}
	s.points = points
	return true
}

// Append adds one point at (x, y) with a random angle and returns it.
func (s *SeedStore) Append(x, y float64, rng Rand) SeedPoint {
	p := SeedPoint{X: x, Y: y, Angle: rng.Float64() * 360}

	s.mu.Lock()
	s.points = append(s.points, p)
	s.mu.Unlock()
	return p
}

// Clear removes every point.
func (s *SeedStore) Clear() {
	s.mu.Lock()
	s.points = nil
	s.mu.Unlock()
}

// Points returns a copy of the current list.
func (s *SeedStore) Points() []SeedPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points) == 0 {
		return nil
	}
	out := make([]SeedPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points.
func (s *SeedStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}
