package app

import (
	"io"
	"log/slog"

	"sandbox/internal/sims/sand"
)

// Placement is a pending write of one particle into the world.
type Placement struct {
	X, Y int
	Kind sand.Kind
}

// Session drives one world from a host's frame loop. Input handlers queue
// placements at any point during a frame; Frame applies them and then runs
// the tick, so a placement never lands in the middle of a step.
type Session struct {
	world    *sand.World
	logger   *slog.Logger
	selected sand.Kind
	brush    int
	pending  []Placement

	paused   bool
	stepOnce bool
}

// NewSession wraps world. A nil logger discards log output.
func NewSession(world *sand.World, brush int, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if brush < 0 {
		brush = 0
	}
	return &Session{world: world, logger: logger, selected: sand.Sand, brush: brush}
}

// World returns the simulated world.
func (s *Session) World() *sand.World { return s.world }

// Selected returns the kind placed by Paint.
func (s *Session) Selected() sand.Kind { return s.selected }

// Select changes the kind placed by Paint.
func (s *Session) Select(k sand.Kind) {
	if k == s.selected {
		return
	}
	s.logger.Debug("selection changed", "from", s.selected, "to", k)
	s.selected = k
}

// SelectKey selects the kind bound to a digit key and reports whether the key
// was bound.
func (s *Session) SelectKey(r rune) bool {
	k, ok := KindForKey(r)
	if ok {
		s.Select(k)
	}
	return ok
}

// Label returns the status text for the current selection.
func (s *Session) Label() string { return Label(s.selected) }

// Paint queues the selected kind over the brush square centred at (x, y).
// Cells outside the grid are skipped.
func (s *Session) Paint(x, y int) {
	grid := s.world.Grid()
	for dy := -s.brush; dy <= s.brush; dy++ {
		for dx := -s.brush; dx <= s.brush; dx++ {
			if grid.InBounds(x+dx, y+dy) {
				s.Queue(x+dx, y+dy, s.selected)
			}
		}
	}
}

// Queue records a placement to apply before the next tick.
func (s *Session) Queue(x, y int, k sand.Kind) {
	s.pending = append(s.pending, Placement{X: x, Y: y, Kind: k})
}

// Pending reports the number of queued placements.
func (s *Session) Pending() int { return len(s.pending) }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips the paused state.
func (s *Session) TogglePause() {
	s.paused = !s.paused
	s.logger.Debug("pause toggled", "paused", s.paused)
}

// Resume clears the paused state.
func (s *Session) Resume() { s.paused = false }

// StepOnce requests a single tick on the next frame even while paused.
func (s *Session) StepOnce() { s.stepOnce = true }

// Reset drops queued placements and empties the world.
func (s *Session) Reset(seed int64) {
	s.pending = s.pending[:0]
	s.stepOnce = false
	s.world.Reset(seed)
	s.logger.Info("world reset", "seed", seed)
}

// Frame applies queued placements in order and then advances the world by
// one tick unless paused. It reports whether a tick ran.
func (s *Session) Frame() bool {
	for _, p := range s.pending {
		s.world.Place(p.X, p.Y, p.Kind)
	}
	s.pending = s.pending[:0]

	if s.paused && !s.stepOnce {
		return false
	}
	s.world.Step()
	s.stepOnce = false
	return true
}
