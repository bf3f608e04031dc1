package game

import (
	"time"

	"github.com/golangdaddy/sunsetdrive/controls"
	"github.com/golangdaddy/sunsetdrive/models"
	"github.com/golangdaddy/sunsetdrive/pkg/logger"
	"github.com/golangdaddy/sunsetdrive/surface"
	"go.uber.org/zap"
)

// statsInterval is how many frames pass between debug stats lines
const statsInterval = 60

// Clock supplies a monotonically increasing timestamp per frame
type Clock interface {
	Now() time.Duration
}

// SystemClock measures wall time since it was created
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now implements Clock.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Session ties the vehicle simulation to the scene. Each tick reads the input
// once, integrates the vehicle, then renders a complete frame.
type Session struct {
	State *models.GameState
	Scene *Scene

	clock  Clock
	last   time.Duration
	frames int64
}

// NewSession creates a session drawing state through scene
func NewSession(state *models.GameState, scene *Scene, clock Clock) *Session {
	return &Session{
		State: state,
		Scene: scene,
		clock: clock,
	}
}

// Step integrates one tick of input. The step is fixed per tick; elapsed time
// does not scale it.
func (s *Session) Step(in controls.State) {
	s.State.Update(in)
}

// Draw renders the current state to dst
func (s *Session) Draw(dst surface.Surface) FrameStats {
	now := s.clock.Now()
	var dt time.Duration
	if s.frames > 0 {
		dt = now - s.last
	}
	s.last = now

	frame := s.Scene.Project(s.State.Track, s.State.Vehicle)
	stats := s.Scene.Draw(dst, frame)
	stats.Frame = s.frames
	stats.DT = dt
	s.frames++

	if stats.Frame%statsInterval == 0 {
		logger.Debug("frame",
			zap.Int64("frame", stats.Frame),
			zap.Duration("dt", stats.DT),
			zap.Float64("position", frame.Position),
			zap.Float64("speed", frame.Vehicle.Speed),
			zap.Int("drawn", stats.Drawn),
			zap.Int("culled", stats.Culled),
			zap.Int("degenerate", stats.Degenerate),
			zap.Int("draw_calls", stats.DrawCalls),
		)
	}
	if stats.Degenerate > 0 {
		logger.Warn("skipped degenerate segments",
			zap.Int64("frame", stats.Frame),
			zap.Int("count", stats.Degenerate),
		)
	}
	return stats
}

// Tick polls src once, steps and draws
func (s *Session) Tick(src controls.Source, dst surface.Surface) FrameStats {
	s.Step(src.Poll())
	return s.Draw(dst)
}

// Frames returns the number of frames drawn so far
func (s *Session) Frames() int64 {
	return s.frames
}
