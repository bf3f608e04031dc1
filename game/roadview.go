package game

import (
	"github.com/golangdaddy/sunsetdrive/controls"
	"github.com/golangdaddy/sunsetdrive/pkg/logger"
	"github.com/golangdaddy/sunsetdrive/surface/ebitensurface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RoadView represents the main driving view inside the ebiten window
type RoadView struct {
	session *Session
	input   controls.Source
	surface *ebitensurface.Surface

	quit    func() bool
	restart func() bool

	// debug draws the frame stats overlay
	debug bool

	// Stats of the most recent frame, shown by the debug overlay
	LastStats FrameStats
}

// NewRoadView creates a road view driving session from the keyboard
func NewRoadView(session *Session) *RoadView {
	return &RoadView{
		session: session,
		input:   controls.NewKeyboard(),
		surface: ebitensurface.New(),
		quit: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
		},
		restart: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyR)
		},
		debug: logger.Enabled(zapcore.DebugLevel),
	}
}

// Update reads the keyboard once and integrates one tick
func (rv *RoadView) Update() error {
	if rv.quit() {
		return ebiten.Termination
	}
	if rv.restart() {
		rv.session.State.Reset()
		logger.Info("drive restarted", zap.String("drive", rv.session.State.SessionID))
		return nil
	}
	rv.session.Step(rv.input.Poll())
	return nil
}

// Draw renders the road view
func (rv *RoadView) Draw(screen *ebiten.Image) {
	rv.surface.Target(screen)
	rv.LastStats = rv.session.Draw(rv.surface)
	if rv.debug {
		drawDebugOverlay(rv.surface, rv.LastStats)
	}
}
