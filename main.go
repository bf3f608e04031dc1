package main

import (
	"errors"
	"log"
	"time"

	"github.com/golangdaddy/sunsetdrive/camera"
	"github.com/golangdaddy/sunsetdrive/game"
	"github.com/golangdaddy/sunsetdrive/models"
	"github.com/golangdaddy/sunsetdrive/pkg/background"
	"github.com/golangdaddy/sunsetdrive/pkg/config"
	"github.com/golangdaddy/sunsetdrive/pkg/logger"
	"github.com/golangdaddy/sunsetdrive/pkg/ui"
	"github.com/golangdaddy/sunsetdrive/road"
	"github.com/golangdaddy/sunsetdrive/surface/ebitensurface"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screen is the part of the demo currently shown
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenInGame
)

// Game implements ebiten.Game interface.
type Game struct {
	screen      Screen
	cfg         *config.Config
	titleScreen *ui.TitleScreen
	titleStart  time.Time
	titleSurf   *ebitensurface.Surface
	roadView    *game.RoadView
}

// Update proceeds the game state.
// Update is called every tick (1/TPS [s]).
func (g *Game) Update() error {
	switch g.screen {
	case ScreenTitle:
		return g.titleScreen.Update()
	case ScreenInGame:
		return g.roadView.Update()
	}
	return nil
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case ScreenTitle:
		g.titleSurf.Target(screen)
		g.titleScreen.Draw(g.titleSurf, time.Since(g.titleStart).Seconds())
	case ScreenInGame:
		g.roadView.Draw(screen)
	}
}

// Layout returns the fixed logical canvas; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return road.CanvasWidth, road.CanvasHeight
}

// onGameStart builds a fresh drive and switches to the road view
func (g *Game) onGameStart() {
	state := models.NewGameState()

	vp := camera.DefaultViewport()
	seed := g.cfg.SkylineSeed()
	skyline := background.NewGenerator(road.CanvasWidth, road.CanvasHeight).GenerateSkyline(seed)

	scene := game.NewScene(vp, skyline)
	scene.Strict = g.cfg.Render.StrictProjection

	g.roadView = game.NewRoadView(game.NewSession(state, scene, game.NewSystemClock()))
	g.screen = ScreenInGame

	logger.Info("drive started",
		zap.String("drive", state.SessionID),
		zap.Int64("skyline_seed", seed),
		zap.Bool("strict", scene.Strict),
	)
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	g := &Game{
		screen:     ScreenTitle,
		cfg:        cfg,
		titleStart: time.Now(),
		titleSurf:  ebitensurface.New(),
	}
	g.titleScreen = ui.NewTitleScreen(g.onGameStart)

	ebiten.SetWindowSize(road.CanvasWidth*cfg.Window.Scale, road.CanvasHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Info("starting",
		zap.Int("scale", cfg.Window.Scale),
		zap.Int("tps", cfg.Window.TPS),
		zap.Bool("fullscreen", cfg.Window.Fullscreen),
	)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
	logger.Info("bye")
}
