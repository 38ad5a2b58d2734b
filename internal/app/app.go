//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"sandbox/internal/render"
	"sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = map[ebiten.Key]rune{
	ebiten.KeyDigit0: '0',
	ebiten.KeyDigit1: '1',
	ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3',
	ebiten.KeyDigit4: '4',
	ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6',
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	logger  *slog.Logger

	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config, logger *slog.Logger) *Game {
	size := session.World().Size()
	g := &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		logger:   logger,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	// The status label still renders without the side panel.
	g.hud = ui.NewHUD(session.World(), cfg.HUDWidth)
	if cfg.HUDWidth == 0 {
		logger.Warn("HUD panel disabled, parameters are not adjustable")
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.session.Reset(g.seed)
	}
	for key, r := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.SelectKey(r)
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := ScreenToCell(mx, my, g.scale); ok {
			g.session.Paint(x, y)
		}
	}

	g.hud.Update(g.viewWidth())
	g.session.Frame()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.session.World()
	g.painter.Blit(screen, world, g.scale)
	g.hud.Draw(screen, g.viewWidth(), g.scale)

	status := []string{g.session.Label()}
	if g.session.Paused() {
		status = append(status, "Paused")
	}
	g.hud.DrawStatus(screen, status...)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.World().Size()
	return g.viewWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) viewWidth() int {
	return g.session.World().Size().W * g.scale
}
