package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/thor-runner/internal/core"
)

// Scenery constants in logical units.
const (
	celestialInset  = 80 // Sun/moon center distance from the top-right corner
	celestialRadius = 40
	grassHeight     = 10
	groundLineGap   = 100
	groundLineLen   = 40
	groundLineDepth = 25
	groundLineThick = 4
	auraScale       = 0.75
	hudMargin       = 10
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewCanvas(dst, g.cfg.Field.Width, g.cfg.Field.Height))

	switch {
	case g.phase == core.PhaseIdle:
		g.drawCenteredMessage(dst, g.title, "Press SPACE or ENTER to start")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.phase == core.PhaseWon:
		g.drawCenteredMessage(dst, g.victoryTitle(), fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	}
}

func (g *Game) victoryTitle() string {
	if g.classic {
		return "VALHALLA AWAITS"
	}
	return "LOKI IS CAUGHT"
}

// Draw renders the scene back to front onto any surface.
func (g *Game) Draw(s core.Surface) {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	floor := g.cfg.Field.FloorY()
	night := g.IsNight()

	// Sky and the fixed celestial body.
	sky, body := core.ColorSky, core.ColorYellow
	if night {
		sky, body = core.ColorNight, core.ColorWhite
	}
	s.FillRect(core.NewRectF(0, 0, w, h), sky)
	s.FillCircle(core.Vec2{X: w - celestialInset, Y: celestialInset}, celestialRadius, body)

	// Ground strip, grass and scrolling ground lines.
	s.FillRect(core.NewRectF(0, floor, w, h-floor), core.ColorBrown)
	s.FillRect(core.NewRectF(0, floor, w, grassHeight), core.ColorGreen)
	offset := math.Mod(float64(g.frames)*g.ramp.Speed(), groundLineGap)
	for x := -offset; x < w; x += groundLineGap {
		s.FillRect(core.NewRectF(x, floor+groundLineDepth, groundLineLen, groundLineThick), core.ColorGray)
	}

	d := g.director
	for _, o := range d.Deities() {
		sp := g.sprites.sol
		if o.Night {
			sp = g.sprites.mani
		}
		s.Blit(sp, o.Bounds())
	}
	for _, o := range d.Birds() {
		s.Blit(g.sprites.bird[o.Dir], o.Bounds())
	}
	for _, o := range d.Platforms() {
		s.Blit(g.sprites.platform, o.Bounds())
	}
	for _, o := range d.Coins() {
		s.Blit(g.sprites.coin, o.Bounds())
	}
	for _, o := range d.Enemies() {
		s.Blit(g.sprites.enemy(o.Variant), o.Bounds())
	}
	for _, o := range d.Antagonists() {
		s.Blit(g.sprites.loki, o.Bounds())
	}

	pb := g.player.Bounds()
	if g.player.Attacking {
		s.FillCircle(pb.Center(), pb.W*auraScale, core.ColorBrightCyan)
	}
	s.Blit(g.sprites.thor, pb)

	g.drawHUD(s)
}

// drawHUD writes score and speed along the top edge.
func (g *Game) drawHUD(s core.Surface) {
	w := g.cfg.Field.Width
	s.Text(core.Vec2{X: hudMargin, Y: hudMargin}, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)

	if g.ramp.IsEnabled() {
		s.Text(core.Vec2{X: w * 0.75, Y: hudMargin}, fmt.Sprintf(" Spd: %.1f ", g.ramp.Speed()), core.ColorBrightWhite)
	}

	if !g.classic && g.score >= g.cfg.Win.AntagonistScore && g.phase == core.PhaseRunning {
		s.Text(core.Vec2{X: w * 0.35, Y: hudMargin}, " Catch Loki! ", core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
