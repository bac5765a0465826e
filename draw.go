package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"phantompong/internal/game"
	"phantompong/internal/geom"
)

// glyphHeight is the pixel height of the bitmap face. Sizes passed to
// drawText are scaled relative to it.
const glyphHeight = 13

var (
	colorBackground = color.NRGBA{R: 16, G: 24, B: 32, A: 255}
	colorSky        = color.NRGBA{R: 12, G: 20, B: 28, A: 255}
	colorAccent     = color.NRGBA{R: 65, G: 105, B: 225, A: 255}
	colorOption     = color.NRGBA{R: 253, G: 249, B: 0, A: 255}
	colorTrack      = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	colorHint       = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colorWhite      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack      = color.NRGBA{A: 255}
)

func fade(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * geom.Clamp(a, 0, 1))
	return c
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	switch s.State {
	case game.StateSplash:
		g.drawSplash(screen)
	case game.StateModeSelect:
		g.drawModeSelect(screen)
	default:
		if g.canvas == nil {
			g.canvas = ebiten.NewImage(game.ScreenWidth, game.ScreenHeight)
		}
		g.canvas.Clear()
		g.drawCourt(g.canvas)

		screen.Fill(colorBackground)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(s.ShakeOffset.X, s.ShakeOffset.Y)
		screen.DrawImage(g.canvas, op)
		g.drawOverlay(screen)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 8, game.ScreenHeight-20)
}

// drawText draws str centred on (x, y) at roughly size pixels tall.
func (g *Game) drawText(dst *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	k := size / glyphHeight
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, str, g.face, op)
}

// drawGlowText draws str over a stack of offset accent-coloured copies.
func (g *Game) drawGlowText(dst *ebiten.Image, str string, x, y, size float64, layers int) {
	for i := layers; i > 0; i-- {
		d := float64(i * 2)
		g.drawText(dst, str, x+d, y+d, size, fade(colorAccent, 1-float64(i)*0.2))
	}
	g.drawText(dst, str, x, y, size, colorWhite)
}

func drawBackdrop(dst *ebiten.Image) {
	const band = 8
	for y := 0; y < game.ScreenHeight; y += band {
		k := float64(y) / game.ScreenHeight
		c := color.NRGBA{
			R: uint8(geom.Lerp(float64(colorSky.R), float64(colorBackground.R), k)),
			G: uint8(geom.Lerp(float64(colorSky.G), float64(colorBackground.G), k)),
			B: uint8(geom.Lerp(float64(colorSky.B), float64(colorBackground.B), k)),
			A: 255,
		}
		vector.DrawFilledRect(dst, 0, float32(y), game.ScreenWidth, band, c, false)
	}
}

func drawRect(dst *ebiten.Image, r geom.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (g *Game) drawSplash(screen *ebiten.Image) {
	drawBackdrop(screen)
	t := g.elapsed()
	const w, h = game.ScreenWidth, game.ScreenHeight

	// A rally plays out behind the title.
	ballX := w/2 + math.Sin(t*0.8)*(w/2-160)
	ballY := h/2 + math.Sin(t*1.7)*(h/3)
	glow := math.Sin(t*2)*5 + 15
	vector.DrawFilledCircle(screen, float32(ballX), float32(ballY), float32(15+glow), fade(colorWhite, 0.1), true)
	vector.DrawFilledCircle(screen, float32(ballX), float32(ballY), 15, fade(colorWhite, 0.4), true)
	paddleY := geom.Clamp(ballY-game.PaddleHeight/2, 0, h-game.PaddleHeight)
	drawRect(screen, geom.Rect{X: 100, Y: paddleY, W: game.PaddleWidth, H: game.PaddleHeight}, fade(game.ColorPlayerOne, 0.4))
	drawRect(screen, geom.Rect{X: w - 125, Y: paddleY, W: game.PaddleWidth, H: game.PaddleHeight}, fade(game.ColorAI, 0.4))

	g.drawGlowText(screen, "PHANTOM PONG", w/2, h/2-150+math.Sin(t*1.5)*8, 100, 3)
	g.drawText(screen, "first to 10 wins", w/2, h/2-60, 30, fade(colorAccent, math.Sin(t*2)*0.2+0.8))

	pulse := g.session.UI.Pulse
	size := 40 + pulse*15
	g.drawText(screen, "Click to Start", w/2+3, h/2+100+3, size, fade(colorAccent, 0.3+pulse*0.3))
	g.drawText(screen, "Click to Start", w/2, h/2+100, size, fade(colorWhite, 0.8+pulse))

	g.drawText(screen, "Press F for Fullscreen", w/2, h-60, 20, fade(colorWhite, 0.5+math.Sin(t*3)*0.2))
}

func (g *Game) drawModeSelect(screen *ebiten.Image) {
	drawBackdrop(screen)
	s := g.session
	t := g.elapsed()
	const w, h = game.ScreenWidth, game.ScreenHeight

	g.drawGlowText(screen, "SELECT GAME MODE", w/2, h/2-150, 60, 2)

	options := []struct {
		label  string
		region geom.Rect
	}{
		{"1. Player vs AI", game.ModeAIRegion},
		{"2. Player vs Player", game.ModeVersusRegion},
	}
	for _, o := range options {
		c := o.region.Center()
		if o.region.Contains(g.cursor) {
			drawRect(screen, o.region, fade(colorAccent, 0.2))
			g.drawText(screen, o.label, c.X, c.Y, 44, colorWhite)
			continue
		}
		g.drawText(screen, o.label, c.X, c.Y, 40, colorOption)
	}

	track := game.SliderTrack
	mid := track.Center()
	g.drawText(screen, "Ball Speed:", track.X-120, mid.Y-40, 30, colorWhite)
	drawRect(screen, track, colorTrack)
	frac := (s.SpeedMultiplier - game.MinSpeedMultiplier) / (game.MaxSpeedMultiplier - game.MinSpeedMultiplier)
	knobX := track.X + frac*track.W
	drawRect(screen, geom.Rect{X: track.X, Y: track.Y, W: knobX - track.X, H: track.H}, fade(colorAccent, 0.7))
	vector.DrawFilledCircle(screen, float32(knobX), float32(mid.Y), float32(15+math.Sin(t*4)*2), fade(colorAccent, 0.3), true)
	vector.DrawFilledCircle(screen, float32(knobX), float32(mid.Y), 10, colorWhite, true)

	anim := s.UI.SpeedAnim
	label := strconv.FormatFloat(s.SpeedMultiplier, 'f', 1, 64) + "x"
	g.drawText(screen, label, track.X+60, mid.Y-40, 25*anim, fade(colorWhite, 0.7+(anim-1)*1.5))

	hint := fade(colorHint, 0.6+math.Sin(t*2)*0.2)
	g.drawText(screen, "Slow", track.X-30, mid.Y, 20, hint)
	g.drawText(screen, "Fast", track.Right()+30, mid.Y, 20, hint)

	g.drawText(screen, "Player 1: W/S    Player 2: UP/DOWN", w/2, h-110, 20, colorWhite)
	g.drawText(screen, "Press F for Fullscreen", w/2, h-60, 20, fade(colorWhite, 0.5+math.Sin(t*3)*0.2))
}

func (g *Game) drawCourt(dst *ebiten.Image) {
	s := g.session
	const w, h = game.ScreenWidth, game.ScreenHeight
	drawBackdrop(dst)

	line := fade(colorWhite, 0.3)
	vector.StrokeLine(dst, 0, 2, w, 2, 4, line, false)
	vector.StrokeLine(dst, 0, h-2, w, h-2, 4, line, false)
	vector.StrokeCircle(dst, w/2, h/2, 100, 2, line, true)
	for y := float32(20); y < h; y += 50 {
		vector.DrawFilledRect(dst, w/2-2, y, 4, 30, fade(colorWhite, 0.5), false)
	}

	for _, p := range []game.Paddle{s.Player, s.Opponent} {
		drawRect(dst, p.Rect.Grow(4), fade(p.Color, 0.3))
		drawRect(dst, p.Rect, p.Color)
	}

	b := s.Ball
	vector.DrawFilledCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius+8), fade(colorAccent, 0.25), true)
	vector.DrawFilledCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), b.Color, true)

	for _, p := range s.Particles.Active() {
		a := p.Alpha()
		vector.DrawFilledCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size*a), fade(p.Color, a), true)
	}

	size := 80 * s.ScoreAnimScale
	for _, sc := range []struct {
		x     float64
		score int
		label string
		color color.NRGBA
	}{
		{w / 4, s.PlayerScore, "P1", s.Player.Color},
		{3 * w / 4, s.OpponentScore, g.opponentLabel(), s.Opponent.Color},
	} {
		str := strconv.Itoa(sc.score)
		g.drawText(dst, str, sc.x+3, 73, size, fade(colorBlack, 0.5))
		g.drawText(dst, str, sc.x, 70, size, colorWhite)
		g.drawText(dst, sc.label, sc.x, 130, 24, sc.color)
	}
}

func (g *Game) opponentLabel() string {
	if g.session.Mode == game.ModeAI {
		return "AI"
	}
	return "P2"
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	s := g.session
	const w, h = game.ScreenWidth, game.ScreenHeight
	switch s.State {
	case game.StatePaused:
		vector.DrawFilledRect(screen, 0, 0, w, h, fade(colorBlack, 0.7), false)
		g.drawGlowText(screen, "GAME PAUSED", w/2, h/2-40, 60, 1)
		g.drawText(screen, "Press P to resume", w/2, h/2+40, 24, colorAccent)
	case game.StateGameOver:
		vector.DrawFilledRect(screen, 0, 0, w, h, fade(colorBlack, 0.7), false)
		g.drawGlowText(screen, g.winnerLabel(), w/2, h/2-60, 70, 1)
		g.drawText(screen, "Press R to restart", w/2, h/2+30, 24, colorAccent)
		g.drawText(screen, "Press M for menu", w/2, h/2+70, 24, colorAccent)
	}
	g.drawText(screen, "F: Toggle Fullscreen", w-120, h-30, 20, fade(colorWhite, 0.8))
}

func (g *Game) winnerLabel() string {
	side, _ := g.session.Winner()
	ai := g.session.Mode == game.ModeAI
	switch {
	case side == game.SidePlayer && ai:
		return "YOU WIN!"
	case side == game.SidePlayer:
		return "PLAYER 1 WINS!"
	case ai:
		return "AI WINS!"
	default:
		return "PLAYER 2 WINS!"
	}
}
