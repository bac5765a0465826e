package game

import (
	"image/color"

	"phantompong/internal/geom"
)

// Ball is the single ball in play. Vel is in pixels per frame.
type Ball struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Color  color.NRGBA
}

// Paddle is a player's bat. Only Rect.Y changes after init.
type Paddle struct {
	Rect  geom.Rect
	Speed float64
	Color color.NRGBA
}

func newPaddle(x float64, c color.NRGBA) Paddle {
	return Paddle{
		Rect: geom.Rect{
			X: x,
			Y: (ScreenHeight - PaddleHeight) / 2,
			W: PaddleWidth,
			H: PaddleHeight,
		},
		Speed: PaddleSpeed,
		Color: c,
	}
}

// Move shifts the paddle vertically by dy and keeps it fully on screen.
func (p *Paddle) Move(dy float64) {
	p.Rect.Y = clampPaddleY(p.Rect.Y+dy, p.Rect.H)
}

// Center is the paddle's vertical midpoint.
func (p Paddle) Center() float64 {
	return p.Rect.Y + p.Rect.H/2
}

func clampPaddleY(y, h float64) float64 {
	return geom.Clamp(y, 0, ScreenHeight-h)
}

// bounceWalls reflects the ball off the top and bottom edges and pushes it
// back inside by WallBuffer. It reports whether a bounce happened.
func (b *Ball) bounceWalls() bool {
	if b.Pos.Y-b.Radius > 0 && b.Pos.Y+b.Radius < ScreenHeight {
		return false
	}
	b.Vel.Y = -b.Vel.Y
	if b.Pos.Y < b.Radius {
		b.Pos.Y = b.Radius + WallBuffer
	}
	if b.Pos.Y > ScreenHeight-b.Radius {
		b.Pos.Y = ScreenHeight - b.Radius - WallBuffer
	}
	return true
}
