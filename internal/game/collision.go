package game

import "phantompong/internal/geom"

// Collides reports whether the ball strikes p this frame. Only a ball
// travelling toward the paddle's half of the court can hit it, so a ball that
// has just been returned is never resolved twice.
//
// The ball centre is tested against the paddle grown by the ball radius, with
// a circle-rectangle overlap as the fallback.
func Collides(b Ball, p Paddle) bool {
	if !approaching(b, p) {
		return false
	}
	if p.Rect.Grow(b.Radius).Contains(b.Pos) {
		return true
	}
	return geom.CircleIntersectsRect(b.Pos, b.Radius, p.Rect)
}

func approaching(b Ball, p Paddle) bool {
	if p.Rect.Center().X > ScreenWidth/2 {
		return b.Vel.X > 0
	}
	return b.Vel.X < 0
}
