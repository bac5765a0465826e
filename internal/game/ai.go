package game

import (
	"math"
	"math/rand"

	"phantompong/internal/geom"
)

// AI tuning. Difficulty scales both how accurate and how fast the opponent is.
const (
	baseDifficulty = 0.7
	minDifficulty  = 0.5
	maxDifficulty  = 0.95
	aiEasing       = 0.1
	aiDeadZone     = 1.0
	aiMissChance   = 0.3
	aiMissRange    = 30.0
)

// Difficulty maps the ball speed multiplier to an AI skill in [0.5, 0.95].
// Faster balls make for a sharper opponent.
func Difficulty(speedMultiplier float64) float64 {
	d := baseDifficulty * (1 + (speedMultiplier-1)*0.5)
	return geom.Clamp(d, minDifficulty, maxDifficulty)
}

// PredictY projects where the ball will cross x = paddleX, folding the path
// back off the top and bottom walls. When the ball is not heading toward
// paddleX there is nothing to predict; the current height is returned with
// ok = false.
func PredictY(b Ball, paddleX float64) (y float64, ok bool) {
	if b.Vel.X <= 0 {
		return b.Pos.Y, false
	}
	t := (paddleX - b.Pos.X) / b.Vel.X
	if t <= 0 {
		return b.Pos.Y, false
	}
	y = b.Pos.Y + b.Vel.Y*t
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return b.Pos.Y, false
	}
	return mirror(y, ScreenHeight), true
}

// mirror reflects y into [0, h] as many times as needed. Each pass through
// the wall pair is one period of 2h.
func mirror(y, h float64) float64 {
	m := math.Mod(y, 2*h)
	if m < 0 {
		m += 2 * h
	}
	if m > h {
		m = 2*h - m
	}
	return m
}

// Controller drives the opponent paddle in single-player mode.
type Controller struct {
	rng *rand.Rand
}

func NewController(rng *rand.Rand) *Controller {
	return &Controller{rng: rng}
}

// Target returns the paddle top the AI is aiming for this frame, including
// its deliberate mistakes.
func (c *Controller) Target(p Paddle, b Ball, difficulty float64) float64 {
	y, _ := PredictY(b, p.Rect.X)
	target := y - p.Rect.H/2

	miss := 1 - difficulty
	if c.rng.Float64() < aiMissChance*miss {
		target += (c.rng.Float64()*2 - 1) * aiMissRange * miss
	}
	return clampPaddleY(target, p.Rect.H)
}

// Update moves p one frame toward its target.
func (c *Controller) Update(p *Paddle, b Ball, speedMultiplier float64) {
	d := Difficulty(speedMultiplier)
	target := c.Target(*p, b, d)
	p.Move(steer(p.Rect.Y, target, p.Speed, d))
}

// steer is a capped proportional step from current toward target.
func steer(current, target, speed, difficulty float64) float64 {
	dist := target - current
	if math.Abs(dist) <= aiDeadZone {
		return 0
	}
	step := dist * aiEasing * difficulty
	if limit := speed * difficulty; math.Abs(step) > limit {
		step = math.Copysign(limit, dist)
	}
	return step
}
