package game

import "image/color"

// Screen dimensions. The playfield is fixed; the host scales it to the window.
const (
	ScreenWidth  = 1280
	ScreenHeight = 800
)

// Entity dimensions and speeds. Speeds are in pixels per frame.
const (
	PaddleWidth    = 25
	PaddleHeight   = 200
	PaddleMargin   = 10
	PaddleSpeed    = 12.0
	BallRadius     = 20
	BallServe      = 8.0
	BallMaxSpeed   = 15.0
	HitSpeedup     = 0.2
	ReturnAngle    = 0.75
	WallBuffer     = 2.0
	WinScore       = 10
	HitParticles   = 15
	ServeParticles = 30
)

// Speed multiplier bounds, applied to both the serve and the top speed.
const (
	MinSpeedMultiplier     = 0.5
	MaxSpeedMultiplier     = 2.0
	DefaultSpeedMultiplier = 1.0
)

// Screen shake.
const (
	hitShake       = 5.0
	shakeDecay     = 0.9
	shakeThreshold = 0.1
)

var (
	ColorBall      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorPlayerOne = color.NRGBA{R: 0, G: 180, B: 255, A: 255}
	ColorPlayerTwo = color.NRGBA{R: 0, G: 220, B: 120, A: 255}
	ColorAI        = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
	colorHitSpark  = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
)
