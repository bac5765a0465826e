package game

import (
	"math"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"phantompong/internal/geom"
)

func TestDifficulty(t *testing.T) {
	tests := []struct {
		mult float64
		want float64
	}{
		{mult: 1.0, want: 0.7},
		{mult: 0.5, want: 0.525},
		{mult: 1.5, want: 0.875},
		{mult: 2.0, want: 0.95},
		{mult: 0.1, want: 0.5},
	}
	for _, tt := range tests {
		if got := Difficulty(tt.mult); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("Difficulty(%v): expected=%v, got=%v", tt.mult, tt.want, got)
		}
	}
}

func TestPredictY(t *testing.T) {
	tests := []struct {
		name   string
		pos    geom.Vec2
		vel    geom.Vec2
		want   float64
		wantOK bool
	}{
		{name: "straight line", pos: geom.Vec2{X: 640, Y: 400}, vel: geom.Vec2{X: 10, Y: 2}, want: 521, wantOK: true},
		{name: "one bounce off the bottom", pos: geom.Vec2{X: 640, Y: 700}, vel: geom.Vec2{X: 10, Y: 5}, want: 597.5, wantOK: true},
		{name: "bounce off the top", pos: geom.Vec2{X: 640, Y: 700}, vel: geom.Vec2{X: 10, Y: -20}, want: 510, wantOK: true},
		{name: "moving away", pos: geom.Vec2{X: 640, Y: 300}, vel: geom.Vec2{X: -10, Y: 2}, want: 300},
		{name: "no horizontal speed", pos: geom.Vec2{X: 640, Y: 300}, vel: geom.Vec2{Y: 5}, want: 300},
		{name: "already past", pos: geom.Vec2{X: 1260, Y: 250}, vel: geom.Vec2{X: 10, Y: 5}, want: 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Pos: tt.pos, Vel: tt.vel, Radius: BallRadius}
			got, ok := PredictY(b, 1245)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got=%v", tt.wantOK, ok)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("expected y=%v, got=%v", tt.want, got)
			}
		})
	}
}

func TestPredictYStaysOnCourt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := Ball{
			Pos: geom.Vec2{
				X: rapid.Float64Range(0, 1200).Draw(t, "x"),
				Y: rapid.Float64Range(0, ScreenHeight).Draw(t, "y"),
			},
			Vel: geom.Vec2{
				X: rapid.Float64Range(0.01, 30).Draw(t, "vx"),
				Y: rapid.Float64Range(-1e4, 1e4).Draw(t, "vy"),
			},
		}
		y, _ := PredictY(b, 1245)
		if y < 0 || y > ScreenHeight {
			t.Fatalf("prediction off court: %v", y)
		}
	})
}

func TestSteer(t *testing.T) {
	const d = 0.7
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{name: "inside dead zone", current: 300, target: 300.5, want: 0},
		{name: "on the dead zone edge", current: 300, target: 301, want: 0},
		{name: "proportional step", current: 300, target: 400, want: 7},
		{name: "capped step down", current: 0, target: 500, want: PaddleSpeed * d},
		{name: "capped step up", current: 500, target: 0, want: -PaddleSpeed * d},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := steer(tt.current, tt.target, PaddleSpeed, d); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("expected=%v, got=%v", tt.want, got)
			}
		})
	}
}

func TestControllerChasesPrediction(t *testing.T) {
	c := NewController(rand.New(rand.NewSource(3)))
	p := newPaddle(ScreenWidth-PaddleMargin-PaddleWidth, ColorAI)
	p.Rect.Y = 0
	b := Ball{Pos: geom.Vec2{X: 640, Y: 700}, Vel: geom.Vec2{X: 10}, Radius: BallRadius}

	c.Update(&p, b, 1)

	want := PaddleSpeed * Difficulty(1)
	if math.Abs(p.Rect.Y-want) > 1e-9 {
		t.Fatalf("expected a full-speed step to %v, got=%v", want, p.Rect.Y)
	}
}

func TestControllerTargetStaysOnScreen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewController(rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))))
		p := newPaddle(ScreenWidth-PaddleMargin-PaddleWidth, ColorAI)
		b := Ball{
			Pos: geom.Vec2{
				X: rapid.Float64Range(0, ScreenWidth).Draw(t, "x"),
				Y: rapid.Float64Range(0, ScreenHeight).Draw(t, "y"),
			},
			Vel: geom.Vec2{
				X: rapid.Float64Range(-15, 15).Draw(t, "vx"),
				Y: rapid.Float64Range(-15, 15).Draw(t, "vy"),
			},
		}
		d := Difficulty(rapid.Float64Range(MinSpeedMultiplier, MaxSpeedMultiplier).Draw(t, "mult"))
		target := c.Target(p, b, d)
		if target < 0 || target > ScreenHeight-p.Rect.H {
			t.Fatalf("target %v puts the paddle off screen", target)
		}
	})
}

func TestControllerMissScalesWithDifficulty(t *testing.T) {
	const draws = 20000
	p := newPaddle(ScreenWidth-PaddleMargin-PaddleWidth, ColorAI)
	// Predicted crossing at y=400 puts the aim at 300, clear of both clamps.
	b := Ball{Pos: geom.Vec2{X: 640, Y: 400}, Vel: geom.Vec2{X: 10}, Radius: BallRadius}
	const aim = 400 - PaddleHeight/2

	tests := []struct {
		difficulty       float64
		minRate, maxRate float64
	}{
		{difficulty: 1, minRate: 0, maxRate: 0},
		{difficulty: 0.95, minRate: 0.010, maxRate: 0.020},
		{difficulty: 0.5, minRate: 0.13, maxRate: 0.17},
	}
	for _, tt := range tests {
		c := NewController(rand.New(rand.NewSource(5)))
		bound := aiMissRange * (1 - tt.difficulty)
		misses, widest := 0, 0.0
		for i := 0; i < draws; i++ {
			dev := math.Abs(c.Target(p, b, tt.difficulty) - aim)
			if dev > bound+1e-9 {
				t.Fatalf("d=%v: deviation %v exceeds %v", tt.difficulty, dev, bound)
			}
			if dev > 0 {
				misses++
				widest = math.Max(widest, dev)
			}
		}
		rate := float64(misses) / draws
		if rate < tt.minRate || rate > tt.maxRate {
			t.Fatalf("d=%v: miss rate %v outside [%v, %v]", tt.difficulty, rate, tt.minRate, tt.maxRate)
		}
		if misses > 0 && widest < bound/2 {
			t.Fatalf("d=%v: widest miss %v never reached half of %v", tt.difficulty, widest, bound)
		}
	}
}
