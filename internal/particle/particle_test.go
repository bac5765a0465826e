package particle

import (
	"image/color"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"phantompong/internal/geom"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 204}

func newTestPool() *Pool {
	return NewPool(rand.New(rand.NewSource(1)))
}

func TestSpawnRanges(t *testing.T) {
	p := newTestPool()
	origin := geom.Vec2{X: 640, Y: 400}
	if n := p.Spawn(origin, white, 15); n != 15 {
		t.Fatalf("expected 15 spawned, got=%d", n)
	}
	if p.Len() != 15 {
		t.Fatalf("expected 15 active, got=%d", p.Len())
	}
	for i, pt := range p.Active() {
		if pt.Pos != origin {
			t.Fatalf("particle %d spawned at %+v", i, pt.Pos)
		}
		if pt.Vel.X < -2 || pt.Vel.X > 2 || pt.Vel.Y < -2 || pt.Vel.Y > 2 {
			t.Fatalf("particle %d velocity out of range: %+v", i, pt.Vel)
		}
		if pt.Life != 0 {
			t.Fatalf("particle %d should be born with zero life, got=%f", i, pt.Life)
		}
		if pt.MaxLife < 0.3 || pt.MaxLife > 0.9 {
			t.Fatalf("particle %d max life out of range: %f", i, pt.MaxLife)
		}
		if pt.Size < 2 || pt.Size > 6 || pt.Size != float64(int(pt.Size)) {
			t.Fatalf("particle %d size should be a whole number in [2,6], got=%f", i, pt.Size)
		}
		if pt.Color != white {
			t.Fatalf("particle %d color mismatch: %+v", i, pt.Color)
		}
	}
}

func TestSpawnTruncatesAtCapacity(t *testing.T) {
	p := newTestPool()
	p.Spawn(geom.Vec2{}, white, 90)
	if n := p.Spawn(geom.Vec2{}, white, 30); n != 10 {
		t.Fatalf("expected only 10 to fit, got=%d", n)
	}
	if p.Len() != Capacity {
		t.Fatalf("expected full pool, got=%d", p.Len())
	}
	if n := p.Spawn(geom.Vec2{}, white, 5); n != 0 {
		t.Fatalf("full pool accepted %d particles", n)
	}
}

func TestAdvanceMovesAndExpires(t *testing.T) {
	p := newTestPool()
	p.Spawn(geom.Vec2{X: 100, Y: 100}, white, 3)
	items := p.Active()
	items[0].MaxLife = 0.5
	items[0].Vel = geom.Vec2{X: 1, Y: -1}
	items[1].MaxLife = 0.1
	items[2].MaxLife = 0.9
	items[2].Vel = geom.Vec2{X: 2, Y: 0}

	p.Advance(0.2)

	if p.Len() != 2 {
		t.Fatalf("expected the short-lived particle to expire, active=%d", p.Len())
	}
	got := p.Active()
	if got[0].Pos != (geom.Vec2{X: 101, Y: 99}) {
		t.Fatalf("first survivor did not move by its velocity: %+v", got[0].Pos)
	}
	if got[1].Pos != (geom.Vec2{X: 102, Y: 100}) {
		t.Fatalf("second survivor was not compacted in place: %+v", got[1].Pos)
	}
	if got[0].Life != 0.2 {
		t.Fatalf("expected life 0.2, got=%f", got[0].Life)
	}
}

func TestAlpha(t *testing.T) {
	pt := Particle{Life: 0.25, MaxLife: 0.5}
	if a := pt.Alpha(); a != 0.5 {
		t.Fatalf("expected alpha 0.5, got=%f", a)
	}
	if a := (Particle{Life: 1, MaxLife: 0.5}).Alpha(); a != 0 {
		t.Fatalf("expired particle should be fully faded, got=%f", a)
	}
}

func TestReset(t *testing.T) {
	p := newTestPool()
	p.Spawn(geom.Vec2{}, white, 20)
	p.Reset()
	if p.Len() != 0 || len(p.Active()) != 0 {
		t.Fatalf("reset left %d particles", p.Len())
	}
}

func TestPoolInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := NewPool(rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))))
		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "spawn") {
				p.Spawn(geom.Vec2{}, white, rapid.IntRange(0, 60).Draw(t, "count"))
			}
			if p.Len() > Capacity {
				t.Fatalf("pool grew past capacity: %d", p.Len())
			}

			var expiring int
			dt := rapid.Float64Range(0, 0.5).Draw(t, "dt")
			for _, pt := range p.Active() {
				if pt.Life+dt >= pt.MaxLife {
					expiring++
				}
			}
			before := p.Len()
			p.Advance(dt)
			if p.Len() != before-expiring {
				t.Fatalf("expected %d survivors, got %d", before-expiring, p.Len())
			}
			for _, pt := range p.Active() {
				if pt.Dead() {
					t.Fatalf("dead particle survived advance: %+v", pt)
				}
			}
		}
	})
}
