// Package particle implements the short-lived sparks thrown off by paddle
// hits and serves.
package particle

import (
	"image/color"
	"math/rand"

	"phantompong/internal/geom"
)

// Capacity is the fixed size of a Pool.
const Capacity = 100

// Spawn tuning.
const (
	maxSpawnVelocity = 2.0
	minLife          = 0.3
	maxLife          = 0.9
	minSize          = 2
	maxSize          = 6
)

// Particle is a single spark. Life and MaxLife are in seconds; Vel is in
// pixels per frame.
type Particle struct {
	Pos     geom.Vec2
	Vel     geom.Vec2
	Life    float64
	MaxLife float64
	Color   color.NRGBA
	Size    float64
}

// Alpha is the fade factor the renderer applies: 1 at birth, 0 at expiry.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return geom.Clamp(1-p.Life/p.MaxLife, 0, 1)
}

// Dead reports whether the particle has outlived its lifetime.
func (p Particle) Dead() bool {
	return p.Life >= p.MaxLife
}

// Pool is a fixed-capacity arena. Live particles always occupy the prefix
// [0, n); order inside the prefix carries no meaning.
type Pool struct {
	items [Capacity]Particle
	n     int
	rng   *rand.Rand
}

// NewPool returns an empty pool drawing randomness from rng.
func NewPool(rng *rand.Rand) *Pool {
	return &Pool{rng: rng}
}

// Spawn adds up to count particles at pos. Requests beyond the free capacity
// are dropped; the number actually added is returned.
func (p *Pool) Spawn(pos geom.Vec2, c color.NRGBA, count int) int {
	added := 0
	for ; added < count && p.n < Capacity; added++ {
		p.items[p.n] = Particle{
			Pos: pos,
			Vel: geom.Vec2{
				X: p.uniform(-maxSpawnVelocity, maxSpawnVelocity),
				Y: p.uniform(-maxSpawnVelocity, maxSpawnVelocity),
			},
			MaxLife: p.uniform(minLife, maxLife),
			Color:   c,
			Size:    float64(minSize + p.rng.Intn(maxSize-minSize+1)),
		}
		p.n++
	}
	return added
}

// Advance ages every particle by dt, drops the expired ones and moves the
// rest by one step of their velocity.
func (p *Pool) Advance(dt float64) {
	keep := 0
	for i := 0; i < p.n; i++ {
		pt := &p.items[i]
		pt.Life += dt
		if pt.Dead() {
			continue
		}
		pt.Pos = pt.Pos.Add(pt.Vel)
		if i != keep {
			p.items[keep] = *pt
		}
		keep++
	}
	p.n = keep
}

// Active returns the live particles. The slice aliases the pool and is only
// valid until the next Spawn, Advance or Reset.
func (p *Pool) Active() []Particle {
	return p.items[:p.n]
}

func (p *Pool) Len() int { return p.n }

// Reset empties the pool without releasing its storage.
func (p *Pool) Reset() {
	p.n = 0
}

func (p *Pool) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
