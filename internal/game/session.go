// Package game is the simulation core: the state machine, ball and paddle
// physics, the AI opponent and the effects driven by them. It knows nothing
// about windows, sound devices or fonts; the host feeds it a Frame per tick
// and reads the exported Session fields back to draw.
package game

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"phantompong/internal/geom"
	"phantompong/internal/particle"
)

const scoreAnimEase = 0.1

// Side identifies one end of the court.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

// Options configures a new Session. Zero values pick sensible defaults.
type Options struct {
	Rand            *rand.Rand
	Cues            CuePlayer
	Logger          *slog.Logger
	SpeedMultiplier float64
	Fullscreen      bool
}

// Session is the whole game: one per process, re-initialised in place on
// every new match.
type Session struct {
	State State
	Mode  Mode

	Ball     Ball
	Player   Paddle
	Opponent Paddle

	PlayerScore     int
	OpponentScore   int
	WinScore        int
	SpeedMultiplier float64

	ScoreAnimScale float64
	LastScoreTime  float64
	Shake          float64
	ShakeOffset    geom.Vec2
	Particles      *particle.Pool

	Fullscreen bool
	UI         UI

	now  float64
	rng  *rand.Rand
	cues CuePlayer
	ai   *Controller
	log  *slog.Logger
}

// NewSession returns a session sitting on the splash screen.
func NewSession(opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cues := opts.Cues
	if cues == nil {
		cues = silence{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		State:          StateSplash,
		WinScore:       WinScore,
		ScoreAnimScale: 1,
		Particles:      particle.NewPool(rng),
		Fullscreen:     opts.Fullscreen,
		rng:            rng,
		cues:           cues,
		ai:             NewController(rng),
		log:            logger,
	}
	mult := opts.SpeedMultiplier
	if mult == 0 {
		mult = DefaultSpeedMultiplier
	}
	s.SetSpeedMultiplier(mult)
	s.UI = UI{SpeedAnim: 1, prevSpeed: s.SpeedMultiplier}
	return s
}

// Init starts a fresh match in the given mode.
func (s *Session) Init(mode Mode) {
	s.Mode = mode
	s.setState(StatePlaying)
	s.PlayerScore = 0
	s.OpponentScore = 0
	s.WinScore = WinScore

	s.Ball = Ball{Radius: BallRadius, Color: ColorBall}
	s.Player = newPaddle(PaddleMargin, ColorPlayerOne)
	opponentColor := ColorPlayerTwo
	if mode == ModeAI {
		opponentColor = ColorAI
	}
	s.Opponent = newPaddle(ScreenWidth-PaddleMargin-PaddleWidth, opponentColor)

	s.ResetBall(true)

	s.Particles.Reset()
	s.ScoreAnimScale = 1
	s.LastScoreTime = 0
	s.Shake = 0
	s.ShakeOffset = geom.Vec2{}
	s.log.Debug("match started", "mode", mode, "speed_multiplier", s.SpeedMultiplier)
}

// ResetBall serves from the centre. The ball heads right when serverIsPlayer
// is true, left otherwise, at a random vertical slope.
func (s *Session) ResetBall(serverIsPlayer bool) {
	s.Ball.Pos = geom.Vec2{X: ScreenWidth / 2, Y: ScreenHeight / 2}

	speed := BallServe * s.SpeedMultiplier
	vx := speed
	if !serverIsPlayer {
		vx = -speed
	}
	s.Ball.Vel = geom.Vec2{X: vx, Y: (s.rng.Float64()*2 - 1) * speed}

	s.LastScoreTime = s.now
	s.ScoreAnimScale = 1.5

	burst := s.Player.Color
	if serverIsPlayer {
		burst = s.Opponent.Color
	}
	s.Particles.Spawn(s.Ball.Pos, burst, ServeParticles)
}

// SetSpeedMultiplier snaps v to a tenth and clamps it to the allowed range.
// NaN resets to the default. The new value applies from the next serve.
func (s *Session) SetSpeedMultiplier(v float64) {
	if math.IsNaN(v) {
		v = DefaultSpeedMultiplier
	}
	v = math.Round(v*10) / 10
	s.SpeedMultiplier = geom.Clamp(v, MinSpeedMultiplier, MaxSpeedMultiplier)
}

// Winner reports which side has reached the win score, if any.
func (s *Session) Winner() (Side, bool) {
	switch {
	case s.PlayerScore >= s.WinScore:
		return SidePlayer, true
	case s.OpponentScore >= s.WinScore:
		return SideOpponent, true
	default:
		return 0, false
	}
}

func (s *Session) maxBallSpeed() float64 {
	return BallMaxSpeed * s.SpeedMultiplier
}

// tickEffects decays the screen shake, ages the particles and eases the
// score pop back to rest.
func (s *Session) tickEffects(dt float64) {
	s.Shake *= shakeDecay
	if s.Shake > shakeThreshold {
		k := s.Shake / 10
		s.ShakeOffset = geom.Vec2{
			X: float64(s.randInt(-10, 10)) * k,
			Y: float64(s.randInt(-10, 10)) * k,
		}
	} else {
		s.Shake = 0
		s.ShakeOffset = geom.Vec2{}
	}
	s.Particles.Advance(dt)
	s.ScoreAnimScale = geom.Lerp(s.ScoreAnimScale, 1, scoreAnimEase)
}

// randInt returns an integer in [lo, hi].
func (s *Session) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Session) setState(next State) {
	if s.State == next {
		return
	}
	s.log.Debug("state transition", "from", s.State, "to", next)
	s.State = next
}
