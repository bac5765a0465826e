package game

import (
	"math"

	"phantompong/internal/geom"
)

// step runs one frame of play: paddles, ball, walls, paddle hits, scoring
// and the win check, in that order.
func (s *Session) step(in Input) {
	s.movePaddles(in)

	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel)
	s.Ball.bounceWalls()

	if Collides(s.Ball, s.Player) {
		s.returnBall(s.Player, 1)
	}
	if Collides(s.Ball, s.Opponent) {
		s.returnBall(s.Opponent, -1)
	}

	s.checkScore()
	if _, over := s.Winner(); over {
		s.setState(StateGameOver)
	}
}

func (s *Session) movePaddles(in Input) {
	s.Player.Move(axis(in, ActionPlayerUp, ActionPlayerDown) * s.Player.Speed)
	if s.Mode == ModeAI {
		s.ai.Update(&s.Opponent, s.Ball, s.SpeedMultiplier)
		return
	}
	s.Opponent.Move(axis(in, ActionOpponentUp, ActionOpponentDown) * s.Opponent.Speed)
}

// axis folds an up/down pair into -1, 0 or +1.
func axis(in Input, up, down Action) float64 {
	var v float64
	if in.Down(up) {
		v--
	}
	if in.Down(down) {
		v++
	}
	return v
}

// returnBall bounces the ball off p. dir is the sign of the outgoing
// horizontal velocity. The further from the paddle centre the ball lands,
// the steeper it leaves.
func (s *Session) returnBall(p Paddle, dir float64) {
	offset := geom.Clamp((s.Ball.Pos.Y-p.Center())/(p.Rect.H/2), -1, 1)
	speed := math.Min(math.Abs(s.Ball.Vel.X)+HitSpeedup, s.maxBallSpeed())
	s.Ball.Vel = geom.Vec2{X: dir * speed, Y: offset * speed * ReturnAngle}

	s.Particles.Spawn(s.Ball.Pos, colorHitSpark, HitParticles)
	s.Shake = hitShake
	s.cues.Play(CuePaddleHit)
}

// checkScore awards the point once the ball is fully past an edge and
// re-serves toward the side that conceded.
func (s *Session) checkScore() {
	switch {
	case s.Ball.Pos.X < -s.Ball.Radius:
		s.OpponentScore++
		s.cues.Play(CueScore)
		s.ResetBall(false)
		s.log.Debug("point", "scorer", "opponent", "player_score", s.PlayerScore, "opponent_score", s.OpponentScore)
	case s.Ball.Pos.X > ScreenWidth+s.Ball.Radius:
		s.PlayerScore++
		s.cues.Play(CueScore)
		s.ResetBall(true)
		s.log.Debug("point", "scorer", "player", "player_score", s.PlayerScore, "opponent_score", s.OpponentScore)
	}
}
