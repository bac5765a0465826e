package game

//go:generate go tool mockgen -destination=./mocks/cue_player_mock.go -package=mocks . CuePlayer

// Cue names a sound effect the simulation asks the host to play.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueScore
)

func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle_hit"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}

// CuePlayer plays sound cues. Calls are fire-and-forget.
type CuePlayer interface {
	Play(cue Cue)
}

type silence struct{}

func (silence) Play(Cue) {}
