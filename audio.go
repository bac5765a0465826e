package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"phantompong/internal/game"
)

const (
	sampleRate  = 44100
	musicVolume = 0.4
)

// tone is a run of decaying sine notes played back to back.
type tone struct {
	notes   []float64
	noteSec float64
	amp     float64
	decay   float64
}

var (
	cueTones = map[game.Cue]tone{
		game.CuePaddleHit: {notes: []float64{880}, noteSec: 0.08, amp: 4000, decay: 6},
		game.CueScore:     {notes: []float64{523.25, 783.99}, noteSec: 0.15, amp: 4000, decay: 3},
	}
	musicTone = tone{notes: []float64{261.63, 329.63, 392.00, 523.25}, noteSec: 0.25, amp: 2000, decay: 2}
)

// pcm renders t as 16-bit little-endian stereo at sampleRate.
func (t tone) pcm() []byte {
	perNote := int(sampleRate * t.noteSec)
	buf := make([]byte, perNote*len(t.notes)*4)
	idx := 0
	for _, freq := range t.notes {
		for i := 0; i < perNote; i++ {
			s := float64(i) / sampleRate
			v := int16(math.Sin(2*math.Pi*freq*s) * t.amp * math.Exp(-t.decay*s))
			for ch := 0; ch < 2; ch++ {
				buf[idx] = byte(v)
				buf[idx+1] = byte(v >> 8)
				idx += 2
			}
		}
	}
	return buf
}

// soundBank plays the session's cues and the looping background music.
type soundBank struct {
	cues  map[game.Cue]*audio.Player
	music *audio.Player
	log   *slog.Logger
}

func newSoundBank(ctx *audio.Context, volume float64, logger *slog.Logger) (*soundBank, error) {
	b := &soundBank{cues: make(map[game.Cue]*audio.Player, len(cueTones)), log: logger}
	for cue, t := range cueTones {
		p := ctx.NewPlayerFromBytes(t.pcm())
		p.SetVolume(volume)
		b.cues[cue] = p
	}

	buf := musicTone.pcm()
	loop := audio.NewInfiniteLoop(bytes.NewReader(buf), int64(len(buf)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("create music player: %w", err)
	}
	music.SetVolume(volume * musicVolume)
	b.music = music
	return b, nil
}

func (b *soundBank) Play(cue game.Cue) {
	p, ok := b.cues[cue]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		b.log.Warn("rewind cue", "cue", cue, "err", err)
		return
	}
	p.Play()
}

// follow keeps the music in step with the game: silent while paused or on
// the result screen, restarted for every new match.
func (b *soundBank) follow(prev, next game.State) {
	if prev == next {
		return
	}
	switch next {
	case game.StatePaused, game.StateGameOver:
		b.music.Pause()
	case game.StatePlaying:
		if prev != game.StatePaused {
			if err := b.music.Rewind(); err != nil {
				b.log.Warn("rewind music", "err", err)
			}
		}
		b.music.Play()
	default:
		b.music.Play()
	}
}
