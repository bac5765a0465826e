package main

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"phantompong/internal/config"
	"phantompong/internal/game"
	"phantompong/internal/geom"
)

// Game adapts a game.Session to ebiten.
type Game struct {
	session *game.Session
	sounds  *soundBank // nil when no audio device is available

	face   text.Face
	canvas *ebiten.Image

	start      time.Time
	dt         float64
	cursor     geom.Vec2
	fullscreen bool
	log        *slog.Logger
}

func NewGame(cfg config.Config, logger *slog.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		face:       text.NewGoXFace(basicfont.Face7x13),
		start:      time.Now(),
		dt:         1 / float64(cfg.TPS),
		fullscreen: cfg.Fullscreen,
		log:        logger,
	}

	opts := game.Options{
		Rand:            rand.New(rand.NewSource(seed)),
		Logger:          logger,
		SpeedMultiplier: cfg.SpeedMultiplier,
		Fullscreen:      cfg.Fullscreen,
	}
	sounds, err := newSoundBank(audio.NewContext(sampleRate), cfg.Volume, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		g.sounds = sounds
		opts.Cues = sounds
		sounds.music.Play()
	}
	g.session = game.NewSession(opts)
	logger.Debug("session ready", "seed", seed)
	return g
}

func (g *Game) Update() error {
	in := pollInput()
	// Esc only ever leaves fullscreen.
	if g.fullscreen && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Pressed |= game.ActionFullscreen
	}
	g.cursor = in.Cursor

	prev := g.session.State
	g.session.Update(game.Frame{
		Input: in,
		DT:    g.dt,
		Now:   g.elapsed(),
	})

	if g.session.Fullscreen != g.fullscreen {
		g.fullscreen = g.session.Fullscreen
		ebiten.SetFullscreen(g.fullscreen)
		g.log.Debug("fullscreen toggled", "on", g.fullscreen)
	}
	if g.sounds != nil {
		g.sounds.follow(prev, g.session.State)
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.ScreenWidth, game.ScreenHeight
}

func (g *Game) elapsed() float64 {
	return time.Since(g.start).Seconds()
}
