package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"phantompong/internal/game"
	"phantompong/internal/geom"
)

var keyBindings = []struct {
	key    ebiten.Key
	action game.Action
}{
	{ebiten.KeyW, game.ActionPlayerUp},
	{ebiten.KeyS, game.ActionPlayerDown},
	{ebiten.KeyArrowUp, game.ActionOpponentUp},
	{ebiten.KeyArrowDown, game.ActionOpponentDown},
	{ebiten.KeySpace, game.ActionStart},
	{ebiten.KeyEnter, game.ActionStart},
	{ebiten.KeyDigit1, game.ActionModeAI},
	{ebiten.KeyNumpad1, game.ActionModeAI},
	{ebiten.KeyDigit2, game.ActionModeVersus},
	{ebiten.KeyNumpad2, game.ActionModeVersus},
	{ebiten.KeyP, game.ActionPause},
	{ebiten.KeyR, game.ActionRestart},
	{ebiten.KeyM, game.ActionMenu},
	{ebiten.KeyF, game.ActionFullscreen},
}

// pollInput snapshots the keyboard and mouse for this tick.
func pollInput() game.Input {
	var in game.Input
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Held |= b.action
		}
		if inpututil.IsKeyJustPressed(b.key) {
			in.Pressed |= b.action
		}
	}

	x, y := ebiten.CursorPosition()
	in.Cursor = geom.Vec2{X: float64(x), Y: float64(y)}
	in.MouseHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.MousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return in
}
