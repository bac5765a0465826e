package game

import "phantompong/internal/geom"

// Action is a bit set of abstract controls. The host decides which keys
// produce which actions.
type Action uint16

const (
	ActionPlayerUp Action = 1 << iota
	ActionPlayerDown
	ActionOpponentUp
	ActionOpponentDown
	ActionStart
	ActionModeAI
	ActionModeVersus
	ActionPause
	ActionRestart
	ActionMenu
	ActionFullscreen
)

// Input is the polled control state for one frame.
type Input struct {
	Held    Action
	Pressed Action

	Cursor       geom.Vec2
	MouseHeld    bool
	MousePressed bool
}

// Down reports whether a is held this frame.
func (in Input) Down(a Action) bool { return in.Held&a != 0 }

// JustPressed reports whether a went down this frame.
func (in Input) JustPressed(a Action) bool { return in.Pressed&a != 0 }

// Frame carries everything the host supplies to one Update call.
type Frame struct {
	Input Input
	// DT is the elapsed time since the previous frame, in seconds.
	DT float64
	// Now is a monotonic clock reading in seconds.
	Now float64
}
