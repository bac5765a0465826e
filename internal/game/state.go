package game

import (
	"math"

	"phantompong/internal/geom"
)

// State is the top-level screen the game is on.
type State int

const (
	StateSplash State = iota
	StateModeSelect
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateModeSelect:
		return "mode_select"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Mode decides who drives the right-hand paddle.
type Mode int

const (
	ModeAI Mode = iota
	ModeVersus
)

func (m Mode) String() string {
	switch m {
	case ModeAI:
		return "ai"
	case ModeVersus:
		return "versus"
	default:
		return "unknown"
	}
}

// Mode-select screen layout, shared with the renderer so clicks land where
// the options are drawn.
var (
	ModeAIRegion     = geom.Rect{X: ScreenWidth/2 - 200, Y: ScreenHeight/2 - 30, W: 400, H: 60}
	ModeVersusRegion = geom.Rect{X: ScreenWidth/2 - 200, Y: ScreenHeight/2 + 30, W: 400, H: 60}
	SliderTrack      = geom.Rect{X: ScreenWidth/2 - 150, Y: ScreenHeight * 3 / 4, W: 300, H: 20}

	sliderHitArea = geom.Rect{X: SliderTrack.X, Y: SliderTrack.Y - 10, W: SliderTrack.W, H: SliderTrack.H + 20}
)

// Menu animation tuning.
const (
	pulseStep     = 0.01
	pulseMax      = 0.2
	speedPop      = 1.3
	speedPopDelta = 0.05
	speedPopEase  = 0.1
)

// UI holds the menu screens' transient state.
type UI struct {
	// Dragging is set while the speed slider knob is held.
	Dragging bool
	// Pulse oscillates in [0, 0.2] to breathe the splash start prompt.
	Pulse float64
	// SpeedAnim pops to 1.3 when the multiplier changes and eases back to 1.
	SpeedAnim float64

	pulseFalling bool
	prevSpeed    float64
}

func (u *UI) pulse() {
	if u.pulseFalling {
		u.Pulse -= pulseStep
		if u.Pulse < 0 {
			u.pulseFalling = false
		}
		return
	}
	u.Pulse += pulseStep
	if u.Pulse > pulseMax {
		u.pulseFalling = true
	}
}

func (u *UI) animateSpeed(current float64) {
	if math.Abs(u.prevSpeed-current) > speedPopDelta {
		u.SpeedAnim = speedPop
		u.prevSpeed = current
	}
	u.SpeedAnim = geom.Lerp(u.SpeedAnim, 1, speedPopEase)
}

var updaters = [...]func(*Session, Frame){
	StateSplash:     (*Session).updateSplash,
	StateModeSelect: (*Session).updateModeSelect,
	StatePlaying:    (*Session).updatePlaying,
	StatePaused:     (*Session).updatePaused,
	StateGameOver:   (*Session).updateGameOver,
}

// Update advances the game by one frame.
func (s *Session) Update(f Frame) {
	s.now = f.Now
	if f.Input.JustPressed(ActionFullscreen) {
		s.Fullscreen = !s.Fullscreen
	}
	if s.State < 0 || int(s.State) >= len(updaters) {
		return
	}
	updaters[s.State](s, f)
}

func (s *Session) updateSplash(f Frame) {
	s.UI.pulse()
	if f.Input.MousePressed || f.Input.JustPressed(ActionStart) {
		s.setState(StateModeSelect)
	}
}

func (s *Session) updateModeSelect(f Frame) {
	in := f.Input
	switch {
	case in.JustPressed(ActionModeAI):
		s.Init(ModeAI)
		return
	case in.JustPressed(ActionModeVersus):
		s.Init(ModeVersus)
		return
	}

	s.dragSlider(in)
	s.UI.animateSpeed(s.SpeedMultiplier)

	if !in.MousePressed {
		return
	}
	switch {
	case ModeAIRegion.Contains(in.Cursor):
		s.Init(ModeAI)
	case ModeVersusRegion.Contains(in.Cursor):
		s.Init(ModeVersus)
	}
}

// dragSlider maps the cursor onto the speed slider while the mouse is held.
// A drag that started on the slider keeps tracking even when the cursor
// leaves it.
func (s *Session) dragSlider(in Input) {
	if !in.MouseHeld {
		s.UI.Dragging = false
		return
	}
	if !s.UI.Dragging && !sliderHitArea.Contains(in.Cursor) {
		return
	}
	s.UI.Dragging = true
	rel := geom.Clamp(in.Cursor.X-SliderTrack.X, 0, SliderTrack.W)
	s.SetSpeedMultiplier(MinSpeedMultiplier + rel/SliderTrack.W*(MaxSpeedMultiplier-MinSpeedMultiplier))
}

func (s *Session) updatePlaying(f Frame) {
	if f.Input.JustPressed(ActionPause) {
		s.setState(StatePaused)
		return
	}
	s.step(f.Input)
	s.tickEffects(f.DT)
}

func (s *Session) updatePaused(f Frame) {
	if f.Input.JustPressed(ActionPause) {
		s.setState(StatePlaying)
	}
}

func (s *Session) updateGameOver(f Frame) {
	switch {
	case f.Input.JustPressed(ActionRestart):
		s.Init(s.Mode)
		return
	case f.Input.JustPressed(ActionMenu):
		s.setState(StateModeSelect)
		return
	}
	s.tickEffects(f.DT)
}
