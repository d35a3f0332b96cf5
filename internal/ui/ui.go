package ui

import (
	"errors"
	"time"
)

var (
	ErrNoFrames   = errors.New("ui: no frames configured")
	ErrInvalidFPS = errors.New("ui: target fps must be at least 1")
)

const (
	DefaultFPS               = 30
	DefaultTimePerFrame      = 5 * time.Second
	DefaultTimePerTransition = 500 * time.Millisecond
)

// UI cycles through frames, animates the transitions between them and
// draws an indicator and overlays on top. It is driven by repeated calls to
// Update from a single loop and is not safe for concurrent use.
type UI struct {
	display Display
	flusher Flusher
	clock   Clock

	updateInterval     time.Duration
	timePerFrame       time.Duration
	timePerTransition  time.Duration
	ticksPerFrame      int
	ticksPerTransition int

	autoTransition           bool
	frameTransitionDirection int
	frameAnimationDirection  AnimationDirection

	indicatorPosition  IndicatorPosition
	indicatorDirection IndicatorDirection
	activeSymbol       []byte
	inactiveSymbol     []byte

	// Both slices are owned by the caller
	frames   []Frame
	overlays []Overlay

	state State
	dirty bool
	draws [2]draw
}

// New creates a UI rendering onto display. A nil clock uses the system clock.
func New(display Display, clock Clock) *UI {
	if nil == clock {
		clock = SystemClock{}
	}
	u := &UI{
		display:                  display,
		clock:                    clock,
		updateInterval:           time.Second / DefaultFPS,
		timePerFrame:             DefaultTimePerFrame,
		timePerTransition:        DefaultTimePerTransition,
		autoTransition:           true,
		frameTransitionDirection: 1,
		frameAnimationDirection:  SlideRight,
		indicatorPosition:        Bottom,
		indicatorDirection:       LeftRight,
		dirty:                    true,
	}
	u.flusher, _ = display.(Flusher)
	u.rescale()
	return u
}

func (u *UI) Init(o Orientation) error {
	return u.display.Init(o)
}

// SetTargetFPS changes the update interval. Tick counts are recomputed so the
// configured frame and transition durations stay the same in real time.
func (u *UI) SetTargetFPS(fps int) error {
	if fps < 1 {
		return ErrInvalidFPS
	}
	u.updateInterval = time.Second / time.Duration(fps)
	u.rescale()
	return nil
}

func (u *UI) SetTimePerFrame(d time.Duration) {
	u.timePerFrame = nonNegative(d)
	u.rescale()
}

func (u *UI) SetTimePerTransition(d time.Duration) {
	u.timePerTransition = nonNegative(d)
	u.rescale()
}

func (u *UI) EnableAutoTransition() {
	u.autoTransition = true
}

func (u *UI) DisableAutoTransition() {
	u.autoTransition = false
}

func (u *UI) SetAutoTransitionForwards() {
	u.frameTransitionDirection = 1
}

func (u *UI) SetAutoTransitionBackwards() {
	u.frameTransitionDirection = -1
}

func (u *UI) SetIndicatorPosition(p IndicatorPosition) {
	u.indicatorPosition = p
	u.dirty = true
}

func (u *UI) SetIndicatorDirection(d IndicatorDirection) {
	u.indicatorDirection = d
	u.dirty = true
}

func (u *UI) SetActiveSymbol(bits []byte) {
	u.activeSymbol = bits
	u.dirty = true
}

func (u *UI) SetInactiveSymbol(bits []byte) {
	u.inactiveSymbol = bits
	u.dirty = true
}

func (u *UI) SetFrameAnimation(a AnimationDirection) {
	u.frameAnimationDirection = a
}

// SetFrames replaces the frame sequence. The slice is not copied.
func (u *UI) SetFrames(frames []Frame) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	u.frames = frames
	if u.state.CurrentFrame >= len(frames) {
		u.state.CurrentFrame = 0
	}
	return nil
}

// SetOverlays replaces the overlays. The slice is not copied.
func (u *UI) SetOverlays(overlays []Overlay) {
	u.overlays = overlays
}

// NextFrame starts a forward transition immediately, whatever the current
// dwell time. The repaint happens on the next due Update.
func (u *UI) NextFrame() {
	u.state.FrameState = InTransition
	u.state.TicksSinceLastStateSwitch = 0
	u.frameTransitionDirection = 1
}

func (u *UI) PreviousFrame() {
	u.state.FrameState = InTransition
	u.state.TicksSinceLastStateSwitch = 0
	u.frameTransitionDirection = -1
}

func (u *UI) State() State {
	return u.state
}

func (u *UI) AutoTransition() bool {
	return u.autoTransition
}

func (u *UI) UpdateInterval() time.Duration {
	return u.updateInterval
}

func (u *UI) TicksPerFrame() int {
	return u.ticksPerFrame
}

func (u *UI) TicksPerTransition() int {
	return u.ticksPerTransition
}

func (u *UI) rescale() {
	u.ticksPerFrame = int(u.timePerFrame / u.updateInterval)
	u.ticksPerTransition = int(u.timePerTransition / u.updateInterval)
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
