package ui

import "time"

type Orientation uint8

const (
	Portrait Orientation = iota
	Landscape
)

type FrameState uint8

const (
	Fixed FrameState = iota
	InTransition
)

func (s FrameState) String() string {
	switch s {
	case InTransition:
		return "in-transition"
	default:
		return "fixed"
	}
}

// AnimationDirection is the direction frames slide in while transitioning.
type AnimationDirection uint8

const (
	SlideLeft AnimationDirection = iota
	SlideRight
	SlideUp
	SlideDown
)

type IndicatorPosition uint8

const (
	Top IndicatorPosition = iota
	Right
	Bottom
	Left
)

// IndicatorDirection decides whether indicator slots are numbered from the
// left (or top) or from the right (or bottom).
type IndicatorDirection uint8

const (
	LeftRight IndicatorDirection = iota
	RightLeft
)

// State is the animation state handed to frame and overlay callbacks.
// Callbacks receive a copy, so it is read-only from their point of view.
type State struct {
	FrameState                FrameState
	CurrentFrame              int
	TicksSinceLastStateSwitch int
	LastUpdate                time.Time // zero until the first processed tick
}
