package ui

import "time"

// Display is the drawing surface the engine renders onto. Bitmaps are XBM
// encoded: rows padded to whole bytes, least significant bit first.
type Display interface {
	Init(o Orientation) error
	Clear() error
	DrawXBM(x, y, width, height int, bits []byte)
	Width() int
	Height() int
}

// Flusher is implemented by displays that buffer drawing until Flush.
type Flusher interface {
	Flush() error
}

// Frame draws one frame at the given pixel offset. It may be called twice
// in the same tick while a transition is running. Returning true requests
// another repaint on the next tick.
type Frame func(d Display, s State, x, y int) bool

// Overlay is drawn after the frames on every repaint. Returning true
// requests another repaint on the next tick.
type Overlay func(d Display, s State) bool

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
