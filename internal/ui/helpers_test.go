package ui

import (
	"errors"
	"time"
)

type mockClock struct {
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2021, 4, 17, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type bitmapCall struct {
	X, Y, W, H int
	Bits       []byte
}

type recordingDisplay struct {
	width, height int
	clears        int
	flushes       int
	bitmaps       []bitmapCall
	clearErr      error
	flushErr      error
	orientation   Orientation
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{width: 128, height: 64}
}

func (d *recordingDisplay) Init(o Orientation) error {
	d.orientation = o
	return nil
}

func (d *recordingDisplay) Clear() error {
	if nil != d.clearErr {
		return d.clearErr
	}
	d.clears++
	d.bitmaps = d.bitmaps[:0]
	return nil
}

func (d *recordingDisplay) DrawXBM(x, y, w, h int, bits []byte) {
	d.bitmaps = append(d.bitmaps, bitmapCall{X: x, Y: y, W: w, H: h, Bits: bits})
}

func (d *recordingDisplay) Width() int  { return d.width }
func (d *recordingDisplay) Height() int { return d.height }

func (d *recordingDisplay) Flush() error {
	if nil != d.flushErr {
		return d.flushErr
	}
	d.flushes++
	return nil
}

var errBus = errors.New("bus error")

type frameCall struct {
	Frame int
	X, Y  int
	State State
}

// frameRecorder builds n frames that log their invocations
type frameRecorder struct {
	calls   []frameCall
	changed bool
}

func (r *frameRecorder) frames(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		i := i
		frames[i] = func(d Display, s State, x, y int) bool {
			r.calls = append(r.calls, frameCall{Frame: i, X: x, Y: y, State: s})
			return r.changed
		}
	}
	return frames
}

// newTestUI gives a 10 fps UI with 5 ticks per frame and 2 per transition
func newTestUI(frameCount int) (*UI, *mockClock, *recordingDisplay, *frameRecorder) {
	clock := newMockClock()
	display := newRecordingDisplay()
	recorder := &frameRecorder{}
	u := New(display, clock)
	u.SetTargetFPS(10)
	u.SetTimePerFrame(500 * time.Millisecond)
	u.SetTimePerTransition(200 * time.Millisecond)
	if err := u.SetFrames(recorder.frames(frameCount)); nil != err {
		panic(err)
	}
	return u, clock, display, recorder
}

// tick performs exactly one on-time update
func tick(u *UI, clock *mockClock) time.Duration {
	if !u.state.LastUpdate.IsZero() {
		clock.Advance(u.UpdateInterval())
	}
	budget, err := u.Update()
	if nil != err {
		panic(err)
	}
	return budget
}
