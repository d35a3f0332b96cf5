package ui

import (
	"fmt"
	"time"
)

// Update advances the UI by one tick when the update interval has elapsed
// since the last processed tick. It never blocks.
//
// A positive return value means nothing was done and is the time left until
// the next tick is due. A non-positive value means a tick was processed. If
// the caller fell behind by whole intervals, the missed ticks are added to
// the dwell counter so the animation keeps its real-time pace, skipping the
// intermediate pictures.
//
// Render errors are returned after the tick has been accounted for.
func (u *UI) Update() (time.Duration, error) {
	now := u.clock.Now()

	var budget time.Duration
	if !u.state.LastUpdate.IsZero() {
		budget = u.updateInterval - now.Sub(u.state.LastUpdate)
	}
	if budget > 0 {
		return budget, nil
	}
	if len(u.frames) == 0 {
		return budget, ErrNoFrames
	}

	if u.autoTransition && !u.state.LastUpdate.IsZero() {
		// Rounded down on purpose, a partially missed interval is not a
		// skipped tick
		u.state.TicksSinceLastStateSwitch += int(-budget / u.updateInterval)
	}
	u.state.LastUpdate = now

	u.step()
	if !u.dirty {
		return budget, nil
	}
	return budget, u.repaint()
}

func (u *UI) step() {
	u.state.TicksSinceLastStateSwitch++

	switch u.state.FrameState {
	case InTransition:
		u.dirty = true
		if u.state.TicksSinceLastStateSwitch >= u.ticksPerTransition {
			u.state.FrameState = Fixed
			u.state.CurrentFrame = u.nextFrameNumber()
			u.state.TicksSinceLastStateSwitch = 0
		}
	case Fixed:
		if u.state.TicksSinceLastStateSwitch >= u.ticksPerFrame {
			if u.autoTransition {
				u.state.FrameState = InTransition
				u.dirty = true
			}
			u.state.TicksSinceLastStateSwitch = 0
		}
	}
}

func (u *UI) repaint() error {
	u.dirty = false

	// A failed repaint stays dirty so the next due tick paints again
	if err := u.display.Clear(); nil != err {
		u.dirty = true
		return fmt.Errorf("unable to clear display: %w", err)
	}
	u.drawIndicator()
	u.drawFrame()
	u.drawOverlays()

	if nil != u.flusher {
		if err := u.flusher.Flush(); nil != err {
			u.dirty = true
			return fmt.Errorf("unable to flush display: %w", err)
		}
	}
	return nil
}

func (u *UI) nextFrameNumber() int {
	return wrap(u.state.CurrentFrame+u.frameTransitionDirection, len(u.frames))
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
