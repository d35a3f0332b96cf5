package ui

const (
	symbolSize     = 8
	indicatorPitch = 12
)

// draw is one frame callback invocation at a pixel offset
type draw struct {
	frame int
	x, y  int
}

// frameDraws returns one draw while fixed and two while transitioning.
// The returned slice aliases u.draws.
func (u *UI) frameDraws() []draw {
	if u.state.FrameState != InTransition {
		u.draws[0] = draw{frame: u.state.CurrentFrame}
		return u.draws[:1]
	}

	progress := 1.0
	if u.ticksPerTransition > 0 {
		progress = float64(u.state.TicksSinceLastStateSwitch) / float64(u.ticksPerTransition)
	}
	x, y, x1, y1 := slideOffsets(u.frameAnimationDirection, u.display.Width(), u.display.Height(), progress)

	// Going backwards plays the slide in reverse
	if u.frameTransitionDirection < 0 {
		x, y, x1, y1 = -x, -y, -x1, -y1
	}

	u.draws[0] = draw{frame: u.state.CurrentFrame, x: x, y: y}
	u.draws[1] = draw{frame: u.nextFrameNumber(), x: x1, y: y1}
	return u.draws[:2]
}

func (u *UI) drawFrame() {
	for _, d := range u.frameDraws() {
		if u.frames[d.frame](u.display, u.state, d.x, d.y) {
			u.dirty = true
		}
	}
}

// slideOffsets gives the offset of the outgoing frame (x, y) and of the
// incoming frame (x1, y1) at the given transition progress.
func slideOffsets(a AnimationDirection, width, height int, progress float64) (x, y, x1, y1 int) {
	switch a {
	case SlideLeft:
		x = int(-float64(width) * progress)
		x1 = x + width
	case SlideRight:
		x = int(float64(width) * progress)
		x1 = x - width
	case SlideUp:
		y = int(-float64(height) * progress)
		y1 = y + height
	case SlideDown:
		y = int(float64(height) * progress)
		y1 = y - height
	}
	return x, y, x1, y1
}

func (u *UI) drawIndicator() {
	n := len(u.frames)
	current := u.state.CurrentFrame
	if u.indicatorDirection == RightLeft {
		current = n - 1 - current
	}

	width, height := u.display.Width(), u.display.Height()
	for i := 0; i < n; i++ {
		symbol := u.inactiveSymbol
		if i == current {
			symbol = u.activeSymbol
		}
		if nil == symbol {
			continue
		}
		x, y := indicatorAnchor(u.indicatorPosition, width, height, n, i)
		u.display.DrawXBM(x, y, symbolSize, symbolSize, symbol)
	}
}

// indicatorAnchor is the top left corner of indicator slot i out of n
func indicatorAnchor(p IndicatorPosition, width, height, n, i int) (x, y int) {
	switch p {
	case Top:
		x = width/2 - indicatorPitch*n/2 + indicatorPitch*i
	case Bottom:
		x = width/2 - indicatorPitch*n/2 + indicatorPitch*i
		y = height - symbolSize
	case Right:
		x = width - symbolSize
		y = height/2 - indicatorPitch*n/2 + indicatorPitch*i
	case Left:
		y = height/2 - indicatorPitch*n/2 + indicatorPitch*i
	}
	return x, y
}

func (u *UI) drawOverlays() {
	for _, overlay := range u.overlays {
		if overlay(u.display, u.state) {
			u.dirty = true
		}
	}
}
