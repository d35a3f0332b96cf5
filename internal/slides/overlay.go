package slides

import (
	"git.lost.host/meutraa/frameui/internal/ui"
)

const (
	clockWidth  = 5*charWidth + 2*margin
	clockHeight = lineHeight + margin
)

// Clock draws the wall clock time in the top right corner. It only draws
// when the UI repaints for another reason.
type Clock struct {
	clock  ui.Clock
	minute int
	bits   []byte
}

func NewClock(clock ui.Clock) *Clock {
	if nil == clock {
		clock = ui.SystemClock{}
	}
	return &Clock{clock: clock, minute: -1}
}

func (c *Clock) Overlay(d ui.Display, s ui.State) bool {
	now := c.clock.Now()
	if minute := now.Hour()*60 + now.Minute(); minute != c.minute {
		c.minute = minute
		c.bits = Rasterize([]string{now.Format("15:04")}, clockWidth, clockHeight)
	}
	d.DrawXBM(d.Width()-clockWidth, 0, clockWidth, clockHeight, c.bits)
	return false
}

// Progress draws a one pixel bar along the top edge that fills up while a
// frame is shown. It keeps the UI repainting for as long as it is visible.
type Progress struct {
	ui  *ui.UI
	bar []byte
}

func NewProgress(u *ui.UI) *Progress {
	return &Progress{ui: u}
}

func (p *Progress) Overlay(d ui.Display, s ui.State) bool {
	if s.FrameState != ui.Fixed || !p.ui.AutoTransition() || p.ui.TicksPerFrame() == 0 {
		return false
	}
	width := d.Width() * s.TicksSinceLastStateSwitch / p.ui.TicksPerFrame()
	if width <= 0 {
		return true
	}
	if stride := (width + 7) / 8; len(p.bar) < stride {
		p.bar = make([]byte, (d.Width()+7)/8)
		for i := range p.bar {
			p.bar[i] = 0xff
		}
	}
	d.DrawXBM(0, 0, width, 1, p.bar)
	return true
}
