package slides

import "git.lost.host/meutraa/frameui/internal/ui"

type Slide struct {
	Title string
	Lines []string
}

// Builtin is shown when no slides file is given
var Builtin = []*Slide{
	{Title: "frameui", Lines: []string{"frame based ui", "for tiny displays"}},
	{Title: "Frames", Lines: []string{"each slide is a", "frame callback"}},
	{Title: "Transitions", Lines: []string{"frames slide in", "at a fixed fps"}},
	{Title: "Keys", Lines: []string{"<- -> navigate", "a auto, q quit"}},
}

// Frames rasterises every slide once and returns a frame callback for each.
// The callbacks draw at the offset they are given and never ask for a
// repaint.
func Frames(slides []*Slide, width, height int) []ui.Frame {
	frames := make([]ui.Frame, len(slides))
	for i, s := range slides {
		bits := Rasterize(s.text(), width, height)
		frames[i] = func(d ui.Display, state ui.State, x, y int) bool {
			d.DrawXBM(x, y, width, height, bits)
			return false
		}
	}
	return frames
}

func (s *Slide) text() []string {
	text := make([]string, 0, len(s.Lines)+1)
	text = append(text, s.Title)
	return append(text, s.Lines...)
}
