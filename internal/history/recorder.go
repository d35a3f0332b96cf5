package history

import (
	"time"

	"git.lost.host/meutraa/frameui/internal/ui"
)

type Recorder interface {
	Init() error
	Deinit()

	// Flush stores the visit in progress so Load includes it
	Flush()

	// Overlay watches the current frame and stores each finished visit
	Overlay(d ui.Display, s ui.State) bool

	// Load returns every stored visit, oldest first
	Load() ([]Visit, error)
}

// Visit is one stretch of time a frame was settled on screen
type Visit struct {
	Frame   int
	Started time.Time
	Ended   time.Time
}

type Dwell struct {
	Frame  int
	Visits int
	Total  time.Duration
}

// Summarize totals visits per frame, ordered by frame
func Summarize(visits []Visit) []Dwell {
	frameCount := 0
	for _, v := range visits {
		if v.Frame >= frameCount {
			frameCount = v.Frame + 1
		}
	}
	dwells := make([]Dwell, frameCount)
	for i := range dwells {
		dwells[i].Frame = i
	}
	for _, v := range visits {
		dwells[v.Frame].Visits++
		dwells[v.Frame].Total += v.Ended.Sub(v.Started)
	}
	return dwells
}
