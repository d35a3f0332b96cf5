package sound

import (
	"math"
	"time"

	"git.lost.host/meutraa/frameui/internal/ui"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate     = beep.SampleRate(44100)
	clickLength    = 15 * time.Millisecond
	clickFrequency = 2000.0
)

// Clicker plays a short click whenever the frame on screen changes.
type Clicker struct {
	click   *beep.Buffer
	play    func(beep.Streamer)
	current int
	started bool
}

// NewClicker opens the default audio device
func NewClicker() (*Clicker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); nil != err {
		return nil, errors.Wrap(err, "unable to initialise speaker")
	}
	return newClicker(func(s beep.Streamer) {
		speaker.Play(s)
	}), nil
}

func newClicker(play func(beep.Streamer)) *Clicker {
	click := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	click.Append(beep.Take(sampleRate.N(clickLength), tone(sampleRate, clickFrequency, clickLength)))
	return &Clicker{click: click, play: play}
}

// tone is a sine that fades out linearly over length
func tone(sr beep.SampleRate, frequency float64, length time.Duration) beep.Streamer {
	total := float64(sr.N(length))
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			envelope := 1 - float64(position)/total
			if envelope < 0 {
				envelope = 0
			}
			v := envelope * math.Sin(2*math.Pi*frequency*float64(position)/float64(sr))
			samples[i][0], samples[i][1] = v, v
			position++
		}
		return len(samples), true
	})
}

func (c *Clicker) Overlay(d ui.Display, s ui.State) bool {
	if !c.started {
		c.current, c.started = s.CurrentFrame, true
		return false
	}
	if s.CurrentFrame != c.current {
		c.current = s.CurrentFrame
		c.play(c.click.Streamer(0, c.click.Len()))
	}
	return false
}
