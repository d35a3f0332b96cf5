package main

import (
	"log"
	"time"

	"git.lost.host/meutraa/frameui/internal/config"
	"git.lost.host/meutraa/frameui/internal/history"
	"git.lost.host/meutraa/frameui/internal/input"
	"git.lost.host/meutraa/frameui/internal/parser"
	"git.lost.host/meutraa/frameui/internal/render"
	"git.lost.host/meutraa/frameui/internal/slides"
	"git.lost.host/meutraa/frameui/internal/sound"
	"git.lost.host/meutraa/frameui/internal/theme"
	"git.lost.host/meutraa/frameui/internal/ui"
	"github.com/pkg/errors"
)

type Program struct {
	Parser   parser.Parser
	Theme    theme.Theme
	Renderer render.Renderer
	Recorder history.Recorder

	ui       *ui.UI
	commands chan input.Command
	keyboard bool
	clock    ui.Clock

	// Keyboard reading for the non tcell backends, nil uses input.Listen
	// and input.Close
	listen    func(chan<- input.Command) error
	closeKeys func()
}

// Init opens the configured backend unless Renderer is already set. On
// failure everything opened so far is closed again.
func (p *Program) Init() (err error) {
	defer func() {
		if nil != err {
			p.Deinit()
		}
	}()

	p.Parser = &parser.DefaultParser{}
	p.Theme = &theme.DefaultTheme{Color: *config.Color}
	p.commands = make(chan input.Command, 16)
	if nil == p.listen {
		p.listen, p.closeKeys = input.Listen, input.Close
	}

	deck := slides.Builtin
	if *config.Slides != "" {
		deck, err = p.Parser.Parse(*config.Slides)
		if nil != err {
			return err
		}
	}

	if nil == p.Renderer {
		p.Renderer, err = render.Open(*config.Backend, render.Options{
			Width:  *config.Width,
			Height: *config.Height,
			Theme:  p.Theme,
			I2CBus: *config.I2CBus,
		})
		if nil != err {
			return err
		}
	}

	// The keyboard has to be in raw mode before the renderer saves the
	// terminal state, tcell reads keys itself
	if *config.Backend != "tcell" {
		if err = p.listen(p.commands); nil != err {
			return err
		}
		p.keyboard = true
	}

	if err = p.configure(deck); nil != err {
		return err
	}

	if tr, ok := p.Renderer.(*render.TcellRenderer); ok {
		input.ListenScreen(tr.Screen(), p.commands)
	}
	return nil
}

// configure builds the engine on top of p.Renderer from the command line
func (p *Program) configure(deck []*slides.Slide) error {
	p.ui = ui.New(p.Renderer, p.clock)
	if err := p.ui.Init(config.Orientation); nil != err {
		return errors.Wrap(err, "unable to initialise display")
	}

	if err := p.ui.SetTargetFPS(*config.FPS); nil != err {
		return err
	}
	p.ui.SetTimePerFrame(*config.TimePerFrame)
	p.ui.SetTimePerTransition(*config.TimePerTransition)
	if *config.Manual {
		p.ui.DisableAutoTransition()
	}
	if *config.Backwards {
		p.ui.SetAutoTransitionBackwards()
	}
	p.ui.SetFrameAnimation(config.AnimationDirection)
	p.ui.SetIndicatorPosition(config.IndicatorPosition)
	p.ui.SetIndicatorDirection(config.IndicatorDirection)
	p.ui.SetActiveSymbol(p.Theme.ActiveSymbol())
	p.ui.SetInactiveSymbol(p.Theme.InactiveSymbol())

	if err := p.ui.SetFrames(slides.Frames(deck, p.Renderer.Width(), p.Renderer.Height())); nil != err {
		return err
	}

	overlays := []ui.Overlay{}
	if *config.Clock {
		overlays = append(overlays, slides.NewClock(p.clock).Overlay)
	}
	if *config.Progress {
		overlays = append(overlays, slides.NewProgress(p.ui).Overlay)
	}
	if *config.History != "" {
		recorder := &history.DefaultRecorder{Path: *config.History, Clock: p.clock}
		if err := recorder.Init(); nil != err {
			return err
		}
		p.Recorder = recorder
		overlays = append(overlays, recorder.Overlay)
	}
	if *config.Click {
		clicker, err := sound.NewClicker()
		if nil != err {
			// Non-fatal, frames work without sound
			log.Println(err)
		} else {
			overlays = append(overlays, clicker.Overlay)
		}
	}
	p.ui.SetOverlays(overlays)
	return nil
}

// Run drives the engine until quit or the configured duration has passed
func (p *Program) Run() error {
	var deadline time.Time
	if *config.Duration > 0 {
		deadline = time.Now().Add(*config.Duration)
	}

	for {
		budget, err := p.ui.Update()
		if nil != err {
			return err
		}
		if p.drain() {
			return nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil
		}
		if budget > 0 {
			time.Sleep(budget)
		}
	}
}

// drain applies every pending command and reports whether to quit
func (p *Program) drain() bool {
	for {
		select {
		case c := <-p.commands:
			if p.apply(c) {
				return true
			}
		default:
			return false
		}
	}
}

func (p *Program) apply(c input.Command) bool {
	switch c {
	case input.Next:
		p.ui.NextFrame()
	case input.Previous:
		p.ui.PreviousFrame()
	case input.ToggleAuto:
		if p.ui.AutoTransition() {
			p.ui.DisableAutoTransition()
		} else {
			p.ui.EnableAutoTransition()
		}
	case input.Quit:
		return true
	}
	return false
}

func (p *Program) Deinit() {
	if nil != p.Renderer {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println(err)
		}
	}
	if p.keyboard {
		p.closeKeys()
		p.keyboard = false
	}
	if nil != p.Recorder {
		p.Recorder.Flush()
		p.report()
		p.Recorder.Deinit()
		p.Recorder = nil
	}
}

func (p *Program) report() {
	visits, err := p.Recorder.Load()
	if nil != err {
		log.Println(err)
		return
	}
	for _, d := range history.Summarize(visits) {
		log.Printf("frame %2d: %3d visits, %v", d.Frame, d.Visits, d.Total.Round(time.Millisecond))
	}
}
