package config

import (
	"fmt"

	"git.lost.host/meutraa/frameui/internal/render"
	"git.lost.host/meutraa/frameui/internal/theme"
	"git.lost.host/meutraa/frameui/internal/ui"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("frameui", "Frame based UI for small displays")

	Backend            = app.Flag("backend", "Display backend").Default("ansi").Short('b').Enum(render.Backends...)
	FPS                = app.Flag("fps", "Target frames per second").Default("30").Short('f').Int()
	TimePerFrame       = app.Flag("time-per-frame", "How long each frame is shown").Default("5s").Short('t').Duration()
	TimePerTransition  = app.Flag("time-per-transition", "How long a transition takes").Default("500ms").Short('T').Duration()
	animation          = app.Flag("animation", "Direction frames slide in").Default("right").Short('a').Enum("left", "right", "up", "down")
	indicator          = app.Flag("indicator", "Indicator position").Default("bottom").Short('i').Enum("top", "bottom", "left", "right")
	indicatorDirection = app.Flag("indicator-direction", "Indicator numbering").Default("ltr").Enum("ltr", "rtl")
	Manual             = app.Flag("manual", "Only change frames on key presses").Short('m').Default("false").Bool()
	Backwards          = app.Flag("backwards", "Cycle through frames backwards").Default("false").Bool()
	Portrait           = app.Flag("portrait", "Portrait orientation").Default("false").Bool()
	Slides             = app.Flag("slides", "Slides file").Short('s').ExistingFile()
	History            = app.Flag("history", "Record frame visits to this sqlite database").Default("").String()
	Click              = app.Flag("click", "Click when the frame changes").Default("false").Bool()
	Progress           = app.Flag("progress", "Show how long until the next frame").Default("false").Bool()
	Clock              = app.Flag("clock", "Show the time").Default("false").Bool()
	Color              = app.Flag("color", "Pixel colour on terminals").Default("white").Enum(theme.Colors()...)
	Duration           = app.Flag("duration", "Quit after this long, 0 runs until q").Default("0s").Short('d').Duration()
	I2CBus             = app.Flag("i2c-bus", "I²C bus of the ssd1306, empty for the first one").Default("").String()
	Width              = app.Flag("width", "Display width in pixels, 0 for the whole terminal or device").Default("0").Int()
	Height             = app.Flag("height", "Display height in pixels, 0 for the whole terminal or device").Default("0").Int()

	AnimationDirection ui.AnimationDirection
	IndicatorPosition  ui.IndicatorPosition
	IndicatorDirection ui.IndicatorDirection
	Orientation        ui.Orientation
)

var (
	animations = map[string]ui.AnimationDirection{
		"left":  ui.SlideLeft,
		"right": ui.SlideRight,
		"up":    ui.SlideUp,
		"down":  ui.SlideDown,
	}
	indicatorPositions = map[string]ui.IndicatorPosition{
		"top":    ui.Top,
		"bottom": ui.Bottom,
		"left":   ui.Left,
		"right":  ui.Right,
	}
	indicatorDirections = map[string]ui.IndicatorDirection{
		"ltr": ui.LeftRight,
		"rtl": ui.RightLeft,
	}
)

func init() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
}

// Parse reads the command line arguments, without the program name
func Parse(args []string) error {
	if _, err := app.Parse(args); nil != err {
		return err
	}
	if *FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", *FPS)
	}
	if *Width < 0 || *Height < 0 {
		return fmt.Errorf("display size %dx%d is negative", *Width, *Height)
	}

	AnimationDirection = animations[*animation]
	IndicatorPosition = indicatorPositions[*indicator]
	IndicatorDirection = indicatorDirections[*indicatorDirection]
	Orientation = ui.Landscape
	if *Portrait {
		Orientation = ui.Portrait
	}
	return nil
}
