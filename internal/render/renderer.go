package render

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/frameui/internal/theme"
	"git.lost.host/meutraa/frameui/internal/ui"
)

// Renderer is a display backend the program can drive the engine with
type Renderer interface {
	ui.Display
	ui.Flusher
	Deinit() error
}

// Backends lists the names accepted by Open
var Backends = []string{"ansi", "tcell", "ssd1306"}

// Options configures the backend chosen by Open. A zero Width or Height
// means the size of the terminal or device.
type Options struct {
	Width, Height int
	Theme         theme.Theme
	I2CBus        string
}

func Open(backend string, opts Options) (Renderer, error) {
	if nil == opts.Theme {
		opts.Theme = &theme.DefaultTheme{}
	}
	switch backend {
	case "ansi":
		return NewDefaultRenderer(os.Stdout, opts.Width, opts.Height, opts.Theme), nil
	case "tcell":
		return NewTcellRenderer(nil, opts.Width, opts.Height, opts.Theme), nil
	case "ssd1306":
		return OpenSSD1306(opts.I2CBus, opts.Width, opts.Height)
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}
