package render

import (
	"git.lost.host/meutraa/frameui/internal/theme"
	"git.lost.host/meutraa/frameui/internal/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// TcellRenderer draws onto a tcell screen, two pixels per character cell.
type TcellRenderer struct {
	screen tcell.Screen
	canvas *canvas
	style  tcell.Style
}

// NewTcellRenderer wraps an initialised screen. A nil screen is created and
// initialised on Init.
func NewTcellRenderer(screen tcell.Screen, width, height int, th theme.Theme) *TcellRenderer {
	c := th.PixelColor()
	return &TcellRenderer{
		screen: screen,
		canvas: newCanvas(width, height),
		style: tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
			Background(tcell.ColorBlack),
	}
}

func (r *TcellRenderer) Init(o ui.Orientation) error {
	if nil == r.screen {
		screen, err := tcell.NewScreen()
		if nil != err {
			return errors.Wrap(err, "unable to create screen")
		}
		if err := screen.Init(); nil != err {
			return errors.Wrap(err, "unable to initialise screen")
		}
		r.screen = screen
	}
	if r.canvas.width == 0 || r.canvas.height == 0 {
		columns, rows := r.screen.Size()
		r.canvas = newCanvas(columns, 2*rows)
	}
	r.canvas.orient(o)
	r.screen.HideCursor()
	r.screen.Clear()
	return nil
}

func (r *TcellRenderer) Deinit() error {
	if nil != r.screen {
		r.screen.Fini()
	}
	return nil
}

// Screen is nil until Init
func (r *TcellRenderer) Screen() tcell.Screen {
	return r.screen
}

func (r *TcellRenderer) Clear() error {
	r.canvas.clear()
	return nil
}

func (r *TcellRenderer) DrawXBM(x, y, width, height int, bits []byte) {
	r.canvas.drawXBM(x, y, width, height, bits)
}

func (r *TcellRenderer) Width() int {
	return r.canvas.width
}

func (r *TcellRenderer) Height() int {
	return r.canvas.height
}

func (r *TcellRenderer) Flush() error {
	for row := 0; row*2 < r.canvas.height; row++ {
		for col := 0; col < r.canvas.width; col++ {
			ch := halfBlock(r.canvas.at(col, row*2), r.canvas.at(col, row*2+1))
			r.screen.SetContent(col, row, ch, nil, r.style)
		}
	}
	r.screen.Show()
	return nil
}
