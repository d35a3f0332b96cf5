package render

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"strconv"

	"git.lost.host/meutraa/frameui/internal/theme"
	"git.lost.host/meutraa/frameui/internal/ui"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// DefaultRenderer draws onto an ANSI terminal, two pixels per character cell.
type DefaultRenderer struct {
	out          *os.File
	w            io.Writer
	buffer       bytes.Buffer
	restoreState *term.State
	canvas       *canvas
	color        color.RGBA
}

func NewDefaultRenderer(out *os.File, width, height int, th theme.Theme) *DefaultRenderer {
	return &DefaultRenderer{
		out:    out,
		w:      out,
		canvas: newCanvas(width, height),
		color:  th.PixelColor(),
	}
}

func (r *DefaultRenderer) Init(o ui.Orientation) error {
	fd := int(r.out.Fd())
	if r.canvas.width == 0 || r.canvas.height == 0 {
		columns, rows, err := term.GetSize(fd)
		if nil != err {
			return errors.Wrap(err, "unable to get terminal size")
		}
		r.canvas = newCanvas(columns, 2*rows)
	}
	r.canvas.orient(o)

	state, err := term.MakeRaw(fd)
	if nil != err {
		return errors.Wrap(err, "unable to make terminal raw")
	}
	r.restoreState = state

	r.buffer.WriteString("\033[?1049h") // Enable alternate buffer
	r.buffer.WriteString("\033[?25l")   // Make the cursor invisible
	r.buffer.WriteString("\033[J")      // Clear the screen
	return r.Flush()
}

func (r *DefaultRenderer) Deinit() error {
	r.buffer.WriteString("\033[0m")
	r.buffer.WriteString("\033[?1049l") // Disable alternate buffer
	r.buffer.WriteString("\033[?25h")   // Make the cursor visible
	if err := r.flush(); nil != err {
		return err
	}
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(r.out.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Clear() error {
	r.canvas.clear()
	return nil
}

func (r *DefaultRenderer) DrawXBM(x, y, width, height int, bits []byte) {
	r.canvas.drawXBM(x, y, width, height, bits)
}

func (r *DefaultRenderer) Width() int {
	return r.canvas.width
}

func (r *DefaultRenderer) Height() int {
	return r.canvas.height
}

// Flush writes the whole canvas, one terminal row per two pixel rows
func (r *DefaultRenderer) Flush() error {
	r.setColor(r.color)
	for row := 0; row*2 < r.canvas.height; row++ {
		r.moveTo(row+1, 1)
		for col := 0; col < r.canvas.width; col++ {
			r.buffer.WriteRune(halfBlock(r.canvas.at(col, row*2), r.canvas.at(col, row*2+1)))
		}
	}
	r.buffer.WriteString("\033[0m")
	return r.flush()
}

func (r *DefaultRenderer) moveTo(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) setColor(c color.RGBA) {
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
}

func (r *DefaultRenderer) flush() error {
	_, err := r.w.Write(r.buffer.Bytes())
	r.buffer.Reset()
	return errors.Wrap(err, "unable to write to terminal")
}
