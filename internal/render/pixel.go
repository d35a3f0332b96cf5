package render

import (
	"image/color"

	"git.lost.host/meutraa/frameui/internal/theme"
	"git.lost.host/meutraa/frameui/internal/ui"
	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
)

// PixelRenderer drives any TinyGo display driver pixel by pixel.
type PixelRenderer struct {
	display       drivers.Displayer
	width, height int
	canvas        *canvas
	on, off       color.RGBA
}

func NewPixelRenderer(d drivers.Displayer, th theme.Theme) *PixelRenderer {
	w, h := d.Size()
	return &PixelRenderer{
		display: d,
		width:   int(w),
		height:  int(h),
		canvas:  newCanvas(int(w), int(h)),
		on:      th.PixelColor(),
		off:     color.RGBA{0, 0, 0, 255},
	}
}

func (r *PixelRenderer) Init(o ui.Orientation) error {
	r.canvas.orient(o)
	return nil
}

func (r *PixelRenderer) Deinit() error {
	return nil
}

func (r *PixelRenderer) Clear() error {
	r.canvas.clear()
	return nil
}

func (r *PixelRenderer) DrawXBM(x, y, width, height int, bits []byte) {
	r.canvas.drawXBM(x, y, width, height, bits)
}

func (r *PixelRenderer) Width() int {
	return r.canvas.width
}

func (r *PixelRenderer) Height() int {
	return r.canvas.height
}

func (r *PixelRenderer) Flush() error {
	for py := 0; py < r.height; py++ {
		for px := 0; px < r.width; px++ {
			c := r.off
			if r.canvas.physical(px, py, r.width, r.height) {
				c = r.on
			}
			r.display.SetPixel(int16(px), int16(py), c)
		}
	}
	return errors.Wrap(r.display.Display(), "unable to update display")
}
