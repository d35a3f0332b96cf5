package render

import (
	"image"
	"io"

	"git.lost.host/meutraa/frameui/internal/ui"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// FramebufferRenderer draws into a 1-bit image and pushes it to a periph.io
// display, such as an SSD1306 OLED, on Flush.
type FramebufferRenderer struct {
	drawer display.Drawer
	bus    io.Closer
	bounds image.Rectangle
	canvas *canvas
	img    *image1bit.VerticalLSB
}

func NewFramebufferRenderer(drawer display.Drawer) *FramebufferRenderer {
	bounds := drawer.Bounds()
	return &FramebufferRenderer{
		drawer: drawer,
		bounds: bounds,
		canvas: newCanvas(bounds.Dx(), bounds.Dy()),
		img:    image1bit.NewVerticalLSB(bounds),
	}
}

// OpenSSD1306 opens an SSD1306 on the named I²C bus. An empty name picks the
// first bus found. A zero width or height keeps the driver default.
func OpenSSD1306(bus string, width, height int) (*FramebufferRenderer, error) {
	if _, err := host.Init(); nil != err {
		return nil, errors.Wrap(err, "unable to initialise host drivers")
	}
	b, err := i2creg.Open(bus)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open i2c bus %q", bus)
	}

	opts := ssd1306.DefaultOpts
	if width > 0 {
		opts.W = width
	}
	if height > 0 {
		opts.H = height
	}
	dev, err := ssd1306.NewI2C(b, &opts)
	if nil != err {
		b.Close()
		return nil, errors.Wrap(err, "unable to open ssd1306")
	}

	r := NewFramebufferRenderer(dev)
	r.bus = b
	return r, nil
}

func (r *FramebufferRenderer) Init(o ui.Orientation) error {
	r.canvas.orient(o)
	return nil
}

func (r *FramebufferRenderer) Deinit() error {
	err := r.drawer.Halt()
	if nil != r.bus {
		if cerr := r.bus.Close(); nil == err {
			err = cerr
		}
	}
	return errors.Wrap(err, "unable to halt display")
}

func (r *FramebufferRenderer) Clear() error {
	r.canvas.clear()
	return nil
}

func (r *FramebufferRenderer) DrawXBM(x, y, width, height int, bits []byte) {
	r.canvas.drawXBM(x, y, width, height, bits)
}

func (r *FramebufferRenderer) Width() int {
	return r.canvas.width
}

func (r *FramebufferRenderer) Height() int {
	return r.canvas.height
}

func (r *FramebufferRenderer) Flush() error {
	w, h := r.bounds.Dx(), r.bounds.Dy()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			on := r.canvas.physical(px, py, w, h)
			r.img.SetBit(r.bounds.Min.X+px, r.bounds.Min.Y+py, image1bit.Bit(on))
		}
	}
	if err := r.drawer.Draw(r.bounds, r.img, r.bounds.Min); nil != err {
		return errors.Wrap(err, "unable to draw to display")
	}
	return nil
}
