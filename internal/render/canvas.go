package render

import "git.lost.host/meutraa/frameui/internal/ui"

// canvas is a 1-bit pixel buffer. Anything drawn outside of it is clipped,
// which is what sliding frames rely on.
type canvas struct {
	width, height int
	pixels        []bool
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// orient swaps the canvas dimensions when they do not match o
func (c *canvas) orient(o ui.Orientation) {
	if (o == ui.Portrait && c.width > c.height) || (o == ui.Landscape && c.height > c.width) {
		c.width, c.height = c.height, c.width
	}
}

func (c *canvas) clear() {
	for i := range c.pixels {
		c.pixels[i] = false
	}
}

func (c *canvas) at(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	return c.pixels[y*c.width+x]
}

// drawXBM sets every pixel whose bit is set. Unset bits are transparent.
func (c *canvas) drawXBM(x, y, width, height int, bits []byte) {
	stride := (width + 7) / 8
	for row := 0; row < height; row++ {
		py := y + row
		if py < 0 || py >= c.height {
			continue
		}
		for col := 0; col < width; col++ {
			px := x + col
			if px < 0 || px >= c.width {
				continue
			}
			i := row*stride + col/8
			if i >= len(bits) {
				return
			}
			if bits[i]>>(uint(col)%8)&1 == 1 {
				c.pixels[py*c.width+px] = true
			}
		}
	}
}

// halfBlock packs two vertically stacked pixels into one terminal cell
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// physical reads the canvas as a device of physWidth x physHeight pixels.
// A canvas oriented the other way is turned by a quarter turn.
func (c *canvas) physical(px, py, physWidth, physHeight int) bool {
	if c.width == physWidth {
		return c.at(px, py)
	}
	return c.at(physHeight-1-py, px)
}
