package slides

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	margin     = 2
	lineHeight = 13
	ascent     = 11
	charWidth  = 7
)

// Rasterize draws lines of text into a width x height XBM bitmap. The first
// line is centred, the others are left aligned. Text that does not fit is
// cut off.
func Rasterize(lines []string, width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		x := margin
		if i == 0 {
			x = (width - d.MeasureString(line).Ceil()) / 2
			if x < 0 {
				x = 0
			}
		}
		d.Dot = fixed.P(x, margin+ascent+i*lineHeight)
		d.DrawString(line)
	}
	return pack(img)
}

// pack turns a greyscale image into XBM, lighter than mid grey is on
func pack(img *image.Gray) []byte {
	b := img.Bounds()
	stride := (b.Dx() + 7) / 8
	bits := make([]byte, stride*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if img.GrayAt(b.Min.X+x, b.Min.Y+y).Y >= 0x80 {
				bits[y*stride+x/8] |= 1 << (uint(x) % 8)
			}
		}
	}
	return bits
}
