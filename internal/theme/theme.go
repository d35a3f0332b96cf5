package theme

import "image/color"

type Theme interface {
	ActiveSymbol() []byte
	InactiveSymbol() []byte
	PixelColor() color.RGBA
}
