package theme

import (
	"image/color"
	"sort"
)

// DefaultTheme draws the indicator as dots and lit pixels in one of a few
// monochrome display colours.
type DefaultTheme struct {
	Color string
}

func (t *DefaultTheme) ActiveSymbol() []byte {
	return activeSym[:]
}

func (t *DefaultTheme) InactiveSymbol() []byte {
	return inactiveSym[:]
}

func (t *DefaultTheme) PixelColor() color.RGBA {
	return getPixelColor(t.Color)
}

// Colors lists the accepted colour names
func Colors() []string {
	names := make([]string, 0, len(pixelColors))
	for name := range pixelColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	// 8x8 XBM
	activeSym   = [...]byte{0x00, 0x18, 0x3c, 0x7e, 0x7e, 0x3c, 0x18, 0x00}
	inactiveSym = [...]byte{0x00, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00, 0x00}

	pixelColors = map[string]color.RGBA{
		"white": {255, 255, 255, 255},
		"amber": {255, 176, 0, 255},
		"green": {51, 255, 102, 255},
		"blue":  {0, 170, 255, 255},
		"red":   {236, 30, 0, 255},
	}
)

func getPixelColor(name string) color.RGBA {
	col, ok := pixelColors[name]
	if !ok {
		return pixelColors["white"]
	}
	return col
}
