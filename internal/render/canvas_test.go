package render

import (
	"testing"

	"git.lost.host/meutraa/frameui/internal/ui"
)

// 8x2: top row fully lit, bottom row only the first and last pixel
var bar = []byte{0xff, 0x81}

func TestDrawXBM(t *testing.T) {
	c := newCanvas(10, 4)
	c.drawXBM(1, 1, 8, 2, bar)
	for x := 0; x < 10; x++ {
		top := x >= 1 && x <= 8
		if c.at(x, 1) != top {
			t.Errorf("(%v, 1) = %v", x, c.at(x, 1))
		}
		bottom := x == 1 || x == 8
		if c.at(x, 2) != bottom {
			t.Errorf("(%v, 2) = %v", x, c.at(x, 2))
		}
		if c.at(x, 0) || c.at(x, 3) {
			t.Errorf("column %v drawn outside the bitmap", x)
		}
	}
}

func TestDrawXBMPadsRows(t *testing.T) {
	// 10 pixels wide needs two bytes per row
	c := newCanvas(10, 2)
	c.drawXBM(0, 0, 10, 2, []byte{0x00, 0x02, 0x01, 0x00})
	if !c.at(9, 0) || !c.at(0, 1) {
		t.Error("padded rows decoded wrong")
	}
	if c.at(8, 0) || c.at(1, 1) {
		t.Error("extra pixels set")
	}
}

func TestDrawXBMClips(t *testing.T) {
	c := newCanvas(4, 4)
	c.drawXBM(-6, -1, 8, 2, bar)
	c.drawXBM(2, 3, 8, 2, bar)
	c.drawXBM(100, 100, 8, 2, bar)
	// Only the last pixel of the bottom row lands on the canvas
	if c.at(0, 0) || !c.at(1, 0) || c.at(2, 0) {
		t.Error("left clip wrong")
	}
	if !c.at(2, 3) || !c.at(3, 3) {
		t.Error("bottom clip wrong")
	}
}

func TestDrawXBMShortBitmap(t *testing.T) {
	c := newCanvas(8, 8)
	c.drawXBM(0, 0, 8, 8, []byte{0xff})
	if !c.at(7, 0) || c.at(0, 1) {
		t.Error("short bitmap should draw what it has")
	}
}

func TestOrient(t *testing.T) {
	c := newCanvas(128, 64)
	c.orient(ui.Portrait)
	if c.width != 64 || c.height != 128 {
		t.Errorf("portrait %vx%v", c.width, c.height)
	}
	c.orient(ui.Landscape)
	if c.width != 128 || c.height != 64 {
		t.Errorf("landscape %vx%v", c.width, c.height)
	}
}

func TestPhysicalRotation(t *testing.T) {
	c := newCanvas(4, 2)
	c.orient(ui.Portrait)
	// Top left of the portrait canvas
	c.pixels[0] = true
	if !c.physical(0, 1, 4, 2) {
		t.Error("top left should land on the bottom left of the device")
	}
	for px := 0; px < 4; px++ {
		for py := 0; py < 2; py++ {
			if (px != 0 || py != 1) && c.physical(px, py, 4, 2) {
				t.Errorf("(%v, %v) lit", px, py)
			}
		}
	}
}

var halfBlockTests = map[[2]bool]rune{
	{false, false}: ' ',
	{true, false}:  '▀',
	{false, true}:  '▄',
	{true, true}:   '█',
}

func TestHalfBlock(t *testing.T) {
	for in, expected := range halfBlockTests {
		if r := halfBlock(in[0], in[1]); r != expected {
			t.Errorf("%v: %q", in, r)
		}
	}
}
