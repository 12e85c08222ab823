package vdg_test

import (
	"testing"

	"github.com/mjsallard/dragon6809/hardware/bus"
	"github.com/mjsallard/dragon6809/hardware/vdg"
	"github.com/mjsallard/dragon6809/test"
)

type stubDisplay struct {
	palette     [16][3]uint8
	paletteSet  bool
	width       int
	height      int
	resolutions int
	fb          []uint8
}

func (d *stubDisplay) SetPalette(palette [16][3]uint8) {
	d.palette = palette
	d.paletteSet = true
}

func (d *stubDisplay) FBInit(width, height int) ([]uint8, error) {
	d.width = width
	d.height = height
	d.fb = make([]uint8, width*height)
	return d.fb, nil
}

func (d *stubDisplay) FBResolution(width, height int) ([]uint8, error) {
	d.resolutions++
	return d.FBInit(width, height)
}

func newTestVDG(t *testing.T) (*vdg.VDG, *bus.Bus, *stubDisplay) {
	t.Helper()
	mem := bus.NewBus()
	display := &stubDisplay{}
	v, err := vdg.NewVDG(mem, display)
	test.ExpectSuccess(t, err)
	return v, mem, display
}

func TestInitPublishesPalette(t *testing.T) {
	_, _, display := newTestVDG(t)

	test.ExpectSuccess(t, display.paletteSet)
	test.Equate(t, display.width, 256)
	test.Equate(t, display.height, 192)

	// spot checks: black, green, white, in BGR order
	test.Equate(t, display.palette[0], [3]uint8{0x00, 0x00, 0x00})
	test.Equate(t, display.palette[10], [3]uint8{0x00, 0xff, 0x00})
	test.Equate(t, display.palette[15], [3]uint8{0xff, 0xff, 0xff})
}

func TestModeResolution(t *testing.T) {
	v, _, _ := newTestVDG(t)

	type tc struct {
		sam  int
		pia  uint8
		mode vdg.VideoMode
	}

	for _, c := range []tc{
		{7, 0x00, vdg.DMA},
		{7, 0x1f, vdg.DMA}, // DMA wins over everything
		{0, 0x00, vdg.AlphaInternal},
		{0, 0x01, vdg.AlphaInternal}, // CSS doesn't change the mode
		{0, 0x02, vdg.AlphaExternal},
		{2, 0x00, vdg.SemiGraphics8},
		{4, 0x00, vdg.SemiGraphics12},
		{1, 0x10, vdg.Graphics1C},
		{1, 0x12, vdg.Graphics1R},
		{2, 0x14, vdg.Graphics2C},
		{3, 0x16, vdg.Graphics2R},
		{4, 0x18, vdg.Graphics3C},
		{5, 0x1a, vdg.Graphics3R},
		{6, 0x1c, vdg.Graphics6C},
		{6, 0x1e, vdg.Graphics6R},
		{3, 0x00, vdg.Undefined},
	} {
		v.SetModeSAM(c.sam)
		v.SetModePIA(c.pia)
		test.Equate(t, v.Mode(), c.mode)
	}
}

func TestRenderAlphaInverseVideo(t *testing.T) {
	v, mem, display := newTestVDG(t)

	// an inverse-video space fills its whole cell with the foreground
	// colour
	mem.Poke(0x0400, 0x60)

	v.Render()

	// light green (CSS=0) over the top-left 8x12 cell
	for r := 0; r < 12; r++ {
		for b := 0; b < 8; b++ {
			test.Equate(t, display.fb[r*256+b], uint8(10))
		}
	}

	// the neighbouring cell holds character zero ('@') on black: its
	// corner pixel stays background
	test.Equate(t, display.fb[8], uint8(0))
}

func TestRenderSemiGraphics4(t *testing.T) {
	v, mem, display := newTestVDG(t)

	// semigraphics cell, colour 2 (light blue), upper-left quadrant only
	mem.Poke(0x0400, 0x80|0x20|0x08)

	v.Render()

	test.Equate(t, display.fb[0], uint8(9))       // upper-left lit
	test.Equate(t, display.fb[4], uint8(0))       // upper-right dark
	test.Equate(t, display.fb[6*256], uint8(0))   // lower-left dark
	test.Equate(t, display.fb[6*256+4], uint8(0)) // lower-right dark
}

func TestRenderGraphics6R(t *testing.T) {
	v, mem, display := newTestVDG(t)

	v.SetModeSAM(6)
	v.SetModePIA(0x1e) // G6R, CSS=0
	v.SetVideoOffset(0x06)

	mem.Poke(0x0c00, 0xf0)

	v.Render()

	test.Equate(t, display.resolutions, 1)
	test.Equate(t, display.width, 256)
	test.Equate(t, display.height, 192)

	// first four pixels lit in green, next four black
	for i := 0; i < 4; i++ {
		test.Equate(t, display.fb[i], uint8(10))
	}
	for i := 4; i < 8; i++ {
		test.Equate(t, display.fb[i], uint8(0))
	}
}

func TestRenderGraphics1CPixelPairs(t *testing.T) {
	v, mem, display := newTestVDG(t)

	v.SetModeSAM(1)
	v.SetModePIA(0x10) // G1C, CSS=0
	v.SetVideoOffset(0x00)

	// four 2-bit pixels: colours 0,1,2,3
	mem.Poke(0x0000, 0x1b)

	v.Render()

	test.Equate(t, display.width, 64)
	test.Equate(t, display.height, 64)

	test.Equate(t, display.fb[0], uint8(10)) // light green
	test.Equate(t, display.fb[1], uint8(14)) // yellow
	test.Equate(t, display.fb[2], uint8(9))  // light blue
	test.Equate(t, display.fb[3], uint8(12)) // light red
}

func TestRenderGraphicsCSSPalette(t *testing.T) {
	v, mem, display := newTestVDG(t)

	v.SetModeSAM(1)
	v.SetModePIA(0x11) // G1C, CSS=1
	v.SetVideoOffset(0x00)

	mem.Poke(0x0000, 0x00) // colour 0 in the second palette half

	v.Render()
	test.Equate(t, display.fb[0], uint8(15)) // buff/white
}

func TestModeChangeRequestsResolution(t *testing.T) {
	v, _, display := newTestVDG(t)

	v.SetModeSAM(1)
	v.SetModePIA(0x10)
	v.Render()
	test.Equate(t, display.resolutions, 1)

	// same mode again: no new request
	v.Render()
	test.Equate(t, display.resolutions, 1)

	// back to alphanumeric
	v.SetModeSAM(0)
	v.SetModePIA(0x00)
	v.Render()
	test.Equate(t, display.resolutions, 2)
}

func TestVideoOffsetMovesBase(t *testing.T) {
	v, mem, display := newTestVDG(t)

	// offset 4 puts the text screen at 0x0800
	v.SetVideoOffset(0x04)
	mem.Poke(0x0800, 0x60) // inverse space

	v.Render()
	test.Equate(t, display.fb[0], uint8(10))
}
