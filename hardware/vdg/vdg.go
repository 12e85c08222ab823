// Package vdg implements the MC6847 Video Display Generator: the
// resolution of the SAM and PIA mode bits into one of sixteen video
// modes, and the raster rendering of video RAM into the host's 8 bit per
// pixel indexed frame buffer.
package vdg

import (
	"fmt"

	"github.com/mjsallard/dragon6809/host"
	"github.com/mjsallard/dragon6809/logger"
)

// VideoMode is the resolved display mode, the union of the SAM's three
// mode bits and the PIA's five.
type VideoMode int

const (
	AlphaInternal  VideoMode = iota // 2 color  32x16    512B  default
	AlphaExternal                   // 4 color  32x16    512B
	SemiGraphics4                   // 8 color  64x32    512B
	SemiGraphics6                   // 8 color  64x48    512B
	SemiGraphics8                   // 8 color  64x64   2048B
	SemiGraphics12                  // 8 color  64x96   3072B
	SemiGraphics24                  // 8 color  64x192  6144B
	Graphics1C                      // 4 color  64x64   1024B
	Graphics1R                      // 2 color  128x64  1024B
	Graphics2C                      // 4 color  128x64  2048B
	Graphics2R                      // 2 color  128x96  1536B  PMODE0
	Graphics3C                      // 4 color  128x96  3072B  PMODE1
	Graphics3R                      // 2 color  128x192 3072B  PMODE2
	Graphics6C                      // 4 color  128x192 6144B  PMODE3
	Graphics6R                      // 2 color  256x192 6144B  PMODE4
	DMA                             // 2 color  256x192 6144B
	Undefined
)

func (m VideoMode) String() string {
	switch m {
	case AlphaInternal:
		return "ALPHA_INT"
	case AlphaExternal:
		return "ALPHA_EXT"
	case SemiGraphics4:
		return "SEMI_GR4"
	case SemiGraphics6:
		return "SEMI_GR6"
	case SemiGraphics8:
		return "SEMI_GR8"
	case SemiGraphics12:
		return "SEMI_GR12"
	case SemiGraphics24:
		return "SEMI_GR24"
	case Graphics1C:
		return "GRAPH_1C"
	case Graphics1R:
		return "GRAPH_1R"
	case Graphics2C:
		return "GRAPH_2C"
	case Graphics2R:
		return "GRAPH_2R"
	case Graphics3C:
		return "GRAPH_3C"
	case Graphics3R:
		return "GRAPH_3R"
	case Graphics6C:
		return "GRAPH_6C"
	case Graphics6R:
		return "GRAPH_6R"
	case DMA:
		return "DMA"
	default:
		return "UNDEFINED"
	}
}

// resolution lists frame buffer width, height, and the number of video RAM
// bytes scanned, per mode.
var resolution = [16]struct {
	width, height, mem int
}{
	AlphaInternal:  {screenWidthPix, screenHeightPix, 512},
	AlphaExternal:  {screenWidthPix, screenHeightPix, 512},
	SemiGraphics4:  {screenWidthPix, screenHeightPix, 512},
	SemiGraphics6:  {screenWidthPix, screenHeightPix, 512},
	SemiGraphics8:  {screenWidthPix, screenHeightPix, 2048},
	SemiGraphics12: {screenWidthPix, screenHeightPix, 3072},
	SemiGraphics24: {screenWidthPix, screenHeightPix, 6144},
	Graphics1C:     {64, 64, 1024},
	Graphics1R:     {128, 64, 1024},
	Graphics2C:     {128, 64, 2048},
	Graphics2R:     {128, 96, 1536},
	Graphics3C:     {128, 96, 3072},
	Graphics3R:     {256, 192, 3072},
	Graphics6C:     {256, 192, 6144},
	Graphics6R:     {256, 192, 6144},
	DMA:            {256, 192, 6144},
}

// Memory is the bus as the VDG sees it: read-only access to video RAM.
// Implemented by bus.Bus.
type Memory interface {
	Read(addr uint16) (uint8, error)
}

// VDG is the scan generator's state: the mode bits published by SAM and
// PIA1, the video RAM base, and the frame buffer being rendered into.
type VDG struct {
	mem     Memory
	display host.Display

	fb []uint8

	videoRAMOffset uint8 // 6 bits, video RAM base = offset << 9
	samVideoMode   int   // 0..7
	piaVideoMode   uint8 // 5 bits: G/^A, GM2, GM1, GM0, CSS

	currentMode VideoMode
	prevMode    VideoMode
}

// NewVDG creates the VDG, publishes the fixed palette and allocates the
// frame buffer at the default alphanumeric resolution.
func NewVDG(mem Memory, display host.Display) (*VDG, error) {
	v := &VDG{
		mem:     mem,
		display: display,

		videoRAMOffset: 0x02, // text screen at 0x0400
		samVideoMode:   0,

		currentMode: AlphaInternal,
		prevMode:    AlphaInternal,
	}

	display.SetPalette(paletteBGR)

	var err error
	v.fb, err = display.FBInit(screenWidthPix, screenHeightPix)
	if err != nil {
		return nil, fmt.Errorf("vdg: %w", err)
	}

	return v, nil
}

// SetVideoOffset receives the display offset from the SAM: the most
// significant six bits of the 15 bit video RAM base address.
func (v *VDG) SetVideoOffset(offset uint8) {
	v.videoRAMOffset = offset
}

// SetModeSAM receives the SAM's three video mode bits.
//
//	0  Alpha, SG4, SG6
//	1  G1C, G1R
//	2  G2C
//	3  G2R
//	4  G3C
//	5  G3R
//	6  G6R, G6C
//	7  DMA
func (v *VDG) SetModeSAM(mode int) {
	v.samVideoMode = mode
}

// SetModePIA receives the PIA's five video mode bits, already shifted
// down: bit 4 G/^A, bits 3..1 GM2..GM0, bit 0 CSS.
func (v *VDG) SetModePIA(mode uint8) {
	v.piaVideoMode = mode
}

// Mode returns the mode the current SAM and PIA bits resolve to.
func (v *VDG) Mode() VideoMode {
	return v.resolveMode()
}

// resolveMode parses the SAM and PIA mode bits into a video mode.
func (v *VDG) resolveMode() VideoMode {
	if v.samVideoMode == 7 {
		return DMA
	}

	if v.piaVideoMode&0x10 == 0x10 {
		switch v.piaVideoMode & 0x0e {
		case 0x00:
			return Graphics1C
		case 0x02:
			return Graphics1R
		case 0x04:
			return Graphics2C
		case 0x06:
			return Graphics2R
		case 0x08:
			return Graphics3C
		case 0x0a:
			return Graphics3R
		case 0x0c:
			return Graphics6C
		case 0x0e:
			return Graphics6R
		}
	}

	switch {
	case v.samVideoMode == 0 && v.piaVideoMode&0x02 == 0:
		// character bit 7 selects semigraphics 4
		return AlphaInternal
	case v.samVideoMode == 0 && v.piaVideoMode&0x02 == 0x02:
		// character bit 7 selects semigraphics 6
		return AlphaExternal
	case v.samVideoMode == 2 && v.piaVideoMode&0x02 == 0:
		return SemiGraphics8
	case v.samVideoMode == 4 && v.piaVideoMode&0x02 == 0:
		return SemiGraphics12
	case v.samVideoMode == 4 && v.piaVideoMode&0x02 == 0:
		// unreachable: the guard is identical to the SemiGraphics12 arm
		// above. kept pending clarification of how the hardware would
		// ever select SG24
		return SemiGraphics24
	}

	return Undefined
}

// changeMode asks the host for a frame buffer at the new mode's
// resolution.
func (v *VDG) changeMode(mode VideoMode) error {
	fb, err := v.display.FBResolution(resolution[mode].width, resolution[mode].height)
	if err != nil {
		return fmt.Errorf("vdg: %w", err)
	}

	v.fb = fb
	v.prevMode = mode

	logger.Logf("vdg", "mode: %s", mode)

	return nil
}
