package vdg

import (
	"github.com/mjsallard/dragon6809/logger"
)

const (
	screenWidthPix  = 256
	screenHeightPix = 192

	screenWidthChar  = 32
	screenHeightChar = 16
)

// Render redraws the full visible region into the frame buffer. There is
// no dirty tracking: the scheduler calls this at the field rate and the
// whole of video RAM is scanned each time. A mode change since the last
// call triggers a frame buffer resolution change first.
func (v *VDG) Render() {
	mode := v.resolveMode()
	v.currentMode = mode

	if mode != v.prevMode {
		if mode == Undefined {
			logger.Logf("vdg", "unresolvable mode (sam %d, pia %#02x)", v.samVideoMode, v.piaVideoMode)
			return
		}
		if err := v.changeMode(mode); err != nil {
			logger.Log("vdg", err)
			return
		}
	}

	base := uint16(v.videoRAMOffset) << 9

	switch mode {
	case AlphaInternal, SemiGraphics4:
		for row := 0; row < screenHeightChar; row++ {
			for col := 0; col < screenWidthChar; col++ {
				c, _ := v.mem.Read(base + uint16(row*screenWidthChar+col))
				v.drawChar(c, col, row)
			}
		}

	case AlphaExternal, SemiGraphics6:
		for row := 0; row < screenHeightChar; row++ {
			for col := 0; col < screenWidthChar; col++ {
				c, _ := v.mem.Read(base + uint16(row*screenWidthChar+col))
				if c&charSemiGraphics == charSemiGraphics {
					v.drawSemiG6(c, col, row)
				} else {
					// no external character generator is fitted; the
					// internal font stands in
					v.drawChar(c, col, row)
				}
			}
		}

	case Graphics1C, Graphics2C, Graphics3C, Graphics6C:
		v.drawColorGraphics(mode, base)

	case Graphics1R, Graphics2R, Graphics3R, Graphics6R:
		v.drawResolutionGraphics(mode, base)

	case SemiGraphics8, SemiGraphics12:
		v.drawSemiGExt(mode, base)

	case SemiGraphics24, DMA:
		logger.Logf("vdg", "mode not supported: %s", mode)
	}
}

// drawChar renders a text or semigraphics-4 cell. Character bit 7 selects
// the semigraphics block set with its own colour bits; bit 6 selects
// inverse video for text. Text colour follows the CSS bit.
func (v *VDG) drawChar(c uint8, col, row int) {
	px := col * fontWidth
	py := row * fontHeight

	bg := uint8(fbBlack)
	var fg uint8
	var pattern *[fontHeight]uint8

	if c&charSemiGraphics == charSemiGraphics {
		fg = colorSet[(c&0x70)>>4]
		pattern = &semiGraph4[c&semiGraph4Mask]
	} else {
		if v.piaVideoMode&piaColorSet == piaColorSet {
			fg = colorSet[defColorCSS1]
		} else {
			fg = colorSet[defColorCSS0]
		}
		if c&charInverse == charInverse {
			fg, bg = bg, fg
		}
		pattern = &fontInternal[c&^uint8(charSemiGraphics|charInverse)]
	}

	width := resolution[v.prevMode].width
	for r := 0; r < fontHeight; r++ {
		bits := pattern[r]
		idx := (py+r)*width + px
		for b := 0; b < fontWidth; b++ {
			if bits&(0x80>>b) != 0 {
				v.fb[idx+b] = fg
			} else {
				v.fb[idx+b] = bg
			}
		}
	}
}

// drawSemiG6 renders a semigraphics-6 cell: a 2x3 block pattern with the
// foreground colour taken from character bits 6..7, offset by the CSS
// bit into the second half of the colour set.
func (v *VDG) drawSemiG6(c uint8, col, row int) {
	px := col * fontWidth
	py := row * fontHeight

	bg := uint8(fbBlack)
	fg := colorSet[((c&0xc0)>>6)+4*(v.piaVideoMode&piaColorSet)]
	pattern := &semiGraph6[c&semiGraph6Mask]

	width := resolution[v.prevMode].width
	for r := 0; r < fontHeight; r++ {
		bits := pattern[r]
		idx := (py+r)*width + px
		for b := 0; b < fontWidth; b++ {
			if bits&(0x80>>b) != 0 {
				v.fb[idx+b] = fg
			} else {
				v.fb[idx+b] = bg
			}
		}
	}
}

// drawColorGraphics renders the four-colour graphics modes: two bits per
// pixel, palette half selected by CSS. The lower-resolution 6C variant is
// pixel-doubled into its frame buffer.
func (v *VDG) drawColorGraphics(mode VideoMode, base uint16) {
	cssOffset := 4 * (v.piaVideoMode & piaColorSet)
	fbOffset := 0

	for memOffset := 0; memOffset < resolution[mode].mem; memOffset++ {
		data, _ := v.mem.Read(base + uint16(memOffset))

		for element := 0; element < 4; element++ {
			color := colorSet[(data>>(2*(3-element)))&0x03+cssOffset]
			v.fb[fbOffset] = color
			fbOffset++

			if mode == Graphics6C {
				v.fb[fbOffset] = color
				fbOffset++
			}
		}
	}
}

// drawResolutionGraphics renders the two-colour graphics modes: one bit
// per pixel, green or buff foreground on black. The 3R variant is
// pixel-doubled into its frame buffer.
func (v *VDG) drawResolutionGraphics(mode VideoMode, base uint16) {
	var fg uint8
	if v.piaVideoMode&piaColorSet == piaColorSet {
		fg = colorSet[defColorCSS1]
	} else {
		fg = colorSet[defColorCSS0]
	}

	fbOffset := 0

	for memOffset := 0; memOffset < resolution[mode].mem; memOffset++ {
		data, _ := v.mem.Read(base + uint16(memOffset))

		for element := 0; element < 8; element++ {
			color := uint8(fbBlack)
			if (data>>(7-element))&0x01 == 0x01 {
				color = fg
			}

			v.fb[fbOffset] = color
			fbOffset++

			if mode == Graphics3R {
				v.fb[fbOffset] = color
				fbOffset++
			}
		}
	}
}

// drawSemiGExt renders the extended semigraphics modes 8 and 12. The text
// buffer is scanned repeatedly, each 32-byte row contributing a short
// segment (three or two scan rows) of the underlying semigraphics-4 or
// text pattern, so the same cell data is subdivided vertically.
func (v *VDG) drawSemiGExt(mode VideoMode, base uint16) {
	segHeight := semiG8SegHeight
	if mode == SemiGraphics12 {
		segHeight = semiG12SegHeight
	}

	width := resolution[mode].width
	rowIndex := 0

	for textIndex := 0; textIndex < resolution[mode].mem; textIndex++ {
		c, _ := v.mem.Read(base + uint16(textIndex))

		bg := uint8(fbBlack)
		var fg uint8
		var pattern *[fontHeight]uint8

		if c&charSemiGraphics == charSemiGraphics {
			fg = colorSet[(c&0x70)>>4]
			pattern = &semiGraph4[c&semiGraph4Mask]
		} else {
			if v.piaVideoMode&piaColorSet == piaColorSet {
				fg = colorSet[defColorCSS1]
			} else {
				fg = colorSet[defColorCSS0]
			}
			if c&charInverse == charInverse {
				fg, bg = bg, fg
			}
			pattern = &fontInternal[c&^uint8(charSemiGraphics|charInverse)]
		}

		px := (textIndex & 0x1f) * fontWidth
		py := (textIndex >> 5) * segHeight

		for r := 0; r < segHeight; r++ {
			bits := pattern[rowIndex+r]
			idx := (py+r)*width + px
			for b := 0; b < fontWidth; b++ {
				if bits&(0x80>>b) != 0 {
					v.fb[idx+b] = fg
				} else {
					v.fb[idx+b] = bg
				}
			}
		}

		// at the end of each 32-byte row, move to the next segment of the
		// cell pattern, wrapping after the full cell height
		if textIndex&0x1f == 0x1f {
			rowIndex += segHeight
			if rowIndex >= fontHeight {
				rowIndex = 0
			}
		}
	}
}
