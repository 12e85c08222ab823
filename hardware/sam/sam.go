// Package sam implements the MC6883/SN74LS785 Synchronous Address
// Multiplexer as wired into the Dragon 32: thirty-two toggle addresses
// that set or clear single bits of the SAM's configuration fields, and the
// read redirection of the CPU vector table into its shadow region.
//
// A SAM toggle address carries no data. Writing any value to an even
// address clears a bit; writing to the following odd address sets it.
package sam

import (
	"github.com/mjsallard/dragon6809/hardware/bus"
	"github.com/mjsallard/dragon6809/hardware/memorymap"
)

// VideoSink receives the SAM's video configuration whenever it changes.
// Implemented by vdg.VDG.
type VideoSink interface {
	SetModeSAM(mode int)
	SetVideoOffset(offset uint8)
}

// SAM holds the multiplexer's register fields. Only the VDG mode and
// display offset are consumed by this emulation; the remaining fields are
// decoded and stored so their state is visible in diagnostics, but they
// drive nothing.
type SAM struct {
	mem   *bus.Bus
	video VideoSink

	vdgMode          uint8 // 3 bits
	vdgDisplayOffset uint8 // 7 bits
	page             uint8
	mpuRate          uint8
	memorySize       uint8
	memoryMapType    uint8
}

// NewSAM creates the SAM and registers its two bus traps: the toggle
// register block and the vector-table read redirection.
func NewSAM(mem *bus.Bus, video VideoSink) (*SAM, error) {
	s := &SAM{
		mem:   mem,
		video: video,

		vdgMode:          0, // alphanumeric
		vdgDisplayOffset: 2, // Dragon text page at 0x0400
		page:             1,
		mpuRate:          0,
		memorySize:       2,
		memoryMapType:    0,
	}

	if err := mem.DefineIO(memorymap.VectorRedirectStart, memorymap.VectorShadowEnd, vectorRedirect{mem}); err != nil {
		return nil, err
	}
	if err := mem.DefineIO(memorymap.SAMStart, memorymap.SAMEnd, samToggle{s}); err != nil {
		return nil, err
	}

	return s, nil
}

// VDGMode returns the three SAM video mode bits.
func (s *SAM) VDGMode() uint8 {
	return s.vdgMode
}

// VDGDisplayOffset returns the seven display offset bits.
func (s *SAM) VDGDisplayOffset() uint8 {
	return s.vdgDisplayOffset
}

// vectorRedirect implements the read redirection of 0xfff2-0xffff into the
// 0xbff2-0xbfff shadow region, where the Dragon ROM keeps the actual
// vector table.
type vectorRedirect struct {
	mem *bus.Bus
}

func (v vectorRedirect) OnRead(addr uint16, _ uint8) uint8 {
	b, _ := v.mem.Read(addr & memorymap.VectorShadowMask)
	return b
}

func (v vectorRedirect) OnWrite(_ uint16, _ uint8) {
}

// samToggle decodes writes to the 32 toggle addresses. The low five bits
// of the address select the slot; each even/odd pair clears/sets one bit
// of a field.
type samToggle struct {
	s *SAM
}

func (t samToggle) OnRead(_ uint16, value uint8) uint8 {
	return value
}

func (t samToggle) OnWrite(addr uint16, _ uint8) {
	s := t.s
	slot := addr & 0x001f

	switch {
	case slot < 0x06: // VDG mode, bits 0..2
		bit := uint8(1) << (slot >> 1)
		if slot&1 == 1 {
			s.vdgMode |= bit
		} else {
			s.vdgMode &^= bit
		}

	case slot < 0x14: // display offset, bits 0..6
		bit := uint8(1) << ((slot - 0x06) >> 1)
		if slot&1 == 1 {
			s.vdgDisplayOffset |= bit
		} else {
			s.vdgDisplayOffset &^= bit
		}

	case slot < 0x16: // page
		s.page = toggleBit(s.page, 0, slot&1 == 1)

	case slot < 0x1a: // MPU rate, bits 0..1
		s.mpuRate = toggleBit(s.mpuRate, uint((slot-0x16)>>1), slot&1 == 1)

	case slot < 0x1e: // memory size, bits 0..1
		s.memorySize = toggleBit(s.memorySize, uint((slot-0x1a)>>1), slot&1 == 1)

	default: // memory map type
		s.memoryMapType = toggleBit(s.memoryMapType, 0, slot&1 == 1)
	}

	// publish to the VDG after every write, as the hardware's outputs are
	// combinational
	s.video.SetModeSAM(int(s.vdgMode))
	s.video.SetVideoOffset(s.vdgDisplayOffset)
}

func toggleBit(field uint8, bit uint, set bool) uint8 {
	if set {
		return field | 1<<bit
	}
	return field &^ (1 << bit)
}
