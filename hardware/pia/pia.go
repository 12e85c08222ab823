// Package pia implements the Dragon 32's two MC6821 Peripheral Interface
// Adapters. PIA0 carries the keyboard matrix, joystick comparator input
// and the vertical-sync IRQ; PIA1 carries the 6-bit DAC, the cassette
// interface and the VDG mode bits. Both chips contribute one bit each to
// the analogue multiplexer selection.
package pia

import (
	"github.com/mjsallard/dragon6809/hardware/bus"
	"github.com/mjsallard/dragon6809/hardware/memorymap"
	"github.com/mjsallard/dragon6809/host"
	"github.com/mjsallard/dragon6809/logger"
)

// register offsets within each PIA's four-address window
const (
	regPA  = 0
	regCRA = 1
	regPB  = 2
	regCRB = 3
)

// control register bit fields
const (
	crCAB2Mask = 0x38 // CA2/CB2 function select
	crCAB2Set  = 0x38 // "output high" pattern
	crIntr     = 0x01 // CA1/CB1 interrupt enable
	crIRQStat  = 0x80 // IRQA1/IRQB1 status

	crMotorOn = 0x08 // CA2 cassette motor control (PIA1 CRA)
)

// vsyncInterval is the 50Hz field sync period in microseconds.
const vsyncInterval = 1000000 / 50

// IRQLine is the CPU as the PIA sees it: a single maskable interrupt
// input. Implemented by cpu.CPU.
type IRQLine interface {
	IRQ(assert bool)
}

// VideoModeSink receives the five PIA video mode bits. Implemented by
// vdg.VDG.
type VideoModeSink interface {
	SetModePIA(mode uint8)
}

// AudioMux accumulates the two multiplexer select bits, one owned by each
// PIA, and publishes the combined selection to the host.
type AudioMux struct {
	out host.Audio
	sel uint8
}

// NewAudioMux creates the shared multiplexer state.
func NewAudioMux(out host.Audio) *AudioMux {
	return &AudioMux{out: out}
}

func (m *AudioMux) setBit(bit uint8, on bool) {
	if on {
		m.sel |= bit
	} else {
		m.sel &^= bit
	}
	m.out.AudioMuxSet(m.sel)
}

// PIA0Host is the slice of the host contract PIA0 consumes.
type PIA0Host interface {
	host.Timer
	host.Keyboard
	host.Joystick
}

// PIA0 is the PIA at 0xff00: keyboard, joystick inputs and the field sync
// interrupt.
type PIA0 struct {
	mem  *bus.Bus
	cpu  IRQLine
	prov PIA0Host
	mux  *AudioMux

	cra uint8
	crb uint8

	vsyncEnabled  bool
	lastVsyncTime uint32

	// latched key closures, one byte per keyboard row, switch closed = 0
	keyboardRows [kbdRows]uint8

	// latched F1..F10 escape, 0 when none pending
	functionKey int
}

// NewPIA0 creates PIA0 and registers its bus trap.
func NewPIA0(mem *bus.Bus, cpu IRQLine, prov PIA0Host, mux *AudioMux) (*PIA0, error) {
	p := &PIA0{
		mem:  mem,
		cpu:  cpu,
		prov: prov,
		mux:  mux,
	}
	for i := range p.keyboardRows {
		p.keyboardRows[i] = 0xff
	}

	// all keys up reads as open rows with the comparator bit clear
	mem.Poke(memorymap.PIA0Start+regPA, 0x7f)

	if err := mem.DefineIO(memorymap.PIA0Start, memorymap.PIA0End, pia0Trap{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// VSyncIRQ is called by the scheduler at the render cadence. If at least
// one field period has passed and the interrupt is enabled via CRB, the
// IRQ status bit is raised and the CPU's IRQ line asserted.
func (p *PIA0) VSyncIRQ() {
	if p.prov.SystemTimer()-p.lastVsyncTime < vsyncInterval {
		return
	}
	p.lastVsyncTime = p.prov.SystemTimer()

	if p.vsyncEnabled {
		p.crb |= crIRQStat
		p.cpu.IRQ(true)
	}
}

// FunctionKey returns the latched function key (1..10 for F1..F10), or
// zero if none was pressed since the last call. Reading clears the latch.
func (p *PIA0) FunctionKey() int {
	key := p.functionKey
	p.functionKey = 0
	return key
}

type pia0Trap struct {
	p *PIA0
}

func (t pia0Trap) OnRead(addr uint16, value uint8) uint8 {
	p := t.p

	switch addr - memorymap.PIA0Start {
	case regPA:
		// bit 7: joystick comparator; bit 0: right joystick button. The
		// button only forces a zero so it cannot interfere with keyboard
		// row scanning.
		if p.prov.JoystickComparator() {
			value |= 0x80
		} else {
			value &= 0x7f
		}
		if !p.prov.RightJoystickButton() {
			value &= 0xfe
		}

	case regPB:
		// reading the data port resets the IRQ status line
		p.crb &^= crIRQStat
		p.cpu.IRQ(false)

	case regCRA:
		return p.cra

	case regCRB:
		return p.crb
	}

	return value
}

func (t pia0Trap) OnWrite(addr uint16, value uint8) {
	p := t.p

	switch addr - memorymap.PIA0Start {
	case regPB:
		p.scanKeyboard(value)

	case regCRA:
		p.cra = value
		p.mux.setBit(0x01, value&crCAB2Mask == crCAB2Set)

	case regCRB:
		p.crb = value
		p.vsyncEnabled = value&crIntr == crIntr
	}
}

// scanKeyboard handles a write of a column-select pattern to PB: poll the
// host for a scan code, fold it into the row-closure matrix (or the
// function key latch), then store the resulting row response in PA for the
// ROM to read back.
func (p *PIA0) scanKeyboard(column uint8) {
	scanCode := p.prov.KeyboardRead()

	if scanCode >= scanCodeF1+1 && scanCode <= scanCodeF1+10 {
		// F1..F10 are emulator escapes, latched one at a time
		if p.functionKey == 0 {
			p.functionKey = int(scanCode - scanCodeF1)
		}
	} else if scanCode != 0 {
		entry := scanCodeTable[scanCode&0x7f]
		if entry.row == noKey {
			logger.Logf("pia0", "unmapped scan code %#02x", scanCode)
		} else if scanCode&0x80 == 0x80 {
			// break: reopen the switches named by the column mask
			p.keyboardRows[entry.row] |= ^entry.column
		} else {
			// make: close the switches
			p.keyboardRows[entry.row] &= entry.column
		}
	}

	response := p.rowScan(column)
	if p.prov.JoystickComparator() {
		response |= 0x80
	} else {
		response &= 0x7f
	}
	p.mem.Poke(memorymap.PIA0Start+regPA, response)
}

// rowScan derives the PA response byte for a column drive pattern: a row's
// bit reads 1 when every driven column finds that row's switch open, and 0
// (a key press) when any driven column finds it closed.
func (p *PIA0) rowScan(column uint8) uint8 {
	var result uint8

	for row := 0; row < kbdRows; row++ {
		if ^column&p.keyboardRows[row] == ^column {
			result |= 1 << row
		}
	}

	return result
}

// PIA1Host is the slice of the host contract PIA1 consumes.
type PIA1Host interface {
	WriteDAC(value uint8)
	MountedCassette() host.CassetteFile
}

// PIA1 is the PIA at 0xff20: DAC output, cassette interface and VDG mode
// bits.
type PIA1 struct {
	mem   *bus.Bus
	prov  PIA1Host
	video VideoModeSink
	mux   *AudioMux

	cra uint8
	crb uint8

	cassette cassettePump
}

// NewPIA1 creates PIA1 and registers its bus trap.
func NewPIA1(mem *bus.Bus, prov PIA1Host, video VideoModeSink, mux *AudioMux) (*PIA1, error) {
	p := &PIA1{
		mem:   mem,
		prov:  prov,
		video: video,
		mux:   mux,
	}
	if err := mem.DefineIO(memorymap.PIA1Start, memorymap.PIA1End, pia1Trap{p}); err != nil {
		return nil, err
	}
	return p, nil
}

type pia1Trap struct {
	p *PIA1
}

func (t pia1Trap) OnRead(addr uint16, value uint8) uint8 {
	p := t.p

	switch addr - memorymap.PIA1Start {
	case regPA:
		// PA0 carries the cassette input bit
		return p.cassette.read(value)

	case regCRA:
		return p.cra

	case regCRB:
		return p.crb
	}

	return value
}

func (t pia1Trap) OnWrite(addr uint16, value uint8) {
	p := t.p

	switch addr - memorymap.PIA1Start {
	case regPA:
		// bits 2..7 drive the 6-bit DAC
		p.prov.WriteDAC((value >> 2) & 0x3f)

	case regPB:
		// bits 3..7 are the VDG mode: G/^A, GM2, GM1, GM0, CSS
		p.video.SetModePIA((value >> 3) & 0x1f)

	case regCRA:
		p.cra = value
		if value&0x30 != 0 && value&crMotorOn == crMotorOn {
			// motor on: open the mounted cassette image. Re-opening does
			// not rewind, so repeated motor-on writes are harmless.
			// Motor off is deliberately a no-op; the file stays open.
			if f := p.prov.MountedCassette(); f != nil {
				if err := f.Open(); err != nil {
					logger.Logf("pia1", "cassette open: %v", err)
				} else {
					p.cassette.file = f
				}
			}
		}

	case regCRB:
		p.crb = value
		p.mux.setBit(0x02, value&crCAB2Mask == crCAB2Set)
	}
}
