package bus_test

import (
	stderrors "errors"
	"testing"

	"github.com/mjsallard/dragon6809/errors"
	"github.com/mjsallard/dragon6809/hardware/bus"
	"github.com/mjsallard/dragon6809/test"
)

func TestRAMRoundTrip(t *testing.T) {
	b := bus.NewBus()

	err := b.Write(0x1234, 0x42)
	test.ExpectSuccess(t, err)

	v, err := b.Read(0x1234)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))
}

func TestROMProtection(t *testing.T) {
	b := bus.NewBus()

	test.ExpectSuccess(t, b.Load(0x8000, []byte{0xaa}))
	b.DefineROM(0x8000, 0xfeff)

	err := b.Write(0x8000, 0xff)
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrRomProtected), true)

	v, err := b.Read(0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xaa))
}

func TestLoadPastTopOfMemory(t *testing.T) {
	b := bus.NewBus()

	// a two-byte load at the last address runs off the end
	err := b.Load(0xffff, []byte{0x01, 0x02})
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrAddressRange), true)

	// exactly reaching the top is fine
	test.ExpectSuccess(t, b.Load(0xffff, []byte{0x01}))
	test.ExpectEquality(t, b.Peek(0xffff), uint8(0x01))
}

func TestDefineIOInvertedRange(t *testing.T) {
	b := bus.NewBus()

	err := b.DefineIO(0xff03, 0xff00, &countingTrap{})
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrAddressRange), true)
}

func TestDefineIONilTrap(t *testing.T) {
	b := bus.NewBus()

	err := b.DefineIO(0xff00, 0xff03, nil)
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrHandlerBindFailed), true)
}

type countingTrap struct {
	reads, writes int
	lastWritten   uint8
}

func (c *countingTrap) OnRead(addr uint16, value uint8) uint8 {
	c.reads++
	return value + 1
}

func (c *countingTrap) OnWrite(addr uint16, value uint8) {
	c.writes++
	c.lastWritten = value
}

func TestIOTrapOrdering(t *testing.T) {
	b := bus.NewBus()
	trap := &countingTrap{}

	err := b.DefineIO(0xff00, 0xff03, trap)
	test.ExpectSuccess(t, err)

	// write stores the byte first, then the trap is invoked with that value
	err = b.Write(0xff00, 0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, trap.writes, 1)
	test.ExpectEquality(t, trap.lastWritten, uint8(0x10))

	// read loads the stored byte, then the trap's return is what the CPU
	// sees - and is re-stored
	v, err := b.Read(0xff00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x11))
	test.ExpectEquality(t, trap.reads, 1)

	v, err = b.Read(0xff00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))
}
