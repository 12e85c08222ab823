package sam_test

import (
	"testing"

	"github.com/mjsallard/dragon6809/hardware/bus"
	"github.com/mjsallard/dragon6809/hardware/sam"
	"github.com/mjsallard/dragon6809/test"
)

type videoSink struct {
	mode   int
	offset uint8
	pokes  int
}

func (v *videoSink) SetModeSAM(mode int) {
	v.mode = mode
	v.pokes++
}

func (v *videoSink) SetVideoOffset(offset uint8) {
	v.offset = offset
}

func newTestSAM(t *testing.T) (*sam.SAM, *bus.Bus, *videoSink) {
	t.Helper()
	mem := bus.NewBus()
	sink := &videoSink{}
	s, err := sam.NewSAM(mem, sink)
	test.ExpectSuccess(t, err)
	return s, mem, sink
}

func TestToggleVDGMode(t *testing.T) {
	s, mem, sink := newTestSAM(t)

	// odd address sets the bit, even clears it; the written value is
	// irrelevant
	test.ExpectSuccess(t, mem.Write(0xffc1, 0x00))
	test.Equate(t, s.VDGMode(), uint8(0x01))
	test.Equate(t, sink.mode, 1)

	test.ExpectSuccess(t, mem.Write(0xffc5, 0xff))
	test.Equate(t, s.VDGMode(), uint8(0x05))

	test.ExpectSuccess(t, mem.Write(0xffc0, 0x42))
	test.Equate(t, s.VDGMode(), uint8(0x04))
	test.Equate(t, sink.mode, 4)
}

// scenario: writing to 0xffc7 sets display offset bit 0.
func TestToggleDisplayOffset(t *testing.T) {
	s, mem, sink := newTestSAM(t)

	// clear the power-on offset first (bit 1 is set for the text page)
	test.ExpectSuccess(t, mem.Write(0xffc8, 0))
	test.Equate(t, s.VDGDisplayOffset(), uint8(0x00))

	test.ExpectSuccess(t, mem.Write(0xffc7, 1))
	test.Equate(t, s.VDGDisplayOffset(), uint8(0x01))
	test.Equate(t, sink.offset, uint8(0x01))

	// set-then-clear leaves the bit clear again
	test.ExpectSuccess(t, mem.Write(0xffc6, 1))
	test.Equate(t, s.VDGDisplayOffset(), uint8(0x00))

	// highest offset bit
	test.ExpectSuccess(t, mem.Write(0xffd3, 1))
	test.Equate(t, s.VDGDisplayOffset(), uint8(0x40))
}

func TestPowerOnDefaults(t *testing.T) {
	s, _, _ := newTestSAM(t)
	test.Equate(t, s.VDGMode(), uint8(0))
	test.Equate(t, s.VDGDisplayOffset(), uint8(2))
}

// property: vector-table reads return the shadow region's bytes.
func TestVectorRedirect(t *testing.T) {
	_, mem, _ := newTestSAM(t)

	for x := uint16(0xfff2); x != 0x0000; x++ {
		mem.Poke(x&0xbfff, uint8(x))
		v, err := mem.Read(x)
		test.ExpectSuccess(t, err)
		test.Equate(t, v, uint8(x))
	}
}
