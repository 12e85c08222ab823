package bus

import (
	"fmt"

	"github.com/mjsallard/dragon6809/errors"
)

// CellKind classifies how a memory cell behaves on access.
type CellKind int

const (
	// RAM cells accept both reads and writes.
	RAM CellKind = iota
	// ROM cells reject writes with ErrRomProtected.
	ROM
	// IO cells behave like RAM but additionally invoke a Trap, if one is
	// registered, on every access.
	IO
)

func (k CellKind) String() string {
	switch k {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	case IO:
		return "IO"
	default:
		return "unknown"
	}
}

// Trap is implemented by peripherals that want to intercept bus cycles on
// the addresses they register for. OnRead is called after the stored byte
// has been loaded; its return value is what the CPU observes (and is
// re-stored). OnWrite is called after the new byte has been stored; its
// return value is ignored.
type Trap interface {
	OnRead(addr uint16, value uint8) uint8
	OnWrite(addr uint16, value uint8)
}

// Cell is a single addressable byte of the bus.
type Cell struct {
	value uint8
	kind  CellKind
	trap  Trap
}

// Bus is the Dragon 32's 64KiB address space. It is allocated once at boot
// and lives for the life of the program.
type Bus struct {
	cells [65536]Cell
}

// NewBus creates a Bus with every cell initialised to RAM containing zero.
func NewBus() *Bus {
	return &Bus{}
}

// Read returns the byte stored at addr. If the cell is IO-flagged and
// carries a trap, the trap's OnRead return value is what's returned (and
// re-stored in the cell).
func (b *Bus) Read(addr uint16) (uint8, error) {
	c := &b.cells[addr]

	v := c.value
	if c.kind == IO && c.trap != nil {
		v = c.trap.OnRead(addr, v)
		c.value = v
	}
	return v, nil
}

// Write stores value at addr. Writes to ROM cells are rejected with
// ErrRomProtected and have no side effect. On a successful write to an
// IO-flagged cell carrying a trap, the trap's OnWrite is invoked after the
// byte has been stored; its return value is ignored.
func (b *Bus) Write(addr uint16, value uint8) error {
	c := &b.cells[addr]

	if c.kind == ROM {
		return fmt.Errorf("bus: write to %#04x: %w", addr, errors.ErrRomProtected)
	}

	c.value = value

	if c.kind == IO && c.trap != nil {
		c.trap.OnWrite(addr, value)
	}

	return nil
}

// Peek reads a cell's stored byte directly, bypassing ROM protection and any
// trap. It exists for diagnostics and tests and is not part of normal bus
// traffic.
func (b *Bus) Peek(addr uint16) uint8 {
	return b.cells[addr].value
}

// Poke writes a cell's stored byte directly, bypassing ROM protection and
// any trap.
func (b *Bus) Poke(addr uint16, value uint8) {
	b.cells[addr].value = value
}

// DefineROM marks the inclusive address range [start, end] as ROM.
func (b *Bus) DefineROM(start, end uint16) {
	for a := uint32(start); a <= uint32(end); a++ {
		b.cells[a].kind = ROM
	}
}

// DefineRAM marks the inclusive address range [start, end] as RAM, undoing
// any earlier DefineROM/DefineIO over the same range.
func (b *Bus) DefineRAM(start, end uint16) {
	for a := uint32(start); a <= uint32(end); a++ {
		b.cells[a].kind = RAM
		b.cells[a].trap = nil
	}
}

// DefineIO marks the inclusive address range [start, end] as IO and
// registers trap to be invoked on every read and write in that range. A trap
// already registered in the range is replaced. An inverted range fails with
// ErrAddressRange; a nil trap with ErrHandlerBindFailed.
func (b *Bus) DefineIO(start, end uint16, trap Trap) error {
	if start > end {
		return fmt.Errorf("bus: define io %#04x-%#04x: %w", start, end, errors.ErrAddressRange)
	}
	if trap == nil {
		return fmt.Errorf("bus: define io %#04x-%#04x: %w", start, end, errors.ErrHandlerBindFailed)
	}
	for a := uint32(start); a <= uint32(end); a++ {
		b.cells[a].kind = IO
		b.cells[a].trap = trap
	}
	return nil
}

// Load copies bytes into the bus starting at start, without regard to the
// cells' current kind (used to install the ROM image before DefineROM marks
// it read-only). Fails with ErrAddressRange if the data would run past the
// top of the address space.
func (b *Bus) Load(start uint16, data []byte) error {
	if int(start)+len(data) > len(b.cells) {
		return fmt.Errorf("bus: load %#04x+%d: %w", start, len(data), errors.ErrAddressRange)
	}
	for i, v := range data {
		b.cells[int(start)+i].value = v
	}
	return nil
}
