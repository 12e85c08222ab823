package cpu

import (
	"fmt"

	"github.com/mjsallard/dragon6809/hardware/cpu/execution"
	"github.com/mjsallard/dragon6809/hardware/cpu/instructions"
	"github.com/mjsallard/dragon6809/hardware/cpu/registers"
	"github.com/mjsallard/dragon6809/hardware/memorymap"
)

// Memory is the bus as the CPU sees it. Implemented by bus.Bus.
type Memory interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, value uint8) error
}

// CPU implements the MC6809E as found in the Dragon 32. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	A  registers.Reg8
	B  registers.Reg8
	DP registers.Reg8
	X  registers.Reg16
	Y  registers.Reg16
	U  registers.Reg16
	S  registers.Reg16
	PC registers.Reg16
	CC registers.CC

	mem Memory

	// level-driven control lines. sampled once per Step, before opcode
	// fetch; a transient assertion gone by sampling time is not observed
	haltAsserted  bool
	resetAsserted bool
	irqAsserted   bool
	firqAsserted  bool

	// the NMI line is edge-driven: the latch is set by NMITrigger and
	// cleared when the interrupt is serviced. an NMI is only honoured once
	// the stack pointer has been loaded at least once (nmiArmed)
	nmiLatched bool
	nmiArmed   bool

	// State is the run state the most recent Step call ended in.
	State RunState

	// LastPC is the address of the most recently executed instruction (or
	// the PC at the point an interrupt was serviced).
	LastPC uint16

	// LastResult records what the most recent Step call did.
	LastResult execution.Result

	// ExceptionTag identifies the decode site that pushed the CPU into the
	// Exception state. Empty while the CPU is healthy.
	ExceptionTag string
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// powers up with zeroed registers and masked interrupts, awaiting a reset.
func NewCPU(mem Memory) *CPU {
	mc := &CPU{
		A:   registers.NewReg8("A"),
		B:   registers.NewReg8("B"),
		DP:  registers.NewReg8("DP"),
		X:   registers.NewReg16("X"),
		Y:   registers.NewReg16("Y"),
		U:   registers.NewReg16("U"),
		S:   registers.NewReg16("S"),
		PC:  registers.NewReg16("PC"),
		mem: mem,
	}
	mc.State = Halted
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.B.Label(), mc.B,
		mc.DP.Label(), mc.DP, mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.U.Label(), mc.U, mc.S.Label(), mc.S, mc.CC.Label(), mc.CC)
}

// D returns the value of the concatenated 16 bit accumulator A:B.
func (mc *CPU) D() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.B.Value())
}

func (mc *CPU) loadD(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.B.Load(uint8(v))
}

// read8 performs a bus read on behalf of the executing instruction. The bus
// cannot fail for a plain read so the error is discarded here rather than
// threaded through every opcode handler.
func (mc *CPU) read8(addr uint16) uint8 {
	v, _ := mc.mem.Read(addr)
	return v
}

// read16 reads a big-endian word.
func (mc *CPU) read16(addr uint16) uint16 {
	hi, _ := mc.mem.Read(addr)
	lo, _ := mc.mem.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// write8 performs a bus write on behalf of the executing instruction. A
// write to a ROM cell is absorbed with no side effect, as on the real
// hardware; the bus error is not an event the emulated program can observe.
func (mc *CPU) write8(addr uint16, v uint8) {
	_ = mc.mem.Write(addr, v)
}

func (mc *CPU) write16(addr uint16, v uint16) {
	mc.write8(addr, uint8(v>>8))
	mc.write8(addr+1, uint8(v))
}

// fetch reads the byte at PC and advances PC.
func (mc *CPU) fetch() uint8 {
	v := mc.read8(mc.PC.Value())
	mc.PC.Add(1)
	return v
}

// Step executes at most one instruction and returns the run state the CPU
// ended the step in. The ordering of the step is fixed: RESET check, HALT
// check, interrupt sampling and servicing, SYNC check, then fetch, decode
// and execute.
func (mc *CPU) Step() (RunState, error) {
	mc.LastResult.Reset()

	// an asserted RESET line pre-empts everything, every step, emulating an
	// asynchronous reset response
	if mc.resetAsserted {
		mc.CC.F = true
		mc.CC.I = true
		mc.DP.Load(0)
		mc.nmiArmed = false
		mc.nmiLatched = false
		mc.PC.Load(mc.read16(memorymap.VectorReset))
		mc.LastPC = mc.PC.Value()
		mc.State = Reset
		mc.LastResult.Address = mc.PC.Value()
		mc.LastResult.Final = true
		return mc.State, nil
	}

	// the CPU is frozen in Exception until a reset
	if mc.State == Exception {
		mc.LastResult.Final = true
		return mc.State, nil
	}

	mc.LastPC = mc.PC.Value()
	mc.LastResult.Address = mc.PC.Value()

	if mc.haltAsserted {
		mc.State = Halted
		mc.LastResult.Final = true
		return mc.State, nil
	}

	// an accepted interrupt consumes the whole step: the service routine's
	// first instruction executes on the next Step call
	if mc.serviceInterrupts() {
		mc.LastResult.Final = true
		return mc.State, nil
	}

	// SYNC (and the wait state entered by CWAI) is only left by an accepted
	// interrupt
	if mc.State == Sync {
		mc.LastResult.Final = true
		return mc.State, nil
	}

	mc.State = Exec

	opcode := mc.fetch()
	table := instructions.Primary
	prefixed := 0

	switch opcode {
	case 0x10:
		opcode = mc.fetch()
		table = instructions.Page2
		prefixed = 1
	case 0x11:
		opcode = mc.fetch()
		table = instructions.Page3
		prefixed = 1
	}

	defn, ok := table.Lookup(opcode)
	if !ok {
		if prefixed == 1 {
			return mc.exception(ErrIllegalOpcode, fmt.Sprintf("prefixed opcode %#02x", opcode))
		}
		return mc.exception(ErrIllegalOpcode, fmt.Sprintf("opcode %#02x", opcode))
	}

	mc.LastResult.Defn = &defn
	mc.LastResult.ByteCount = defn.Bytes
	mc.LastResult.Cycles = defn.Cycles

	ea, err := mc.effectiveAddress(&defn)
	if err != nil {
		return mc.State, err
	}

	if err := mc.execute(&defn, ea); err != nil {
		return mc.State, err
	}

	mc.LastResult.Final = true

	return mc.State, nil
}

// serviceInterrupts samples the interrupt lines and, if an unmasked
// interrupt is pending, stacks the machine state and vectors to the
// service routine. Priority is NMI over FIRQ over IRQ. Returns true if an
// interrupt was accepted.
func (mc *CPU) serviceInterrupts() bool {
	nmi := mc.nmiLatched
	firq := mc.firqAsserted
	irq := mc.irqAsserted

	switch {
	case nmi && mc.nmiArmed:
		mc.State = Exec
		mc.CC.E = true
		mc.pushEntire(&mc.S)
		mc.nmiLatched = false
		mc.CC.F = true
		mc.CC.I = true
		mc.PC.Load(mc.read16(memorymap.VectorNMI))
		mc.LastResult.Interrupt = "NMI"
		return true

	case firq && !mc.CC.F:
		mc.State = Exec
		mc.CC.E = false
		mc.push16(&mc.S, mc.PC.Value())
		mc.push8(&mc.S, mc.CC.Value())
		mc.CC.F = true
		mc.CC.I = true
		mc.PC.Load(mc.read16(memorymap.VectorFIRQ))
		mc.LastResult.Interrupt = "FIRQ"
		return true

	case irq && !mc.CC.I:
		mc.State = Exec
		mc.CC.E = true
		mc.pushEntire(&mc.S)
		mc.CC.I = true
		mc.PC.Load(mc.read16(memorymap.VectorIRQ))
		mc.LastResult.Interrupt = "IRQ"
		return true
	}

	return false
}

// push8 decrements the stack pointer and stores one byte.
func (mc *CPU) push8(sp *registers.Reg16, v uint8) {
	sp.Add(-1)
	mc.write8(sp.Value(), v)
}

// push16 pushes a word, high byte ending up at the lower address.
func (mc *CPU) push16(sp *registers.Reg16, v uint16) {
	mc.push8(sp, uint8(v))
	mc.push8(sp, uint8(v>>8))
}

// pull8 loads one byte and increments the stack pointer.
func (mc *CPU) pull8(sp *registers.Reg16) uint8 {
	v := mc.read8(sp.Value())
	sp.Add(1)
	return v
}

func (mc *CPU) pull16(sp *registers.Reg16) uint16 {
	hi := mc.pull8(sp)
	lo := mc.pull8(sp)
	return uint16(hi)<<8 | uint16(lo)
}

// pushEntire stacks the full machine state (PC, U, Y, X, DP, B, A, CC) on
// the given stack, as performed by NMI, IRQ, SWI/SWI2/SWI3 and CWAI. The E
// flag must already reflect the frame being pushed.
func (mc *CPU) pushEntire(sp *registers.Reg16) {
	mc.push16(sp, mc.PC.Value())
	mc.push16(sp, mc.U.Value())
	mc.push16(sp, mc.Y.Value())
	mc.push16(sp, mc.X.Value())
	mc.push8(sp, mc.DP.Value())
	mc.push8(sp, mc.B.Value())
	mc.push8(sp, mc.A.Value())
	mc.push8(sp, mc.CC.Value())
}
