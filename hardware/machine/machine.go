// Package machine assembles the Dragon 32 from its parts - bus, CPU, SAM,
// the two PIAs and the VDG - and runs the scheduler loop that paces them:
// one CPU instruction per iteration, with reset-button polling, the
// function-key escape, and the render/vertical-sync cadence layered on
// top.
package machine

import (
	"context"
	"fmt"
	"time"

	"github.com/mjsallard/dragon6809/hardware/bus"
	"github.com/mjsallard/dragon6809/hardware/cpu"
	"github.com/mjsallard/dragon6809/hardware/memorymap"
	"github.com/mjsallard/dragon6809/hardware/pia"
	"github.com/mjsallard/dragon6809/hardware/sam"
	"github.com/mjsallard/dragon6809/hardware/vdg"
	"github.com/mjsallard/dragon6809/host"
	"github.com/mjsallard/dragon6809/logger"
	"github.com/mjsallard/dragon6809/random"
)

const (
	// vdgRenderCycles is how many CPU instructions pass between render
	// slots; with the pacing delay this works out at roughly the 50Hz
	// field rate.
	vdgRenderCycles = 4500

	// longResetDelay is how long the reset button must be held, in
	// microseconds, to force a cold start.
	longResetDelay = 1500000

	// escapeLoader is the function key that hands control to the loader.
	escapeLoader = 1

	// stepTime is the targeted wall-clock duration of one CPU
	// instruction. The pacing sleep is batched because no host can sleep
	// with microsecond granularity.
	stepTime = 4 * time.Microsecond

	// paceBatch is how many instructions execute between pacing sleeps.
	paceBatch = 256

	// coldStartValue is anything other than the 0x55 the ROM uses to
	// recognise a warm machine.
	coldStartValue = 0x00
)

// Machine is the assembled Dragon 32.
type Machine struct {
	Prov host.Provider

	Mem  *bus.Bus
	CPU  *cpu.CPU
	SAM  *sam.SAM
	PIA0 *pia.PIA0
	PIA1 *pia.PIA1
	VDG  *vdg.VDG

	// Loader is invoked when the F1 escape key is seen. The loader TUI is
	// a host concern; the hook may be left nil.
	Loader func()

	// Random seeded RAM at power-on and remains available for any state
	// that wants garbage values later. The power-on RAM content is drawn
	// inside NewMachine, before a caller can set ZeroSeed; setting it
	// afterwards (as the tests do) makes only later draws reproducible.
	Random *random.Random

	steps       uint64
	renderCount int
}

// NewMachine builds and wires the emulated hardware: ROM image installed
// and write-protected, peripherals registered on the bus, CPU held in
// reset. The returned machine is ready for Run.
func NewMachine(prov host.Provider, rom []byte) (*Machine, error) {
	if len(rom) > memorymap.ROMEnd-memorymap.ROMStart+1 {
		return nil, fmt.Errorf("machine: ROM image too large (%d bytes)", len(rom))
	}

	m := &Machine{Prov: prov}
	m.Random = random.NewRandom(m)

	m.Mem = bus.NewBus()

	// power-on RAM content is garbage, not zeros; some ROM routines
	// (the cold start check among them) depend on that
	for a := memorymap.RAMStart; a <= memorymap.RAMEnd; a++ {
		m.Mem.Poke(uint16(a), m.Random.Rewindable(a))
	}

	if err := m.Mem.Load(memorymap.ROMStart, rom); err != nil {
		return nil, err
	}
	m.Mem.DefineROM(memorymap.ROMStart, memorymap.ROMEnd)

	m.CPU = cpu.NewCPU(m.Mem)

	var err error
	m.VDG, err = vdg.NewVDG(m.Mem, prov)
	if err != nil {
		return nil, err
	}

	m.SAM, err = sam.NewSAM(m.Mem, m.VDG)
	if err != nil {
		return nil, err
	}

	mux := pia.NewAudioMux(prov)

	m.PIA0, err = pia.NewPIA0(m.Mem, m.CPU, prov, mux)
	if err != nil {
		return nil, err
	}

	m.PIA1, err = pia.NewPIA1(m.Mem, prov, m.VDG, mux)
	if err != nil {
		return nil, err
	}

	m.CPU.Reset(true)

	return m, nil
}

// Ticks implements random.Source with the instruction counter.
func (m *Machine) Ticks() uint64 {
	return m.steps
}

// Step runs one scheduler iteration: a single CPU instruction plus the
// peripheral housekeeping that hangs off the instruction count. The CPU's
// run state is returned; an Exception state freezes the CPU but the
// machine (and its reset button) keeps running.
func (m *Machine) Step() (cpu.RunState, error) {
	state, err := m.CPU.Step()
	if err != nil {
		// an illegal decode is a property of the running program, not of
		// the emulator: log it and carry on in the frozen state
		logger.Logf("machine", "cpu exception at %#04x: %v", m.CPU.LastPC, err)
	}

	m.steps++

	m.pollReset()
	m.pollFunctionKey()

	m.renderCount++
	if m.renderCount >= vdgRenderCycles {
		m.renderCount = 0
		m.VDG.Render()
		m.PIA0.VSyncIRQ()
	}

	return state, err
}

// Run executes the steady-state loop until the context is cancelled. The
// first step out of reset releases the RESET line so the CPU starts from
// the vector the ROM installed.
func (m *Machine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := m.Step(); err != nil {
			// keep running; only reset recovers the CPU
			continue
		}

		if m.steps%paceBatch == 0 {
			time.Sleep(stepTime * paceBatch)
		}
	}
}

// pollReset samples the reset button. A short press pulses the CPU's
// RESET line; a long press additionally spoils the cold start flag so the
// ROM performs a full power-on initialisation.
func (m *Machine) pollReset() {
	switch m.resetState() {
	case 0:
		m.CPU.Reset(false)

	case 2:
		m.Mem.Poke(memorymap.ColdStartFlag, coldStartValue)
		logger.Log("machine", "forcing cold restart")
		fallthrough

	case 1:
		m.CPU.Reset(true)
	}
}

// resetState debounces the reset button: 0 for no press, 1 for a short
// press, 2 for a long press. Blocks for the duration of a press, matching
// the single-threaded scheduler model.
func (m *Machine) resetState() int {
	if m.Prov.ResetButton() {
		// active low: line high means not pressed
		return 0
	}

	start := m.Prov.SystemTimer()
	for !m.Prov.ResetButton() {
	}
	if m.Prov.SystemTimer()-start >= longResetDelay {
		return 2
	}
	return 1
}

// pollFunctionKey reads the PIA's function key latch and hands control to
// the loader hook on the escape key.
func (m *Machine) pollFunctionKey() {
	if m.PIA0.FunctionKey() == escapeLoader && m.Loader != nil {
		m.Loader()
	}
}
