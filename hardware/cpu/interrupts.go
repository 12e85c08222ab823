package cpu

// The CPU's input lines. Peripherals (and the scheduler) drive these
// setters; the CPU itself never calls into a peripheral. HALT, RESET, IRQ
// and FIRQ are level-driven and sampled once per Step. NMI is edge-driven:
// NMITrigger latches the edge and the latch is cleared when serviced.

// Halt asserts or releases the HALT line.
func (mc *CPU) Halt(assert bool) {
	mc.haltAsserted = assert
}

// Reset asserts or releases the RESET line. While asserted, every Step
// call reloads PC from the reset vector and reports the Reset state.
// Releasing the line lets the next Step begin execution from the vector.
func (mc *CPU) Reset(assert bool) {
	mc.resetAsserted = assert
	if assert {
		mc.ExceptionTag = ""
	}
}

// IRQ asserts or releases the maskable interrupt request line.
func (mc *CPU) IRQ(assert bool) {
	mc.irqAsserted = assert
}

// FIRQ asserts or releases the fast interrupt request line.
func (mc *CPU) FIRQ(assert bool) {
	mc.firqAsserted = assert
}

// NMITrigger latches a non-maskable interrupt edge. The interrupt is
// serviced on a later Step, and only once the stack pointer has been
// loaded since reset.
func (mc *CPU) NMITrigger() {
	mc.nmiLatched = true
}
