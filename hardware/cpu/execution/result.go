package execution

import (
	"github.com/mjsallard/dragon6809/hardware/cpu/instructions"
)

// Result records what happened during one CPU.Step call.
//
// A Result is updated as decoding and execution proceeds; Final is false
// until the step has completely finished, at which point every other field
// is meaningful. A Defn of nil means no opcode has been decoded yet, which
// is the case for a step that served only to service an interrupt.
type Result struct {
	// the instruction that was decoded, nil if this step only serviced an
	// interrupt
	Defn *instructions.Definition

	// the address the instruction (or the interrupt's vector fetch) began at
	Address uint16

	// the number of instruction bytes read, including any 0x10/0x11 prefix
	ByteCount int

	// the number of cycles this step actually took, including any
	// addressing-mode or taken-branch adjustment
	Cycles int

	// set when Defn is a conditional branch, to record whether it was taken
	BranchTaken bool

	// the interrupt serviced this step ("NMI", "FIRQ", "IRQ" or "" if none)
	Interrupt string

	// non-empty if the step ended in an error (an illegal decode that put the
	// CPU into Exception)
	Error string

	Final bool
}

// Reset clears r to its zero state, ready for the next step.
func (r *Result) Reset() {
	r.Defn = nil
	r.Address = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.BranchTaken = false
	r.Interrupt = ""
	r.Error = ""
	r.Final = false
}
