// Package hardware is the base package for the Dragon 32 emulation. Its
// sub-packages contain everything required for a headless emulation: the
// bus, the MC6809E core, and the SAM/PIA/VDG peripherals, tied together by
// hardware/machine's scheduler. From here the emulation can be stepped one
// CPU instruction at a time (see hardware/machine.Machine.Step), or run
// continuously until its context is cancelled (Machine.Run).
package hardware
