// Package cpu implements the MC6809E instruction set: registers, the eight
// addressing modes (including postbyte-driven indexed addressing with
// optional indirection), interrupt prioritisation and servicing, and the
// fetch-decode-execute cycle exposed as a single Step call.
//
// The CPU never talks to peripherals directly. It reads and writes the bus
// it was constructed with; peripherals observe CPU activity only through
// bus traps, and drive the CPU only through the IRQ/FIRQ/NMI setter methods
// documented in interrupts.go. This keeps the cyclic PIA<->CPU relationship
// one-directional in code even though the hardware itself is not.
package cpu
