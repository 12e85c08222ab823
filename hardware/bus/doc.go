// Package bus implements the Dragon 32's 64KiB memory bus: a fixed array of
// cells, each carrying a RAM/ROM/IO classification and an optional trap.
// The bus itself knows nothing about SAM, PIA or VDG; those peripherals
// register traps on the address ranges they own at boot (see
// hardware/machine), and the bus dispatches read/write cycles to them as
// the CPU core reads and writes through its memory.Read/memory.Write calls.
package bus
