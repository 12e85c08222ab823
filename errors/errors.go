// Package errors collects the sentinel errors used across the emulation
// core, following the stdlib errors.New/%w-wrapping idiom rather than a
// bespoke curated-error type: callers compare with errors.Is and wrap with
// fmt.Errorf("...: %w", ...) exactly as they would with any other Go error.
package errors

import "errors"

// Bus errors. A real 6809 has no bus-error trap; these surface to the Go
// caller of the bus operation, never to the emulated CPU.
var (
	// ErrAddressRange is returned by Bus.Load when the data would run past
	// the top of the 64KiB address space, and by Bus.DefineIO for an
	// inverted start/end pair. Single-address reads and writes cannot fail
	// this way: a uint16 address is always in range.
	ErrAddressRange = errors.New("bus: address out of range")

	// ErrRomProtected is returned by Write when the target cell is marked ROM.
	ErrRomProtected = errors.New("bus: write to read-only memory")

	// ErrHandlerBindFailed is returned by Bus.DefineIO when no trap is
	// supplied to bind.
	ErrHandlerBindFailed = errors.New("bus: trap registration failed")
)

// CPU exceptions. Each sets the CPU's run state to
// Exception and halts progress until reset.
var (
	// ErrIllegalOpcode covers unrecognised opcodes in the primary table and
	// in both the 0x10 and 0x11 prefixed tables.
	ErrIllegalOpcode = errors.New("cpu: illegal opcode")

	// ErrIllegalIndexedMode covers an indexed postbyte sub-mode value with
	// no defined meaning.
	ErrIllegalIndexedMode = errors.New("cpu: illegal indexed addressing sub-mode")

	// ErrIllegalInterRegister covers an EXG/TFR postbyte naming an undefined
	// register number.
	ErrIllegalInterRegister = errors.New("cpu: illegal inter-register transfer operand")

	// ErrIllegalSWI covers an internal request to service an SWI variant
	// that doesn't exist. The opcode tables only ever produce 1, 2 or 3.
	ErrIllegalSWI = errors.New("cpu: illegal software interrupt number")
)

// Cassette / storage errors, produced by implementations of
// host.CassetteFile. These are treated as non-fatal: the PIA's bit pump
// substitutes leader-tone padding for any failed read and the emulated
// machine keeps running.
var (
	// ErrCassetteNotMounted is returned by CassetteFile.ReadByte when the
	// file has not been opened (the cassette motor has never been switched
	// on).
	ErrCassetteNotMounted = errors.New("cassette: no file mounted")

	// ErrBlockDeviceRead is returned by CassetteFile.Open when the
	// underlying read of the image fails.
	ErrBlockDeviceRead = errors.New("storage: block read failed")
)
