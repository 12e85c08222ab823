package cpu

import (
	"errors"
	"fmt"

	errs "github.com/mjsallard/dragon6809/errors"
)

// RunState is the state a Step call left the CPU in.
type RunState int

const (
	// Exec: the step executed an instruction (or serviced an interrupt).
	Exec RunState = iota

	// Halted: the HALT line is asserted; no instruction was executed.
	Halted

	// Sync: the CPU is waiting for an interrupt after SYNC or CWAI.
	Sync

	// Reset: the RESET line is asserted; the CPU is held at the reset
	// vector until the line is released.
	Reset

	// Exception: an illegal decode was encountered. Only a reset recovers.
	Exception
)

func (s RunState) String() string {
	switch s {
	case Exec:
		return "exec"
	case Halted:
		return "halted"
	case Sync:
		return "sync"
	case Reset:
		return "reset"
	case Exception:
		return "exception"
	default:
		return "unknown"
	}
}

// Exported sentinels, re-exported from the errors package for the
// convenience of callers that already import this package.
var (
	ErrIllegalOpcode        = errs.ErrIllegalOpcode
	ErrIllegalIndexedMode   = errs.ErrIllegalIndexedMode
	ErrIllegalInterRegister = errs.ErrIllegalInterRegister
	ErrIllegalSWI           = errs.ErrIllegalSWI
)

// ExceptionError is returned by Step when the CPU enters the Exception
// state. Tag identifies the decode site; Err is one of the illegal-decode
// sentinels and is exposed through Unwrap for errors.Is comparison.
type ExceptionError struct {
	Tag string
	Err error
}

func (e ExceptionError) Error() string {
	return fmt.Sprintf("%v (%s)", e.Err, e.Tag)
}

func (e ExceptionError) Unwrap() error {
	return e.Err
}

// exception transitions the CPU into the Exception state, recording the
// decode site tag, and builds the error Step returns.
func (mc *CPU) exception(sentinel error, tag string) (RunState, error) {
	mc.State = Exception
	mc.ExceptionTag = tag
	err := ExceptionError{Tag: tag, Err: sentinel}
	mc.LastResult.Error = err.Error()
	mc.LastResult.Final = true
	return mc.State, err
}

// IsException reports whether err is an ExceptionError.
func IsException(err error) bool {
	var e ExceptionError
	return errors.As(err, &e)
}
