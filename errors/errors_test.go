package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/mjsallard/dragon6809/errors"
	"github.com/mjsallard/dragon6809/test"
)

func TestWrapping(t *testing.T) {
	err := fmt.Errorf("write 0xc000: %w", errors.ErrRomProtected)
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrRomProtected), true)
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrAddressRange), false)
}

func TestDistinctSentinels(t *testing.T) {
	test.ExpectInequality(t, errors.ErrIllegalOpcode, errors.ErrIllegalIndexedMode)
	test.ExpectInequality(t, errors.ErrIllegalInterRegister, errors.ErrIllegalSWI)
}
