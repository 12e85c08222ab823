package registers_test

import (
	"testing"

	"github.com/mjsallard/dragon6809/hardware/cpu/registers"
	"github.com/mjsallard/dragon6809/test"
)

func TestReg8(t *testing.T) {
	a := registers.NewReg8("A")
	a.Load(0x80)
	test.ExpectEquality(t, a.IsNegative(), true)
	test.ExpectEquality(t, a.IsZero(), false)
	test.ExpectEquality(t, a.Label(), "A")

	a.Load(0)
	test.ExpectEquality(t, a.IsZero(), true)
}

func TestReg16(t *testing.T) {
	x := registers.NewReg16("X")
	x.Load(0x2000)
	x.Add(1)
	test.ExpectEquality(t, x.Value(), uint16(0x2001))
	test.ExpectEquality(t, x.Hi(), uint8(0x20))
	test.ExpectEquality(t, x.Lo(), uint8(0x01))

	x.Load(0xffff)
	x.Add(1)
	test.ExpectEquality(t, x.Value(), uint16(0x0000))
}

func TestCCPacking(t *testing.T) {
	var cc registers.CC
	cc.Load(0xff)
	test.ExpectEquality(t, cc.E, true)
	test.ExpectEquality(t, cc.C, true)
	test.ExpectEquality(t, cc.Value(), uint8(0xff))

	cc.Load(0)
	cc.N = true
	cc.Z = true
	test.ExpectEquality(t, cc.Value(), uint8(0x0c))

	cc.And(0x00)
	test.ExpectEquality(t, cc.Value(), uint8(0x00))

	cc.Or(0x50)
	test.ExpectEquality(t, cc.F, true)
	test.ExpectEquality(t, cc.I, true)
}
