package cpu

import (
	"fmt"

	"github.com/mjsallard/dragon6809/hardware/cpu/registers"
)

// Flag evaluation. Eight-bit operations are computed in sixteen bits so the
// carry out of bit seven survives in bit eight; the sixteen-bit variants
// likewise compute in thirty-two bits.

func (mc *CPU) evalC(result uint16) {
	mc.CC.C = result&0x0100 == 0x0100
}

func (mc *CPU) evalC16(result uint32) {
	mc.CC.C = result&0x00010000 == 0x00010000
}

func (mc *CPU) evalZ(result uint16) {
	mc.CC.Z = result&0x00ff == 0
}

func (mc *CPU) evalZ16(result uint32) {
	mc.CC.Z = result&0x0000ffff == 0
}

func (mc *CPU) evalN(result uint16) {
	mc.CC.N = result&0x0080 == 0x0080
}

func (mc *CPU) evalN16(result uint32) {
	mc.CC.N = result&0x00008000 == 0x00008000
}

// evalV applies the two's-complement overflow rule. For subtraction the
// caller passes the complement of the subtrahend as op2.
func (mc *CPU) evalV(op1, op2 uint8, result uint16) {
	mc.CC.V = (uint16(op1)^result)&(uint16(op2)^result)&0x0080 == 0x0080
}

func (mc *CPU) evalV16(op1, op2 uint16, result uint32) {
	mc.CC.V = (uint32(op1)^result)&(uint32(op2)^result)&0x00008000 == 0x00008000
}

// evalH evaluates the half-carry out of bit three. Only meaningful (and
// only called) for ADD and ADC.
func (mc *CPU) evalH(op1, op2, result uint8) {
	mc.CC.H = (op1^op2^result)&0x10 == 0x10
}

// alu helpers, one per instruction family. Each returns the 8 bit result
// where there is one; flags are updated in place.

func (mc *CPU) adc(acc, v uint8) uint8 {
	var carry uint16
	if mc.CC.C {
		carry = 1
	}
	result := uint16(acc) + uint16(v) + carry
	mc.evalC(result)
	mc.evalZ(result)
	mc.evalN(result)
	mc.evalV(acc, v, result)
	mc.evalH(acc, v, uint8(result))
	return uint8(result)
}

func (mc *CPU) add(acc, v uint8) uint8 {
	result := uint16(acc) + uint16(v)
	mc.evalC(result)
	mc.evalZ(result)
	mc.evalN(result)
	mc.evalV(acc, v, result)
	mc.evalH(acc, v, uint8(result))
	return uint8(result)
}

func (mc *CPU) addd(word uint16) {
	acc := mc.D()
	result := uint32(acc) + uint32(word)
	mc.loadD(uint16(result))
	mc.evalC16(result)
	mc.evalZ16(result)
	mc.evalV16(acc, word, result)
	mc.evalN16(result)
}

func (mc *CPU) and(acc, v uint8) uint8 {
	result := acc & v
	mc.evalZ(uint16(result))
	mc.evalN(uint16(result))
	mc.CC.V = false
	return result
}

func (mc *CPU) asl(v uint8) uint8 {
	result := uint16(v) << 1
	mc.evalC(result)
	mc.evalZ(result)
	mc.evalN(result)
	mc.evalV(v, v, result)
	return uint8(result)
}

func (mc *CPU) asr(v uint8) uint8 {
	result := (v >> 1) | (v & 0x80)
	mc.CC.C = v&0x01 == 0x01
	mc.evalZ(uint16(result))
	mc.evalN(uint16(result))
	return result
}

func (mc *CPU) bit(acc, v uint8) {
	result := acc & v
	mc.evalZ(uint16(result))
	mc.evalN(uint16(result))
	mc.CC.V = false
}

func (mc *CPU) clr() uint8 {
	mc.CC.C = false
	mc.CC.V = false
	mc.CC.Z = true
	mc.CC.N = false
	return 0
}

func (mc *CPU) cmp(arg, v uint8) {
	result := uint16(arg) - uint16(v)
	mc.evalC(result)
	mc.evalZ(result)
	mc.evalN(result)
	mc.evalV(arg, ^v, result)
}

func (mc *CPU) cmp16(arg, word uint16) {
	result := uint32(arg) - uint32(word)
	mc.evalC16(result)
	mc.evalZ16(result)
	mc.evalV16(arg, ^word, result)
	mc.evalN16(result)
}

func (mc *CPU) com(v uint8) uint8 {
	result := ^v
	mc.CC.C = true
	mc.CC.V = false
	mc.evalZ(uint16(result))
	mc.evalN(uint16(result))
	return result
}

// daa applies the decimal-adjust nibble corrections to accumulator A,
// consulting the half-carry and carry flags left by the preceding addition.
func (mc *CPU) daa() {
	temp := uint16(mc.A.Value())
	highNibble := temp & 0xf0
	lowNibble := temp & 0x0f

	if lowNibble > 0x09 || mc.CC.H {
		temp += 0x06
	}
	if highNibble > 0x80 && lowNibble > 0x09 {
		temp += 0x60
	}
	if highNibble > 0x90 || mc.CC.C {
		temp += 0x60
	}

	mc.A.Load(uint8(temp))

	mc.evalC(temp)
	mc.evalZ(temp)
	mc.evalN(temp)
	mc.CC.V = false
}

func (mc *CPU) dec(v uint8) uint8 {
	result := uint16(v) - 1
	mc.evalV(v, 0xfe, result)
	mc.evalZ(result)
	mc.evalN(result)
	return uint8(result)
}

func (mc *CPU) eor(acc, v uint8) uint8 {
	result := acc ^ v
	mc.evalZ(uint16(result))
	mc.evalN(uint16(result))
	mc.CC.V = false
	return result
}

func (mc *CPU) inc(v uint8) uint8 {
	result := uint16(v) + 1
	mc.evalV(v, 1, result)
	mc.evalZ(result)
	mc.evalN(result)
	return uint8(result)
}

func (mc *CPU) lsr(v uint8) uint8 {
	result := (v >> 1) & 0x7f
	mc.CC.C = v&0x01 == 0x01
	mc.evalZ(uint16(result))
	mc.CC.N = false
	return result
}

func (mc *CPU) neg(v uint8) uint8 {
	result := uint16(0) - uint16(v)
	mc.evalC(result)
	mc.evalZ(result)
	mc.evalN(result)
	mc.evalV(0, ^v, result)
	return uint8(result)
}

func (mc *CPU) or(acc, v uint8) uint8 {
	result := acc | v
	mc.CC.V = false
	mc.evalZ(uint16(result))
	mc.evalN(uint16(result))
	return result
}

func (mc *CPU) rol(v uint8) uint8 {
	result := uint16(v) << 1
	if mc.CC.C {
		result |= 0x0001
	}
	mc.evalC(result)
	mc.evalV(v, v, result)
	mc.evalZ(result)
	mc.evalN(result)
	return uint8(result)
}

func (mc *CPU) ror(v uint8) uint8 {
	result := uint16(v)
	if mc.CC.C {
		result |= 0x0100
	}
	mc.CC.C = v&0x01 == 0x01
	result >>= 1
	mc.evalZ(result)
	mc.evalN(result)
	return uint8(result)
}

func (mc *CPU) sbc(acc, v uint8) uint8 {
	var carry uint16
	if mc.CC.C {
		carry = 1
	}
	result := uint16(acc) - uint16(v) - carry
	mc.evalC(result)
	mc.evalZ(result)
	mc.evalN(result)
	mc.evalV(acc, ^v, result)
	return uint8(result)
}

func (mc *CPU) sex() {
	if mc.B.Value()&0x80 == 0x80 {
		mc.A.Load(0xff)
	} else {
		mc.A.Load(0x00)
	}
	mc.CC.V = false
	mc.evalZ(uint16(mc.A.Value()))
	mc.evalN(uint16(mc.A.Value()))
}

func (mc *CPU) sub(acc, v uint8) uint8 {
	result := uint16(acc) - uint16(v)
	mc.evalC(result)
	mc.evalZ(result)
	mc.evalN(result)
	mc.evalV(acc, ^v, result)
	return uint8(result)
}

func (mc *CPU) subd(word uint16) {
	acc := mc.D()
	result := uint32(acc) - uint32(word)
	mc.loadD(uint16(result))
	mc.evalC16(result)
	mc.evalZ16(result)
	mc.evalV16(acc, ^word, result)
	mc.evalN16(result)
}

func (mc *CPU) tst(v uint8) {
	mc.evalZ(uint16(v))
	mc.evalN(uint16(v))
	mc.CC.V = false
}

// Inter-register transfer numbering, as used by the EXG and TFR postbyte
// nibbles. Mixing an 8 bit with a 16 bit register has undefined hardware
// behaviour and is not special-cased: the 8 bit registers simply truncate.

func (mc *CPU) readInterReg(reg uint8) (uint16, error) {
	switch reg {
	case 0:
		return mc.D(), nil
	case 1:
		return mc.X.Value(), nil
	case 2:
		return mc.Y.Value(), nil
	case 3:
		return mc.U.Value(), nil
	case 4:
		return mc.S.Value(), nil
	case 5:
		return mc.PC.Value(), nil
	case 8:
		return uint16(mc.A.Value()), nil
	case 9:
		return uint16(mc.B.Value()), nil
	case 10:
		return uint16(mc.CC.Value()), nil
	case 11:
		return uint16(mc.DP.Value()), nil
	}
	_, err := mc.exception(ErrIllegalInterRegister, fmt.Sprintf("read register %d", reg))
	return 0, err
}

func (mc *CPU) writeInterReg(reg uint8, data uint16) error {
	switch reg {
	case 0:
		mc.loadD(data)
	case 1:
		mc.X.Load(data)
	case 2:
		mc.Y.Load(data)
	case 3:
		mc.U.Load(data)
	case 4:
		mc.S.Load(data)
		mc.nmiArmed = true
	case 5:
		mc.PC.Load(data)
	case 8:
		mc.A.Load(uint8(data))
	case 9:
		mc.B.Load(uint8(data))
	case 10:
		mc.CC.Load(uint8(data))
	case 11:
		mc.DP.Load(uint8(data))
	default:
		_, err := mc.exception(ErrIllegalInterRegister, fmt.Sprintf("write register %d", reg))
		return err
	}
	return nil
}

func (mc *CPU) exg(postbyte uint8) error {
	src := (postbyte >> 4) & 0x0f
	dst := postbyte & 0x0f

	a, err := mc.readInterReg(src)
	if err != nil {
		return err
	}
	b, err := mc.readInterReg(dst)
	if err != nil {
		return err
	}
	if err := mc.writeInterReg(dst, a); err != nil {
		return err
	}
	return mc.writeInterReg(src, b)
}

func (mc *CPU) tfr(postbyte uint8) error {
	src := (postbyte >> 4) & 0x0f
	dst := postbyte & 0x0f

	v, err := mc.readInterReg(src)
	if err != nil {
		return err
	}
	return mc.writeInterReg(dst, v)
}

// Push and pull postbyte bitmaps. Push order (highest bit first) is
// PC, U/S, Y, X, DP, B, A, CC; pull order is the reverse. Each 16 bit
// register transferred costs an extra cycle, plus one for the postbyte.

const (
	stackCC = 0x01
	stackA  = 0x02
	stackB  = 0x04
	stackDP = 0x08
	stackX  = 0x10
	stackY  = 0x20
	stackSU = 0x40
	stackPC = 0x80
)

// push stacks the registers named by the postbyte bitmap on sp. other is
// the stack register not being pushed onto (U for PSHS, S for PSHU).
func (mc *CPU) push(sp, other *registers.Reg16, list uint8) {
	mc.LastResult.Cycles++

	if list&stackPC == stackPC {
		mc.LastResult.Cycles++
		mc.push16(sp, mc.PC.Value())
	}
	if list&stackSU == stackSU {
		mc.LastResult.Cycles++
		mc.push16(sp, other.Value())
	}
	if list&stackY == stackY {
		mc.LastResult.Cycles++
		mc.push16(sp, mc.Y.Value())
	}
	if list&stackX == stackX {
		mc.LastResult.Cycles++
		mc.push16(sp, mc.X.Value())
	}
	if list&stackDP == stackDP {
		mc.push8(sp, mc.DP.Value())
	}
	if list&stackB == stackB {
		mc.push8(sp, mc.B.Value())
	}
	if list&stackA == stackA {
		mc.push8(sp, mc.A.Value())
	}
	if list&stackCC == stackCC {
		mc.push8(sp, mc.CC.Value())
	}
}

// pull restores the registers named by the postbyte bitmap from sp. A pull
// that loads the other stack pointer arms NMI, the same as any other load
// of S.
func (mc *CPU) pull(sp, other *registers.Reg16, list uint8) {
	mc.LastResult.Cycles++

	if list&stackCC == stackCC {
		mc.CC.Load(mc.pull8(sp))
	}
	if list&stackA == stackA {
		mc.A.Load(mc.pull8(sp))
	}
	if list&stackB == stackB {
		mc.B.Load(mc.pull8(sp))
	}
	if list&stackDP == stackDP {
		mc.DP.Load(mc.pull8(sp))
	}
	if list&stackX == stackX {
		mc.LastResult.Cycles++
		mc.X.Load(mc.pull16(sp))
	}
	if list&stackY == stackY {
		mc.LastResult.Cycles++
		mc.Y.Load(mc.pull16(sp))
	}
	if list&stackSU == stackSU {
		mc.LastResult.Cycles++
		other.Load(mc.pull16(sp))
		if other == &mc.S {
			mc.nmiArmed = true
		}
	}
	if list&stackPC == stackPC {
		mc.LastResult.Cycles++
		mc.PC.Load(mc.pull16(sp))
	}
}

// rti pops the interrupt frame. The E flag in the popped CC decides
// whether the frame is an entire-state frame (NMI, IRQ, SWIx, CWAI) or the
// short PC-and-CC frame pushed by FIRQ.
func (mc *CPU) rti() {
	mc.CC.Load(mc.pull8(&mc.S))

	if mc.CC.E {
		mc.A.Load(mc.pull8(&mc.S))
		mc.B.Load(mc.pull8(&mc.S))
		mc.DP.Load(mc.pull8(&mc.S))
		mc.X.Load(mc.pull16(&mc.S))
		mc.Y.Load(mc.pull16(&mc.S))
		mc.U.Load(mc.pull16(&mc.S))
		mc.LastResult.Cycles += 9
	}

	mc.PC.Load(mc.pull16(&mc.S))
}

// swi services one of the three software interrupts: entire state stacked
// with E set, then the vector fetch. Only SWI itself masks IRQ and FIRQ.
func (mc *CPU) swi(id int, vector uint16) error {
	mc.CC.E = true
	mc.pushEntire(&mc.S)

	switch id {
	case 1:
		mc.CC.I = true
		mc.CC.F = true
	case 2, 3:
		// no masking
	default:
		_, err := mc.exception(ErrIllegalSWI, fmt.Sprintf("swi %d", id))
		return err
	}

	mc.PC.Load(mc.read16(vector))
	return nil
}

// cwai ANDs the immediate operand into CC, stacks the entire state with E
// set, and suspends the CPU until an unmasked interrupt.
func (mc *CPU) cwai(v uint8) {
	mc.CC.And(v)
	mc.CC.E = true
	mc.pushEntire(&mc.S)
	mc.State = Sync
}

// branchTaken evaluates the condition for the conditional branch opcodes
// 0x22..0x2f (the long variants share the same low byte).
func (mc *CPU) branchTaken(opcode uint8) bool {
	switch opcode & 0x0f {
	case 0x2: // BHI
		return !mc.CC.C && !mc.CC.Z
	case 0x3: // BLS
		return mc.CC.C || mc.CC.Z
	case 0x4: // BCC / BHS
		return !mc.CC.C
	case 0x5: // BCS / BLO
		return mc.CC.C
	case 0x6: // BNE
		return !mc.CC.Z
	case 0x7: // BEQ
		return mc.CC.Z
	case 0x8: // BVC
		return !mc.CC.V
	case 0x9: // BVS
		return mc.CC.V
	case 0xa: // BPL
		return !mc.CC.N
	case 0xb: // BMI
		return mc.CC.N
	case 0xc: // BGE
		return mc.CC.N == mc.CC.V
	case 0xd: // BLT
		return mc.CC.N != mc.CC.V
	case 0xe: // BGT
		return mc.CC.N == mc.CC.V && !mc.CC.Z
	case 0xf: // BLE
		return mc.CC.N != mc.CC.V || mc.CC.Z
	}
	return false
}
