package cpu

import (
	"fmt"

	"github.com/mjsallard/dragon6809/hardware/cpu/instructions"
	"github.com/mjsallard/dragon6809/hardware/memorymap"
)

// execute dispatches the decoded instruction. The effective address has
// already been resolved; for immediate modes it points into the
// instruction stream, so operand reads look the same for every mode.
func (mc *CPU) execute(defn *instructions.Definition, ea uint16) error {
	switch defn.Mnemonic {
	// arithmetic
	case "ABX":
		mc.X.Load(mc.X.Value() + uint16(mc.B.Value()))

	case "ADCA":
		mc.A.Load(mc.adc(mc.A.Value(), mc.read8(ea)))
	case "ADCB":
		mc.B.Load(mc.adc(mc.B.Value(), mc.read8(ea)))
	case "ADDA":
		mc.A.Load(mc.add(mc.A.Value(), mc.read8(ea)))
	case "ADDB":
		mc.B.Load(mc.add(mc.B.Value(), mc.read8(ea)))
	case "ADDD":
		mc.addd(mc.read16(ea))

	case "SUBA":
		mc.A.Load(mc.sub(mc.A.Value(), mc.read8(ea)))
	case "SUBB":
		mc.B.Load(mc.sub(mc.B.Value(), mc.read8(ea)))
	case "SUBD":
		mc.subd(mc.read16(ea))

	case "SBCA":
		mc.A.Load(mc.sbc(mc.A.Value(), mc.read8(ea)))
	case "SBCB":
		mc.B.Load(mc.sbc(mc.B.Value(), mc.read8(ea)))

	case "MUL":
		result := uint16(mc.A.Value()) * uint16(mc.B.Value())
		mc.loadD(result)
		mc.evalZ16(uint32(result))
		mc.CC.C = result&0x0080 == 0x0080

	case "DAA":
		mc.daa()

	case "SEX":
		mc.sex()

	// comparison and test
	case "CMPA":
		mc.cmp(mc.A.Value(), mc.read8(ea))
	case "CMPB":
		mc.cmp(mc.B.Value(), mc.read8(ea))
	case "CMPD":
		mc.cmp16(mc.D(), mc.read16(ea))
	case "CMPX":
		mc.cmp16(mc.X.Value(), mc.read16(ea))
	case "CMPY":
		mc.cmp16(mc.Y.Value(), mc.read16(ea))
	case "CMPU":
		mc.cmp16(mc.U.Value(), mc.read16(ea))
	case "CMPS":
		mc.cmp16(mc.S.Value(), mc.read16(ea))

	case "BITA":
		mc.bit(mc.A.Value(), mc.read8(ea))
	case "BITB":
		mc.bit(mc.B.Value(), mc.read8(ea))

	case "TST":
		mc.tst(mc.read8(ea))
	case "TSTA":
		mc.tst(mc.A.Value())
	case "TSTB":
		mc.tst(mc.B.Value())

	// logic
	case "ANDA":
		mc.A.Load(mc.and(mc.A.Value(), mc.read8(ea)))
	case "ANDB":
		mc.B.Load(mc.and(mc.B.Value(), mc.read8(ea)))
	case "ORA":
		mc.A.Load(mc.or(mc.A.Value(), mc.read8(ea)))
	case "ORB":
		mc.B.Load(mc.or(mc.B.Value(), mc.read8(ea)))
	case "EORA":
		mc.A.Load(mc.eor(mc.A.Value(), mc.read8(ea)))
	case "EORB":
		mc.B.Load(mc.eor(mc.B.Value(), mc.read8(ea)))

	case "ANDCC":
		mc.CC.And(mc.read8(ea))
	case "ORCC":
		mc.CC.Or(mc.read8(ea))

	// read-modify-write
	case "NEG":
		mc.write8(ea, mc.neg(mc.read8(ea)))
	case "NEGA":
		mc.A.Load(mc.neg(mc.A.Value()))
	case "NEGB":
		mc.B.Load(mc.neg(mc.B.Value()))

	case "COM":
		mc.write8(ea, mc.com(mc.read8(ea)))
	case "COMA":
		mc.A.Load(mc.com(mc.A.Value()))
	case "COMB":
		mc.B.Load(mc.com(mc.B.Value()))

	case "LSR":
		mc.write8(ea, mc.lsr(mc.read8(ea)))
	case "LSRA":
		mc.A.Load(mc.lsr(mc.A.Value()))
	case "LSRB":
		mc.B.Load(mc.lsr(mc.B.Value()))

	case "ROR":
		mc.write8(ea, mc.ror(mc.read8(ea)))
	case "RORA":
		mc.A.Load(mc.ror(mc.A.Value()))
	case "RORB":
		mc.B.Load(mc.ror(mc.B.Value()))

	case "ASR":
		mc.write8(ea, mc.asr(mc.read8(ea)))
	case "ASRA":
		mc.A.Load(mc.asr(mc.A.Value()))
	case "ASRB":
		mc.B.Load(mc.asr(mc.B.Value()))

	case "ASL":
		mc.write8(ea, mc.asl(mc.read8(ea)))
	case "ASLA":
		mc.A.Load(mc.asl(mc.A.Value()))
	case "ASLB":
		mc.B.Load(mc.asl(mc.B.Value()))

	case "ROL":
		mc.write8(ea, mc.rol(mc.read8(ea)))
	case "ROLA":
		mc.A.Load(mc.rol(mc.A.Value()))
	case "ROLB":
		mc.B.Load(mc.rol(mc.B.Value()))

	case "DEC":
		mc.write8(ea, mc.dec(mc.read8(ea)))
	case "DECA":
		mc.A.Load(mc.dec(mc.A.Value()))
	case "DECB":
		mc.B.Load(mc.dec(mc.B.Value()))

	case "INC":
		mc.write8(ea, mc.inc(mc.read8(ea)))
	case "INCA":
		mc.A.Load(mc.inc(mc.A.Value()))
	case "INCB":
		mc.B.Load(mc.inc(mc.B.Value()))

	case "CLR":
		mc.write8(ea, mc.clr())
	case "CLRA":
		mc.A.Load(mc.clr())
	case "CLRB":
		mc.B.Load(mc.clr())

	// loads and stores
	case "LDA":
		mc.A.Load(mc.read8(ea))
		mc.tst(mc.A.Value())
	case "LDB":
		mc.B.Load(mc.read8(ea))
		mc.tst(mc.B.Value())
	case "LDD":
		mc.loadD(mc.read16(ea))
		mc.load16Flags(mc.D())
	case "LDX":
		mc.X.Load(mc.read16(ea))
		mc.load16Flags(mc.X.Value())
	case "LDY":
		mc.Y.Load(mc.read16(ea))
		mc.load16Flags(mc.Y.Value())
	case "LDU":
		mc.U.Load(mc.read16(ea))
		mc.load16Flags(mc.U.Value())
	case "LDS":
		mc.S.Load(mc.read16(ea))
		mc.load16Flags(mc.S.Value())
		mc.nmiArmed = true

	case "STA":
		mc.write8(ea, mc.A.Value())
		mc.tst(mc.A.Value())
	case "STB":
		mc.write8(ea, mc.B.Value())
		mc.tst(mc.B.Value())
	case "STD":
		mc.write16(ea, mc.D())
		mc.load16Flags(mc.D())
	case "STX":
		mc.write16(ea, mc.X.Value())
		mc.load16Flags(mc.X.Value())
	case "STY":
		mc.write16(ea, mc.Y.Value())
		mc.load16Flags(mc.Y.Value())
	case "STU":
		mc.write16(ea, mc.U.Value())
		mc.load16Flags(mc.U.Value())
	case "STS":
		mc.write16(ea, mc.S.Value())
		mc.load16Flags(mc.S.Value())

	// load effective address
	case "LEAX":
		mc.X.Load(ea)
		mc.evalZ16(uint32(ea))
	case "LEAY":
		mc.Y.Load(ea)
		mc.evalZ16(uint32(ea))
	case "LEAS":
		mc.S.Load(ea)
		mc.nmiArmed = true
	case "LEAU":
		mc.U.Load(ea)

	// inter-register
	case "EXG":
		return mc.exg(mc.read8(ea))
	case "TFR":
		return mc.tfr(mc.read8(ea))

	// stack
	case "PSHS":
		mc.push(&mc.S, &mc.U, mc.read8(ea))
	case "PSHU":
		mc.push(&mc.U, &mc.S, mc.read8(ea))
	case "PULS":
		mc.pull(&mc.S, &mc.U, mc.read8(ea))
	case "PULU":
		mc.pull(&mc.U, &mc.S, mc.read8(ea))

	// flow control
	case "JMP":
		mc.PC.Load(ea)

	case "JSR", "BSR", "LBSR":
		mc.push16(&mc.S, mc.PC.Value())
		mc.PC.Load(ea)

	case "RTS":
		mc.PC.Load(mc.pull16(&mc.S))

	case "RTI":
		mc.rti()

	case "BRA", "LBRA":
		mc.PC.Load(ea)

	case "BRN", "LBRN":
		// branch never

	case "BHI", "BLS", "BCC", "BCS", "BNE", "BEQ", "BVC", "BVS",
		"BPL", "BMI", "BGE", "BLT", "BGT", "BLE":
		if mc.branchTaken(defn.Opcode) {
			mc.PC.Load(ea)
			mc.LastResult.BranchTaken = true
		}

	case "LBHI", "LBLS", "LBCC", "LBCS", "LBNE", "LBEQ", "LBVC", "LBVS",
		"LBPL", "LBMI", "LBGE", "LBLT", "LBGT", "LBLE":
		if mc.branchTaken(defn.Opcode) {
			mc.PC.Load(ea)
			mc.LastResult.BranchTaken = true
			mc.LastResult.Cycles++
		}

	// interrupt instructions
	case "SWI":
		return mc.swi(1, memorymap.VectorSWI)
	case "SWI2":
		return mc.swi(2, memorymap.VectorSWI2)
	case "SWI3":
		return mc.swi(3, memorymap.VectorSWI3)

	case "CWAI":
		mc.cwai(mc.read8(ea))

	case "SYNC":
		mc.State = Sync

	case "NOP":
		// nothing

	default:
		_, err := mc.exception(ErrIllegalOpcode, fmt.Sprintf("unhandled mnemonic %s", defn.Mnemonic))
		return err
	}

	return nil
}

// load16Flags applies the common flag rule for 16 bit loads and stores:
// N and Z from the value, V cleared.
func (mc *CPU) load16Flags(v uint16) {
	mc.evalZ16(uint32(v))
	mc.evalN16(uint32(v))
	mc.CC.V = false
}
