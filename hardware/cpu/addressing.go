package cpu

import (
	"fmt"

	"github.com/mjsallard/dragon6809/hardware/cpu/instructions"
	"github.com/mjsallard/dragon6809/hardware/cpu/registers"
)

// sext8 sign-extends a byte to sixteen bits.
func sext8(v uint8) uint16 {
	return uint16(int16(int8(v)))
}

// effectiveAddress resolves the instruction's addressing mode, consuming
// post-opcode bytes and advancing PC as required. Cycle and byte-count
// adjustments for the indexed sub-modes are accumulated into LastResult.
//
// For the two immediate modes the returned address is the operand's own
// location in the instruction stream, so the execute stage reads operands
// the same way for every mode.
func (mc *CPU) effectiveAddress(defn *instructions.Definition) (uint16, error) {
	switch defn.Mode {
	case instructions.Inherent:
		return 0, nil

	case instructions.Direct:
		return uint16(mc.DP.Value())<<8 | uint16(mc.fetch()), nil

	case instructions.Relative:
		offset := sext8(mc.fetch())
		return mc.PC.Value() + offset, nil

	case instructions.LongRelative:
		offset := uint16(mc.fetch())<<8 | uint16(mc.fetch())
		return mc.PC.Value() + offset, nil

	case instructions.Extended:
		return uint16(mc.fetch())<<8 | uint16(mc.fetch()), nil

	case instructions.Immediate:
		ea := mc.PC.Value()
		mc.PC.Add(1)
		return ea, nil

	case instructions.LongImmediate:
		ea := mc.PC.Value()
		mc.PC.Add(2)
		return ea, nil

	case instructions.Indexed:
		return mc.indexedAddress()
	}

	return 0, nil
}

// indexedAddress decodes the indexed-mode postbyte: base register selection,
// 5-bit offset or sub-mode dispatch, and optional indirection.
func (mc *CPU) indexedAddress() (uint16, error) {
	postbyte := mc.fetch()

	var base *registers.Reg16
	switch postbyte & instructions.PostbyteRegister {
	case 0x00:
		base = &mc.X
	case 0x20:
		base = &mc.Y
	case 0x40:
		base = &mc.U
	case 0x60:
		base = &mc.S
	}

	// a clear bit 7 means the low five bits are a signed offset applied to
	// the base register directly
	if postbyte&instructions.Postbyte5BitOffset == 0 {
		offset := uint16(postbyte & 0x1f)
		if offset&0x10 == 0x10 {
			offset |= 0xfff0
		}
		mc.LastResult.Cycles++
		return base.Value() + offset, nil
	}

	sub := instructions.IndexedSubModes[postbyte&instructions.PostbyteSubMode]
	if !sub.Defined {
		_, err := mc.exception(ErrIllegalIndexedMode,
			fmt.Sprintf("indexed postbyte %#02x", postbyte))
		return 0, err
	}

	indirect := postbyte&instructions.PostbyteIndirect == instructions.PostbyteIndirect

	if indirect {
		mc.LastResult.Cycles += sub.CyclesIndirect
	} else {
		mc.LastResult.Cycles += sub.Cycles
	}
	mc.LastResult.ByteCount += sub.ExtraBytes

	var ea uint16

	switch postbyte & instructions.PostbyteSubMode {
	case 0x0: // ,R+
		ea = base.Value()
		base.Add(1)

	case 0x1: // ,R++
		ea = base.Value()
		base.Add(2)

	case 0x2: // ,-R
		base.Add(-1)
		ea = base.Value()

	case 0x3: // ,--R
		base.Add(-2)
		ea = base.Value()

	case 0x4: // ,R
		ea = base.Value()

	case 0x5: // B,R
		ea = base.Value() + sext8(mc.B.Value())

	case 0x6: // A,R
		ea = base.Value() + sext8(mc.A.Value())

	case 0x8: // n8,R
		ea = base.Value() + sext8(mc.fetch())

	case 0x9: // n16,R
		offset := uint16(mc.fetch())<<8 | uint16(mc.fetch())
		ea = base.Value() + offset

	case 0xb: // D,R
		ea = base.Value() + mc.D()

	case 0xc: // n8,PC
		offset := sext8(mc.fetch())
		ea = mc.PC.Value() + offset

	case 0xd: // n16,PC
		offset := uint16(mc.fetch())<<8 | uint16(mc.fetch())
		ea = mc.PC.Value() + offset

	case 0xf: // [n16]
		ea = uint16(mc.fetch())<<8 | uint16(mc.fetch())
		indirect = true
	}

	if indirect {
		ea = mc.read16(ea)
	}

	return ea, nil
}
