package instructions

// Indexed postbyte bit fields. If Postbyte5BitOffset is clear the low five
// bits are a signed offset from the base register; otherwise the low four
// bits select one of the sub-modes below and bit four requests indirection.
const (
	Postbyte5BitOffset = 0x80
	PostbyteRegister   = 0x60
	PostbyteIndirect   = 0x10
	PostbyteSubMode    = 0x0f
)

// IndexedSubMode describes one of the sixteen indexed-addressing sub-mode
// encodings: how many post-opcode bytes it consumes and the cycle cost of
// its direct and indirect variants, as quoted by the data sheet. Sub-modes
// the data sheet leaves undefined have Defined false.
type IndexedSubMode struct {
	Mnemonic       string
	Defined        bool
	ExtraBytes     int
	Cycles         int
	CyclesIndirect int
}

// IndexedSubModes is indexed by the low four bits of the postbyte.
var IndexedSubModes = [16]IndexedSubMode{
	0x0: {Mnemonic: ",R+", Defined: true, Cycles: 2, CyclesIndirect: 2},
	0x1: {Mnemonic: ",R++", Defined: true, Cycles: 3, CyclesIndirect: 6},
	0x2: {Mnemonic: ",-R", Defined: true, Cycles: 2, CyclesIndirect: 2},
	0x3: {Mnemonic: ",--R", Defined: true, Cycles: 3, CyclesIndirect: 6},
	0x4: {Mnemonic: ",R", Defined: true, Cycles: 0, CyclesIndirect: 3},
	0x5: {Mnemonic: "B,R", Defined: true, Cycles: 1, CyclesIndirect: 4},
	0x6: {Mnemonic: "A,R", Defined: true, Cycles: 1, CyclesIndirect: 4},
	0x7: {},
	0x8: {Mnemonic: "n8,R", Defined: true, ExtraBytes: 1, Cycles: 1, CyclesIndirect: 4},
	0x9: {Mnemonic: "n16,R", Defined: true, ExtraBytes: 2, Cycles: 4, CyclesIndirect: 7},
	0xa: {},
	0xb: {Mnemonic: "D,R", Defined: true, Cycles: 4, CyclesIndirect: 7},
	0xc: {Mnemonic: "n8,PC", Defined: true, ExtraBytes: 1, Cycles: 1, CyclesIndirect: 4},
	0xd: {Mnemonic: "n16,PC", Defined: true, ExtraBytes: 2, Cycles: 5, CyclesIndirect: 8},
	0xe: {},
	0xf: {Mnemonic: "[n16]", Defined: true, ExtraBytes: 2, Cycles: 5, CyclesIndirect: 5},
}
