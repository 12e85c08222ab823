package instructions

// Definition describes one opcode: its mnemonic, addressing mode, and the
// base instruction length and cycle count quoted by the data sheet. Bytes
// and Cycles are the minimum case for the addressing mode (direct-page
// register offset for Indexed, no extra indirection); the CPU core adjusts
// both at run time for indexed sub-modes, post-byte indirection, and taken
// long branches, as the data sheet itself documents.
type Definition struct {
	Opcode   uint8
	Mnemonic string
	Mode     Mode
	Bytes    int
	Cycles   int
}

// Table is a flat opcode-indexed lookup, one per opcode page.
type Table map[uint8]Definition

// Lookup returns the definition for opcode, and false if opcode is not a
// defined instruction on this page.
func (t Table) Lookup(opcode uint8) (Definition, bool) {
	d, ok := t[opcode]
	return d, ok
}

// Primary is the un-prefixed opcode page.
var Primary = primaryTable()

// Page2 is the opcode page reached by the 0x10 prefix byte.
var Page2 = page2Table()

// Page3 is the opcode page reached by the 0x11 prefix byte.
var Page3 = page3Table()
