// Package instructions holds the static MC6809E opcode tables: the base
// table (directly addressed by the first fetched byte) and the two
// "page 2"/"page 3" tables reached via the 0x10 and 0x11 prefix bytes.
//
// Each entry is a Definition carrying the mnemonic, addressing mode and the
// base byte/cycle counts quoted by the manufacturer data sheet. The tables
// are plain maps keyed by opcode; an opcode absent from the appropriate
// table is not a defined MC6809E instruction.
package instructions
