package instructions

// set records a definition, in the order the data sheet lists columns:
// mnemonic, mode, base cycles, then total instruction bytes.
func set(t Table, opcode uint8, mnemonic string, mode Mode, cycles, bytes int) {
	t[opcode] = Definition{Opcode: opcode, Mnemonic: mnemonic, Mode: mode, Bytes: bytes, Cycles: cycles}
}

// primaryTable builds the un-prefixed opcode page. Opcodes the data sheet
// marks illegal are simply absent.
func primaryTable() Table {
	t := make(Table, 200)

	set(t, 0x00, "NEG", Direct, 6, 2)
	set(t, 0x03, "COM", Direct, 6, 2)
	set(t, 0x04, "LSR", Direct, 6, 2)
	set(t, 0x06, "ROR", Direct, 6, 2)
	set(t, 0x07, "ASR", Direct, 6, 2)
	set(t, 0x08, "ASL", Direct, 6, 2)
	set(t, 0x09, "ROL", Direct, 6, 2)
	set(t, 0x0a, "DEC", Direct, 6, 2)
	set(t, 0x0c, "INC", Direct, 6, 2)
	set(t, 0x0d, "TST", Direct, 6, 2)
	set(t, 0x0e, "JMP", Direct, 3, 2)
	set(t, 0x0f, "CLR", Direct, 6, 2)

	set(t, 0x12, "NOP", Inherent, 2, 1)
	set(t, 0x13, "SYNC", Inherent, 4, 1)
	set(t, 0x16, "LBRA", LongRelative, 5, 3)
	set(t, 0x17, "LBSR", LongRelative, 9, 3)
	set(t, 0x19, "DAA", Inherent, 2, 1)
	set(t, 0x1a, "ORCC", Immediate, 3, 2)
	set(t, 0x1c, "ANDCC", Immediate, 3, 2)
	set(t, 0x1d, "SEX", Inherent, 2, 1)
	set(t, 0x1e, "EXG", Immediate, 8, 2)
	set(t, 0x1f, "TFR", Immediate, 6, 2)

	set(t, 0x20, "BRA", Relative, 3, 2)
	set(t, 0x21, "BRN", Relative, 3, 2)
	set(t, 0x22, "BHI", Relative, 3, 2)
	set(t, 0x23, "BLS", Relative, 3, 2)
	set(t, 0x24, "BCC", Relative, 3, 2) // BHS
	set(t, 0x25, "BCS", Relative, 3, 2) // BLO
	set(t, 0x26, "BNE", Relative, 3, 2)
	set(t, 0x27, "BEQ", Relative, 3, 2)
	set(t, 0x28, "BVC", Relative, 3, 2)
	set(t, 0x29, "BVS", Relative, 3, 2)
	set(t, 0x2a, "BPL", Relative, 3, 2)
	set(t, 0x2b, "BMI", Relative, 3, 2)
	set(t, 0x2c, "BGE", Relative, 3, 2)
	set(t, 0x2d, "BLT", Relative, 3, 2)
	set(t, 0x2e, "BGT", Relative, 3, 2)
	set(t, 0x2f, "BLE", Relative, 3, 2)

	set(t, 0x30, "LEAX", Indexed, 4, 2)
	set(t, 0x31, "LEAY", Indexed, 4, 2)
	set(t, 0x32, "LEAS", Indexed, 4, 2)
	set(t, 0x33, "LEAU", Indexed, 4, 2)
	set(t, 0x34, "PSHS", Immediate, 5, 2)
	set(t, 0x35, "PULS", Immediate, 5, 2)
	set(t, 0x36, "PSHU", Immediate, 5, 2)
	set(t, 0x37, "PULU", Immediate, 5, 2)
	set(t, 0x39, "RTS", Inherent, 5, 1)
	set(t, 0x3a, "ABX", Inherent, 3, 1)
	set(t, 0x3b, "RTI", Inherent, 6, 1)
	set(t, 0x3c, "CWAI", Immediate, 20, 2)
	set(t, 0x3d, "MUL", Inherent, 11, 1)
	set(t, 0x3f, "SWI", Inherent, 19, 1)

	set(t, 0x40, "NEGA", Inherent, 2, 1)
	set(t, 0x43, "COMA", Inherent, 2, 1)
	set(t, 0x44, "LSRA", Inherent, 2, 1)
	set(t, 0x46, "RORA", Inherent, 2, 1)
	set(t, 0x47, "ASRA", Inherent, 2, 1)
	set(t, 0x48, "ASLA", Inherent, 2, 1)
	set(t, 0x49, "ROLA", Inherent, 2, 1)
	set(t, 0x4a, "DECA", Inherent, 2, 1)
	set(t, 0x4c, "INCA", Inherent, 2, 1)
	set(t, 0x4d, "TSTA", Inherent, 2, 1)
	set(t, 0x4f, "CLRA", Inherent, 2, 1)

	set(t, 0x50, "NEGB", Inherent, 2, 1)
	set(t, 0x53, "COMB", Inherent, 2, 1)
	set(t, 0x54, "LSRB", Inherent, 2, 1)
	set(t, 0x56, "RORB", Inherent, 2, 1)
	set(t, 0x57, "ASRB", Inherent, 2, 1)
	set(t, 0x58, "ASLB", Inherent, 2, 1)
	set(t, 0x59, "ROLB", Inherent, 2, 1)
	set(t, 0x5a, "DECB", Inherent, 2, 1)
	set(t, 0x5c, "INCB", Inherent, 2, 1)
	set(t, 0x5d, "TSTB", Inherent, 2, 1)
	set(t, 0x5f, "CLRB", Inherent, 2, 1)

	set(t, 0x60, "NEG", Indexed, 6, 2)
	set(t, 0x63, "COM", Indexed, 6, 2)
	set(t, 0x64, "LSR", Indexed, 6, 2)
	set(t, 0x66, "ROR", Indexed, 6, 2)
	set(t, 0x67, "ASR", Indexed, 6, 2)
	set(t, 0x68, "ASL", Indexed, 6, 2)
	set(t, 0x69, "ROL", Indexed, 6, 2)
	set(t, 0x6a, "DEC", Indexed, 6, 2)
	set(t, 0x6c, "INC", Indexed, 6, 2)
	set(t, 0x6d, "TST", Indexed, 6, 2)
	set(t, 0x6e, "JMP", Indexed, 3, 2)
	set(t, 0x6f, "CLR", Indexed, 6, 2)

	set(t, 0x70, "NEG", Extended, 7, 3)
	set(t, 0x73, "COM", Extended, 7, 3)
	set(t, 0x74, "LSR", Extended, 7, 3)
	set(t, 0x76, "ROR", Extended, 7, 3)
	set(t, 0x77, "ASR", Extended, 7, 3)
	set(t, 0x78, "ASL", Extended, 7, 3)
	set(t, 0x79, "ROL", Extended, 7, 3)
	set(t, 0x7a, "DEC", Extended, 7, 3)
	set(t, 0x7c, "INC", Extended, 7, 3)
	set(t, 0x7d, "TST", Extended, 7, 3)
	set(t, 0x7e, "JMP", Extended, 4, 3)
	set(t, 0x7f, "CLR", Extended, 7, 3)

	set(t, 0x80, "SUBA", Immediate, 2, 2)
	set(t, 0x81, "CMPA", Immediate, 2, 2)
	set(t, 0x82, "SBCA", Immediate, 2, 2)
	set(t, 0x83, "SUBD", LongImmediate, 4, 3)
	set(t, 0x84, "ANDA", Immediate, 2, 2)
	set(t, 0x85, "BITA", Immediate, 2, 2)
	set(t, 0x86, "LDA", Immediate, 2, 2)
	set(t, 0x88, "EORA", Immediate, 2, 2)
	set(t, 0x89, "ADCA", Immediate, 2, 2)
	set(t, 0x8a, "ORA", Immediate, 2, 2)
	set(t, 0x8b, "ADDA", Immediate, 2, 2)
	set(t, 0x8c, "CMPX", LongImmediate, 4, 3)
	set(t, 0x8d, "BSR", Relative, 7, 2)
	set(t, 0x8e, "LDX", LongImmediate, 3, 3)

	set(t, 0x90, "SUBA", Direct, 4, 2)
	set(t, 0x91, "CMPA", Direct, 4, 2)
	set(t, 0x92, "SBCA", Direct, 4, 2)
	set(t, 0x93, "SUBD", Direct, 6, 2)
	set(t, 0x94, "ANDA", Direct, 4, 2)
	set(t, 0x95, "BITA", Direct, 4, 2)
	set(t, 0x96, "LDA", Direct, 4, 2)
	set(t, 0x97, "STA", Direct, 4, 2)
	set(t, 0x98, "EORA", Direct, 4, 2)
	set(t, 0x99, "ADCA", Direct, 4, 2)
	set(t, 0x9a, "ORA", Direct, 4, 2)
	set(t, 0x9b, "ADDA", Direct, 4, 2)
	set(t, 0x9c, "CMPX", Direct, 6, 2)
	set(t, 0x9d, "JSR", Direct, 7, 2)
	set(t, 0x9e, "LDX", Direct, 5, 2)
	set(t, 0x9f, "STX", Direct, 5, 2)

	set(t, 0xa0, "SUBA", Indexed, 4, 2)
	set(t, 0xa1, "CMPA", Indexed, 4, 2)
	set(t, 0xa2, "SBCA", Indexed, 4, 2)
	set(t, 0xa3, "SUBD", Indexed, 6, 2)
	set(t, 0xa4, "ANDA", Indexed, 4, 2)
	set(t, 0xa5, "BITA", Indexed, 4, 2)
	set(t, 0xa6, "LDA", Indexed, 4, 2)
	set(t, 0xa7, "STA", Indexed, 4, 2)
	set(t, 0xa8, "EORA", Indexed, 4, 2)
	set(t, 0xa9, "ADCA", Indexed, 4, 2)
	set(t, 0xaa, "ORA", Indexed, 4, 2)
	set(t, 0xab, "ADDA", Indexed, 4, 2)
	set(t, 0xac, "CMPX", Indexed, 6, 2)
	set(t, 0xad, "JSR", Indexed, 7, 2)
	set(t, 0xae, "LDX", Indexed, 5, 2)
	set(t, 0xaf, "STX", Indexed, 5, 2)

	set(t, 0xb0, "SUBA", Extended, 5, 3)
	set(t, 0xb1, "CMPA", Extended, 5, 3)
	set(t, 0xb2, "SBCA", Extended, 5, 3)
	set(t, 0xb3, "SUBD", Extended, 7, 3)
	set(t, 0xb4, "ANDA", Extended, 5, 3)
	set(t, 0xb5, "BITA", Extended, 5, 3)
	set(t, 0xb6, "LDA", Extended, 5, 3)
	set(t, 0xb7, "STA", Extended, 5, 3)
	set(t, 0xb8, "EORA", Extended, 5, 3)
	set(t, 0xb9, "ADCA", Extended, 5, 3)
	set(t, 0xba, "ORA", Extended, 5, 3)
	set(t, 0xbb, "ADDA", Extended, 5, 3)
	set(t, 0xbc, "CMPX", Extended, 7, 3)
	set(t, 0xbd, "JSR", Extended, 8, 3)
	set(t, 0xbe, "LDX", Extended, 6, 3)
	set(t, 0xbf, "STX", Extended, 6, 3)

	set(t, 0xc0, "SUBB", Immediate, 2, 2)
	set(t, 0xc1, "CMPB", Immediate, 2, 2)
	set(t, 0xc2, "SBCB", Immediate, 2, 2)
	set(t, 0xc3, "ADDD", LongImmediate, 4, 3)
	set(t, 0xc4, "ANDB", Immediate, 2, 2)
	set(t, 0xc5, "BITB", Immediate, 2, 2)
	set(t, 0xc6, "LDB", Immediate, 2, 2)
	set(t, 0xc8, "EORB", Immediate, 2, 2)
	set(t, 0xc9, "ADCB", Immediate, 2, 2)
	set(t, 0xca, "ORB", Immediate, 2, 2)
	set(t, 0xcb, "ADDB", Immediate, 2, 2)
	set(t, 0xcc, "LDD", LongImmediate, 3, 3)
	set(t, 0xce, "LDU", LongImmediate, 3, 3)

	set(t, 0xd0, "SUBB", Direct, 4, 2)
	set(t, 0xd1, "CMPB", Direct, 4, 2)
	set(t, 0xd2, "SBCB", Direct, 4, 2)
	set(t, 0xd3, "ADDD", Direct, 6, 2)
	set(t, 0xd4, "ANDB", Direct, 4, 2)
	set(t, 0xd5, "BITB", Direct, 4, 2)
	set(t, 0xd6, "LDB", Direct, 4, 2)
	set(t, 0xd7, "STB", Direct, 4, 2)
	set(t, 0xd8, "EORB", Direct, 4, 2)
	set(t, 0xd9, "ADCB", Direct, 4, 2)
	set(t, 0xda, "ORB", Direct, 4, 2)
	set(t, 0xdb, "ADDB", Direct, 4, 2)
	set(t, 0xdc, "LDD", Direct, 5, 2)
	set(t, 0xdd, "STD", Direct, 5, 2)
	set(t, 0xde, "LDU", Direct, 5, 2)
	set(t, 0xdf, "STU", Direct, 5, 2)

	set(t, 0xe0, "SUBB", Indexed, 4, 2)
	set(t, 0xe1, "CMPB", Indexed, 4, 2)
	set(t, 0xe2, "SBCB", Indexed, 4, 2)
	set(t, 0xe3, "ADDD", Indexed, 6, 2)
	set(t, 0xe4, "ANDB", Indexed, 4, 2)
	set(t, 0xe5, "BITB", Indexed, 4, 2)
	set(t, 0xe6, "LDB", Indexed, 4, 2)
	set(t, 0xe7, "STB", Indexed, 4, 2)
	set(t, 0xe8, "EORB", Indexed, 4, 2)
	set(t, 0xe9, "ADCB", Indexed, 4, 2)
	set(t, 0xea, "ORB", Indexed, 4, 2)
	set(t, 0xeb, "ADDB", Indexed, 4, 2)
	set(t, 0xec, "LDD", Indexed, 5, 2)
	set(t, 0xed, "STD", Indexed, 5, 2)
	set(t, 0xee, "LDU", Indexed, 5, 2)
	set(t, 0xef, "STU", Indexed, 5, 2)

	set(t, 0xf0, "SUBB", Extended, 5, 3)
	set(t, 0xf1, "CMPB", Extended, 5, 3)
	set(t, 0xf2, "SBCB", Extended, 5, 3)
	set(t, 0xf3, "ADDD", Extended, 7, 3)
	set(t, 0xf4, "ANDB", Extended, 5, 3)
	set(t, 0xf5, "BITB", Extended, 5, 3)
	set(t, 0xf6, "LDB", Extended, 5, 3)
	set(t, 0xf7, "STB", Extended, 5, 3)
	set(t, 0xf8, "EORB", Extended, 5, 3)
	set(t, 0xf9, "ADCB", Extended, 5, 3)
	set(t, 0xfa, "ORB", Extended, 5, 3)
	set(t, 0xfb, "ADDB", Extended, 5, 3)
	set(t, 0xfc, "LDD", Extended, 6, 3)
	set(t, 0xfd, "STD", Extended, 6, 3)
	set(t, 0xfe, "LDU", Extended, 6, 3)
	set(t, 0xff, "STU", Extended, 6, 3)

	return t
}
