package instructions

// page2Table builds the opcode page reached by the 0x10 prefix byte: the
// sixteen long-branch opcodes, SWI2, and the Y/S register variants of a
// handful of base-page instructions. Bytes and Cycles already include the
// prefix byte itself.
func page2Table() Table {
	t := make(Table, 40)

	set(t, 0x21, "LBRN", LongRelative, 5, 4)
	set(t, 0x22, "LBHI", LongRelative, 5, 4)
	set(t, 0x23, "LBLS", LongRelative, 5, 4)
	set(t, 0x24, "LBCC", LongRelative, 5, 4) // LBHS
	set(t, 0x25, "LBCS", LongRelative, 5, 4) // LBLO
	set(t, 0x26, "LBNE", LongRelative, 5, 4)
	set(t, 0x27, "LBEQ", LongRelative, 5, 4)
	set(t, 0x28, "LBVC", LongRelative, 5, 4)
	set(t, 0x29, "LBVS", LongRelative, 5, 4)
	set(t, 0x2a, "LBPL", LongRelative, 5, 4)
	set(t, 0x2b, "LBMI", LongRelative, 5, 4)
	set(t, 0x2c, "LBGE", LongRelative, 5, 4)
	set(t, 0x2d, "LBLT", LongRelative, 5, 4)
	set(t, 0x2e, "LBGT", LongRelative, 5, 4)
	set(t, 0x2f, "LBLE", LongRelative, 5, 4)

	set(t, 0x3f, "SWI2", Inherent, 20, 2)

	set(t, 0x83, "CMPD", LongImmediate, 5, 4)
	set(t, 0x8c, "CMPY", LongImmediate, 5, 4)
	set(t, 0x8e, "LDY", LongImmediate, 4, 4)

	set(t, 0x93, "CMPD", Direct, 7, 3)
	set(t, 0x9c, "CMPY", Direct, 7, 3)
	set(t, 0x9e, "LDY", Direct, 6, 3)
	set(t, 0x9f, "STY", Direct, 6, 3)

	set(t, 0xa3, "CMPD", Indexed, 7, 3)
	set(t, 0xac, "CMPY", Indexed, 7, 3)
	set(t, 0xae, "LDY", Indexed, 6, 3)
	set(t, 0xaf, "STY", Indexed, 6, 3)

	set(t, 0xb3, "CMPD", Extended, 8, 4)
	set(t, 0xbc, "CMPY", Extended, 8, 4)
	set(t, 0xbe, "LDY", Extended, 7, 4)
	set(t, 0xbf, "STY", Extended, 7, 4)

	set(t, 0xce, "LDS", LongImmediate, 4, 4)
	set(t, 0xde, "LDS", Direct, 6, 3)
	set(t, 0xdf, "STS", Direct, 6, 3)
	set(t, 0xee, "LDS", Indexed, 6, 3)
	set(t, 0xef, "STS", Indexed, 6, 3)
	set(t, 0xfe, "LDS", Extended, 7, 4)
	set(t, 0xff, "STS", Extended, 7, 4)

	return t
}
