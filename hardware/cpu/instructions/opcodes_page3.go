package instructions

// page3Table builds the opcode page reached by the 0x11 prefix byte: SWI3
// and the U/S register comparisons.
func page3Table() Table {
	t := make(Table, 10)

	set(t, 0x3f, "SWI3", Inherent, 20, 2)

	set(t, 0x83, "CMPU", LongImmediate, 5, 4)
	set(t, 0x8c, "CMPS", LongImmediate, 5, 4)

	set(t, 0x93, "CMPU", Direct, 7, 3)
	set(t, 0x9c, "CMPS", Direct, 7, 3)

	set(t, 0xa3, "CMPU", Indexed, 7, 3)
	set(t, 0xac, "CMPS", Indexed, 7, 3)

	set(t, 0xb3, "CMPU", Extended, 8, 4)
	set(t, 0xbc, "CMPS", Extended, 8, 4)

	return t
}
