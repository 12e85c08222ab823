// Package registers implements the register types found in the MC6809E: the
// 8 bit Reg8 (A, B and the direct page register DP), the 16 bit Reg16 (X, Y,
// U, S and the program counter), and CC, which packs the eight condition
// code flags (E F H I N Z V C) into a single byte the way PSHS/PULS and
// RTI/CWAI move them on and off the stack.
package registers
