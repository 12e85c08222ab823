// Package execution tracks the result of a single CPU.Step call: which
// instruction ran, where it was fetched from, how many bytes and cycles it
// actually took (addressing mode extras included), and whether it serviced
// an interrupt instead of fetching a fresh opcode.
//
// Result.IsValid can be used by tests and debugging tools to check that a
// finalised Result is self-consistent with its instruction definition; the
// CPU does not call it on every step, to avoid the overhead.
package execution
