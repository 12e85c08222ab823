// Package random seeds uninitialised state (RAM content, register values at
// boot) with pseudo-random bytes. Two modes are supported: a genuinely
// varying mode driven by math/rand, used for normal operation so that the
// same ROM doesn't always power on into bit-identical "garbage" RAM; and a
// ZeroSeed mode that derives the "random" byte purely from a caller-supplied
// tick source, so that repeated test runs (or repeated runs of the same
// scenario from the same point in time) are reproducible.
package random

import (
	"math/rand"
)

// Source supplies the tick value that ZeroSeed mode hashes into a byte. In
// this emulator it is satisfied by the scheduler's instruction counter.
type Source interface {
	Ticks() uint64
}

// Random produces pseudo-random bytes for a single component (the boot-time
// RAM filler, a register's initial value, and so on).
type Random struct {
	// ZeroSeed forces Rewindable to be a pure function of its input and the
	// Source, making output reproducible across runs. Used by tests.
	ZeroSeed bool

	source Source
	rnd    *rand.Rand
}

// NewRandom creates a Random fed by source.
func NewRandom(source Source) *Random {
	return &Random{
		source: source,
		rnd:    rand.New(rand.NewSource(rand.Int63())),
	}
}

// Rewindable returns a byte that is a deterministic function of n and the
// Source's current tick count when ZeroSeed is true - two Random instances
// fed equivalent Sources will agree on every value. When ZeroSeed is false,
// the byte is drawn from the non-deterministic generator instead.
func (r *Random) Rewindable(n int) uint8 {
	if r.ZeroSeed {
		t := r.source.Ticks()
		h := t*2654435761 + uint64(n)*40503 + 12345
		h ^= h >> 33
		return uint8(h >> 24)
	}
	return uint8(r.rnd.Intn(256))
}

// NoRewind returns a genuinely random value in [0, n], even when ZeroSeed is
// set - used where reproducibility is neither expected nor wanted, such as
// choosing which of several identical peripherals misbehaves first during
// fuzzing.
func (r *Random) NoRewind(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return uint64(r.rnd.Intn(n + 1))
}
