package random_test

import (
	"testing"

	"github.com/mjsallard/dragon6809/random"
	"github.com/mjsallard/dragon6809/test"
)

// ticks is a fixed tick source, standing in for the scheduler's instruction
// counter.
type ticks struct{}

func (ticks) Ticks() uint64 {
	return 1234
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&ticks{})
	b := random.NewRandom(&ticks{})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}
