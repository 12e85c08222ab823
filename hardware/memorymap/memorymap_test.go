package memorymap_test

import (
	"strings"
	"testing"

	"github.com/mjsallard/dragon6809/hardware/memorymap"
	"github.com/mjsallard/dragon6809/test"
)

func TestSummaryCoversNamedRegions(t *testing.T) {
	s := memorymap.Summary()
	for _, want := range []string{"RAM", "ROM", "PIA0", "PIA1", "SAM", "CPU vectors"} {
		test.ExpectEquality(t, strings.Contains(s, want), true)
	}
}

func TestVectorAddressesArePaired(t *testing.T) {
	// each vector is two bytes, ascending, ending at 0xffff
	test.ExpectEquality(t, memorymap.VectorReset+1, 0xffff)
	test.ExpectEquality(t, memorymap.VectorNMI+1, memorymap.VectorReset-1)
	test.ExpectEquality(t, memorymap.VectorSWI+1, memorymap.VectorNMI-1)
	test.ExpectEquality(t, memorymap.VectorIRQ+1, memorymap.VectorSWI-1)
	test.ExpectEquality(t, memorymap.VectorFIRQ+1, memorymap.VectorIRQ-1)
	test.ExpectEquality(t, memorymap.VectorSWI2+1, memorymap.VectorFIRQ-1)
	test.ExpectEquality(t, memorymap.VectorSWI3+1, memorymap.VectorSWI2-1)
}
