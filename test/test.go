// Package test collects small assertion and io.Writer helpers shared by the
// test suites of every other package in this module, in place of a
// third-party assertion library.
package test

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

// Equate fails the test if got and want are not equal, as judged by
// reflect.DeepEqual. It is the package's oldest and plainest helper; newer
// tests should prefer ExpectEquality.
func Equate(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("not equal: got %v, wanted %v", got, want)
	}
}

// ExpectEquality fails the test if got and want are not equal.
func ExpectEquality(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("not equal: got %v, wanted %v", got, want)
	}
}

// ExpectInequality fails the test if got and want are equal.
func ExpectInequality(t *testing.T, got, want interface{}) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		t.Errorf("unexpectedly equal: got %v, wanted not %v", got, want)
	}
}

// ExpectApproximate fails the test if got and want differ by more than
// tolerance, treated as a fraction of want.
func ExpectApproximate(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	d := math.Abs(got - want)
	limit := math.Abs(want) * tolerance
	if d > limit {
		t.Errorf("not approximately equal: got %v, wanted %v (tolerance %v)", got, want, tolerance)
	}
}

// truthy reduces bools and errors to a single pass/fail value: a false bool
// or a non-nil error both count as failure.
func truthy(v interface{}) bool {
	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		panic(fmt.Sprintf("test: unsupported type for truthy check (%T)", v))
	}
}

// ExpectSuccess fails the test if v is false or a non-nil error.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !truthy(v) {
		t.Errorf("expected success, got failure (%v)", v)
	}
}

// ExpectFailure fails the test if v is true or a nil error.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if truthy(v) {
		t.Errorf("expected failure, got success (%v)", v)
	}
}
