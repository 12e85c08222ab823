// Package test collects the small testing helpers used throughout this
// module: equality/failure assertions built on top of the standard "testing"
// package, and a handful of io.Writer implementations (a plain accumulating
// Writer, a capacity-bounded CappedWriter, and a sliding-window RingWriter)
// used to capture logger output without reaching for a third-party assertion
// library.
package test
