// Package pointcode implements the SS7 Signaling Point Code (SPC) value type
// and its conversions.
//
// A point code is a 14-bit network address in ITU networks. Operators write
// it in one of two bit-grouped notations:
//
//	3-8-3  (ITU):    zone(3) - area/network(8) - signaling point(3)
//	5-4-5  (legacy): a(5) - b(4) - c(5)
//
// Both groupings cover exactly 14 bits, so any value in 0..16383 can be
// converted losslessly between the integer form and either grouped form.
//
// The package is pure: it never prints, never exits, and reports every
// failure as one of the typed errors ParseError, FormatError, RangeError or
// StateError so that callers can decide how to react.
package pointcode
