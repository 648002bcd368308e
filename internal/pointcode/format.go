package pointcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Format describes a three-group bit layout of a point code. The widths
// always add up to 14 bits.
type Format struct {
	// Name is the human-readable layout, e.g. "5-4-5".
	Name string

	// Bits holds the width of the high, middle and low groups.
	Bits [3]uint
}

var (
	// Format545 is the 5-4-5 grouping.
	Format545 = Format{Name: "5-4-5", Bits: [3]uint{5, 4, 5}}

	// Format383 is the ITU 3-8-3 grouping.
	Format383 = Format{Name: "3-8-3", Bits: [3]uint{3, 8, 3}}
)

// Groups is a point code split into its high, middle and low groups.
type Groups struct {
	A, B, C uint64
}

// String renders the groups as "A-B-C".
func (g Groups) String() string {
	return fmt.Sprintf("%d-%d-%d", g.A, g.B, g.C)
}

// Max returns the largest value accepted for each group. Each limit is 2^n
// for an n-bit group rather than 2^n-1; this matches the bound historically
// enforced by the calculator and is kept so accepted inputs stay the same.
func (f Format) Max() Groups {
	return Groups{
		A: 1 << f.Bits[0],
		B: 1 << f.Bits[1],
		C: 1 << f.Bits[2],
	}
}

// Pack combines three groups into a single integer value:
//
//	value = a·2^(bits_b+bits_c) + b·2^bits_c + c
//
// Pack does not check ranges; see Parse.
func (f Format) Pack(g Groups) uint64 {
	return g.A<<(f.Bits[1]+f.Bits[2]) + g.B<<f.Bits[2] + g.C
}

// Unpack splits a value into three groups. For values that fit in 14 bits it
// is the exact inverse of Pack; for larger values the high group absorbs the
// extra bits.
func (f Format) Unpack(value uint64) Groups {
	a := value >> (f.Bits[1] + f.Bits[2])
	rest := value - a<<(f.Bits[1]+f.Bits[2])
	b := rest >> f.Bits[2]
	c := rest - b<<f.Bits[2]
	return Groups{A: a, B: b, C: c}
}

// Parse splits "A-B-C" text into groups and validates each one against the
// format's bit widths. It returns a FormatError, ParseError or RangeError.
func (f Format) Parse(text string) (Groups, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return Groups{}, &FormatError{Input: text, Format: f.Name, Parts: len(parts)}
	}

	var values [3]uint64
	for i, part := range parts {
		v, err := parseUint(part)
		if err != nil {
			return Groups{}, err
		}
		values[i] = v
	}

	g := Groups{A: values[0], B: values[1], C: values[2]}
	limit := f.Max()
	if g.A > limit.A || g.B > limit.B || g.C > limit.C {
		return Groups{}, &RangeError{Input: text, Format: f}
	}
	return g, nil
}

// parseUint parses a trimmed base-10 non-negative integer.
func parseUint(text string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, &ParseError{Input: text, Err: err}
	}
	return v, nil
}
