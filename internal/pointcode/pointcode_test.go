package pointcode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip545 packs every 14-bit value's 5-4-5 groups back into an
// integer and checks that the original value comes out.
func TestRoundTrip545(t *testing.T) {
	for v := uint64(0); v <= 16383; v++ {
		g := Format545.Unpack(v)
		require.Equal(t, v, Format545.Pack(g), "value %d (%s)", v, g)
		require.LessOrEqual(t, g.A, uint64(31))
		require.LessOrEqual(t, g.B, uint64(15))
		require.LessOrEqual(t, g.C, uint64(31))
	}
}

// TestRoundTrip383 is the 3-8-3 counterpart of TestRoundTrip545.
func TestRoundTrip383(t *testing.T) {
	for v := uint64(0); v <= 16383; v++ {
		g := Format383.Unpack(v)
		require.Equal(t, v, Format383.Pack(g), "value %d (%s)", v, g)
		require.LessOrEqual(t, g.A, uint64(7))
		require.LessOrEqual(t, g.B, uint64(255))
		require.LessOrEqual(t, g.C, uint64(7))
	}
}

// TestUnpack_AboveFourteenBits checks that values above 16383 still split,
// with the high group absorbing the extra bits.
func TestUnpack_AboveFourteenBits(t *testing.T) {
	assert.Equal(t, Groups{A: 32, B: 0, C: 0}, Format545.Unpack(16384))
	assert.Equal(t, Groups{A: 8, B: 0, C: 0}, Format383.Unpack(16384))
	assert.Equal(t, uint64(16384), Format545.Pack(Format545.Unpack(16384)))
}

// TestSetFromGrouped545_Bounds pins down the inclusive 2^n limit per group.
func TestSetFromGrouped545_Bounds(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
		hasError bool
	}{
		{"32-0-0", 32 * 512, false},
		{"33-0-0", 0, true},
		{"0-16-0", 16 * 32, false},
		{"0-17-0", 0, true},
		{"0-0-32", 32, false},
		{"0-0-33", 0, true},
		{"31-15-31", 16383, false},
		{"0-0-0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pc := New()
			err := pc.SetFromGrouped545(tt.input)
			if tt.hasError {
				var rangeErr *RangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, tt.input, rangeErr.Input)
				assert.False(t, pc.IsSet())
				return
			}
			require.NoError(t, err)
			v, err := pc.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

// TestSetFromGrouped383_Bounds pins down the inclusive 2^n limit per group.
func TestSetFromGrouped383_Bounds(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
		hasError bool
	}{
		{"8-0-0", 8 * 2048, false},
		{"9-0-0", 0, true},
		{"0-256-0", 256 * 8, false},
		{"0-257-0", 0, true},
		{"0-0-8", 8, false},
		{"0-0-9", 0, true},
		{"7-255-7", 16383, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pc := New()
			err := pc.SetFromGrouped383(tt.input)
			if tt.hasError {
				var rangeErr *RangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, Format383, rangeErr.Format)
				return
			}
			require.NoError(t, err)
			v, err := pc.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

// TestRangeError_HintsANSI checks the message suggests the ANSI notation.
func TestRangeError_HintsANSI(t *testing.T) {
	err := New().SetFromGrouped545("200-100-50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max=32-16-32")
	assert.Contains(t, err.Error(), "ANSI (8-8-8)")

	err = New().SetFromGrouped383("9-1-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max=8-256-8")
}

// TestSetFromGrouped_FormatError covers inputs that do not have three parts.
func TestSetFromGrouped_FormatError(t *testing.T) {
	inputs := []string{"1-2", "1-2-3-4", "123", "", "-1-2-3"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var formatErr *FormatError

			err := New().SetFromGrouped545(input)
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, "5-4-5", formatErr.Format)

			err = New().SetFromGrouped383(input)
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, "3-8-3", formatErr.Format)
		})
	}
}

// TestSetFromGrouped_ParseError covers non-numeric groups.
func TestSetFromGrouped_ParseError(t *testing.T) {
	inputs := []string{"a-2-3", "1--3", "1-2-x", "1-2.5-3", "1- -3"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var parseErr *ParseError
			require.ErrorAs(t, New().SetFromGrouped545(input), &parseErr)
			require.ErrorAs(t, New().SetFromGrouped383(input), &parseErr)
		})
	}
}

// TestSetFromGrouped_KnownValues checks the documented conversions.
func TestSetFromGrouped_KnownValues(t *testing.T) {
	pc := New()
	require.NoError(t, pc.SetFromGrouped545("1-2-3"))
	v, _ := pc.Value()
	assert.Equal(t, uint64(579), v)

	require.NoError(t, pc.SetFromGrouped383("1-2-3"))
	v, _ = pc.Value()
	assert.Equal(t, uint64(2067), v)

	require.NoError(t, pc.SetFromGrouped545("30-0-30"))
	v, _ = pc.Value()
	assert.Equal(t, uint64(15390), v)

	// Whitespace around groups is tolerated.
	require.NoError(t, pc.SetFromGrouped383(" 1 - 2 - 3 "))
	v, _ = pc.Value()
	assert.Equal(t, uint64(2067), v)
}

// TestSetFromInteger covers valid and invalid integer inputs.
func TestSetFromInteger(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
		hasError bool
	}{
		{"1234", 1234, false},
		{"0", 0, false},
		{"  42\t", 42, false},
		{"99999", 99999, false}, // no range check
		{"", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
		{"12.5", 0, true},
		{"1-2-3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pc := New()
			err := pc.SetFromInteger(tt.input)
			if tt.hasError {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tt.input, parseErr.Input)
				return
			}
			require.NoError(t, err)
			v, err := pc.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

// TestToGrouped_KnownValues checks the documented decompositions.
func TestToGrouped_KnownValues(t *testing.T) {
	tests := []struct {
		input string
		g545  Groups
		g383  Groups
	}{
		{"1234", Groups{2, 6, 18}, Groups{0, 154, 2}},
		{"12345", Groups{24, 1, 25}, Groups{6, 7, 1}},
		{"15390", Groups{30, 0, 30}, Groups{7, 131, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pc := New()
			require.NoError(t, pc.SetFromInteger(tt.input))

			g, err := pc.ToGrouped545()
			require.NoError(t, err)
			assert.Equal(t, tt.g545, g)

			g, err = pc.ToGrouped383()
			require.NoError(t, err)
			assert.Equal(t, tt.g383, g)
		})
	}
}

// TestFailedSetKeepsPreviousValue checks that a rejected input does not
// clobber an earlier value.
func TestFailedSetKeepsPreviousValue(t *testing.T) {
	pc := New()
	require.NoError(t, pc.SetFromInteger("1234"))
	require.Error(t, pc.SetFromInteger("oops"))
	require.Error(t, pc.SetFromGrouped545("99-0-0"))

	v, err := pc.Value()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), v)
}

// TestSet_Dispatch checks that Set routes to the matching parser.
func TestSet_Dispatch(t *testing.T) {
	pc := New()

	require.NoError(t, pc.Set(InputInteger, "579"))
	v, _ := pc.Value()
	assert.Equal(t, uint64(579), v)

	require.NoError(t, pc.Set(Input545, "1-2-3"))
	v, _ = pc.Value()
	assert.Equal(t, uint64(579), v)

	require.NoError(t, pc.Set(Input383, "1-2-3"))
	v, _ = pc.Value()
	assert.Equal(t, uint64(2067), v)

	assert.Error(t, pc.Set(InputFormat("888"), "1-2-3"))
}

// TestStateError verifies that operations needing a value fail on an empty
// point code.
func TestStateError(t *testing.T) {
	pc := New()
	assert.False(t, pc.IsSet())

	var stateErr *StateError

	_, err := pc.ToGrouped545()
	assert.ErrorAs(t, err, &stateErr)

	_, err = pc.ToGrouped383()
	assert.ErrorAs(t, err, &stateErr)

	_, err = pc.Render(DisplayText)
	assert.ErrorAs(t, err, &stateErr)

	_, err = pc.Render(DisplayCSV)
	assert.ErrorAs(t, err, &stateErr)

	_, err = pc.Value()
	assert.ErrorAs(t, err, &stateErr)

	// Setting a network type does not establish a value.
	pc.SetNetworkType(NetworkITU)
	assert.False(t, pc.IsSet())
}

// TestKindLabel covers the label for each network type, including
// last-write-wins updates.
func TestKindLabel(t *testing.T) {
	pc := New()
	assert.Equal(t, "Unknown", pc.KindLabel())

	pc.SetNetworkType(NetworkITU)
	assert.Equal(t, "ITU (14 bits)", pc.KindLabel())

	pc.SetNetworkType(NetworkANSI)
	assert.Equal(t, "ANSI (24 bits)", pc.KindLabel())
	assert.Equal(t, NetworkANSI, pc.NetworkType())
}

// TestNetworkTypeDoesNotChangeValue checks the tag is metadata only.
func TestNetworkTypeDoesNotChangeValue(t *testing.T) {
	pc := New()
	require.NoError(t, pc.SetFromInteger("1234"))
	pc.SetNetworkType(NetworkANSI)

	g, err := pc.ToGrouped545()
	require.NoError(t, err)
	assert.Equal(t, Groups{2, 6, 18}, g)
}

// TestRender covers both display modes.
func TestRender(t *testing.T) {
	pc := New()
	require.NoError(t, pc.SetFromInteger("1234"))

	out, err := pc.Render(DisplayCSV)
	require.NoError(t, err)
	assert.Equal(t, "1234,Unknown,2-6-18,0-154-2", out)

	pc.SetNetworkType(NetworkITU)
	out, err = pc.Render(DisplayText)
	require.NoError(t, err)
	assert.Equal(t, "SPC Decimal : 1234\n"+
		"Format      : ITU (14 bits)\n"+
		"5-4-5 Format: 2-6-18\n"+
		"3-8-3 Format: 0-154-2\n"+
		"\n", out)
}

// TestWrite checks that CSV records are newline terminated.
func TestWrite(t *testing.T) {
	pc := New()
	var b strings.Builder

	var stateErr *StateError
	require.ErrorAs(t, pc.Write(&b, DisplayCSV), &stateErr)
	assert.Empty(t, b.String())

	pc.SetValue(2067)
	require.NoError(t, pc.Write(&b, DisplayCSV))
	assert.Equal(t, "2067,Unknown,4-0-19,1-2-3\n", b.String())
}

// TestHeader checks both banners.
func TestHeader(t *testing.T) {
	csv := Header(DisplayCSV)
	lines := strings.Split(strings.TrimSuffix(csv, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "# "))
	assert.Equal(t, "SPC Decimal,Format,5-4-5 Format,3-8-3 Format", lines[1])

	text := Header(DisplayText)
	assert.True(t, strings.HasPrefix(text, Title+"\n"))
	assert.Contains(t, text, Attribution)
	assert.True(t, strings.HasSuffix(text, "\n\n"))
}

// TestErrorKindsAreDistinct ensures one failure never matches another kind.
func TestErrorKindsAreDistinct(t *testing.T) {
	err := New().SetFromGrouped545("1-2")

	var formatErr *FormatError
	var parseErr *ParseError
	var rangeErr *RangeError
	assert.True(t, errors.As(err, &formatErr))
	assert.False(t, errors.As(err, &parseErr))
	assert.False(t, errors.As(err, &rangeErr))
}
