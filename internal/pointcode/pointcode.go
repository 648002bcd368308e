package pointcode

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PointCode holds a point code value and an optional network type tag.
//
// The zero value is an empty point code: no value is set and the network
// type is NetworkUnset. A single PointCode may be reused for many inputs;
// each successful Set* call overwrites the value while the network type is
// kept. A failed Set* call leaves the previous value untouched.
type PointCode struct {
	value   uint64
	set     bool
	network NetworkType
}

// New returns an empty PointCode.
func New() *PointCode {
	return &PointCode{}
}

// SetValue stores v as the point code value.
func (p *PointCode) SetValue(v uint64) {
	p.value = v
	p.set = true
}

// SetFromInteger parses text as a base-10 integer and stores it. Surrounding
// whitespace is ignored. No range check is applied, so values above the
// 14-bit maximum are accepted.
func (p *PointCode) SetFromInteger(text string) error {
	v, err := parseUint(text)
	if err != nil {
		return err
	}
	p.SetValue(v)
	return nil
}

// SetFromGrouped545 parses text in 5-4-5 notation and stores the packed value.
//
//	"1-2-3" → 1·512 + 2·32 + 3 = 579
func (p *PointCode) SetFromGrouped545(text string) error {
	return p.SetFromGrouped(Format545, text)
}

// SetFromGrouped383 parses text in 3-8-3 notation and stores the packed value.
//
//	"1-2-3" → 1·2048 + 2·8 + 3 = 2067
func (p *PointCode) SetFromGrouped383(text string) error {
	return p.SetFromGrouped(Format383, text)
}

// SetFromGrouped parses text in the given grouped format and stores the
// packed value.
func (p *PointCode) SetFromGrouped(f Format, text string) error {
	g, err := f.Parse(text)
	if err != nil {
		return err
	}
	p.SetValue(f.Pack(g))
	return nil
}

// Set parses text according to the input format and stores the result.
func (p *PointCode) Set(format InputFormat, text string) error {
	switch format {
	case InputInteger, "":
		return p.SetFromInteger(text)
	case Input545:
		return p.SetFromGrouped545(text)
	case Input383:
		return p.SetFromGrouped383(text)
	default:
		return fmt.Errorf("unsupported input format %q", format)
	}
}

// SetNetworkType tags the point code with a network convention. It never
// touches the value.
func (p *PointCode) SetNetworkType(n NetworkType) {
	p.network = n
}

// NetworkType returns the current network tag.
func (p *PointCode) NetworkType() NetworkType {
	return p.network
}

// IsSet reports whether a value has been established.
func (p *PointCode) IsSet() bool {
	return p.set
}

// Value returns the stored value, or a StateError when unset.
func (p *PointCode) Value() (uint64, error) {
	if !p.set {
		return 0, &StateError{Op: "value"}
	}
	return p.value, nil
}

// ToGrouped545 splits the value into 5-4-5 groups.
func (p *PointCode) ToGrouped545() (Groups, error) {
	if !p.set {
		return Groups{}, &StateError{Op: "to 5-4-5"}
	}
	return Format545.Unpack(p.value), nil
}

// ToGrouped383 splits the value into 3-8-3 groups.
func (p *PointCode) ToGrouped383() (Groups, error) {
	if !p.set {
		return Groups{}, &StateError{Op: "to 3-8-3"}
	}
	return Format383.Unpack(p.value), nil
}

// KindLabel returns "Unknown" when no network type is set, otherwise the
// network name with its width, e.g. "ITU (14 bits)".
func (p *PointCode) KindLabel() string {
	if p.network == NetworkUnset {
		return "Unknown"
	}
	return fmt.Sprintf("%s (%s)", p.network, p.network.Detail())
}

// Render formats the point code for output.
//
// In DisplayText mode the result is four labelled lines followed by an empty
// line:
//
//	SPC Decimal : 1234
//	Format      : Unknown
//	5-4-5 Format: 2-6-18
//	3-8-3 Format: 0-154-2
//
// In DisplayCSV mode the result is a single record without a trailing
// newline, e.g. "1234,Unknown,2-6-18,0-154-2".
func (p *PointCode) Render(mode DisplayMode) (string, error) {
	if !p.set {
		return "", &StateError{Op: "render"}
	}
	decimal := strconv.FormatUint(p.value, 10)
	g545 := Format545.Unpack(p.value).String()
	g383 := Format383.Unpack(p.value).String()

	if mode == DisplayCSV {
		return strings.Join([]string{decimal, p.KindLabel(), g545, g383}, ","), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SPC Decimal : %s\n", decimal)
	fmt.Fprintf(&b, "Format      : %s\n", p.KindLabel())
	fmt.Fprintf(&b, "5-4-5 Format: %s\n", g545)
	fmt.Fprintf(&b, "3-8-3 Format: %s\n", g383)
	b.WriteString("\n")
	return b.String(), nil
}

// Write renders the point code to w. CSV records are terminated with a
// newline; text blocks already end with an empty line.
func (p *PointCode) Write(w io.Writer, mode DisplayMode) error {
	out, err := p.Render(mode)
	if err != nil {
		return err
	}
	if mode == DisplayCSV {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

// Title is the product banner shown at the top of every report.
const Title = "SS7calc - SS7 Signaling Point Code calculator"

// Attribution credits the original calculator.
const Attribution = "Created by Philippe Langlois, P1 Security"

// CSVColumns is the CSV column header line.
const CSVColumns = "SPC Decimal,Format,5-4-5 Format,3-8-3 Format"

// Header returns the banner printed once before any rendered point codes.
// Every line, including the last, ends with a newline.
func Header(mode DisplayMode) string {
	if mode == DisplayCSV {
		return "# " + Title + "\n" + CSVColumns + "\n"
	}
	return Title + "\n" + Attribution + "\n\n"
}
