package pointcode

import (
	"fmt"
	"strings"
)

// NetworkType tags a point code with the signaling network convention it
// belongs to. It is purely descriptive and never affects the arithmetic.
type NetworkType int

const (
	// NetworkUnset means no network convention has been specified.
	NetworkUnset NetworkType = iota

	// NetworkITU is the ITU-T convention (14-bit point codes).
	NetworkITU

	// NetworkANSI is the ANSI convention (24-bit point codes, 8-8-8).
	NetworkANSI
)

// String returns the upper-case network name, or an empty string when unset.
func (n NetworkType) String() string {
	switch n {
	case NetworkITU:
		return "ITU"
	case NetworkANSI:
		return "ANSI"
	default:
		return ""
	}
}

// Detail returns the informational width of point codes in this network.
// ANSI is labelled "24 bits" even though no 24-bit conversion exists here.
func (n NetworkType) Detail() string {
	switch n {
	case NetworkITU:
		return "14 bits"
	case NetworkANSI:
		return "24 bits"
	default:
		return ""
	}
}

// ParseNetworkType converts "itu" or "ansi" (case-insensitive) to a
// NetworkType. An empty string yields NetworkUnset.
func ParseNetworkType(s string) (NetworkType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NetworkUnset, nil
	case "itu":
		return NetworkITU, nil
	case "ansi":
		return NetworkANSI, nil
	default:
		return NetworkUnset, fmt.Errorf("invalid network type: %q (valid: itu, ansi)", s)
	}
}

// DisplayMode selects how a point code is rendered. It is passed at render
// time and is never stored on a PointCode.
type DisplayMode int

const (
	// DisplayText renders a labelled, multi-line human-readable block.
	DisplayText DisplayMode = iota

	// DisplayCSV renders one comma-separated record per point code.
	DisplayCSV
)

// String returns the lower-case mode name used in flags and config files.
func (m DisplayMode) String() string {
	if m == DisplayCSV {
		return "csv"
	}
	return "text"
}

// ParseDisplayMode converts "text" or "csv" (case-insensitive) to a
// DisplayMode. An empty string yields DisplayText.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return DisplayText, nil
	case "csv":
		return DisplayCSV, nil
	default:
		return DisplayText, fmt.Errorf("invalid display mode: %q (valid: text, csv)", s)
	}
}

// InputFormat names the notation of a textual point code.
type InputFormat string

const (
	// InputInteger is a plain base-10 integer, e.g. "1234".
	InputInteger InputFormat = "int"

	// Input545 is the 5-4-5 grouped notation, e.g. "2-6-18".
	Input545 InputFormat = "545"

	// Input383 is the 3-8-3 grouped notation, e.g. "0-154-2".
	Input383 InputFormat = "383"
)

// String returns the string representation of InputFormat.
func (f InputFormat) String() string {
	return string(f)
}

// IsValid checks whether the InputFormat is one of the predefined notations.
func (f InputFormat) IsValid() bool {
	switch f {
	case InputInteger, Input545, Input383:
		return true
	default:
		return false
	}
}

// ParseInputFormat converts a string to an InputFormat. "5-4-5" and "3-8-3"
// are accepted as aliases; an empty string yields InputInteger.
func ParseInputFormat(s string) (InputFormat, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	switch normalized {
	case "":
		return InputInteger, nil
	case "integer", "decimal":
		return InputInteger, nil
	}
	f := InputFormat(normalized)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid input format: %q (valid: int, 545, 383)", s)
	}
	return f, nil
}
