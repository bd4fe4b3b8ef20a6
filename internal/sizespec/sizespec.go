// Package sizespec parses human-entered size tokens like "500M" or "1GB"
// into a byte threshold with a display unit.
package sizespec

import (
	"strconv"
	"strings"
)

// Unit is the display unit for file sizes.
type Unit int

// Supported display units.
const (
	MB Unit = iota
	GB
)

// String returns the unit label as printed in table headers.
func (u Unit) String() string {
	if u == GB {
		return "GB"
	}

	return "MB"
}

const (
	// DefaultMB is the threshold used when the numeric part of a token
	// cannot be parsed.
	DefaultMB = 100.0

	bytesPerMB = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024
)

// Threshold is a minimum file size expressed in MB plus the unit used for
// display. It is computed once per run and read-only afterwards.
type Threshold struct {
	MB   float64
	Unit Unit
}

// Parse converts a size token into a Threshold. Recognized suffixes,
// checked in this order against a lower-cased copy of the token: "gb",
// "g", "mb", "m". A bare number is MB. When the numeric part does not
// parse, the result is exactly 100 MB with unit MB, silently, no matter
// which suffix was present.
func Parse(token string) Threshold {
	s := strings.ToLower(token)

	num := s
	multiplier := 1.0
	unit := MB

	switch {
	case strings.HasSuffix(s, "gb"):
		num, multiplier, unit = s[:len(s)-2], 1024.0, GB
	case strings.HasSuffix(s, "g"):
		num, multiplier, unit = s[:len(s)-1], 1024.0, GB
	case strings.HasSuffix(s, "mb"):
		num = s[:len(s)-2]
	case strings.HasSuffix(s, "m"):
		num = s[:len(s)-1]
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Threshold{MB: DefaultMB, Unit: MB}
	}

	return Threshold{MB: value * multiplier, Unit: unit}
}

// Bytes returns the threshold in bytes, truncated to an integer.
func (t Threshold) Bytes() int64 {
	return int64(t.MB * bytesPerMB)
}

// Convert expresses a byte count in the threshold's display unit.
func (t Threshold) Convert(sizeBytes int64) float64 {
	if t.Unit == GB {
		return float64(sizeBytes) / bytesPerGB
	}

	return float64(sizeBytes) / bytesPerMB
}

// Amount renders the byte threshold in the display unit using the
// shortest representation that round-trips ("100", "1.5").
func (t Threshold) Amount() string {
	return strconv.FormatFloat(t.Convert(t.Bytes()), 'f', -1, 64)
}
