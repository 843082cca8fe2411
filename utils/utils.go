package utils

import (
	"os"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Integer & Money Rendering
///////////////////////////////////////////////////////////////////////////////

// Itoa converts an int to its decimal string form without going through fmt.
// Used on print paths that assemble protocol lines and debug messages.
//
//go:nosplit
//go:inline
func Itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Pad2 renders v as a two-digit zero-padded field ("07", "23").
// Values outside [0, 99] fall back to plain Itoa.
//
//go:nosplit
//go:inline
func Pad2(v int) string {
	if v < 0 || v > 99 {
		return Itoa(v)
	}
	return string([]byte{byte('0' + v/10), byte('0' + v%10)})
}

// Ftoa2 renders a monetary amount with exactly two decimal places.
// Rounding is IEEE round-to-nearest-even, the same result printf "%.2f"
// produces, so billing output stays bit-for-bit reproducible.
func Ftoa2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

///////////////////////////////////////////////////////////////////////////////
// Decimal Scanner — Strict Full-Token Parse
///////////////////////////////////////////////////////////////////////////////

// ParseDecimal parses a signed decimal integer. The whole token must be
// digits (after an optional sign); trailing garbage rejects the token, which
// lets callers fall back to their non-numeric interpretation of the input.
//
//go:nosplit
//go:inline
func ParseDecimal(s string) (int, bool) {
	if len(s) == 0 || len(s) > 19 {
		return 0, false
	}
	i := 0
	neg := false
	switch s[0] {
	case '-':
		neg = true
		i = 1
	case '+':
		i = 1
	}
	if i == len(s) {
		return 0, false
	}
	v := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	if neg {
		v = -v
	}
	return v, true
}

///////////////////////////////////////////////////////////////////////////////
// Diagnostics Sink — Raw Stderr Writes
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr with no formatting layer.
// Stdout carries protocol output only, so every diagnostic goes through here.
func PrintWarning(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}
