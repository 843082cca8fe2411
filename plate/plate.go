// Package plate validates licence plates. A well-formed plate is three
// two-character pairs joined by dashes ("AA-00-BB"). Each pair is either two
// ASCII decimal digits or two ASCII uppercase letters, and a plate must
// carry at least one pair of each kind.
package plate

import "parksim/constants"

// Valid reports whether s is a well-formed plate. Anything else, including
// lowercase letters, mixed pairs and wrong separators, is rejected.
func Valid(s string) bool {
	if len(s) != constants.PlateLength {
		return false
	}
	if s[2] != '-' || s[5] != '-' {
		return false
	}
	letterPairs, digitPairs := 0, 0
	for i := 0; i < len(s); i += 3 {
		a, b := s[i], s[i+1]
		switch {
		case isDigit(a) && isDigit(b):
			digitPairs++
		case isUpper(a) && isUpper(b):
			letterPairs++
		default:
			return false
		}
	}
	return letterPairs >= 1 && digitPairs >= 1
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
