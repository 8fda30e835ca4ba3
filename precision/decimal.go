// SPDX-License-Identifier: MIT
// Package: turing/precision
//
// decimal.go — validation helpers for exact decimal targets.

package precision

import (
	"fmt"
	"strings"
)

// ValidateDecimal accepts strings made of ASCII digits with at most one '.'
// and at least one digit ("7005", "7005.06", ".5", "12.").
// Signs, exponents and whitespace are rejected with ErrParse.
//
// Complexity: O(len(s)).
func ValidateDecimal(s string) error {
	var digits, dots int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return fmt.Errorf("ValidateDecimal: %q: second '.' at %d: %w", s, i, ErrParse)
			}
		default:
			return fmt.Errorf("ValidateDecimal: %q: invalid byte %q at %d: %w", s, c, i, ErrParse)
		}
	}
	if digits == 0 {
		return fmt.Errorf("ValidateDecimal: %q: no digits: %w", s, ErrParse)
	}

	return nil
}

// DecimalPlaces returns the number of digits after the '.' in s, or 0.
// s is not validated.
func DecimalPlaces(s string) int {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}

	return len(s) - i - 1
}
