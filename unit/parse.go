// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"strings"
	"unicode"
)

// Parse creates a Size from a free-form string. It supports the common ways
// of writing sizes:
//
//   - "1 megabyte"
//   - "1 MB"
//   - "1MB"
//   - "1M" (equals "1 mebibyte", see ParseUnit)
//
// Fails with FormatErr when the numeric part is not a decimal literal and
// with UnknownUnitErr when the unit part matches no alias. Empty and
// all-letters inputs fail on their empty numeric part, all-digits inputs on
// their empty unit part, nothing defaults silently.
func Parse(input string) (Size, error) {
	number, token := splitValueAndUnit(input)

	value, err := parseDecimal(number)
	if err != nil {
		return Size{}, err
	}

	u, err := ParseUnit(token)
	if err != nil {
		return Size{}, err
	}

	return Size{value, u}, nil
}

// splitValueAndUnit scans the input backward while runes are letters. The
// boundary where letters stop splits a numeric prefix from a unit suffix,
// both trimmed of surrounding whitespace.
func splitValueAndUnit(input string) (string, string) {
	runes := []rune(input)
	i := len(runes) - 1
	for i >= 0 && unicode.IsLetter(runes[i]) {
		i--
	}
	number := strings.TrimSpace(string(runes[:i+1]))
	token := strings.TrimSpace(string(runes[i+1:]))
	return number, token
}
