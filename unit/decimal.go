// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	FormatErr         = errors.New("Invalid decimal value")
	NonTerminatingErr = errors.New("Non-terminating decimal expansion")
)

// decimal is an exact base-10 scaled integer: the represented value is
// unscaled * 10^-scale. It is a deliberately small subset of a general
// decimal type, only the operations byte sizes need. A decimal is never
// mutated after construction.
type decimal struct {
	unscaled big.Int
	scale    int
}

// parseDecimal parses a plain decimal literal: an optional sign, digits and
// an optional fractional part. No exponent notation, no grouping. The scale
// of the result is the number of fractional digits, so "0.80" keeps its
// trailing zero.
func parseDecimal(literal string) (decimal, error) {
	rest := literal
	negative := false
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		negative = rest[0] == '-'
		rest = rest[1:]
	}

	integer, fraction := rest, ""
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		integer, fraction = rest[:dot], rest[dot+1:]
		if len(fraction) == 0 {
			return decimal{}, fmt.Errorf("invalid number %q: %w", literal, FormatErr)
		}
	}

	digits := integer + fraction
	if len(digits) == 0 {
		return decimal{}, fmt.Errorf("invalid number %q: %w", literal, FormatErr)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return decimal{}, fmt.Errorf("invalid number %q: %w", literal, FormatErr)
		}
	}

	var d decimal
	d.unscaled.SetString(digits, 10)
	if negative {
		d.unscaled.Neg(&d.unscaled)
	}
	d.scale = len(fraction)
	return d, nil
}

func decimalFromInt(value int64) decimal {
	var d decimal
	d.unscaled.SetInt64(value)
	return d
}

// mulInt multiplies the decimal by an integer, keeping the scale.
func (d decimal) mulInt(factor *big.Int) decimal {
	var product decimal
	product.unscaled.Mul(&d.unscaled, factor)
	product.scale = d.scale
	return product
}

// ceil rounds the decimal toward positive infinity to an integer.
func (d decimal) ceil() *big.Int {
	if d.scale == 0 {
		return new(big.Int).Set(&d.unscaled)
	}

	quo, rem := new(big.Int), new(big.Int)
	quo.QuoRem(&d.unscaled, pow10(d.scale), rem)
	// Quo truncates toward zero which is already the ceiling for negative
	// values.
	if rem.Sign() > 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo
}

// quoExact divides num by den, returning the exact quotient at the smallest
// scale representing it. When the quotient has no finite decimal expansion,
// i.e. the reduced denominator has a prime factor other than 2 and 5, it
// fails with NonTerminatingErr. den must be positive.
func quoExact(num, den *big.Int) (decimal, error) {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)

	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if gcd.Sign() > 0 {
		n.Quo(n, gcd)
		d.Quo(d, gcd)
	}

	twos := stripFactor(d, big.NewInt(2))
	fives := stripFactor(d, big.NewInt(5))
	if d.Cmp(big.NewInt(1)) != 0 {
		return decimal{}, fmt.Errorf("%v/%v: %w", num, den, NonTerminatingErr)
	}

	scale := twos
	if fives > scale {
		scale = fives
	}

	// n/(2^twos * 5^fives) == n * 2^(scale-twos) * 5^(scale-fives) / 10^scale
	mul := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(scale-twos)), nil)
	mul.Mul(mul, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(scale-fives)), nil))

	var quotient decimal
	quotient.unscaled.Mul(n, mul)
	quotient.scale = scale
	return quotient, nil
}

// stripFactor divides factor out of n in place, returning how many times it
// divided evenly.
func stripFactor(n, factor *big.Int) int {
	count := 0
	quo, rem := new(big.Int), new(big.Int)
	for n.Sign() != 0 {
		quo.QuoRem(n, factor, rem)
		if rem.Sign() != 0 {
			break
		}
		n.Set(quo)
		count++
	}
	return count
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// String renders the exact decimal form, inserting the point and padding
// zeros as needed. No exponent notation, no trailing zero trimming.
func (d decimal) String() string {
	digits := d.unscaled.String()
	if d.scale == 0 {
		return digits
	}

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= d.scale {
		digits = strings.Repeat("0", d.scale-len(digits)+1) + digits
	}
	dot := len(digits) - d.scale
	return sign + digits[:dot] + "." + digits[dot:]
}
