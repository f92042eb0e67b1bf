// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var OverflowErr = errors.New("Byte count overflows requested width")

// Size is a quantity of digital storage: an exact decimal magnitude paired
// with a Unit, such as "512 kilobytes". A Size is immutable, Convert returns
// a new value. The zero value is "0 B".
//
// Sizes may freely be shared between goroutines.
type Size struct {
	value decimal
	unit  Unit
}

// NewSize creates a size from an integer magnitude and a unit.
func NewSize(value int64, u Unit) Size {
	return Size{decimalFromInt(value), u}
}

// NewSizeFromString creates a size from a decimal literal magnitude and a
// unit. The literal is parsed exactly, it never transits through a binary
// float, so magnitudes like "0.1" keep their value. Fails with FormatErr
// when the literal is not a plain decimal number.
func NewSizeFromString(value string, u Unit) (Size, error) {
	d, err := parseDecimal(value)
	if err != nil {
		return Size{}, err
	}
	return Size{d, u}, nil
}

// FromBytes creates a size counting bytes, the unit is Bytes.
func FromBytes(bytes int64) Size {
	return NewSize(bytes, Bytes)
}

// Unit returns the unit part of the size.
func (s Size) Unit() Unit {
	return s.unit
}

// Bytes returns the number of bytes the size represents, the magnitude
// multiplied by the unit factor. Since the magnitude can carry more decimal
// digits than the factor absorbs, the product is rounded toward positive
// infinity to the nearest integer. Bytes therefore never understates the
// true size, which makes it safe as an upper bound for allocation decisions.
func (s Size) Bytes() *big.Int {
	return s.value.mulInt(factors[s.unit]).ceil()
}

// Int64Bytes returns Bytes as an int64, failing with OverflowErr when the
// byte count does not fit.
func (s Size) Int64Bytes() (int64, error) {
	bytes := s.Bytes()
	if !bytes.IsInt64() {
		return 0, fmt.Errorf("%s does not fit in an int64: %w", s, OverflowErr)
	}
	return bytes.Int64(), nil
}

// Int32Bytes returns Bytes as an int32, failing with OverflowErr when the
// byte count does not fit.
func (s Size) Int32Bytes() (int32, error) {
	bytes := s.Bytes()
	if !bytes.IsInt64() || bytes.Int64() > math.MaxInt32 || bytes.Int64() < math.MinInt32 {
		return 0, fmt.Errorf("%s does not fit in an int32: %w", s, OverflowErr)
	}
	return int32(bytes.Int64()), nil
}

// Convert returns a new size representing the same byte count in another
// unit. The ceiling-rounded byte count is divided exactly by the target
// factor; if the quotient has no finite decimal expansion the conversion
// fails with NonTerminatingErr instead of silently truncating.
func (s Size) Convert(to Unit) (Size, error) {
	value, err := quoExact(s.Bytes(), factors[to])
	if err != nil {
		return Size{}, fmt.Errorf("converting %s to %s: %w", s, to, err)
	}
	return Size{value, to}, nil
}

// Equal reports whether both sizes materialize to the same byte count,
// whatever their units and magnitudes. Two sizes built from different pairs
// are equal whenever the rounded byte counts coincide.
//
// This is the only meaningful equality for Size. The == operator and map
// keys compare the stored (magnitude, unit) fields instead and disagree with
// Equal, do not use Size as a map key.
func (s Size) Equal(o Size) bool {
	return s.Bytes().Cmp(o.Bytes()) == 0
}

// String returns the short display form, e.g. "1.5 GiB".
func (s Size) String() string {
	return s.value.String() + " " + s.unit.String()
}

// LongString returns the long display form, e.g. "1.5 gibibytes".
func (s Size) LongString() string {
	return s.value.String() + " " + s.unit.LongForm()
}
