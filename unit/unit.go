// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Standard is the scaling convention of a byte size unit. Each standard
// defines the base that unit factors are powers of.
type Standard int

const (
	// SI is the International System of Units standard, base 1000.
	SI Standard = iota + 1
	// IEC is the International Electrotechnical Commission standard, base
	// 1024.
	IEC
)

// Base returns the multiplier base of the standard.
func (s Standard) Base() int64 {
	switch s {
	case SI:
		return 1000
	case IEC:
		return 1024
	default:
		return 1
	}
}

// Unit is one of the closed set of byte size units. The zero value is Bytes.
//
// Bytes is the common ground of both standards: its factor is 1 and it
// belongs to neither scaled family, i.e. both IsSI and IsIEC return false.
type Unit int

const (
	Bytes Unit = iota

	Kilobytes
	Megabytes
	Gigabytes
	Terabytes
	Petabytes
	Exabytes
	Zettabytes
	Yottabytes

	Kibibytes
	Mebibytes
	Gibibytes
	Tebibytes
	Pebibytes
	Exbibytes
	Zebibytes
	Yobibytes
)

type unitDef struct {
	standard Standard
	exponent int
	short    string
	long     string
	aliases  []string
}

// The alias sets are disjoint across units with one deliberate rule: a bare
// prefix letter ("m") is the binary unit while the letter followed by "b"
// ("mb") is the decimal unit. Lookups fold case, so the table only holds
// lowercase forms.
var defs = [...]unitDef{
	Bytes: {0, 0, "B", "bytes", []string{"b", "byte", "bytes"}},

	Kilobytes:  {SI, 1, "KB", "kilobytes", []string{"kb", "kilobyte", "kilobytes"}},
	Megabytes:  {SI, 2, "MB", "megabytes", []string{"mb", "megabyte", "megabytes"}},
	Gigabytes:  {SI, 3, "GB", "gigabytes", []string{"gb", "gigabyte", "gigabytes"}},
	Terabytes:  {SI, 4, "TB", "terabytes", []string{"tb", "terabyte", "terabytes"}},
	Petabytes:  {SI, 5, "PB", "petabytes", []string{"pb", "petabyte", "petabytes"}},
	Exabytes:   {SI, 6, "EB", "exabytes", []string{"eb", "exabyte", "exabytes"}},
	Zettabytes: {SI, 7, "ZB", "zettabytes", []string{"zb", "zettabyte", "zettabytes"}},
	Yottabytes: {SI, 8, "YB", "yottabytes", []string{"yb", "yottabyte", "yottabytes"}},

	Kibibytes: {IEC, 1, "KiB", "kibibytes", []string{"k", "kib", "kibibyte", "kibibytes"}},
	Mebibytes: {IEC, 2, "MiB", "mebibytes", []string{"m", "mib", "mebibyte", "mebibytes"}},
	Gibibytes: {IEC, 3, "GiB", "gibibytes", []string{"g", "gib", "gibibyte", "gibibytes"}},
	Tebibytes: {IEC, 4, "TiB", "tebibytes", []string{"t", "tib", "tebibyte", "tebibytes"}},
	Pebibytes: {IEC, 5, "PiB", "pebibytes", []string{"p", "pib", "pebibyte", "pebibytes"}},
	Exbibytes: {IEC, 6, "EiB", "exbibytes", []string{"e", "eib", "exbibyte", "exbibytes"}},
	Zebibytes: {IEC, 7, "ZiB", "zebibytes", []string{"z", "zib", "zebibyte", "zebibytes"}},
	Yobibytes: {IEC, 8, "YiB", "yobibytes", []string{"y", "yib", "yobibyte", "yobibytes"}},
}

// Both tables are computed once and never mutated afterwards, concurrent
// readers need no synchronization.
var (
	factors    = computeFactors()
	aliasIndex = computeAliasIndex()
)

func computeFactors() []*big.Int {
	factors := make([]*big.Int, len(defs))
	for u, def := range defs {
		base := big.NewInt(def.standard.Base())
		factors[u] = new(big.Int).Exp(base, big.NewInt(int64(def.exponent)), nil)
	}
	return factors
}

func computeAliasIndex() map[string]Unit {
	index := make(map[string]Unit)
	for u, def := range defs {
		for _, alias := range def.aliases {
			index[alias] = Unit(u)
		}
	}
	return index
}

var UnknownUnitErr = errors.New("Unknown byte size unit")

// ParseUnit resolves a unit token against the alias table. The lookup is
// case insensitive: "MB", "mb" and "mB" all resolve to Megabytes, while a
// bare "M" resolves to Mebibytes.
func ParseUnit(token string) (Unit, error) {
	u, ok := aliasIndex[strings.ToLower(token)]
	if !ok {
		return Bytes, fmt.Errorf("invalid unit string %q: %w", token, UnknownUnitErr)
	}
	return u, nil
}

// Units returns every unit, Bytes first, then each standard ordered by
// increasing factor.
func Units() []Unit {
	units := make([]Unit, len(defs))
	for u := range defs {
		units[u] = Unit(u)
	}
	return units
}

// Factor returns the number of bytes of one of this unit, i.e. base^exponent
// of its standard. The returned value is a copy, callers may mutate it.
func (u Unit) Factor() *big.Int {
	return new(big.Int).Set(factors[u])
}

// IsSI reports whether the unit scales in powers of 1000. False for Bytes.
func (u Unit) IsSI() bool {
	return defs[u].standard == SI
}

// IsIEC reports whether the unit scales in powers of 1024. False for Bytes.
func (u Unit) IsIEC() bool {
	return defs[u].standard == IEC
}

// Standard returns the standard of the unit, or zero for Bytes.
func (u Unit) Standard() Standard {
	return defs[u].standard
}

// String returns the short display form, e.g. "KiB".
func (u Unit) String() string {
	return defs[u].short
}

// LongForm returns the long display form, e.g. "kibibytes".
func (u Unit) LongForm() string {
	return defs[u].long
}
