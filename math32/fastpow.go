// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultPowPrecision is the table precision the package tables
	// are built with at initialization: 2^11 entries, giving a mean
	// relative error below 0.01% and a max below 0.02%.
	DefaultPowPrecision = 11

	// MaxPowPrecision is the largest precision accepted by [NewPowTable].
	MaxPowPrecision = 18

	mantissaBits  = 23
	mantissaScale = 1 << mantissaBits
	mantissaMask  = mantissaScale - 1
	exponentBias  = 127
	exponentMask  = 0xFF800000
)

// ErrPrecision is returned for a table precision outside [0, MaxPowPrecision].
var ErrPrecision = errors.New("math32: precision out of range")

// PowTable approximates powers and binary logarithms of float32 values
// by working directly on their IEEE-754 bit layout. A power 2^x is
// assembled from the integer part of x, which becomes the exponent bits,
// and a lookup of the fractional part in a staircase table holding the
// mantissa bits of 2^f at the midpoint of each of its 2^precision steps.
//
// Results are not exact even for exact integer powers: FastPow(2, 3) is
// within the error bound of 8 but is not 8.
type PowTable struct {

	// Precision is the number of mantissa bits used to index the tables.
	Precision int

	// pow holds the mantissa bits of 2^((i+0.5)/n) for n = 2^Precision.
	pow []uint32

	// log holds log2(1 + i/n) for i in [0, n], interpolated between entries.
	log []float32
}

// NewPowTable returns a new [PowTable] with 2^precision entries.
// It returns an error wrapping [ErrPrecision] if precision is
// outside of [0, MaxPowPrecision].
func NewPowTable(precision int) (*PowTable, error) {
	if precision < 0 || precision > MaxPowPrecision {
		return nil, fmt.Errorf("math32.NewPowTable: %w: %d not in [0, %d]", ErrPrecision, precision, MaxPowPrecision)
	}
	n := 1 << precision
	pt := &PowTable{Precision: precision, pow: make([]uint32, n), log: make([]float32, n+1)}
	for i := range n {
		m := uint32((math.Exp2((float64(i)+0.5)/float64(n)) - 1) * mantissaScale)
		pt.pow[i] = min(m, mantissaMask)
	}
	for i := range n + 1 {
		pt.log[i] = float32(math.Log2(1 + float64(i)/float64(n)))
	}
	return pt, nil
}

// Pow returns an approximation of base^exp. Bases <= 0 return 0.
// Results beyond the float32 range saturate to 0 or +Inf.
func (pt *PowTable) Pow(base, exp float32) float32 {
	if base <= 0 {
		return 0
	}
	return pt.pow2(float64(exp) * float64(pt.Log2(base)))
}

// PowConstantBase returns an approximation of base^exp, given the
// precomputed representation of the base from [BaseRepresentation].
// This avoids taking the logarithm of a base that is reused on every call.
func (pt *PowTable) PowConstantBase(baseRep, exp float32) float32 {
	return pt.pow2(float64(exp) * float64(baseRep))
}

// pow2 returns 2^x assembled from the table.
func (pt *PowTable) pow2(x float64) float32 {
	switch {
	case math.IsNaN(x):
		return float32(math.NaN())
	case x >= 128:
		return Infinity
	case x <= 1-exponentBias:
		return 0
	}
	i := uint32(int32(x*mantissaScale + exponentBias*mantissaScale))
	bits := i&exponentMask | pt.pow[(i&mantissaMask)>>(mantissaBits-pt.Precision)]
	return math.Float32frombits(bits)
}

// Log2 returns an approximation of the binary logarithm of x: the
// unbiased exponent bits plus log2 of the mantissa, interpolated
// between table entries. It is exact at powers of two.
func (pt *PowTable) Log2(x float32) float32 {
	switch {
	case x == 0:
		return Inf(-1)
	case x < 0 || IsNaN(x):
		return float32(math.NaN())
	case IsInf(x, 1):
		return x
	}
	bits := math.Float32bits(x)
	exp := float32(int32(bits>>mantissaBits&0xff) - exponentBias)
	m := bits & mantissaMask
	shift := uint(mantissaBits - pt.Precision)
	idx := m >> shift
	frac := float32(m&(1<<shift-1)) / float32(uint32(1)<<shift)
	lo := pt.log[idx]
	return exp + lo + frac*(pt.log[idx+1]-lo)
}

// powTable is the table used by the package level functions.
// It is replaced only by [InitFastPow].
var powTable *PowTable

func init() {
	powTable, _ = NewPowTable(DefaultPowPrecision)
}

// InitFastPow rebuilds the table used by [FastPow], [FastPowConstantBase]
// and [FastLog2] with 2^precision entries. An out of range precision
// returns an error and leaves the current table in place. The package
// is initialized with [DefaultPowPrecision], so calling InitFastPow is
// only needed to change the speed / accuracy trade-off. It must not be
// called concurrently with any use of the fast functions.
func InitFastPow(precision int) error {
	pt, err := NewPowTable(precision)
	if err != nil {
		return err
	}
	powTable = pt
	return nil
}

// FastPowPrecision returns the precision of the current table.
func FastPowPrecision() int {
	return powTable.Precision
}

// FastPow returns an approximation of base^exp using the package table.
// See [PowTable.Pow].
func FastPow(base, exp float32) float32 {
	return powTable.Pow(base, exp)
}

// FastPowConstantBase returns an approximation of base^exp given
// baseRep = BaseRepresentation(base). See [PowTable.PowConstantBase].
func FastPowConstantBase(baseRep, exp float32) float32 {
	return powTable.PowConstantBase(baseRep, exp)
}

// FastLog2 returns an approximation of log2(x) using the package table.
func FastLog2(x float32) float32 {
	return powTable.Log2(x)
}

// BaseRepresentation returns the representation of radix used by
// [FastPowConstantBase], which is log2(radix).
func BaseRepresentation(radix float32) float32 {
	return float32(math.Log2(float64(radix)))
}

// VeryFastPow returns a coarse approximation of a^b that only
// manipulates the high word of the float64 bit layout. Errors are
// in the range of a few percent; it is suitable where the result is
// quantized to 8 bits.
func VeryFastPow(a, b float64) float64 {
	if a <= 0 {
		return 0
	}
	hi := int64(math.Float64bits(a)) >> 32
	return math.Float64frombits(uint64(int64(b*float64(hi-1072632447)+1072632447)) << 32)
}
