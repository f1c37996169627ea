/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"cmp"
	"math/big"
	"strconv"

	"github.com/x448/float16"
)

const (
	float16MaxBits    = 0x7bff // 65504
	float16LowestBits = 0xfbff // -65504
)

// Float16 is an IEEE 754 half-precision floating point number.
// Arithmetic is performed in float32 and rounded to the nearest half-precision value.
type Float16 struct {
	f float16.Float16
}

// NewFloat16 returns the half-precision value nearest to f.
func NewFloat16(f float32) Float16 {
	return Float16{f: float16.Fromfloat32(f)}
}

// Float16FromBits returns the half-precision value with the given IEEE 754 binary16 representation.
func Float16FromBits(b uint16) Float16 {
	return Float16{f: float16.Frombits(b)}
}

// Float16Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Float16Inf(sign int) Float16 {
	return Float16{f: float16.Inf(sign)}
}

// Float16NaN returns a quiet NaN.
func Float16NaN() Float16 {
	return Float16{f: float16.NaN()}
}

// ParseFloat16 parses s as a float32 then rounds it to half precision.
func ParseFloat16(s string) (Float16, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return Float16{}, err
	}
	return NewFloat16(float32(f)), nil
}

func (h Float16) Float32() float32 {
	return h.f.Float32()
}

func (h Float16) Bits() uint16 {
	return h.f.Bits()
}

func (h Float16) IsInf(sign int) bool {
	return h.f.IsInf(sign)
}

func (h Float16) Add(o Float16) Float16 {
	return NewFloat16(h.Float32() + o.Float32())
}

func (h Float16) Sub(o Float16) Float16 {
	return NewFloat16(h.Float32() - o.Float32())
}

func (h Float16) Mul(o Float16) Float16 {
	return NewFloat16(h.Float32() * o.Float32())
}

func (h Float16) Quo(o Float16) Float16 {
	return NewFloat16(h.Float32() / o.Float32())
}

// Cmp orders NaN before any other value and considers NaNs equal, as cmp.Compare does.
func (h Float16) Cmp(o Float16) int {
	return cmp.Compare(h.Float32(), o.Float32())
}

// Limits returns the lowest and highest finite half-precision values, i.e. -65504 and 65504.
func (h Float16) Limits() (lowest, highest Float16) {
	return Float16FromBits(float16LowestBits), Float16FromBits(float16MaxBits)
}

func (h Float16) IsNaN() bool {
	return h.f.IsNaN()
}

// BigFloat returns the exact value of h, or nil if h is NaN.
func (h Float16) BigFloat() *big.Float {
	switch {
	case h.IsNaN():
		return nil
	case h.IsInf(1):
		return new(big.Float).SetInf(false)
	case h.IsInf(-1):
		return new(big.Float).SetInf(true)
	default:
		return new(big.Float).SetFloat64(float64(h.Float32()))
	}
}

// FromBigFloat returns the half-precision value nearest to f.
func (h Float16) FromBigFloat(f *big.Float) Float16 {
	f32, _ := f.Float32()
	return NewFloat16(f32)
}

func (h Float16) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}
