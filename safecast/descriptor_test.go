/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safecast

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

func assertDescriptor[T IConvertable](t *testing.T, name string, category Category, bits int, lowest, highest *big.Float) {
	t.Helper()
	d := Describe[T]()
	assert.Equal(t, name, d.String())
	assert.Equal(t, category, d.Category)
	assert.Equal(t, bits, d.Bits)
	assert.Zero(t, lowest.Cmp(d.Lowest()), "lowest %v", d.Lowest())
	assert.Zero(t, highest.Cmp(d.Highest()), "highest %v", d.Highest())
}

func TestDescribe(t *testing.T) {
	assertDescriptor[int8](t, "int8", SignedInteger, 8, big.NewFloat(math.MinInt8), big.NewFloat(math.MaxInt8))
	assertDescriptor[int64](t, "int64", SignedInteger, 64, big.NewFloat(math.MinInt64), new(big.Float).SetInt64(math.MaxInt64))
	assertDescriptor[uint16](t, "uint16", UnsignedInteger, 16, big.NewFloat(0), big.NewFloat(math.MaxUint16))
	assertDescriptor[uint64](t, "uint64", UnsignedInteger, 64, big.NewFloat(0), new(big.Float).SetUint64(math.MaxUint64))
	assertDescriptor[float32](t, "float32", FloatingPoint, 32, big.NewFloat(-math.MaxFloat32), big.NewFloat(math.MaxFloat32))
	assertDescriptor[float64](t, "float64", FloatingPoint, 64, big.NewFloat(-math.MaxFloat64), big.NewFloat(math.MaxFloat64))
	assertDescriptor[byte](t, "uint8", UnsignedInteger, 8, big.NewFloat(0), big.NewFloat(math.MaxUint8))
}

func TestBoundsAreCopies(t *testing.T) {
	d := Describe[int8]()
	d.Highest().SetInt64(0)
	assert.Zero(t, big.NewFloat(127).Cmp(d.Highest()))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "signed integer", SignedInteger.String())
	assert.Equal(t, "unsigned integer", UnsignedInteger.String())
	assert.Equal(t, "floating point", FloatingPoint.String())
	assert.Equal(t, "user-defined numeric", UserDefined.String())
	assert.Equal(t, "unknown", Category(0).String())
	assert.True(t, SignedInteger.IsInteger())
	assert.True(t, UnsignedInteger.IsInteger())
	assert.False(t, FloatingPoint.IsInteger())
	assert.False(t, UserDefined.IsInteger())
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome Outcome
		name    string
		kind    error
	}{
		{InRange, "in range", nil},
		{Overflow, "overflow", commonerrors.ErrOverflow},
		{Underflow, "underflow", commonerrors.ErrUnderflow},
		{OutOfDomain, "out of domain", commonerrors.ErrDomain},
		{Outcome(42), "unknown", commonerrors.ErrUnknown},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.name, test.outcome.String())
			assert.Equal(t, test.kind, test.outcome.Kind())
		})
	}
}

func TestFormatBound(t *testing.T) {
	assert.Equal(t, "NaN", formatBound(nil, UserDefined))
	assert.Equal(t, "18446744073709551615", formatBound(new(big.Float).SetUint64(math.MaxUint64), UnsignedInteger))
	assert.Equal(t, "65504", formatBound(big.NewFloat(65504), UserDefined))
	assert.Equal(t, "0.5", formatBound(big.NewFloat(0.5), UserDefined))
	assert.Equal(t, "3.4028234663852886e+38", formatBound(big.NewFloat(math.MaxFloat32), FloatingPoint))
}
