/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package numeric defines numeric types which are not built into Go and which can take part in safe conversions (see safecast.INumeric).
package numeric

import (
	"math/big"
	"strings"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

var (
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	modulus128 = new(big.Int).Lsh(big.NewInt(1), 128)
)

// Int128 is a signed 128-bit integer. Like built-in integers, arithmetic wraps around on overflow.
// The zero value is 0.
type Int128 struct {
	v *big.Int
}

// NewInt128 returns the Int128 equal to i.
func NewInt128(i int64) Int128 {
	return Int128{v: big.NewInt(i)}
}

// ParseInt128 parses a base 10 (or 0x, 0o, 0b prefixed) representation of a 128-bit integer.
func ParseInt128(s string) (i Int128, err error) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "%q is not an integer", s)
		return
	}
	if x.Cmp(maxInt128) > 0 {
		err = commonerrors.Newf(commonerrors.ErrOverflow, "%v exceeds the maximum of a 128-bit integer", x)
		return
	}
	if x.Cmp(minInt128) < 0 {
		err = commonerrors.Newf(commonerrors.ErrUnderflow, "%v is below the minimum of a 128-bit integer", x)
		return
	}
	i = Int128{v: x}
	return
}

// BigInt returns a copy of the value as a big.Int.
func (i Int128) BigInt() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.v)
}

func (i Int128) Add(o Int128) Int128 {
	return wrapInt128(new(big.Int).Add(i.BigInt(), o.BigInt()))
}

func (i Int128) Sub(o Int128) Int128 {
	return wrapInt128(new(big.Int).Sub(i.BigInt(), o.BigInt()))
}

func (i Int128) Mul(o Int128) Int128 {
	return wrapInt128(new(big.Int).Mul(i.BigInt(), o.BigInt()))
}

// Quo returns the quotient truncated towards zero. It panics if o is zero, as built-in integer division does.
func (i Int128) Quo(o Int128) Int128 {
	if o.Sign() == 0 {
		panic("numeric: division by zero")
	}
	return wrapInt128(new(big.Int).Quo(i.BigInt(), o.BigInt()))
}

func (i Int128) Cmp(o Int128) int {
	return i.BigInt().Cmp(o.BigInt())
}

func (i Int128) Sign() int {
	if i.v == nil {
		return 0
	}
	return i.v.Sign()
}

// Limits returns -2^127 and 2^127-1.
func (i Int128) Limits() (lowest, highest Int128) {
	return Int128{v: new(big.Int).Set(minInt128)}, Int128{v: new(big.Int).Set(maxInt128)}
}

func (i Int128) IsNaN() bool {
	return false
}

func (i Int128) BigFloat() *big.Float {
	return new(big.Float).SetInt(i.BigInt())
}

// FromBigFloat returns the integer part of f.
func (i Int128) FromBigFloat(f *big.Float) Int128 {
	x, _ := f.Int(nil)
	return wrapInt128(x)
}

func (i Int128) String() string {
	return i.BigInt().String()
}

// wrapInt128 brings x back into [-2^127, 2^127-1] using two's complement arithmetic.
func wrapInt128(x *big.Int) Int128 {
	if x.Cmp(minInt128) < 0 || x.Cmp(maxInt128) > 0 {
		x.Sub(x, minInt128)
		x.Mod(x, modulus128)
		x.Add(x, minInt128)
	}
	return Int128{v: x}
}
