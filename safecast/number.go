/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safecast

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types, as well as any type defined on them (e.g. enumerations).
type ISignedInteger interface {
	constraints.Signed
}

// IUnsignedInteger is an alias for all unsigned integers: uint, uint8, uint16, uint32, uint64 and uintptr types, as well as any type defined on them.
type IUnsignedInteger interface {
	constraints.Unsigned
}

// IInteger is an alias for the all unsigned and signed integers
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}

// IFloat is an alias for the float32 and float64 types.
type IFloat interface {
	constraints.Float
}

// INumber is an alias for all integers and floats
type INumber interface {
	IInteger | IFloat
}

// IConvertable is an alias for every built-in type that can be converted
type IConvertable interface {
	INumber
}

// INumeric describes a numeric type which is not built into the language (e.g. 128-bit integers, half-precision floats) but behaves like one.
// Such a type supports arithmetic and ordering, and exposes the bounds of the values it can represent.
//
// Values are exchanged with other numeric types through *big.Float, which acts as the common comparison domain: BigFloat must return the exact value
// (or nil for NaN) and FromBigFloat must build the closest value of the type, truncating towards zero for integral types. FromBigFloat is only ever
// called with values lying within Limits.
type INumeric[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	// Cmp returns -1, 0 or +1 depending on whether the value is less than, equal to, or greater than the argument.
	Cmp(T) int
	// Limits returns the lowest and highest finite values of the type. It must work on the zero value.
	Limits() (lowest, highest T)
	IsNaN() bool
	BigFloat() *big.Float
	FromBigFloat(f *big.Float) T
}
