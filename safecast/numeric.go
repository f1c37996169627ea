/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safecast

import (
	"math/big"
)

// FromNumeric converts a user-defined numeric value into the built-in type T.
func FromNumeric[T IConvertable, S INumeric[S]](value S) (result T, err error) {
	target := Describe[T]()
	outcome := classifyNumeric(value, target)
	if outcome != InRange {
		err = newConversionError(outcome, value, DescribeNumeric[S](), target)
		return
	}
	result = fromBigFloat[T](value.BigFloat(), target)
	return
}

// IsConvertibleFromNumeric states whether FromNumeric would succeed for value.
func IsConvertibleFromNumeric[T IConvertable, S INumeric[S]](value S) bool {
	return classifyNumeric(value, Describe[T]()) == InRange
}

// NumericToInteger converts a user-defined numeric value into the integer type T.
func NumericToInteger[T IInteger, S INumeric[S]](value S) (T, error) {
	return FromNumeric[T](value)
}

// ToNumeric converts a built-in numeric value into the user-defined numeric type T.
// NaN and infinities are rejected as T is only known through its finite limits.
func ToNumeric[T INumeric[T], S IConvertable](value S) (result T, err error) {
	source := Describe[S]()
	target := DescribeNumeric[T]()
	outcome := classify(value, source, target)
	if outcome != InRange {
		err = newConversionError(outcome, value, source, target)
		return
	}
	result = result.FromBigFloat(toBigFloat(value, source))
	return
}

// IsConvertibleToNumeric states whether ToNumeric would succeed for value.
func IsConvertibleToNumeric[T INumeric[T], S IConvertable](value S) bool {
	return classify(value, Describe[S](), DescribeNumeric[T]()) == InRange
}

// ConvertNumeric converts a user-defined numeric value into another user-defined numeric type.
func ConvertNumeric[T INumeric[T], S INumeric[S]](value S) (result T, err error) {
	target := DescribeNumeric[T]()
	outcome := classifyNumeric(value, target)
	if outcome != InRange {
		err = newConversionError(outcome, value, DescribeNumeric[S](), target)
		return
	}
	result = result.FromBigFloat(value.BigFloat())
	return
}

// IsConvertibleNumeric states whether ConvertNumeric would succeed for value.
func IsConvertibleNumeric[T INumeric[T], S INumeric[S]](value S) bool {
	return classifyNumeric(value, DescribeNumeric[T]()) == InRange
}

func classifyNumeric[S INumeric[S]](value S, target Descriptor) Outcome {
	if value.IsNaN() {
		return OutOfDomain
	}
	x := value.BigFloat()
	if x.IsInf() {
		if x.Sign() > 0 {
			return Overflow
		}
		return Underflow
	}
	return classifyBig(x, target)
}

func toBigFloat[S IConvertable](value S, source Descriptor) *big.Float {
	switch source.Category {
	case FloatingPoint:
		return new(big.Float).SetFloat64(float64(value))
	case UnsignedInteger:
		return new(big.Float).SetUint64(uint64(value))
	default:
		return new(big.Float).SetInt64(int64(value))
	}
}

// fromBigFloat expects x to lie within the bounds of target.
func fromBigFloat[T IConvertable](x *big.Float, target Descriptor) T {
	switch target.Category {
	case SignedInteger:
		i, _ := x.Int64()
		return T(i)
	case UnsignedInteger:
		u, _ := x.Uint64()
		return T(u)
	default:
		if target.Bits == 32 {
			f, _ := x.Float32()
			return T(f)
		}
		f, _ := x.Float64()
		return T(f)
	}
}
