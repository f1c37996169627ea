/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safecast provides numeric conversions which detect overflow, underflow and NaN before converting, instead of silently wrapping or truncating.
//
// Every conversion either returns a value equal to the plain Go conversion T(value), or an error matching one of
// commonerrors.ErrOverflow, commonerrors.ErrUnderflow or commonerrors.ErrDomain. Values are never clamped.
// Only the magnitude is guarded: float to integer conversions truncate towards zero and float64 to float32 conversions round.
// Unsupported types are rejected at compile time by the type constraints of each function.
package safecast

import (
	"github.com/ARM-software/golang-numconv/commonerrors"
)

// NumericCast converts any built-in numeric value into T.
// Floating point values are truncated towards zero when converted into integers. NaN is always rejected as a domain error,
// +Inf as an overflow and -Inf as an underflow, even when T is a floating point type.
// Narrowing float64 into float32 only checks the magnitude against the float32 bounds: rounding, and tiny values
// flushed to zero or to a subnormal, are not reported.
func NumericCast[T, S IConvertable](value S) (result T, err error) {
	source := Describe[S]()
	target := Describe[T]()
	outcome := classify(value, source, target)
	if outcome != InRange {
		err = newConversionError(outcome, value, source, target)
		return
	}
	result = T(value)
	return
}

// IsConvertible states whether NumericCast would succeed for value. It never fails.
func IsConvertible[T, S IConvertable](value S) bool {
	return Classify[T](value) == InRange
}

// ToInteger converts any built-in numeric value, including enumerations, into the integer type T.
func ToInteger[T IInteger, S IConvertable](value S) (T, error) {
	return NumericCast[T](value)
}

// ToSigned converts any built-in numeric value into the signed integer type T.
// Both bounds are checked; only the upper one can be exceeded by unsigned sources.
func ToSigned[T ISignedInteger, S IConvertable](value S) (T, error) {
	return NumericCast[T](value)
}

// ToUnsigned converts any built-in numeric value into the unsigned integer type T.
// Negative values are always rejected as an underflow, whatever their magnitude.
func ToUnsigned[T IUnsignedInteger, S IConvertable](value S) (result T, err error) {
	if value < 0 {
		err = newConversionError(Underflow, value, Describe[S](), Describe[T]())
		return
	}
	return NumericCast[T](value)
}

// ToByte is ToUnsigned for a single byte.
func ToByte[S IConvertable](value S) (byte, error) {
	return ToUnsigned[byte](value)
}

func newConversionError(outcome Outcome, value any, source, target Descriptor) error {
	switch outcome {
	case Overflow:
		return commonerrors.Newf(outcome.Kind(), "value %v of type %v exceeds the maximum %v of target type %v", value, source, formatBound(target.Highest(), target.Category), target)
	case Underflow:
		return commonerrors.Newf(outcome.Kind(), "value %v of type %v is below the minimum %v of target type %v", value, source, formatBound(target.Lowest(), target.Category), target)
	case OutOfDomain:
		return commonerrors.Newf(outcome.Kind(), "value %v of type %v cannot be ordered against the bounds of target type %v", value, source, target)
	default:
		return commonerrors.Newf(commonerrors.ErrUnexpected, "unexpected outcome %v when converting %v of type %v into %v", outcome, value, source, target)
	}
}
