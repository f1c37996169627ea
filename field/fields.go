/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// package field provides utilities to handle optional structure fields. It was inspired by the kubernetes package https://pkg.go.dev/k8s.io/utils/pointer.
// Optional numeric fields can be converted between types using the safe conversions of the safecast package.
package field

import (
	"github.com/ARM-software/golang-numconv/safecast"
)

// ToOptional returns a pointer to a copy of v.
func ToOptional[T any](v T) *T {
	return &v
}

// Optional returns the value of an optional field or else
// returns defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// CastOptional converts an optional numeric field into an optional field of type T.
// A missing field stays missing; a present field must be convertible without overflow, underflow or NaN.
func CastOptional[T, S safecast.IConvertable](ptr *S) (*T, error) {
	if ptr == nil {
		return nil, nil
	}
	v, err := safecast.NumericCast[T](*ptr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CastOptionalOrDefault returns the value of an optional numeric field converted into T, or defaultValue if the field is not set.
func CastOptionalOrDefault[T, S safecast.IConvertable](ptr *S, defaultValue T) (T, error) {
	if ptr == nil {
		return defaultValue, nil
	}
	return safecast.NumericCast[T](*ptr)
}

// CastOptionalNumeric converts an optional user-defined numeric field (e.g. numeric.Int128) into an optional built-in field of type T.
func CastOptionalNumeric[T safecast.IConvertable, S safecast.INumeric[S]](ptr *S) (*T, error) {
	if ptr == nil {
		return nil, nil
	}
	v, err := safecast.FromNumeric[T](*ptr)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
