/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fallback substitutes a default value for numeric conversions which failed.
// safecast never clamps nor substitutes values itself: this package is the explicit, logged, caller-side policy for doing so.
package fallback

import (
	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-numconv/safecast"
)

const (
	KeyFallback = "fallback"
	KeyValue    = "value"
)

// Value returns value if err is nil. Otherwise, err is reported to logger and defaultValue is returned.
func Value[T any](logger logr.Logger, value T, err error, defaultValue T) T {
	if err == nil {
		return value
	}
	logger.Error(err, "conversion failed, falling back to default value", KeyFallback, defaultValue)
	return defaultValue
}

// Cast converts value into T using safecast.NumericCast, falling back to defaultValue if the conversion is not possible.
func Cast[T, S safecast.IConvertable](logger logr.Logger, value S, defaultValue T) T {
	converted, err := safecast.NumericCast[T](value)
	return Value(logger.WithValues(KeyValue, value), converted, err, defaultValue)
}

// FromNumeric converts a user-defined numeric value into T, falling back to defaultValue if the conversion is not possible.
func FromNumeric[T safecast.IConvertable, S safecast.INumeric[S]](logger logr.Logger, value S, defaultValue T) T {
	converted, err := safecast.FromNumeric[T](value)
	return Value(logger.WithValues(KeyValue, value), converted, err, defaultValue)
}

// ToNumeric converts value into the user-defined numeric type T, falling back to defaultValue if the conversion is not possible.
func ToNumeric[T safecast.INumeric[T], S safecast.IConvertable](logger logr.Logger, value S, defaultValue T) T {
	converted, err := safecast.ToNumeric[T](value)
	return Value(logger.WithValues(KeyValue, value), converted, err, defaultValue)
}
