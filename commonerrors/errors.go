/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the errors shared across the project so that callers can match them with errors.Is.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

const TypeReasonErrorSeparator = ':'

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrUndefined      = errors.New("undefined")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
	ErrMarshalling    = errors.New("unserialisable")
	// ErrOverflow is returned when a value exceeds the maximum of the type it is converted to.
	ErrOverflow = errors.New("overflow")
	// ErrUnderflow is returned when a value is below the minimum of the type it is converted to.
	ErrUnderflow = errors.New("underflow")
	// ErrDomain is returned when a value (NaN) cannot be ordered against the bounds of a type.
	ErrDomain = errors.New("domain error")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions provided. The comparison is case-insensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// New creates an error of type `errorType` with a reason, following the `error type: reason` convention.
func New(errorType error, message string) error {
	message = strings.TrimSpace(message)
	if errorType == nil {
		if message == "" {
			return nil
		}
		return errors.New(message)
	}
	if message == "" {
		return errorType
	}
	return fmt.Errorf("%w%v %v", errorType, string(TypeReasonErrorSeparator), message)
}

// Newf is similar to New but allows formatting the message.
func Newf(errorType error, msgFormat string, args ...any) error {
	return New(errorType, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. The original error remains reachable with errors.Is/errors.As.
// If the original error is already of the targetError type and there is nothing to add, it is returned untouched.
func WrapError(targetError, originalError error, message string) error {
	tErr := targetError
	if tErr == nil {
		tErr = ErrUnknown
	}
	if originalError == nil {
		return New(tErr, message)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		if Any(originalError, tErr) {
			return originalError
		}
		return fmt.Errorf("%w%v %w", tErr, string(TypeReasonErrorSeparator), originalError)
	}
	return fmt.Errorf("%w%v %v%v %w", tErr, string(TypeReasonErrorSeparator), message, string(TypeReasonErrorSeparator), originalError)
}

// WrapErrorf is similar to WrapError but allows formatting the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}
