/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safecast

import (
	"math"
	"math/big"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

// Outcome is the result of comparing a value against the bounds of a target type.
type Outcome uint8

const (
	InRange Outcome = iota
	Overflow
	Underflow
	// OutOfDomain is the outcome for values which cannot be ordered against any bound i.e. NaN.
	OutOfDomain
)

func (o Outcome) String() string {
	switch o {
	case InRange:
		return "in range"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case OutOfDomain:
		return "out of domain"
	default:
		return "unknown"
	}
}

// Kind returns the error corresponding to the outcome, or nil if the value is in range.
func (o Outcome) Kind() error {
	switch o {
	case InRange:
		return nil
	case Overflow:
		return commonerrors.ErrOverflow
	case Underflow:
		return commonerrors.ErrUnderflow
	case OutOfDomain:
		return commonerrors.ErrDomain
	default:
		return commonerrors.ErrUnknown
	}
}

// Classify determines whether value fits within the bounds of T without performing the conversion.
func Classify[T, S IConvertable](value S) Outcome {
	return classify(value, Describe[S](), Describe[T]())
}

// classify widens value to the largest type of its own category, which is lossless, before comparing it against the target bounds.
func classify[S IConvertable](value S, source, target Descriptor) Outcome {
	switch source.Category {
	case FloatingPoint:
		return classifyFloat(float64(value), target)
	case UnsignedInteger:
		return classifyUnsigned(uint64(value), target)
	default:
		return classifySigned(int64(value), target)
	}
}

func classifySigned(i int64, target Descriptor) Outcome {
	switch target.Category {
	case SignedInteger:
		if i > target.signedMax() {
			return Overflow
		}
		if i < target.signedMin() {
			return Underflow
		}
	case UnsignedInteger:
		if i < 0 {
			return Underflow
		}
		if uint64(i) > target.unsignedMax() {
			return Overflow
		}
	case FloatingPoint:
		// |i| <= 2^63 which is far below the largest float32.
		return InRange
	default:
		return classifyBig(new(big.Float).SetInt64(i), target)
	}
	return InRange
}

func classifyUnsigned(u uint64, target Descriptor) Outcome {
	switch target.Category {
	case SignedInteger:
		// The maximum of a signed type is positive hence always representable as an unsigned integer.
		if u > uint64(target.signedMax()) {
			return Overflow
		}
	case UnsignedInteger:
		if u > target.unsignedMax() {
			return Overflow
		}
	case FloatingPoint:
		return InRange
	default:
		return classifyBig(new(big.Float).SetUint64(u), target)
	}
	return InRange
}

func classifyFloat(f float64, target Descriptor) Outcome {
	if special, isSpecial := classifySpecialValue(f); isSpecial {
		return special
	}
	switch target.Category {
	case FloatingPoint:
		// only the magnitude is checked: precision loss and flushing of tiny values to zero are not reported.
		limit := target.floatMax()
		if f > limit {
			return Overflow
		}
		if f < -limit {
			return Underflow
		}
	case SignedInteger:
		if exceedsPowerOfTwo(f, target.Bits-1) {
			return Overflow
		}
		if f < -math.Ldexp(1, target.Bits-1) {
			return Underflow
		}
	case UnsignedInteger:
		if f < 0 {
			return Underflow
		}
		if exceedsPowerOfTwo(f, target.Bits) {
			return Overflow
		}
	default:
		return classifyBig(new(big.Float).SetFloat64(f), target)
	}
	return InRange
}

// classifySpecialValue rejects NaN and infinities whatever the target type, floating point targets included.
// It must run before any ordering comparison as comparisons against NaN are always false.
func classifySpecialValue(f float64) (outcome Outcome, isSpecial bool) {
	switch {
	case math.IsNaN(f):
		return OutOfDomain, true
	case math.IsInf(f, 1):
		return Overflow, true
	case math.IsInf(f, -1):
		return Underflow, true
	default:
		return InRange, false
	}
}

// exceedsPowerOfTwo reports whether f > 2^exp - 1.
// When 2^exp - 1 is not representable as a float64 (exp > 53), it rounds to 2^exp and f >= 2^exp is the exact equivalent.
func exceedsPowerOfTwo(f float64, exp int) bool {
	limit := math.Ldexp(1, exp)
	return f >= limit || f > limit-1
}

func classifyBig(x *big.Float, target Descriptor) Outcome {
	if x.Cmp(target.Highest()) > 0 {
		return Overflow
	}
	if x.Cmp(target.Lowest()) < 0 {
		return Underflow
	}
	return InRange
}
