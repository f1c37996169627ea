/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safecast

import (
	"math"
	"math/big"
	"reflect"
)

// Category is the family a numeric type belongs to.
type Category uint8

const (
	SignedInteger Category = iota + 1
	UnsignedInteger
	FloatingPoint
	UserDefined
)

func (c Category) String() string {
	switch c {
	case SignedInteger:
		return "signed integer"
	case UnsignedInteger:
		return "unsigned integer"
	case FloatingPoint:
		return "floating point"
	case UserDefined:
		return "user-defined numeric"
	default:
		return "unknown"
	}
}

// IsInteger states whether values of the category are integral.
func (c Category) IsInteger() bool {
	return c == SignedInteger || c == UnsignedInteger
}

// Descriptor describes a numeric type: its name, category and the bounds of the values it can represent.
// Enumerations, i.e. types defined on an integer type, are described by the category and width of that integer type.
type Descriptor struct {
	Name     string
	Category Category
	// Bits is the width of a built-in type. It is 0 for user-defined types.
	Bits    int
	lowest  *big.Float
	highest *big.Float
}

// Describe returns the descriptor of a built-in numeric type.
func Describe[T IConvertable]() Descriptor {
	t := reflect.TypeFor[T]()
	d := Descriptor{
		Name: t.String(),
		Bits: t.Bits(),
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d.Category = SignedInteger
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		d.Category = UnsignedInteger
	default:
		d.Category = FloatingPoint
	}
	return d
}

// DescribeNumeric returns the descriptor of a user-defined numeric type.
func DescribeNumeric[T INumeric[T]]() Descriptor {
	var zero T
	lowest, highest := zero.Limits()
	return Descriptor{
		Name:     reflect.TypeFor[T]().String(),
		Category: UserDefined,
		lowest:   lowest.BigFloat(),
		highest:  highest.BigFloat(),
	}
}

// Lowest returns the minimum value representable by the type, in the common comparison domain.
func (d Descriptor) Lowest() *big.Float {
	switch d.Category {
	case SignedInteger:
		return new(big.Float).SetInt64(d.signedMin())
	case UnsignedInteger:
		return new(big.Float).SetUint64(0)
	case FloatingPoint:
		return new(big.Float).SetFloat64(-d.floatMax())
	default:
		return copyOf(d.lowest)
	}
}

// Highest returns the maximum value representable by the type, in the common comparison domain.
func (d Descriptor) Highest() *big.Float {
	switch d.Category {
	case SignedInteger:
		return new(big.Float).SetInt64(d.signedMax())
	case UnsignedInteger:
		return new(big.Float).SetUint64(d.unsignedMax())
	case FloatingPoint:
		return new(big.Float).SetFloat64(d.floatMax())
	default:
		return copyOf(d.highest)
	}
}

func (d Descriptor) String() string {
	return d.Name
}

func (d Descriptor) signedMax() int64 {
	return math.MaxInt64 >> (64 - d.Bits)
}

func (d Descriptor) signedMin() int64 {
	return -d.signedMax() - 1
}

func (d Descriptor) unsignedMax() uint64 {
	return math.MaxUint64 >> (64 - d.Bits)
}

func (d Descriptor) floatMax() float64 {
	if d.Bits == 32 {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}

func copyOf(f *big.Float) *big.Float {
	if f == nil {
		return nil
	}
	return new(big.Float).Copy(f)
}

func formatBound(bound *big.Float, category Category) string {
	if bound == nil {
		return "NaN"
	}
	if category.IsInteger() || (category == UserDefined && !bound.IsInf() && bound.IsInt()) {
		return bound.Text('f', 0)
	}
	return bound.Text('g', -1)
}
