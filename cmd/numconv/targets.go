/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ARM-software/golang-numconv/commonerrors"
	"github.com/ARM-software/golang-numconv/numeric"
	"github.com/ARM-software/golang-numconv/safecast"
)

// converter converts a parsed source value (int64, uint64, float64 or numeric.Int128) into a given target type.
type converter struct {
	convert func(value any) (any, error)
	probe   func(value any) bool
}

var targets = map[string]converter{
	"int":     builtinTarget[int](),
	"int8":    builtinTarget[int8](),
	"int16":   builtinTarget[int16](),
	"int32":   builtinTarget[int32](),
	"int64":   builtinTarget[int64](),
	"uint":    builtinTarget[uint](),
	"uint8":   builtinTarget[uint8](),
	"byte":    builtinTarget[byte](),
	"uint16":  builtinTarget[uint16](),
	"uint32":  builtinTarget[uint32](),
	"uint64":  builtinTarget[uint64](),
	"uintptr": builtinTarget[uintptr](),
	"float32": builtinTarget[float32](),
	"float64": builtinTarget[float64](),
	"int128":  numericTarget[numeric.Int128](),
	"float16": numericTarget[numeric.Float16](),
}

// targetNames returns the names of all supported target types.
func targetNames() mapset.Set[string] {
	names := mapset.NewSetWithSize[string](len(targets))
	for name := range targets {
		names.Add(name)
	}
	return names
}

func sortedTargetNames() []string {
	return mapset.Sorted(targetNames())
}

func lookupTarget(name string) (c converter, err error) {
	c, found := targets[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "unknown target type %q (supported: %v)", name, strings.Join(sortedTargetNames(), ", "))
	}
	return
}

func builtinTarget[T safecast.IConvertable]() converter {
	return converter{
		convert: func(value any) (any, error) {
			switch v := value.(type) {
			case int64:
				return wrap(safecast.NumericCast[T](v))
			case uint64:
				return wrap(safecast.NumericCast[T](v))
			case float64:
				return wrap(safecast.NumericCast[T](v))
			case numeric.Int128:
				return wrap(safecast.FromNumeric[T](v))
			default:
				return nil, unsupportedSource(value)
			}
		},
		probe: func(value any) bool {
			switch v := value.(type) {
			case int64:
				return safecast.IsConvertible[T](v)
			case uint64:
				return safecast.IsConvertible[T](v)
			case float64:
				return safecast.IsConvertible[T](v)
			case numeric.Int128:
				return safecast.IsConvertibleFromNumeric[T](v)
			default:
				return false
			}
		},
	}
}

func numericTarget[T safecast.INumeric[T]]() converter {
	return converter{
		convert: func(value any) (any, error) {
			switch v := value.(type) {
			case int64:
				return wrap(safecast.ToNumeric[T](v))
			case uint64:
				return wrap(safecast.ToNumeric[T](v))
			case float64:
				return wrap(safecast.ToNumeric[T](v))
			case numeric.Int128:
				return wrap(safecast.ConvertNumeric[T](v))
			default:
				return nil, unsupportedSource(value)
			}
		},
		probe: func(value any) bool {
			switch v := value.(type) {
			case int64:
				return safecast.IsConvertibleToNumeric[T](v)
			case uint64:
				return safecast.IsConvertibleToNumeric[T](v)
			case float64:
				return safecast.IsConvertibleToNumeric[T](v)
			case numeric.Int128:
				return safecast.IsConvertibleNumeric[T](v)
			default:
				return false
			}
		},
	}
}

func wrap[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func unsupportedSource(value any) error {
	return commonerrors.Newf(commonerrors.ErrUnsupported, "unsupported source value %v of type %T", value, value)
}

// parseValue parses a command line value into the narrowest source type able to hold it: int64, uint64, numeric.Int128 and finally float64.
func parseValue(text string) (any, error) {
	text = strings.TrimSpace(text)
	if i, err := strconv.ParseInt(text, 0, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(text, 0, 64); err == nil {
		return u, nil
	}
	if i, err := numeric.ParseInt128(text); err == nil {
		return i, nil
	}
	// out of range values are parsed as ±Inf, and values too small for float64 as zero
	f, err := strconv.ParseFloat(text, 64)
	if err == nil || commonerrors.Any(err, strconv.ErrRange) {
		return f, nil
	}
	return nil, commonerrors.Newf(commonerrors.ErrInvalid, "%q is not a number", text)
}
