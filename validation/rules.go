/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package validation provides ozzo-validation (https://github.com/go-ozzo/ozzo-validation) rules for numeric values.
package validation

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-numconv/commonerrors"
	"github.com/ARM-software/golang-numconv/safecast"
)

// IsConvertibleTo returns a rule checking that a value can be converted into T without loss of magnitude.
// Integers, floating-point numbers, as well as their textual representation (string or []byte) are supported.
func IsConvertibleTo[T safecast.IConvertable]() validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		val := reflect.ValueOf(vRaw)
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			_, err = safecast.NumericCast[T](val.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			_, err = safecast.NumericCast[T](val.Uint())
		case reflect.Float32, reflect.Float64:
			_, err = safecast.NumericCast[T](val.Float())
		case reflect.String:
			err = validateText[T](val.String())
		case reflect.Slice:
			b, ok := vRaw.([]byte)
			if !ok {
				return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for numeric validation: %T", vRaw)
			}
			err = validateText[T](string(b))
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for numeric validation: %T", vRaw)
		}
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
		}
		return
	})
}

func validateText[T safecast.IConvertable](text string) (err error) {
	text = strings.TrimSpace(text)
	if i, subErr := strconv.ParseInt(text, 0, 64); subErr == nil {
		_, err = safecast.NumericCast[T](i)
		return
	}
	if u, subErr := strconv.ParseUint(text, 0, 64); subErr == nil {
		_, err = safecast.NumericCast[T](u)
		return
	}
	f, subErr := strconv.ParseFloat(text, 64)
	switch {
	case commonerrors.Any(subErr, strconv.ErrRange) && math.IsInf(f, 1):
		err = commonerrors.Newf(commonerrors.ErrOverflow, "%q exceeds the range of float64", text)
	case commonerrors.Any(subErr, strconv.ErrRange) && math.IsInf(f, -1):
		err = commonerrors.Newf(commonerrors.ErrUnderflow, "%q is below the range of float64", text)
	case subErr == nil || commonerrors.Any(subErr, strconv.ErrRange):
		// values too small for float64 are rounded to zero
		_, err = safecast.NumericCast[T](f)
	default:
		err = commonerrors.Newf(commonerrors.ErrInvalid, "%q is not a number", text)
	}
	return
}
