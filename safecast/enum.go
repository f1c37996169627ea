/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safecast

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

// ToEnum converts value into the enumeration E i.e. a type defined on an integer type.
// Only the range of the underlying integer type is checked: the result is NOT validated against the declared enumerators,
// so a value with no matching enumerator is returned without error. Use ToEnumMember when membership matters.
func ToEnum[E IInteger, S IConvertable](value S) (E, error) {
	return ToInteger[E](value)
}

// ToEnumMember is similar to ToEnum but also checks that the result is one of the enumerators in declared.
// A range violation is reported as for ToEnum; an unknown enumerator is reported as commonerrors.ErrInvalid.
func ToEnumMember[E IInteger, S IConvertable](value S, declared mapset.Set[E]) (result E, err error) {
	result, err = ToEnum[E](value)
	if err != nil {
		return
	}
	if declared == nil || !declared.Contains(result) {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "value %v of type %v is not a declared enumerator of %v", value, Describe[S](), Describe[E]())
		result = 0
	}
	return
}
