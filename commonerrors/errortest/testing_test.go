/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package errortest

import (
	"testing"

	"github.com/go-faker/faker/v4"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

func TestAssertError(t *testing.T) {
	AssertError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrMarshalling, commonerrors.ErrUndefined)
	AssertError(t, commonerrors.WrapError(commonerrors.ErrInvalid, commonerrors.ErrOverflow, faker.Sentence()), commonerrors.ErrOverflow)
}

func TestAssertErrorDescription(t *testing.T) {
	AssertErrorDescription(t, commonerrors.Newf(commonerrors.ErrDomain, "value %v", "NaN"), "DOMAIN ERROR", faker.Word())
}

func TestRequireError(t *testing.T) {
	RequireError(t, commonerrors.ErrUndefined, commonerrors.ErrNotFound, commonerrors.ErrMarshalling, commonerrors.ErrUndefined)
}

func TestAssertConversionFailure(t *testing.T) {
	AssertConversionFailure(t, commonerrors.New(commonerrors.ErrUnderflow, faker.Sentence()), nil)
	AssertConversionFailure(t, commonerrors.New(commonerrors.ErrOverflow, faker.Sentence()), commonerrors.ErrOverflow)
	AssertConversionFailure(t, commonerrors.ErrDomain, commonerrors.ErrDomain)
}
