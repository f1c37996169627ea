/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

func TestConcurrentConversions(t *testing.T) {
	defer goleak.VerifyNone(t)
	var g errgroup.Group
	g.SetLimit(8)
	results := make([]int16, 1000)
	overflows := atomic.NewInt64(0)
	for i := range results {
		g.Go(func() (err error) {
			results[i], err = NumericCast[int16](i * 40)
			if commonerrors.Any(err, commonerrors.ErrOverflow) {
				results[i] = math.MaxInt16
				overflows.Inc()
				err = nil
			}
			return
		})
	}
	require.NoError(t, g.Wait())
	// i*40 > 32767 for i >= 820
	assert.Equal(t, int64(180), overflows.Load())
	for i := range results {
		if i*40 > math.MaxInt16 {
			assert.Equal(t, int16(math.MaxInt16), results[i])
		} else {
			assert.Equal(t, int16(i*40), results[i])
		}
	}
}
