/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numconv/commonerrors"
	"github.com/ARM-software/golang-numconv/commonerrors/errortest"
	"github.com/ARM-software/golang-numconv/numeric"
)

func runCommand(args ...string) (exitCode int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	exitCode = run(args, &out, &errOut)
	return exitCode, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedCode   int
		expectedOutput []string
		expectedErrors []string
	}{
		{
			name:           "in range",
			args:           []string{"--target", "int8", "--", "-128", "127", "12.5"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"-128\t-128\n", "127\t127\n", "12.5\t12\n"},
		},
		{
			name:           "overflow",
			args:           []string{"-t", "int8", "1000"},
			expectedCode:   exitConversionFailure,
			expectedErrors: []string{"value 1000 of type int64 exceeds the maximum 127 of target type int8"},
		},
		{
			name:           "several failures",
			args:           []string{"--target=uint", "--", "-1", "NaN", "3"},
			expectedCode:   exitConversionFailure,
			expectedOutput: []string{"3\t3\n"},
			expectedErrors: []string{"2 errors occurred", "underflow", "domain error"},
		},
		{
			name:           "float target rejects special values",
			args:           []string{"--target", "float64", "--", "NaN", "+Inf", "-Inf", "1.5"},
			expectedCode:   exitConversionFailure,
			expectedOutput: []string{"1.5\t1.5\n"},
			expectedErrors: []string{"3 errors occurred", "domain error", "overflow", "underflow"},
		},
		{
			name:           "tiny value",
			args:           []string{"--target", "int8", "1e-400"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"1e-400\t0\n"},
		},
		{
			name:           "float narrowing",
			args:           []string{"--target", "float32", "2", "1e39"},
			expectedCode:   exitConversionFailure,
			expectedOutput: []string{"2\t2\n"},
			expectedErrors: []string{"of target type float32"},
		},
		{
			name:           "unsigned 64 bit source",
			args:           []string{"--target", "uint64", "18446744073709551615"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"18446744073709551615\t18446744073709551615\n"},
		},
		{
			name:           "128 bit source",
			args:           []string{"--target", "int64", "-170141183460469231731687303715884105728"},
			expectedCode:   exitConversionFailure,
			expectedErrors: []string{"underflow", "of type numeric.Int128"},
		},
		{
			name:           "128 bit target",
			args:           []string{"--target", "int128", "170141183460469231731687303715884105727", "-5"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"170141183460469231731687303715884105727\t170141183460469231731687303715884105727\n", "-5\t-5\n"},
		},
		{
			name:           "half precision target",
			args:           []string{"--target", "float16", "65504", "70000"},
			expectedCode:   exitConversionFailure,
			expectedOutput: []string{"65504\t65504\n"},
			expectedErrors: []string{"exceeds the maximum 65504 of target type numeric.Float16"},
		},
		{
			name:           "probe",
			args:           []string{"--probe", "--target", "byte", "--", "-1", "255", "256"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"-1\tfalse\n", "255\ttrue\n", "256\tfalse\n"},
		},
		{
			name:           "probe user-defined target",
			args:           []string{"-p", "-t", "float16", "1e5", "-65504"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"1e5\tfalse\n", "-65504\ttrue\n"},
		},
		{
			name:           "fallback",
			args:           []string{"--target", "uint8", "--fallback", "0", "--", "-1", "7"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"-1\t0\n", "7\t7\n"},
			expectedErrors: []string{"falling back to default value"},
		},
		{
			name:           "verbose",
			args:           []string{"--target", "int16", "--verbose", "42"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"42\t42\n"},
			expectedErrors: []string{"converted value"},
		},
		{
			name:           "invalid fallback",
			args:           []string{"--target", "int8", "--fallback", "300", "1"},
			expectedCode:   exitUsage,
			expectedErrors: []string{"fallback", "overflow"},
		},
		{
			name:           "missing target",
			args:           []string{"1"},
			expectedCode:   exitUsage,
			expectedErrors: []string{"target", "Usage"},
		},
		{
			name:           "unknown target",
			args:           []string{"--target", "complex128", "1"},
			expectedCode:   exitUsage,
			expectedErrors: []string{"unknown target type", "float16, float32"},
		},
		{
			name:           "unknown log format",
			args:           []string{"--target", "int8", "--log-format", "xml", "1"},
			expectedCode:   exitUsage,
			expectedErrors: []string{"log_format"},
		},
		{
			name:           "no value",
			args:           []string{"--target", "int8"},
			expectedCode:   exitUsage,
			expectedErrors: []string{"no value to convert"},
		},
		{
			name:           "not a number",
			args:           []string{"--target", "int8", "1", "abc", "0x"},
			expectedCode:   exitUsage,
			expectedErrors: []string{"\"abc\" is not a number", "\"0x\" is not a number"},
		},
		{
			name:           "unknown flag",
			args:           []string{"--" + faker.Word() + "-flag", "1"},
			expectedCode:   exitUsage,
			expectedErrors: []string{"unknown flag"},
		},
		{
			name:           "help",
			args:           []string{"--help"},
			expectedCode:   exitSuccess,
			expectedOutput: []string{"Usage", "--target", "--fallback"},
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			code, stdout, stderr := runCommand(test.args...)
			assert.Equal(t, test.expectedCode, code, stderr)
			for _, expected := range test.expectedOutput {
				assert.Contains(t, stdout, expected)
			}
			for _, expected := range test.expectedErrors {
				assert.Contains(t, stderr, expected)
			}
		})
	}
}

func TestRunFromEnvironment(t *testing.T) {
	t.Setenv("NUMCONV_TARGET", "uint16")
	t.Setenv("NUMCONV_PROBE", "true")
	code, stdout, stderr := runCommand("65535", "65536")
	assert.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "65535\ttrue\n65536\tfalse\n", stdout)

	// flags take precedence over the environment
	code, stdout, stderr = runCommand("--target", "int32", "65536")
	assert.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "65536\ttrue\n", stdout)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		text     string
		expected any
	}{
		{"12", int64(12)},
		{" -12 ", int64(-12)},
		{"0x10", int64(16)},
		{"18446744073709551615", uint64(math.MaxUint64)},
		{"1.5", 1.5},
		{"-Inf", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{"1e-400", 0.0},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.text, func(t *testing.T) {
			value, err := parseValue(test.text)
			require.NoError(t, err)
			assert.Equal(t, test.expected, value)
		})
	}

	value, err := parseValue("-18446744073709551616")
	require.NoError(t, err)
	i, ok := value.(numeric.Int128)
	require.True(t, ok)
	assert.Equal(t, "-18446744073709551616", i.String())

	value, err = parseValue("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(value.(float64)))

	_, err = parseValue(faker.Word())
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestTargets(t *testing.T) {
	names := targetNames()
	assert.Equal(t, len(targets), names.Cardinality())
	assert.True(t, names.Contains("int128", "float16", "byte", "uintptr"))
	assert.Equal(t, "byte", sortedTargetNames()[0])

	_, err := lookupTarget(" INT8 ")
	require.NoError(t, err)
	_, err = lookupTarget("bool")
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)

	c, err := lookupTarget("int8")
	require.NoError(t, err)
	_, err = c.convert("not a source")
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
	assert.False(t, c.probe(struct{}{}))
}
