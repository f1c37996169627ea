/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines the loggers used by the project. All of them are exposed as logr.Logger (https://github.com/go-logr/logr).
package logs

import (
	"fmt"
	"io"
	"strings"

	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/zapr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
	FormatHclog   = "hclog"
	FormatLogrus  = "logrus"

	syncError = "invalid argument" // sync error can happen on Linux (sync /dev/stderr: invalid argument) see https://github.com/uber-go/zap/issues/328
)

// Formats lists the supported log formats.
var Formats = []string{FormatJSON, FormatConsole, FormatText, FormatHclog, FormatLogrus}

// NewLogger returns a logger in the requested format, as well as a function flushing it.
// zap based formats (json and console) write to standard error whereas the other ones write to output.
// When verbose is set, messages of verbosity 1 (i.e. logger.V(1)) are also emitted.
func NewLogger(format string, verbose bool, output io.Writer) (logger logr.Logger, closeFunc func() error, err error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return newZapLogger(zap.NewProductionConfig(), verbose)
	case FormatConsole:
		return newZapLogger(zap.NewDevelopmentConfig(), verbose)
	case FormatText:
		logger = NewTextLogger(output, verbose)
	case FormatHclog:
		logger = NewHclogLogger(output, verbose)
	case FormatLogrus:
		logger = NewLogrusLogger(output, verbose)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "log format %q is not one of %v", format, Formats)
		return
	}
	closeFunc = func() error { return nil }
	return
}

func newZapLogger(cfg zap.Config, verbose bool) (logger logr.Logger, closeFunc func() error, err error) {
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zapL, err := cfg.Build()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create zap logger")
		return
	}
	logger, closeFunc, err = NewZapLogger(zapL)
	return
}

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger) (logger logr.Logger, closeFunc func() error, err error) {
	if zapL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	logger = zapr.NewLogger(zapL)
	closeFunc = func() error {
		err := zapL.Sync()
		// handling this error https://github.com/uber-go/zap/issues/328
		if commonerrors.CorrespondTo(err, syncError) {
			return nil
		}
		return err
	}
	return
}

// NewTextLogger returns a plain text logger to writer.
// See https://github.com/go-logr/logr/blob/ff91da8dc418a9e36998931ed4ab10b71833a368/example_test.go#L27
func NewTextLogger(writer io.Writer, verbose bool) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(writer, "%s: %s\n", prefix, args)
		} else {
			_, _ = fmt.Fprintln(writer, args)
		}
	}, funcr.Options{Verbosity: verbosity})
}

// NewHclogLogger returns a logger which uses hclog (https://github.com/hashicorp/go-hclog)
func NewHclogLogger(writer io.Writer, verbose bool) logr.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclogr.Wrap(hclog.New(&hclog.LoggerOptions{
		Output: writer,
		Level:  level,
	}))
}

// NewLogrusLogger returns a logger which uses logrus (https://github.com/sirupsen/logrus)
func NewLogrusLogger(writer io.Writer, verbose bool) logr.Logger {
	underlying := logrus.New()
	underlying.SetOutput(writer)
	underlying.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	if verbose {
		underlying.SetLevel(logrus.DebugLevel)
	}
	return logrusr.New(underlying)
}
