/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Command numconv checks whether numbers can be converted into a given numeric type without loss of magnitude.
//
//	numconv --target int8 [--probe] [--fallback 0] VALUE...
//
// Exit status is 0 on success, 1 if any value could not be converted and 2 on usage errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"

	"github.com/ARM-software/golang-numconv/commonerrors"
	"github.com/ARM-software/golang-numconv/fallback"
	"github.com/ARM-software/golang-numconv/logs"
)

const (
	exitSuccess           = 0
	exitConversionFailure = 1
	exitUsage             = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, values, err := loadConfiguration(args)
	if commonerrors.Any(err, pflag.ErrHelp) {
		printUsage(stdout)
		return exitSuccess
	}
	if err == nil && len(values) == 0 {
		err = commonerrors.New(commonerrors.ErrUndefined, "no value to convert")
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		printUsage(stderr)
		return exitUsage
	}

	logger, closeLogger, err := logs.NewLogger(cfg.LogFormat, cfg.Verbose, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	defer func() { _ = closeLogger() }()

	sources, err := parseValues(values)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	// the target was checked when validating the configuration
	target, err := lookupTarget(cfg.Target)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	if cfg.Probe {
		for i := range sources {
			_, _ = fmt.Fprintf(stdout, "%v\t%v\n", values[i], target.probe(sources[i]))
		}
		return exitSuccess
	}

	var defaultValue any
	useFallback := cfg.Fallback != ""
	if useFallback {
		defaultValue, err = cfg.fallbackValue()
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
	}

	var failures *multierror.Error
	for i := range sources {
		converted, subErr := target.convert(sources[i])
		if useFallback {
			converted = fallback.Value(logger.WithValues(fallback.KeyValue, values[i]), converted, subErr, defaultValue)
		} else if subErr != nil {
			failures = multierror.Append(failures, subErr)
			continue
		}
		logger.V(1).Info("converted value", fallback.KeyValue, values[i], "target", cfg.Target, "result", converted)
		_, _ = fmt.Fprintf(stdout, "%v\t%v\n", values[i], converted)
	}
	if err := failures.ErrorOrNil(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return exitConversionFailure
	}
	return exitSuccess
}

func parseValues(values []string) (sources []any, err error) {
	var errs *multierror.Error
	sources = make([]any, 0, len(values))
	for i := range values {
		source, subErr := parseValue(values[i])
		if subErr != nil {
			errs = multierror.Append(errs, subErr)
			continue
		}
		sources = append(sources, source)
	}
	err = errs.ErrorOrNil()
	return
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: numconv --target TYPE [--probe] [--fallback VALUE] VALUE...")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprint(w, newFlagSet().FlagUsages())
}
