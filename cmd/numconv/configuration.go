/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"io"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numconv/config"
	"github.com/ARM-software/golang-numconv/logs"
)

const envVarPrefix = "numconv"

// Configuration holds the settings of the tool. Each entry can be set via a flag or a NUMCONV_ environment variable.
type Configuration struct {
	Target    string `mapstructure:"target"`
	Probe     bool   `mapstructure:"probe"`
	Fallback  string `mapstructure:"fallback"`
	LogFormat string `mapstructure:"log_format"`
	Verbose   bool   `mapstructure:"verbose"`
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		LogFormat: logs.FormatText,
	}
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Target, validation.Required, validation.By(func(any) error {
			_, err := lookupTarget(cfg.Target)
			return err
		})),
		validation.Field(&cfg.LogFormat, validation.Required, validation.In(toAny(logs.Formats)...)),
		validation.Field(&cfg.Fallback, validation.When(strings.TrimSpace(cfg.Fallback) != "", validation.By(func(any) error {
			_, err := cfg.fallbackValue()
			return err
		}))),
	)
}

// fallbackValue returns the fallback value converted into the target type.
func (cfg *Configuration) fallbackValue() (value any, err error) {
	target, err := lookupTarget(cfg.Target)
	if err != nil {
		return
	}
	source, err := parseValue(cfg.Fallback)
	if err != nil {
		return
	}
	value, err = target.convert(source)
	return
}

func toAny(values []string) []any {
	result := make([]any, 0, len(values))
	for i := range values {
		result = append(result, values[i])
	}
	return result
}

func newFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("numconv", pflag.ContinueOnError)
	flagSet.StringP("target", "t", "", "type the values are converted into ("+strings.Join(sortedTargetNames(), ", ")+")")
	flagSet.BoolP("probe", "p", false, "only report whether the values are convertible")
	flagSet.StringP("fallback", "f", "", "value returned in place of values which cannot be converted")
	flagSet.String("log-format", logs.FormatText, "log format ("+strings.Join(logs.Formats, ", ")+")")
	flagSet.BoolP("verbose", "v", false, "verbose logging")
	flagSet.SortFlags = false
	flagSet.SetOutput(io.Discard)
	return flagSet
}

// loadConfiguration parses the command line arguments and returns the tool configuration and the values to convert.
func loadConfiguration(args []string) (cfg *Configuration, values []string, err error) {
	flagSet := newFlagSet()
	err = flagSet.Parse(args)
	if err != nil {
		return
	}
	session := viper.New()
	for envVar, flagName := range map[string]string{
		"TARGET":     "target",
		"PROBE":      "probe",
		"FALLBACK":   "fallback",
		"LOG_FORMAT": "log-format",
		"VERBOSE":    "verbose",
	} {
		err = config.BindFlagToEnv(session, envVarPrefix, envVar, flagSet.Lookup(flagName))
		if err != nil {
			return
		}
	}
	cfg = &Configuration{}
	err = config.LoadFromViper(session, envVarPrefix, cfg, DefaultConfiguration())
	values = flagSet.Args()
	return
}
