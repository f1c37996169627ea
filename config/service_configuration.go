/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads tool configurations from defaults, `.env` files, environment variables and command line flags using viper (https://github.com/spf13/viper).
package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numconv/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "numconvflagbinding" // lower case so that it survives viper key normalisation
)

// Load loads the configuration from the environment (i.e. `.env` file, environment variables) into configurationToSet.
// Entries missing from the environment are taken from defaultConfiguration.
// Environment variables must start with `envVarPrefix` e.g. `NUMCONV_TARGET` for the `target` entry when the prefix is "numconv".
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but reuses the viper session provided, e.g. one with flags bound via BindFlagToEnv.
// Precedence order, from highest to lowest, is:
//  1. flags explicitly set
//  2. environment (variables or `.env`)
//  3. non-empty values of defaultConfiguration
//  4. flag default values
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.ErrUndefined
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not load default configuration")
			return
		}
	}

	// a missing .env file is not an error
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	applyFlagValues(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode configuration")
		return
	}
	err = configurationToSet.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid configuration")
	}
	return
}

// BindFlagToEnv binds a flag to an environment variable. envVar may or may not start with envVarPrefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if viperSession == nil || flag == nil {
		err = commonerrors.ErrUndefined
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	key, fullEnvVar := flagBindingKeys(envVar, envVarPrefix)
	err = viperSession.BindPFlag(key, flag)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not bind flag %v", flag.Name)
		return
	}
	err = viperSession.BindEnv(key, fullEnvVar)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not bind environment variable %v", fullEnvVar)
	}
	return
}

// flagBindingKeys returns the private viper key holding the flag value and the full environment variable name.
func flagBindingKeys(envVar, envVarPrefix string) (key string, fullEnvVar string) {
	short := strings.ToLower(envVar)
	prefix := strings.ToLower(envVarPrefix)
	if prefix != "" && strings.HasPrefix(short, prefix) {
		short = strings.TrimPrefix(strings.TrimPrefix(short, prefix), EnvVarSeparator)
	}
	key = flagKeyPrefix + configKeySeparator + strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator)
	fullEnvVar = strings.ToUpper(strings.ReplaceAll(short, configKeySeparator, EnvVarSeparator))
	if envVarPrefix != "" {
		fullEnvVar = strings.ToUpper(envVarPrefix) + EnvVarSeparator + fullEnvVar
	}
	return
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// applyFlagValues copies flag values onto the configuration keys they were bound to.
// viper aliases do not work with nested keys, hence the manual propagation.
func applyFlagValues(viperSession *viper.Viper, envVarPrefix string) {
	for _, key := range viperSession.AllKeys() {
		if strings.HasPrefix(key, flagKeyPrefix) {
			continue
		}
		flagKey, _ := flagBindingKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
			continue
		}
		flagDefault := viperSession.Get(flagKey)
		if isEmpty(flagDefault) {
			continue
		}
		viperSession.SetDefault(key, flagDefault)
		if isEmpty(viperSession.Get(key)) {
			viperSession.Set(key, flagDefault)
		}
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}
