/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

// IServiceConfiguration describes a configuration which can be loaded from the environment.
type IServiceConfiguration interface {
	// Validate checks configuration entries.
	Validate() error
}
