// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package config

import "errors"

// ErrInvalidConfig is returned when the configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid scrubber configuration")
