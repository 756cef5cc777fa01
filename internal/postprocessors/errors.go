// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package postprocessors

import "errors"

// ErrAlreadyRegistered is returned when a post-processor name is registered twice.
var ErrAlreadyRegistered = errors.New("post-processor already registered")

// ErrNotRegistered is returned when a post-processor name is unknown to the registry.
var ErrNotRegistered = errors.New("post-processor not registered")
