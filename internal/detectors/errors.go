// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package detectors

import "errors"

var (
	// ErrAlreadyRegistered is returned when a detector name is registered twice.
	ErrAlreadyRegistered = errors.New("detector already registered")

	// ErrNotRegistered is returned when a detector name is unknown to the registry.
	ErrNotRegistered = errors.New("detector not registered")

	// ErrInvalidRule is returned when a configured rule cannot become a detector.
	ErrInvalidRule = errors.New("invalid detector rule")
)
