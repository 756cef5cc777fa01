// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package scrubber

import "errors"

var (
	// ErrDuplicateName is returned when a detector or post-processor name is already active.
	ErrDuplicateName = errors.New("name already in use")

	// ErrNotRegistered is returned for names that are neither registered nor active.
	ErrNotRegistered = errors.New("name not registered")

	// ErrNilDetector is returned when a nil detector is added.
	ErrNilDetector = errors.New("detector is nil")

	// ErrNilPostProcessor is returned when a nil post-processor is added.
	ErrNilPostProcessor = errors.New("post-processor is nil")

	// ErrInvalidFilth is returned as soon as a detector yields filth that does not fit its document.
	ErrInvalidFilth = errors.New("invalid filth")

	// ErrDuplicateDocument is returned when two documents of a batch share a name.
	ErrDuplicateDocument = errors.New("duplicate document name")
)
