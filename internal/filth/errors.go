// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package filth

import (
	// stdlib
	"errors"
	"fmt"
)

var (
	// ErrMerge is returned when two filth that neither touch nor overlap are merged.
	ErrMerge = errors.New("filth do not overlap")

	// ErrDocumentMismatch is returned when filth from two different documents are merged.
	ErrDocumentMismatch = errors.New("filth belong to different documents")

	// ErrTextLength is returned when merged text no longer spans the merged bounds.
	ErrTextLength = errors.New("merged text length is inconsistent with its bounds")
)

// MergeError describes the pair of filth that could not be merged.
type MergeError struct {
	Left  *Filth
	Right *Filth
	Err   error
}

// Error returns the offending pair and the reason.
func (e *MergeError) Error() string {
	return fmt.Sprintf("cannot merge %s with %s: %v", e.Left, e.Right, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *MergeError) Unwrap() error {
	return e.Err
}
