// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

// Package postprocessors decides what each filth is replaced with once detection and merging
// are done. Post-processors run as an ordered chain over the whole filth list.
package postprocessors

import (
	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

// PostProcessor rewrites the replacement of filth.
// Implementations may only set ReplacementString; offsets, text and types are read only.
// A post-processor may also implement detectors.LocaleSupporter.
//
//go:generate mockgen -package=mocks -source=$GOFILE -destination=mocks/mock_$GOFILE
type PostProcessor interface {
	// Name is the key of the post-processor in a scrubber.
	Name() string

	// ProcessFilth returns the filth list with replacements applied.
	ProcessFilth(filths []*filth.Filth) ([]*filth.Filth, error)
}
