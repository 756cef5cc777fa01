// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.
//
// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package logs

import (
	// stdlib
	"maps"
	"slices"

	// project
	"github.com/DataDog/pii-scrubber/internal/collections"
	"github.com/DataDog/pii-scrubber/internal/environment"
	"github.com/DataDog/pii-scrubber/internal/storage"
)

const (
	// Source is the ddsource of every log sent by the job.
	Source = "pii-scrubber"

	// ServiceName is the service tag used for APM and logs about this job.
	ServiceName = "dd-pii-scrubber"
)

// DefaultTags are the tags to include with every log.
func DefaultTags() []string {
	return []string{
		"scrubber:pii",
		"source_prefix:" + environment.Get(environment.SourcePrefix),
	}
}

func blobTags(blob storage.Blob) []string {
	return []string{
		"container:" + blob.Container.Name,
		"blob:" + blob.Name,
	}
}

func filthTypeTags(counts map[string]int64) []string {
	found := collections.Filter(slices.Sorted(maps.Keys(counts)), func(filthType string) bool {
		return counts[filthType] > 0
	})
	return collections.Map(found, func(filthType string) string {
		return "filth_type:" + filthType
	})
}
