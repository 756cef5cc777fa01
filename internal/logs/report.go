// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package logs

import (
	// stdlib
	"fmt"
	"strings"
	"time"

	// datadog
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"

	// project
	"github.com/DataDog/pii-scrubber/internal/pointer"
	"github.com/DataDog/pii-scrubber/internal/storage"
)

// NewScrubReport describes the scrubbing of one document. It carries filth counts only, never
// the matched text.
func NewScrubReport(blob storage.Blob, counts map[string]int64, scrubbedBytes int64, at time.Time) datadogV2.HTTPLogItem {
	var total int64
	filthCounts := make(map[string]int64, len(counts))
	for filthType, count := range counts {
		total += count
		filthCounts[filthType] = count
	}

	tags := append(DefaultTags(), blobTags(blob)...)
	tags = append(tags, filthTypeTags(counts)...)

	return datadogV2.HTTPLogItem{
		Service:  pointer.Get(ServiceName),
		Ddsource: pointer.Get(Source),
		Ddtags:   pointer.Get(strings.Join(tags, ",")),
		Message:  fmt.Sprintf("Scrubbed %d filth from %s", total, blob.Key()),
		AdditionalProperties: map[string]any{
			timeProperty:      at.UTC().Format(time.RFC3339),
			"level":           "info",
			"originContainer": blob.Container.Name,
			"originBlob":      blob.Name,
			"scrubbedBytes":   scrubbedBytes,
			"filthCount":      total,
			"filthCounts":     filthCounts,
		},
	}
}
