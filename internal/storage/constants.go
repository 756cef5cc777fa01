// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package storage

const (
	// ScrubberContainer holds the state of the scrubbing job.
	ScrubberContainer = "dd-pii-scrubber"

	// MetricsContainer holds the hourly metric blobs of the scrubbing job.
	MetricsContainer = "dd-pii-scrubber-metrics"

	// DefaultDestinationContainer receives the scrubbed blobs when no destination is configured.
	DefaultDestinationContainer = "scrubbed"
)

// IgnoredContainers are never scrubbed, even when they match the source prefix.
var IgnoredContainers = []string{"$logs", "azure-webjobs-hosts", "azure-webjobs-secrets", ScrubberContainer, MetricsContainer}
