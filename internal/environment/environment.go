// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package environment

import "os"

const (
	// AzureWebJobsStorage is the connection string of the storage account holding the documents.
	AzureWebJobsStorage = "AzureWebJobsStorage"

	DdApiKey     = "DD_API_KEY"
	DdSite       = "DD_SITE"
	DdApmEnabled = "DD_APM_ENABLED"

	// ForwardLogs enables sending the job's own logs and scrub reports to Datadog.
	ForwardLogs = "DD_FORWARD_LOGS"

	// ConfigPath points at the YAML scrubber configuration.
	ConfigPath = "SCRUBBER_CONFIG_PATH"

	// SourcePrefix selects the containers whose blobs are scrubbed.
	SourcePrefix = "SCRUBBER_SOURCE_PREFIX"

	// DestinationContainer receives the scrubbed blobs.
	DestinationContainer = "SCRUBBER_DESTINATION_CONTAINER"
)

// Get returns the value of an environment variable, empty when unset.
func Get(name string) string {
	return os.Getenv(name)
}

// GetOr returns the value of an environment variable or fallback when it is unset or empty.
func GetOr(name string, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// Enabled reports whether an environment variable is set to "true".
func Enabled(name string) bool {
	return os.Getenv(name) == "true"
}

// ApmEnabled reports whether tracing and profiling are enabled.
func ApmEnabled() bool {
	return Enabled(DdApmEnabled)
}
