// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package time

import (
	// stdlib
	"time"
)

type (
	// Now returns the current time.
	Now func() time.Time
)

// Fixed returns a clock that is always at t.
func Fixed(t time.Time) Now {
	return func() time.Time {
		return t
	}
}

// HourlyBlobName names the blob that collects the entries of the hour of t.
func HourlyBlobName(t time.Time) string {
	return t.UTC().Format("2006-01-02-15") + ".txt"
}
