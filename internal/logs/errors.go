// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package logs

import "errors"

// ErrInvalidLog is an error for when a log is invalid.
var ErrInvalidLog = errors.New("invalid log")
