// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package logs

import (
	// stdlib
	"context"
	"net/http"
	"time"

	// 3p
	log "github.com/sirupsen/logrus"

	// datadog
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"

	// project
	customtime "github.com/DataDog/pii-scrubber/internal/time"
)

const (
	// MaxPayloadSize is the maximum byte size of the payload to Logs API.
	// https://docs.datadoghq.com/api/latest/logs/
	MaxPayloadSize = 4 * 1000000

	// MaxLogSize is the maximum byte size of a single log to Logs API.
	// https://docs.datadoghq.com/api/latest/logs/
	MaxLogSize = 1000000

	// MaxLogAge is the maximum age a log in the payload to Logs API.
	// https://docs.datadoghq.com/api/latest/logs/
	MaxLogAge = 18 * time.Hour

	// MaxPayloadAmount is the maximum number of logs per post to Logs API.
	// https://docs.datadoghq.com/api/latest/logs/
	MaxPayloadAmount = 950

	timeProperty = "time"
)

// ValidateDatadogLog checks if the log is valid to send to Datadog and returns the log size when it is.
func ValidateDatadogLog(item datadogV2.HTTPLogItem, now customtime.Now, logger *log.Entry) (int64, bool) {
	logBytes, err := item.MarshalJSON()
	if err != nil {
		logger.WithError(err).Warning("Failed to marshal log")
		return 0, false
	}

	timeValue, ok := item.AdditionalProperties[timeProperty]
	timeString, isString := timeValue.(string)
	if !ok || !isString {
		logger.Warning("Skipping log without a time field")
		return 0, false
	}

	logTime, err := time.Parse(time.RFC3339, timeString)
	if err != nil {
		logger.WithError(err).Warning("Skipping log with an invalid time field")
		return 0, false
	}

	byteSize := int64(len(logBytes))
	if byteSize > MaxLogSize {
		logger.Warningf("Skipping large log at %s with a size of %d", logTime.Format(time.RFC3339), byteSize)
		return 0, false
	}
	if logTime.Before(now().Add(-MaxLogAge)) {
		logger.Warningf("Skipping log older than 18 hours (at %s)", logTime.Format(time.RFC3339))
		return 0, false
	}
	return byteSize, true
}

// DatadogLogsSubmitter wraps around the datadogV2.LogsApi struct.
//
//go:generate mockgen -package=mocks -source=$GOFILE -destination=mocks/mock_$GOFILE
type DatadogLogsSubmitter interface {
	SubmitLog(ctx context.Context, body []datadogV2.HTTPLogItem, o ...datadogV2.SubmitLogOptionalParameters) (any, *http.Response, error)
}
