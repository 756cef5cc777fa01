// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package logs

import (
	// stdlib
	"context"

	// 3p
	log "github.com/sirupsen/logrus"

	// datadog
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	// project
	"github.com/DataDog/pii-scrubber/internal/pointer"
	customtime "github.com/DataDog/pii-scrubber/internal/time"
)

// Client is a client for submitting logs to Datadog.
// It buffers logs and sends them in batches to the Datadog API.
// Client is not thread safe.
type Client struct {
	logsSubmitter DatadogLogsSubmitter
	logsBuffer    []datadogV2.HTTPLogItem
	currentSize   int64
	FailedLogs    []datadogV2.HTTPLogItem
}

// NewClient creates a new Client.
func NewClient(logsApi DatadogLogsSubmitter) *Client {
	return &Client{
		logsSubmitter: logsApi,
	}
}

// AddFormattedLog adds a datadog formatted log to the buffer for future submission.
func (c *Client) AddFormattedLog(ctx context.Context, now customtime.Now, logger *log.Entry, item datadogV2.HTTPLogItem) error {
	logBytes, valid := ValidateDatadogLog(item, now, logger)
	if !valid {
		return ErrInvalidLog
	}
	if c.shouldFlush(logBytes) {
		if err := c.Flush(ctx); err != nil {
			return err
		}
	}

	c.logsBuffer = append(c.logsBuffer, item)
	c.currentSize += logBytes
	return nil
}

// Flush sends all buffered logs to the Datadog API.
func (c *Client) Flush(ctx context.Context) (err error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "logs.Client.Flush")
	defer span.Finish(tracer.WithError(err))

	if len(c.logsBuffer) > 0 {
		option := datadogV2.SubmitLogOptionalParameters{
			ContentEncoding: pointer.Get(datadogV2.CONTENTENCODING_GZIP),
		}
		_, _, err = c.logsSubmitter.SubmitLog(ctx, c.logsBuffer, option)

		if err != nil {
			c.FailedLogs = append(c.FailedLogs, c.logsBuffer...)
		}

		c.logsBuffer = nil
		c.currentSize = 0
	}

	return err
}

// Buffered returns the number of logs waiting for the next flush.
func (c *Client) Buffered() int {
	return len(c.logsBuffer)
}

// shouldFlush checks if adding a log with a given size to the buffer would result in an invalid payload.
func (c *Client) shouldFlush(bytes int64) bool {
	return len(c.logsBuffer)+1 >= MaxPayloadAmount || c.currentSize+bytes >= MaxPayloadSize
}
