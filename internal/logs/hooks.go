// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package logs

import (
	// stdlib
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	// 3p
	log "github.com/sirupsen/logrus"

	// datadog
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"

	// project
	"github.com/DataDog/pii-scrubber/internal/pointer"
	customtime "github.com/DataDog/pii-scrubber/internal/time"
)

const unscrubbableMessage = "log message could not be scrubbed"

var supportedLevels = []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel, log.InfoLevel}

// Cleaner replaces the filth of a text.
type Cleaner interface {
	Clean(text string) (string, error)
}

// Hook is a logrus hook that scrubs log entries and sends them to Datadog.
// The cleaner is only used under the hook's lock. The logger given to the hook must not carry
// the hook itself.
type Hook struct {
	mu      sync.Mutex
	ctx     context.Context
	client  *Client
	cleaner Cleaner
	logger  *log.Entry
	now     customtime.Now
}

// NewHook creates a new Hook. ctx carries the Datadog API keys used when the buffer fills up.
func NewHook(ctx context.Context, client *Client, cleaner Cleaner, logger *log.Entry, now customtime.Now) *Hook {
	return &Hook{
		ctx:     ctx,
		client:  client,
		cleaner: cleaner,
		logger:  logger,
		now:     now,
	}
}

// Levels returns the enabled log levels for the Hook.
func (h *Hook) Levels() []log.Level {
	return supportedLevels
}

// Fire scrubs the log entry and buffers it for Datadog.
func (h *Hook) Fire(entry *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	additionalProperties := map[string]any{
		timeProperty: entry.Time.UTC().Format(time.RFC3339),
		"level":      entry.Level.String(),
	}
	for key, value := range entry.Data {
		if _, reserved := additionalProperties[key]; reserved {
			continue
		}
		additionalProperties[key] = h.clean(fmt.Sprint(value))
	}

	item := datadogV2.HTTPLogItem{
		Message:              h.clean(entry.Message),
		Ddsource:             pointer.Get(Source),
		Ddtags:               pointer.Get(strings.Join(DefaultTags(), ",")),
		Service:              pointer.Get(ServiceName),
		AdditionalProperties: additionalProperties,
	}
	return h.client.AddFormattedLog(h.ctx, h.now, h.logger, item)
}

// Flush sends the buffered entries to Datadog.
func (h *Hook) Flush(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.client.Flush(ctx)
}

func (h *Hook) clean(text string) string {
	cleaned, err := h.cleaner.Clean(text)
	if err != nil {
		return unscrubbableMessage
	}
	return cleaned
}
