// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package cursor

import (
	// stdlib
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	// 3p
	log "github.com/sirupsen/logrus"

	// datadog
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	// project
	"github.com/DataDog/pii-scrubber/internal/storage"
)

// BlobName is the name of the blob holding the cursors.
const BlobName = "cursors.json"

// Cursors tracks how many bytes of each blob were already scrubbed.
// Cursors is thread safe.
type Cursors struct {
	cursors map[string]int64
	mu      sync.Mutex
}

// New creates Cursors from their saved state.
func New(data map[string]int64) *Cursors {
	if data == nil {
		data = make(map[string]int64)
	}
	return &Cursors{
		cursors: data,
	}
}

func key(containerName string, blobName string) string {
	return containerName + "/" + blobName
}

// Get returns the scrubbed length of a blob, 0 when it was never scrubbed.
func (c *Cursors) Get(containerName string, blobName string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursors[key(containerName, blobName)]
}

// Set records the scrubbed length of a blob.
func (c *Cursors) Set(containerName string, blobName string, offset int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursors[key(containerName, blobName)] = offset
}

// Unchanged reports whether a blob has exactly the length it had when it was last scrubbed.
func (c *Cursors) Unchanged(b storage.Blob) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	offset, ok := c.cursors[key(b.Container.Name, b.Name)]
	return ok && offset == b.ContentLength
}

// Length returns the number of tracked blobs.
func (c *Cursors) Length() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cursors)
}

// JSONBytes returns the JSON representation of the cursors.
func (c *Cursors) JSONBytes() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return json.Marshal(c.cursors)
}

// Load reads the cursors from storage, starting from scratch when none were saved.
func Load(ctx context.Context, client *storage.Client, logger *log.Entry) (*Cursors, error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "cursor.Load")
	defer span.Finish()
	data, err := client.DownloadBlob(ctx, storage.ScrubberContainer, BlobName)
	if err != nil {
		var notFoundError *storage.NotFoundError
		if errors.As(err, &notFoundError) {
			logger.Info("No cursors found, scrubbing every blob")
			return New(nil), nil
		}
		return nil, fmt.Errorf("failed to download cursors: %w", err)
	}
	var cursorMap map[string]int64
	if err = json.Unmarshal(data, &cursorMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cursors: %w", err)
	}
	return New(cursorMap), nil
}

// Save writes the cursors to storage.
func (c *Cursors) Save(ctx context.Context, client *storage.Client) error {
	span, ctx := tracer.StartSpanFromContext(context.WithoutCancel(ctx), "cursor.Save")
	defer span.Finish()
	data, err := c.JSONBytes()
	if err != nil {
		return fmt.Errorf("failed to marshal cursors: %w", err)
	}
	return client.UploadBlob(ctx, storage.ScrubberContainer, BlobName, data)
}
