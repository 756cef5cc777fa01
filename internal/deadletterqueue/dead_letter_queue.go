// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package deadletterqueue

import (
	// stdlib
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	// 3p
	log "github.com/sirupsen/logrus"

	// datadog
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	// project
	"github.com/DataDog/pii-scrubber/internal/storage"
)

const (
	// BlobName is the name of the blob that contains the dead letter queue.
	BlobName = "deadletterqueue.json"

	// MaxAttempts is the number of failed scrubs after which a blob is given up on.
	MaxAttempts = 5
)

// Entry is a blob that failed to be scrubbed.
type Entry struct {
	Container string `json:"container"`
	Blob      string `json:"blob"`
	Attempts  int    `json:"attempts"`
	// Error is the message of the last failure.
	Error string `json:"error"`
}

// DeadLetterQueue holds the blobs to retry first on the next run.
// DeadLetterQueue is thread safe.
type DeadLetterQueue struct {
	queue []Entry
	mu    sync.Mutex
}

// Load loads the DeadLetterQueue from the storage client.
func Load(ctx context.Context, storageClient *storage.Client) (*DeadLetterQueue, error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "deadletterqueue.Load")
	defer span.Finish()
	data, err := storageClient.DownloadBlob(ctx, storage.ScrubberContainer, BlobName)
	if err != nil {
		var notFoundError *storage.NotFoundError
		if errors.As(err, &notFoundError) {
			return &DeadLetterQueue{}, nil
		}
		return nil, fmt.Errorf("failed to download dead letter queue: %w", err)
	}
	return FromBytes(data)
}

// FromBytes creates a DeadLetterQueue object from the given bytes.
func FromBytes(data []byte) (*DeadLetterQueue, error) {
	var queue []Entry
	if err := json.Unmarshal(data, &queue); err != nil {
		return nil, err
	}
	return &DeadLetterQueue{queue: queue}, nil
}

// Entries returns a copy of the queued entries.
func (d *DeadLetterQueue) Entries() []Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.queue)
}

// Add records a failed scrub of a blob.
func (d *DeadLetterQueue) Add(containerName string, blobName string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.index(containerName, blobName)
	if i < 0 {
		d.queue = append(d.queue, Entry{Container: containerName, Blob: blobName})
		i = len(d.queue) - 1
	}
	d.queue[i].Attempts++
	if err != nil {
		d.queue[i].Error = err.Error()
	}
}

// Remove forgets a blob, typically once it was scrubbed.
func (d *DeadLetterQueue) Remove(containerName string, blobName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i := d.index(containerName, blobName); i >= 0 {
		d.queue = slices.Delete(d.queue, i, i+1)
	}
}

// Prune drops the blobs that failed MaxAttempts times.
func (d *DeadLetterQueue) Prune(logger *log.Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = slices.DeleteFunc(d.queue, func(e Entry) bool {
		if e.Attempts < MaxAttempts {
			return false
		}
		logger.Errorf("Giving up on blob %s/%s after %d attempts: %s", e.Container, e.Blob, e.Attempts, e.Error)
		return true
	})
}

func (d *DeadLetterQueue) index(containerName string, blobName string) int {
	return slices.IndexFunc(d.queue, func(e Entry) bool {
		return e.Container == containerName && e.Blob == blobName
	})
}

// JSONBytes returns the a []byte representation of the DeadLetterQueue.
func (d *DeadLetterQueue) JSONBytes() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.queue == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.queue)
}

// Save saves the DeadLetterQueue to storage
func (d *DeadLetterQueue) Save(ctx context.Context, client *storage.Client) error {
	span, ctx := tracer.StartSpanFromContext(context.WithoutCancel(ctx), "deadletterqueue.Save")
	defer span.Finish()
	data, err := d.JSONBytes()
	if err != nil {
		return fmt.Errorf("unable to marshall dead letter queue: %w", err)
	}
	err = client.UploadBlob(ctx, storage.ScrubberContainer, BlobName, data)
	if err != nil {
		return fmt.Errorf("uploading dead letter queue failed: %w", err)
	}
	return nil
}
