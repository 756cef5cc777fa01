// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package storage

import (
	// stdlib
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	// 3p
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	// datadog
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	// project
	"github.com/DataDog/pii-scrubber/internal/collections"
	"github.com/DataDog/pii-scrubber/internal/pointer"
)

// Blob is a blob of a container.
type Blob struct {
	Name          string
	Container     Container
	ContentLength int64
	LastModified  time.Time
}

// Key identifies the blob within the storage account.
func (b Blob) Key() string {
	return b.Container.Name + "/" + b.Name
}

func newBlob(containerName string, item *container.BlobItem) (Blob, bool) {
	if item == nil || item.Name == nil {
		return Blob{}, false
	}
	b := Blob{
		Name:      *item.Name,
		Container: Container{Name: containerName},
	}
	if item.Properties != nil {
		b.ContentLength = pointer.ValueOr(item.Properties.ContentLength, 0)
		b.LastModified = pointer.ValueOr(item.Properties.LastModified, time.Time{})
	}
	return b, true
}

// ListBlobs returns an iterator over the blobs of a container.
func (c *Client) ListBlobs(ctx context.Context, containerName string) iter.Seq2[Blob, error] {
	span, ctx := tracer.StartSpanFromContext(ctx, "storage.Client.ListBlobs")
	defer span.Finish()
	blobPager := c.azBlobClient.NewListBlobsFlatPager(containerName, &azblob.ListBlobsFlatOptions{})
	return collections.New(ctx, blobPager, func(resp azblob.ListBlobsFlatResponse) []Blob {
		if resp.Segment == nil {
			return nil
		}
		return collections.FilterMap(resp.Segment.BlobItems, func(item *container.BlobItem) (Blob, bool) {
			return newBlob(containerName, item)
		})
	})
}

// DownloadBlob downloads the whole content of a blob.
func (c *Client) DownloadBlob(ctx context.Context, containerName string, blobName string) (data []byte, err error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "storage.Client.DownloadBlob")
	defer span.Finish(tracer.WithError(err))

	resp, err := c.azBlobClient.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		if isBlobNotFound(err) {
			return nil, &NotFoundError{Item: containerName + "/" + blobName}
		}
		return nil, fmt.Errorf("failed to download blob: %w", err)
	}
	defer resp.Body.Close()

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return data, nil
}

// UploadBlob replaces the content of a blob, creating its container when needed.
func (c *Client) UploadBlob(ctx context.Context, containerName string, blobName string, content []byte) (err error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "storage.Client.UploadBlob")
	defer span.Finish(tracer.WithError(err))

	if err = c.CreateContainer(ctx, containerName); err != nil {
		return fmt.Errorf("creating container %s: %w", containerName, err)
	}

	uploadOptions := &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			// max-age = 2 hours or 7200 seconds
			BlobCacheControl: pointer.Get("max-age=7200"),
		},
	}
	if _, err = c.azBlobClient.UploadBuffer(ctx, containerName, blobName, content, uploadOptions); err != nil {
		return fmt.Errorf("uploading blob %s/%s: %w", containerName, blobName, err)
	}
	return nil
}

// AppendBlob adds content at the end of a blob, creating it when it does not exist.
func (c *Client) AppendBlob(ctx context.Context, containerName string, blobName string, content []byte) error {
	existing, err := c.DownloadBlob(ctx, containerName, blobName)
	var notFound *NotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return err
	}
	return c.UploadBlob(ctx, containerName, blobName, append(existing, content...))
}
