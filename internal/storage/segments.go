// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package storage

import (
	// stdlib
	"context"
	"fmt"

	// 3p
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	// datadog
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// BlobSegment is the part of a blob that starts at Offset and runs to the end of the blob.
type BlobSegment struct {
	Blob    Blob
	Content []byte
	Offset  int64
}

// DownloadSegment downloads the content of a blob from offset to its last known length.
func (c *Client) DownloadSegment(ctx context.Context, b Blob, offset int64) (segment BlobSegment, err error) {
	span, ctx := tracer.StartSpanFromContext(ctx, "storage.Client.DownloadSegment")
	defer span.Finish(tracer.WithError(err))

	count := b.ContentLength - offset
	if count <= 0 {
		return BlobSegment{Blob: b, Offset: offset}, nil
	}

	options := &azblob.DownloadBufferOptions{
		Range:     azblob.HTTPRange{Offset: offset, Count: count},
		BlockSize: 1024 * 1024,
	}
	content := make([]byte, count)
	n, err := c.azBlobClient.DownloadBuffer(ctx, b.Container.Name, b.Name, content, options)
	if err != nil {
		return BlobSegment{}, fmt.Errorf("failed to download blob: %w", err)
	}
	return BlobSegment{
		Blob:    b,
		Content: content[:n],
		Offset:  offset,
	}, nil
}
