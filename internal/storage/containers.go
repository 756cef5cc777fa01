// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package storage

import (
	// stdlib
	"context"
	"iter"
	"slices"

	// 3p
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"

	// datadog
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	// project
	"github.com/DataDog/pii-scrubber/internal/collections"
)

// Container represents a container in a Storage Account.
type Container struct {
	Name string
}

// GetContainersMatchingPrefix returns an iterator over the containers with a given prefix,
// leaving out the IgnoredContainers.
func (c *Client) GetContainersMatchingPrefix(ctx context.Context, prefix string) iter.Seq2[Container, error] {
	span, ctx := tracer.StartSpanFromContext(ctx, "storage.Client.GetContainersMatchingPrefix")
	defer span.Finish()
	containerPager := c.azBlobClient.NewListContainersPager(&azblob.ListContainersOptions{Prefix: &prefix})
	return collections.New(ctx, containerPager, func(resp azblob.ListContainersResponse) []Container {
		return collections.FilterMap(resp.ContainerItems, func(item *service.ContainerItem) (Container, bool) {
			if item == nil || item.Name == nil || slices.Contains(IgnoredContainers, *item.Name) {
				return Container{}, false
			}
			return Container{Name: *item.Name}, true
		})
	})
}

// CreateContainer a container with the given name
// if container already exists, no error is returned
func (c *Client) CreateContainer(ctx context.Context, containerName string) error {
	span, ctx := tracer.StartSpanFromContext(ctx, "storage.Client.CreateContainer")
	defer span.Finish()
	_, err := c.azBlobClient.CreateContainer(ctx, containerName, nil)
	if err != nil && !isConflict(err) {
		return err
	}
	return nil
}
