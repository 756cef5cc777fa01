// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package collections

import (
	// stdlib
	"context"
	"errors"
	"fmt"
	"iter"

	// 3p
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// New creates an iterator over the items of every page of an Azure pager.
// A page error is yielded once and ends the iteration.
func New[ReturnType any, PagerType any](
	ctx context.Context,
	pager *runtime.Pager[PagerType],
	transformer func(PagerType) []ReturnType) iter.Seq2[ReturnType, error] {

	return func(yield func(ReturnType, error) bool) {
		for pager.More() {
			resp, err := pager.NextPage(ctx)
			if err != nil {
				var zero ReturnType
				yield(zero, fmt.Errorf("getting next page: %w", err))
				return
			}
			for _, item := range transformer(resp) {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// ErrTooManyItems is returned when more items are fetched than expected.
var ErrTooManyItems = errors.New("fetched more items than expected")

// NewPagingHandler creates a paging handler serving one page per item, for usage in tests.
func NewPagingHandler[ContentType any, ResponseType any](
	items []ContentType,
	fetcherError error,
	transformer func(ContentType) ResponseType) runtime.PagingHandler[ResponseType] {

	var idx int
	return runtime.PagingHandler[ResponseType]{
		Fetcher: func(ctx context.Context, response *ResponseType) (ResponseType, error) {
			var currResponse ResponseType
			if fetcherError != nil {
				return currResponse, fetcherError
			}
			if len(items) == 0 {
				idx++
				return currResponse, nil
			}
			if idx >= len(items) {
				return currResponse, ErrTooManyItems
			}
			currResponse = transformer(items[idx])
			idx++
			return currResponse, nil
		},
		More: func(response ResponseType) bool {
			return idx < len(items)
		},
	}
}
