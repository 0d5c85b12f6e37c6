// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Continuable is a page of a list result. Continuation returns the next link,
// or an empty string on the last page.
type Continuable interface {
	Continuation() string
}

// Pager walks a paged listing forward, one request per page. It stops after the
// last page or after the first failed page; start over with a new pager.
type Pager[T Continuable] struct {
	pager *runtime.Pager[T]
	err   error
}

// NewPager returns a pager whose first page is fetched with first and whose
// later pages follow the continuation links using the same method.
func NewPager[T Continuable](c Client, first Request) *Pager[T] {
	return &Pager[T]{
		pager: runtime.NewPager(runtime.PagingHandler[T]{
			More: func(page T) bool {
				return page.Continuation() != ""
			},
			Fetcher: func(ctx context.Context, current *T) (T, error) {
				prepare := func(ctx context.Context) (*http.Request, error) {
					if current == nil {
						return c.Prepare(ctx, first)
					}
					return c.PrepareNext(ctx, first.Method, (*current).Continuation(), first.APIVersion)
				}
				var page T
				_, err := c.do(ctx, first.Operation, prepare, Into(&page), http.StatusOK)
				return page, err
			},
		}),
	}
}

// More reports whether another page may be requested.
func (p *Pager[T]) More() bool {
	return p.err == nil && p.pager.More()
}

// NextPage fetches the next page.
func (p *Pager[T]) NextPage(ctx context.Context) (T, error) {
	if p.err != nil {
		var zero T
		return zero, p.err
	}
	page, err := p.pager.NextPage(ctx)
	if err != nil {
		p.err = err
	}
	return page, err
}

// Err returns the error that ended the sequence, if any.
func (p *Pager[T]) Err() error {
	return p.err
}

// AllPages drains p and flattens the items of every page.
func AllPages[T Continuable, V any](ctx context.Context, p *Pager[T], items func(T) []V) ([]V, error) {
	var result []V
	for p.More() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, items(page)...)
	}
	return result, nil
}
