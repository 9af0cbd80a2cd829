package honeycomb

import (
	"context"
	"errors"
	"fmt"
)

// PageFetcher fetches one page of a cursor-paginated v2 list endpoint. The
// cursor is the next_url link from the previous page, empty for the first
// page.
type PageFetcher[T any] func(ctx context.Context, cursor string) (*ListResponse[T], error)

// Pager iterates a cursor-paginated list endpoint item by item.
type Pager[T any] struct {
	ctx     context.Context
	fetch   PageFetcher[T]
	current []T
	index   int
	cursor  string
	started bool
	done    bool
}

// NewPager creates a pager over a page-fetch function.
func NewPager[T any](ctx context.Context, fetch PageFetcher[T]) *Pager[T] {
	return &Pager[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether another item is available without consuming it.
// A page may be empty while still carrying a cursor, so this follows links
// until an item turns up or the listing ends.
func (p *Pager[T]) HasNext() bool {
	for p.index >= len(p.current) {
		if p.done {
			return false
		}

		err := p.fetchNextPage()
		if err != nil {
			// Surface the error on the following Next call.
			return true
		}
	}

	return true
}

// Next returns the next item, fetching pages as needed. It returns
// ErrNoMoreItems once the listing is exhausted.
func (p *Pager[T]) Next() (*T, error) {
	for p.index >= len(p.current) {
		if p.done {
			return nil, ErrNoMoreItems
		}

		err := p.fetchNextPage()
		if err != nil {
			return nil, err
		}
	}

	item := &p.current[p.index]
	p.index++

	return item, nil
}

// All drains the pager and returns every remaining item.
func (p *Pager[T]) All() ([]T, error) {
	var items []T

	for {
		item, err := p.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return items, nil
			}

			return nil, err
		}

		items = append(items, *item)
	}
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (p *Pager[T]) ForEach(fn func(item T) error) error {
	for {
		item, err := p.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(*item)
		if err != nil {
			return err
		}
	}
}

func (p *Pager[T]) fetchNextPage() error {
	if p.started && p.cursor == "" {
		p.done = true

		return nil
	}

	page, err := p.fetch(p.ctx, p.cursor)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	p.started = true
	p.current = page.Data
	p.index = 0
	p.cursor = page.Links.NextURL

	if p.cursor == "" {
		p.done = true
	}

	return nil
}
