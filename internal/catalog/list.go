package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/metrics"
	"github.com/lafaom-mao/portal/internal/store"
	log "github.com/sirupsen/logrus"
)

// FallbackPolicy decides what a list does when the API cannot be reached.
type FallbackPolicy int

const (
	// FallbackNone surfaces the fetch error to the caller. Used for
	// transactional collections where stale data would mislead.
	FallbackNone FallbackPolicy = iota
	// FallbackSnapshot silently degrades to the last snapshotted page.
	FallbackSnapshot
)

type FetchFunc[T any] func(ctx context.Context, page int) (*lafaom.Page[T], error)

// List holds the loaded page of one collection together with its
// client-side filter state. Each list owns its state; nothing is shared
// between instances.
type List[T any] struct {
	collection string
	fetch      FetchFunc[T]
	snapshots  *store.Snapshots
	itemID     func(T) string
	policy     FallbackPolicy

	all          []T
	filtered     []T
	page         int
	totalPages   int
	fromSnapshot bool
}

// NewList creates a list that surfaces fetch errors directly.
func NewList[T any](collection string, fetch FetchFunc[T]) *List[T] {
	return &List[T]{
		collection: collection,
		fetch:      fetch,
		policy:     FallbackNone,
		page:       1,
		totalPages: 1,
	}
}

// NewListWithSnapshots creates a list that degrades to the snapshot store
// when a fetch fails, and refreshes the snapshots after a successful fetch
// of the first page.
func NewListWithSnapshots[T any](collection string, fetch FetchFunc[T],
	snapshots *store.Snapshots, itemID func(T) string) *List[T] {
	return &List[T]{
		collection: collection,
		fetch:      fetch,
		snapshots:  snapshots,
		itemID:     itemID,
		policy:     FallbackSnapshot,
		page:       1,
		totalPages: 1,
	}
}

// Load fetches one page and resets the filter. A page past the end is not an
// error: the list just ends up empty and renders its placeholder.
func (l *List[T]) Load(ctx context.Context, page int) error {

	if page < 1 {
		page = 1
	}

	result, err := l.fetch(ctx, page)
	if err != nil {
		if l.policy != FallbackSnapshot || l.snapshots == nil {
			return err
		}
		return l.loadFromSnapshots(ctx, err)
	}

	l.all = result.Items
	l.filtered = result.Items
	l.page = page
	l.totalPages = result.TotalPages
	l.fromSnapshot = false

	if l.policy == FallbackSnapshot && l.snapshots != nil && page == 1 && len(result.Items) > 0 {
		if err := store.ReplaceCollection(ctx, l.snapshots, l.collection, result.Items, l.itemID); err != nil {
			log.WithError(err).Warnf("failed to snapshot %s", l.collection)
		}
	}
	return nil
}

func (l *List[T]) loadFromSnapshots(ctx context.Context, fetchErr error) error {

	items, err := store.LoadCollection[T](ctx, l.snapshots, l.collection)
	if err != nil {
		return fetchErr
	}

	metrics.SnapshotFallbacksCounter.Inc()
	log.WithError(fetchErr).Warnf("%s unavailable, showing last known entries", l.collection)
	l.all = items
	l.filtered = items
	l.page = 1
	l.totalPages = 1
	l.fromSnapshot = true
	return nil
}

// Filter narrows the loaded page in place. Filtering never refetches.
func (l *List[T]) Filter(keep func(T) bool) {
	filtered := make([]T, 0, len(l.all))
	for _, item := range l.all {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	l.filtered = filtered
}

func (l *List[T]) ResetFilter() {
	l.filtered = l.all
}

func (l *List[T]) Items() []T { return l.filtered }

func (l *List[T]) Page() int { return l.page }

func (l *List[T]) TotalPages() int { return l.totalPages }

func (l *List[T]) FromSnapshot() bool { return l.fromSnapshot }

// Render writes the filtered items in the order the server returned them,
// or a placeholder when nothing matches.
func (l *List[T]) Render(w io.Writer, renderItem func(io.Writer, T)) {

	if len(l.filtered) == 0 {
		fmt.Fprintln(w, "no results found")
		return
	}

	for _, item := range l.filtered {
		renderItem(w, item)
	}

	if l.fromSnapshot {
		fmt.Fprintln(w, "(showing previously fetched entries, the service is unreachable)")
	} else if l.totalPages > 1 {
		fmt.Fprintf(w, "page %d of %d\n", l.page, l.totalPages)
	}
}
