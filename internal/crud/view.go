// Package crud keeps the admin list views in step with the backend and
// drives create, update and delete for the catalog entities.
package crud

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/techbucket/techbucket-web/internal/domain"
)

// Fetcher reads a whole collection.
type Fetcher[R any] func(ctx context.Context) ([]R, error)

// View caches the last confirmed read of one collection. A failed read
// keeps the previous rows and records the error.
type View[R any] struct {
	kind  domain.Kind
	fetch Fetcher[R]

	mu      sync.RWMutex
	rows    []R
	loaded  bool
	err     error
	fetches int
}

func NewView[R any](kind domain.Kind, fetch Fetcher[R]) *View[R] {
	return &View[R]{kind: kind, fetch: fetch, rows: []R{}}
}

func (v *View[R]) Kind() domain.Kind { return v.kind }

// Refresh reads the collection once.
func (v *View[R]) Refresh(ctx context.Context) error {
	rows, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.fetches++
	v.loaded = true
	v.err = err
	if err != nil {
		zap.L().Error("collection fetch failed",
			zap.String("kind", string(v.kind)),
			zap.Error(err))
		return err
	}
	if rows == nil {
		rows = []R{}
	}
	v.rows = rows
	return nil
}

// Rows returns the cached rows.
func (v *View[R]) Rows() []R {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rows
}

// Loaded reports whether at least one read has finished.
func (v *View[R]) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded
}

// Err is the error of the most recent read.
func (v *View[R]) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Fetches counts completed reads.
func (v *View[R]) Fetches() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.fetches
}

// Find returns the cached row whose identity matches id.
func (v *View[R]) Find(id int64, identity func(R) int64) (R, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, r := range v.rows {
		if identity(r) == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// Refresher is any view that can be re-read.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// FetchAll refreshes every view in parallel and waits for all of them. A
// failing read does not stop the others; the failures are combined.
func FetchAll(ctx context.Context, views ...Refresher) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	for _, v := range views {
		v := v
		g.Go(func() error {
			if err := v.Refresh(ctx); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errs
}
