// Package workflow moves inbound lead records through their status values.
package workflow

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/apiclient"
	"github.com/techbucket/techbucket-web/internal/crud"
	"github.com/techbucket/techbucket-web/internal/domain"
)

// Store is the remote lead collection.
type Store[R any] interface {
	List(ctx context.Context) ([]R, error)
	UpdateStatus(ctx context.Context, id int64, upd apiclient.StatusUpdate) (string, error)
}

// Controller owns the list view of one lead type and applies status and
// note changes to it. Status values are passed through as given; the
// backend is responsible for rejecting unknown ones.
type Controller[R any] struct {
	kind     domain.Kind
	store    Store[R]
	view     *crud.View[R]
	identity func(R) int64
	notify   func(domain.Mutation)
}

func NewController[R any](kind domain.Kind, store Store[R], identity func(R) int64, notify func(domain.Mutation)) *Controller[R] {
	return &Controller[R]{
		kind:     kind,
		store:    store,
		view:     crud.NewView[R](kind, store.List),
		identity: identity,
		notify:   notify,
	}
}

func (c *Controller[R]) Kind() domain.Kind              { return c.kind }
func (c *Controller[R]) View() *crud.View[R]            { return c.view }
func (c *Controller[R]) Load(ctx context.Context) error { return c.view.Refresh(ctx) }

// Find returns the cached record id.
func (c *Controller[R]) Find(id int64) (R, bool) {
	return c.view.Find(id, c.identity)
}

// Transition sets status and, when notes is non-nil, the admin notes of
// record id. The list is read again once on success.
func (c *Controller[R]) Transition(ctx context.Context, id int64, status string, notes *string) (string, error) {
	if status == "" {
		return "", errors.New("status is required")
	}
	msg, err := c.store.UpdateStatus(ctx, id, apiclient.StatusUpdate{Status: status, AdminNotes: notes})
	if err != nil {
		zap.L().Warn("status update failed",
			zap.String("kind", string(c.kind)),
			zap.Int64("id", id),
			zap.String("status", status),
			zap.Error(err))
		return "", err
	}
	_ = c.view.Refresh(ctx)
	if c.notify != nil {
		c.notify(domain.Mutation{Kind: c.kind, Action: domain.ActionStatus, ID: id, Detail: status})
	}
	return msg, nil
}

// Registrations are confirmed or cancelled without notes.
type Registrations struct {
	*Controller[domain.EventRegistration]
}

func (r Registrations) Confirm(ctx context.Context, id int64) (string, error) {
	return r.Transition(ctx, id, string(domain.RegistrationConfirmed), nil)
}

func (r Registrations) Cancel(ctx context.Context, id int64) (string, error) {
	return r.Transition(ctx, id, string(domain.RegistrationCancelled), nil)
}
