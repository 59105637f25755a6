package crud

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/techbucket/techbucket-web/internal/domain"
	"github.com/techbucket/techbucket-web/internal/draft"
)

// ErrNotFound is returned when an edit or delete targets a record that is
// not in the cached list.
var ErrNotFound = errors.New("record not found")

// Store is the remote collection behind a Manager.
type Store[R any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, payload interface{}) (string, error)
	Update(ctx context.Context, id int64, payload interface{}) (string, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// Config wires a Manager.
type Config[R any, D draft.Draft] struct {
	Kind     domain.Kind
	Store    Store[R]
	Defaults func() D
	ToDraft  func(R) D
	Identity func(R) int64
	// Related views are read together with the main list on Load, e.g. the
	// brand and category options of the product form.
	Related []Refresher
	// Notify receives every confirmed mutation.
	Notify func(domain.Mutation)
}

// Manager couples the list view, the editor and the remote store of one
// catalog entity. The list is only ever replaced by a fresh read; there is
// no optimistic local update.
//
// A Manager is not safe for concurrent use.
type Manager[R any, D draft.Draft] struct {
	kind     domain.Kind
	store    Store[R]
	view     *View[R]
	editor   *draft.Editor[D]
	toDraft  func(R) D
	identity func(R) int64
	related  []Refresher
	notify   func(domain.Mutation)
}

func NewManager[R any, D draft.Draft](cfg Config[R, D]) *Manager[R, D] {
	m := &Manager[R, D]{
		kind:     cfg.Kind,
		store:    cfg.Store,
		editor:   draft.NewEditor(cfg.Defaults),
		toDraft:  cfg.ToDraft,
		identity: cfg.Identity,
		related:  cfg.Related,
		notify:   cfg.Notify,
	}
	m.view = NewView[R](cfg.Kind, cfg.Store.List)
	return m
}

func (m *Manager[R, D]) Kind() domain.Kind        { return m.kind }
func (m *Manager[R, D]) View() *View[R]           { return m.view }
func (m *Manager[R, D]) Editor() *draft.Editor[D] { return m.editor }
func (m *Manager[R, D]) Identity(r R) int64       { return m.identity(r) }

// Load reads the list and its related views in parallel. Called whenever
// the page is opened.
func (m *Manager[R, D]) Load(ctx context.Context) error {
	views := append([]Refresher{m.view}, m.related...)
	return FetchAll(ctx, views...)
}

// New opens a blank draft.
func (m *Manager[R, D]) New() {
	m.editor.Begin()
}

// Edit opens a draft copied from the cached record id.
func (m *Manager[R, D]) Edit(id int64) error {
	rec, ok := m.view.Find(id, m.identity)
	if !ok {
		return errors.Wrapf(ErrNotFound, "%s %d", m.kind, id)
	}
	m.editor.Edit(id, m.toDraft(rec))
	return nil
}

func (m *Manager[R, D]) Cancel() {
	m.editor.Cancel()
}

// Submit validates and saves the open draft: an update when the draft was
// opened from a record, otherwise a create. On success the editor closes
// and the list is read again exactly once. On failure the draft is left
// untouched and the error carries the backend message.
func (m *Manager[R, D]) Submit(ctx context.Context) (string, error) {
	d := *m.editor.Draft()
	if err := d.Validate(); err != nil {
		return "", err
	}
	payload, err := d.Payload()
	if err != nil {
		return "", errors.Wrapf(err, "build %s payload", m.kind)
	}

	var (
		msg    string
		action string
	)
	id, editing := m.editor.Target()
	if editing {
		action = domain.ActionUpdate
		msg, err = m.store.Update(ctx, id, payload)
	} else {
		action = domain.ActionCreate
		msg, err = m.store.Create(ctx, payload)
	}
	if err != nil {
		zap.L().Warn("save failed",
			zap.String("kind", string(m.kind)),
			zap.String("action", action),
			zap.Int64("id", id),
			zap.Error(err))
		return "", err
	}

	m.editor.Complete()
	_ = m.view.Refresh(ctx)
	m.publish(action, id)
	return msg, nil
}

// Delete removes record id and re-reads the list once on success.
func (m *Manager[R, D]) Delete(ctx context.Context, id int64) (string, error) {
	msg, err := m.store.Delete(ctx, id)
	if err != nil {
		zap.L().Warn("delete failed",
			zap.String("kind", string(m.kind)),
			zap.Int64("id", id),
			zap.Error(err))
		return "", err
	}
	_ = m.view.Refresh(ctx)
	m.publish(domain.ActionDelete, id)
	return msg, nil
}

func (m *Manager[R, D]) publish(action string, id int64) {
	if m.notify == nil {
		return
	}
	m.notify(domain.Mutation{Kind: m.kind, Action: action, ID: id})
}
