package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/techbucket/techbucket-web/internal/domain"
)

// Collection is a typed view over one /admin/{collection} resource.
type Collection[R any] struct {
	client *Client
	kind   domain.Kind
}

func NewCollection[R any](c *Client, kind domain.Kind) *Collection[R] {
	return &Collection[R]{client: c, kind: kind}
}

func (col *Collection[R]) Kind() domain.Kind { return col.kind }

func (col *Collection[R]) path() string {
	return "/admin/" + col.kind.Collection()
}

func (col *Collection[R]) itemPath(id int64) string {
	return col.path() + "/" + strconv.FormatInt(id, 10)
}

// List reads the full collection.
func (col *Collection[R]) List(ctx context.Context) ([]R, error) {
	var rows []R
	if _, err := col.client.call(ctx, col.kind.Collection()+".list", http.MethodGet, col.path(), nil, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []R{}
	}
	return rows, nil
}

// Create posts a new record and returns the backend message.
func (col *Collection[R]) Create(ctx context.Context, payload interface{}) (string, error) {
	env, err := col.client.call(ctx, col.kind.Collection()+".create", http.MethodPost, col.path(), payload, nil)
	return env.Message, err
}

// Update replaces the record identified by id.
func (col *Collection[R]) Update(ctx context.Context, id int64, payload interface{}) (string, error) {
	env, err := col.client.call(ctx, col.kind.Collection()+".update", http.MethodPut, col.itemPath(id), payload, nil)
	return env.Message, err
}

func (col *Collection[R]) Delete(ctx context.Context, id int64) (string, error) {
	env, err := col.client.call(ctx, col.kind.Collection()+".delete", http.MethodDelete, col.itemPath(id), nil, nil)
	return env.Message, err
}

// StatusUpdate is the partial update accepted by lead collections.
// AdminNotes is omitted entirely when nil.
type StatusUpdate struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// UpdateStatus applies a status and optional notes change to a lead record.
func (col *Collection[R]) UpdateStatus(ctx context.Context, id int64, upd StatusUpdate) (string, error) {
	env, err := col.client.call(ctx, col.kind.Collection()+".status", http.MethodPut, col.itemPath(id), upd, nil)
	return env.Message, err
}
