// Package draft holds the working copies edited on the admin catalog pages:
// one typed draft per entity, the ordered sub-lists inside them and the
// editor state machine that owns a draft between open and save.
package draft

import (
	"net/url"

	"github.com/techbucket/techbucket-web/internal/domain"
)

// Draft is the unsaved form state of one catalog entity.
type Draft interface {
	Kind() domain.Kind
	// Validate checks required fields and formats without side effects.
	Validate() error
	// Payload converts the draft into the request body, dropping blank
	// sub-list entries.
	Payload() (interface{}, error)
}

// Form is implemented by draft pointers that can absorb posted form values.
type Form interface {
	Apply(form url.Values)
	// SubList returns the named list field, or nil when there is none.
	SubList(field string) *SubList
}

func text(form url.Values, key string, dst *string) {
	if v, ok := form[key]; ok && len(v) > 0 {
		*dst = v[0]
	}
}

func checkbox(form url.Values, key string) bool {
	return form.Get(key) != ""
}
