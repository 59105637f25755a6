package draft

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when an entry position does not exist.
var ErrIndexOutOfRange = errors.New("sub-list index out of range")

// SubList is an ordered list of free text entries edited inside a draft,
// such as product specifications or event agenda items. Blank entries are
// kept while editing and dropped only by Sanitized.
type SubList struct {
	items []string
}

// NewSubList copies items into a new list.
func NewSubList(items ...string) SubList {
	return SubList{items: append([]string{}, items...)}
}

func (s *SubList) Len() int { return len(s.items) }

// Items returns a copy of the entries, blanks included.
func (s *SubList) Items() []string {
	return append([]string{}, s.items...)
}

// Append adds an empty entry at the end.
func (s *SubList) Append() {
	s.items = append(s.items, "")
}

// Set replaces the entry at i.
func (s *SubList) Set(i int, v string) error {
	if i < 0 || i >= len(s.items) {
		return errors.Wrapf(ErrIndexOutOfRange, "set %d of %d", i, len(s.items))
	}
	s.items[i] = v
	return nil
}

// RemoveAt deletes the entry at i and shifts later entries left.
func (s *SubList) RemoveAt(i int) error {
	if i < 0 || i >= len(s.items) {
		return errors.Wrapf(ErrIndexOutOfRange, "remove %d of %d", i, len(s.items))
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return nil
}

// Replace overwrites all entries, as when a form posts the whole list.
func (s *SubList) Replace(items []string) {
	s.items = append([]string{}, items...)
}

// Sanitized returns the entries that are not blank or whitespace only, in
// order and with their original text. The result is never nil.
func (s *SubList) Sanitized() []string {
	out := make([]string, 0, len(s.items))
	for _, v := range s.items {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
