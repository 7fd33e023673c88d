package templates

import (
	"fmt"
	"strings"
	"sync"

	apperrors "github.com/charlesng35/marketadmin/pkg/errors"
)

// ErrTemplateNotFound is returned by Store.Get for unknown keys. It matches
// apperrors.ErrNotFound under errors.Is.
var ErrTemplateNotFound = apperrors.ErrNotFound.WithMessage("notification template not found")

// Store is a read-only catalog of notification templates keyed by template key.
type Store struct {
	byKey map[string]Template
	order []string
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// DefaultStore returns the built-in catalog. It is constructed once per process.
func DefaultStore() *Store {
	defaultOnce.Do(func() {
		store, err := NewStore(catalog...)
		if err != nil {
			panic(fmt.Sprintf("templates: invalid built-in catalog: %v", err))
		}
		defaultStore = store
	})
	return defaultStore
}

// NewStore builds a store from the supplied templates, rejecting blank or duplicate keys and
// unknown types or audiences.
func NewStore(templates ...Template) (*Store, error) {
	store := &Store{
		byKey: make(map[string]Template, len(templates)),
		order: make([]string, 0, len(templates)),
	}

	for _, tpl := range templates {
		key := strings.TrimSpace(tpl.Key)
		switch {
		case key == "":
			return nil, fmt.Errorf("templates: key is required")
		case !validType(tpl.Type):
			return nil, fmt.Errorf("templates: %s: unknown type %q", key, tpl.Type)
		case !validAudience(tpl.Audience):
			return nil, fmt.Errorf("templates: %s: unknown audience %q", key, tpl.Audience)
		}
		if _, exists := store.byKey[key]; exists {
			return nil, fmt.Errorf("templates: duplicate key %q", key)
		}
		tpl.Key = key
		store.byKey[key] = tpl
		store.order = append(store.order, key)
	}

	return store, nil
}

// Get returns the template registered under key.
func (s *Store) Get(key string) (Template, error) {
	tpl, ok := s.byKey[strings.TrimSpace(key)]
	if !ok {
		return Template{}, ErrTemplateNotFound.WithMessage(fmt.Sprintf("notification template %q not found", key))
	}
	return tpl, nil
}

// List returns all templates in catalog order.
func (s *Store) List() []Template {
	out := make([]Template, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// Categories groups template keys by category, preserving catalog order within each group.
func (s *Store) Categories() map[Category][]string {
	out := make(map[Category][]string)
	for _, key := range s.order {
		tpl := s.byKey[key]
		out[tpl.Category] = append(out[tpl.Category], key)
	}
	return out
}
