package persistence

import (
	"context"
	"slices"
)

// Collection is a typed view over one key-value store entry holding a JSON
// list. Each module collection (catalog, cart, events, cases) is one
// Collection with its own key and default contents.
type Collection[T any] struct {
	store    KeyValueStore
	key      string
	defaults []T
}

// NewCollection creates a collection bound to a store key. The defaults
// are returned (as a copy) whenever the key is absent or unreadable.
func NewCollection[T any](store KeyValueStore, key string, defaults []T) *Collection[T] {
	return &Collection[T]{store: store, key: key, defaults: defaults}
}

// List loads the collection, falling back to the defaults.
func (c *Collection[T]) List(ctx context.Context) []T {
	var items []T
	if !c.store.Load(ctx, c.key, &items) {
		return slices.Clone(c.defaults)
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Replace saves the collection wholesale.
func (c *Collection[T]) Replace(ctx context.Context, items []T) {
	c.store.Save(ctx, c.key, items)
}
