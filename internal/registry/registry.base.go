// Package registry provides a generic, thread-safe registry pattern
// implementation used to manage singleton instances across the application.
// The generic type parameter makes it reusable for any kind of object.
package registry

import (
	"fmt"
	"sync"

	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// Registry is a thread-safe generic registry.
// Type parameter T is the kind of object the registry manages.
// Thread-safety is guaranteed through a sync.RWMutex.
//
// Example:
//
//	strRegistry := NewRegistry[string]()
//	strRegistry.Register("key", "value")
//	if value, exists := strRegistry.Get("key"); exists {
//	    fmt.Println(value)
//	}
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry creates and returns a new registry.
//
// Returns:
//   - *Registry[T]: an initialized registry instance
//
// Example:
//
//	registry := NewRegistry[int]()
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register registers a new item. An existing item with the same name is
// overwritten.
//
// Parameters:
//   - name: unique identifier for the item
//   - item: the item to register
//
// Returns:
//   - isNew: true for a new item, false when an old item was overwritten
//   - err: error when name is empty
//
// Thread-safety: safe for concurrent use
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get returns the item registered under name, and whether it exists.
//
// Parameters:
//   - name: name of the item to look up
//
// Returns:
//   - item: the item if found, zero value of T otherwise
//   - exists: true when the item exists
//
// Thread-safety: safe for concurrent use
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate returns the item registered under name, creating it through
// the creator function when it does not exist yet.
//
// Parameters:
//   - name: name of the item
//   - creator: function building the new item
//
// Returns:
//   - item: the existing or newly created item
//   - err: error from creation
//
// Thread-safety: safe for concurrent use
//
// Example:
//
//	item, err := registry.GetOrCreate("counter", func() (int, error) {
//	    return 0, nil
//	})
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update updates an item in place, thread-safely.
//
// Parameters:
//   - name: name of the item
//   - updater: function transforming the current item
//
// Returns:
//   - error: when the item does not exist or the updater fails
//
// Thread-safety: safe for concurrent use
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear removes an item from the registry. When a cleanup function is
// provided it is called before removal to release resources.
//
// Parameters:
//   - name: name of the item to remove
//   - cleanup: optional resource-release function
//
// Returns:
//   - deleted: true when the item was removed, false when it did not exist
//   - err: error from cleanup
//
// Thread-safety: safe for concurrent use
//
// Example:
//
//	deleted, err := registry.Clear("db1", func(db *Database) error {
//	    return db.Close()
//	})
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll removes every item in the registry. When a cleanup function is
// provided it is called for each item before removal.
//
// Parameters:
//   - cleanup: optional resource-release function
//
// Returns:
//   - count: number of removed items
//   - err: aggregated cleanup errors
//
// Thread-safety: safe for concurrent use
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("cleanup errors occurred: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
