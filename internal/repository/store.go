package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Lixing-Zhang/catalogue-api/internal/models"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrAlreadyExists = errors.New("item already exists")
)

// Repository defines the interface for keyed entity data access
type Repository[T models.Entity] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Add(ctx context.Context, item T) error
	Update(ctx context.Context, id int64, apply func(*T) error) (T, error)
	Remove(ctx context.Context, id int64) error
}

// Store is an in-memory Repository. Lookups go through a map keyed by id;
// a separate slice keeps insertion order for listing.
// All methods are safe for concurrent use.
type Store[T models.Entity] struct {
	mu    sync.RWMutex
	items map[int64]T
	order []int64
	clone func(T) T
}

// NewStore creates an empty store. clone, if not nil, is used to copy
// items on the way in and out so callers never share storage with the store.
func NewStore[T models.Entity](clone func(T) T) *Store[T] {
	if clone == nil {
		clone = func(item T) T { return item }
	}
	return &Store[T]{
		items: make(map[int64]T),
		clone: clone,
	}
}

// List returns all items in insertion order
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.clone(s.items[id]))
	}
	return items, nil
}

// Get returns the item with the given id
func (s *Store[T]) Get(ctx context.Context, id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", zero.Kind(), id, ErrNotFound)
	}
	return s.clone(item), nil
}

// Add appends item, failing if its id is already taken
func (s *Store[T]) Add(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.EntityID()
	if _, exists := s.items[id]; exists {
		return fmt.Errorf("%s %d: %w", item.Kind(), id, ErrAlreadyExists)
	}
	s.items[id] = s.clone(item)
	s.order = append(s.order, id)
	return nil
}

// Update runs apply on a copy of the item and stores the result.
// If apply fails the stored item is left untouched.
func (s *Store[T]) Update(ctx context.Context, id int64, apply func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	current, exists := s.items[id]
	if !exists {
		return zero, fmt.Errorf("%s %d: %w", zero.Kind(), id, ErrNotFound)
	}

	updated := s.clone(current)
	if err := apply(&updated); err != nil {
		return zero, err
	}
	s.items[id] = updated
	return s.clone(updated), nil
}

// Remove deletes the item with the given id
func (s *Store[T]) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		var zero T
		return fmt.Errorf("%s %d: %w", zero.Kind(), id, ErrNotFound)
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
