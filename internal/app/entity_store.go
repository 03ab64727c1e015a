package app

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"wanderlust/internal/domain"
)

// Entity is a record addressed by a unique string identity.
type Entity[T any] interface {
	Key() string
	WithKey(id string) T
}

// Patch merges a partial update into an entity.
type Patch[T any] interface {
	Apply(T) T
}

// EntityStore is an in-memory collection that keeps insertion order and
// supports the two-step delete used by the admin dashboard:
// Idle -> PendingDelete(id) -> Idle (cancelled) | Deleted (confirmed).
type EntityStore[T Entity[T]] struct {
	mu       sync.RWMutex
	prefix   string
	items    map[string]T
	order    []string
	pending  string
	validate func(T) error
}

type StoreOption[T Entity[T]] func(*EntityStore[T])

// WithValidation runs v on every created or updated entity before it is stored.
func WithValidation[T Entity[T]](v func(T) error) StoreOption[T] {
	return func(s *EntityStore[T]) { s.validate = v }
}

func NewEntityStore[T Entity[T]](prefix string, opts ...StoreOption[T]) *EntityStore[T] {
	s := &EntityStore[T]{prefix: prefix, items: map[string]T{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Seed loads fixture records without validation. Duplicate ids are rejected.
func (s *EntityStore[T]) Seed(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		if err := s.insert(it); err != nil {
			return err
		}
	}
	return nil
}

func (s *EntityStore[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *EntityStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *EntityStore[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", s.prefix, id, domain.ErrNotFound)
	}
	return it, nil
}

// Create assigns a synthetic time-ordered identity when e has none and appends it.
func (s *EntityStore[T]) Create(e T) (T, error) {
	if e.Key() == "" {
		e = e.WithKey(s.newID())
	}
	if s.validate != nil {
		if err := s.validate(e); err != nil {
			var zero T
			return zero, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.insert(e); err != nil {
		var zero T
		return zero, err
	}
	return e, nil
}

// Update merges p into the stored entity; fields absent from p are preserved.
func (s *EntityStore[T]) Update(id string, p Patch[T]) (T, error) {
	return s.Mutate(id, func(cur T) (T, error) {
		return p.Apply(cur), nil
	})
}

// Mutate replaces the entity with fn's result atomically. The identity cannot change.
func (s *EntityStore[T]) Mutate(id string, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	cur, ok := s.items[id]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", s.prefix, id, domain.ErrNotFound)
	}
	next, err := fn(cur)
	if err != nil {
		return zero, err
	}
	next = next.WithKey(id)
	if s.validate != nil {
		if err := s.validate(next); err != nil {
			return zero, err
		}
	}
	s.items[id] = next
	return next, nil
}

// Delete removes id. Deleting an unknown id is reported as ErrNotFound.
func (s *EntityStore[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(id)
}

// RequestDelete marks id for deletion, replacing any earlier marker.
func (s *EntityStore[T]) RequestDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%s %q: %w", s.prefix, id, domain.ErrNotFound)
	}
	s.pending = id
	return nil
}

func (s *EntityStore[T]) PendingDelete() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending, s.pending != ""
}

// ConfirmDelete deletes the marked entity and returns its id.
func (s *EntityStore[T]) ConfirmDelete() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.pending
	if id == "" {
		return "", domain.ErrNoPendingDelete
	}
	s.pending = ""
	return id, s.remove(id)
}

func (s *EntityStore[T]) CancelDelete() {
	s.mu.Lock()
	s.pending = ""
	s.mu.Unlock()
}

func (s *EntityStore[T]) insert(e T) error {
	id := e.Key()
	if id == "" {
		return fmt.Errorf("%w: %s without id", domain.ErrValidation, s.prefix)
	}
	if _, dup := s.items[id]; dup {
		return fmt.Errorf("%s %q: %w", s.prefix, id, domain.ErrDuplicateValue)
	}
	s.items[id] = e
	s.order = append(s.order, id)
	return nil
}

func (s *EntityStore[T]) remove(id string) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%s %q: %w", s.prefix, id, domain.ErrNotFound)
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(x string) bool { return x == id })
	if s.pending == id {
		s.pending = ""
	}
	return nil
}

func (s *EntityStore[T]) newID() string {
	return s.prefix + "_" + uuid.Must(uuid.NewV7()).String()
}
