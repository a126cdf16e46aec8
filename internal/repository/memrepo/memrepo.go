package memrepo

import (
	"context"
	"favourites/internal/db"
	"favourites/internal/repository"
	"fmt"
	"slices"
	"sync"
	"time"
)

// MemoryDB keeps users in process memory. It serves the same Storage contract as
// the postgres handle, so the repository above it behaves identically. A single
// mutex serialises every update, which gives the row lock semantics for free.
type MemoryDB struct {
	mu     sync.RWMutex
	users  map[string]*repository.User
	byName map[string]string
}

// New returns an initialized in-memory store.
func New() *MemoryDB {
	return &MemoryDB{
		users:  make(map[string]*repository.User),
		byName: make(map[string]string),
	}
}

func clone(user *repository.User) *repository.User {
	c := *user
	c.Favourites = slices.Clone(user.Favourites)
	return &c
}

// Connect is a no-op; the store is ready as soon as it is created.
func (m *MemoryDB) Connect(ctx context.Context) error {
	return nil
}

func (m *MemoryDB) Create(ctx context.Context, record any) error {
	user, err := asUser(record)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName[user.UserName]; exists {
		return fmt.Errorf("insert to table: %w", db.ErrDuplicateKey)
	}
	if _, exists := m.users[user.ID]; exists {
		return fmt.Errorf("insert to table: %w", db.ErrDuplicateKey)
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	m.users[user.ID] = clone(user)
	m.byName[user.UserName] = user.ID
	return nil
}

func (m *MemoryDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	user, err := asUser(entity)
	if err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, err := m.find(column, value)
	if err != nil {
		return err
	}
	*user = *clone(stored)
	return nil
}

func (m *MemoryDB) UpdateOneBy(ctx context.Context, column string, value any, entity any, mutate func() (bool, error)) error {
	user, err := asUser(entity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.find(column, value)
	if err != nil {
		return err
	}
	*user = *clone(stored)

	changed, err := mutate()
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	user.UpdatedAt = time.Now()
	m.users[stored.ID] = clone(user)
	return nil
}

func (m *MemoryDB) find(column string, value any) (*repository.User, error) {
	key, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("unsupported value type %T", value)
	}

	switch column {
	case "id":
	case "user_name":
		id, ok := m.byName[key]
		if !ok {
			return nil, db.ErrNotFound
		}
		key = id
	default:
		return nil, fmt.Errorf("unsupported column %q", column)
	}

	user, ok := m.users[key]
	if !ok {
		return nil, db.ErrNotFound
	}
	return user, nil
}

func asUser(entity any) (*repository.User, error) {
	user, ok := entity.(*repository.User)
	if !ok {
		return nil, fmt.Errorf("unsupported entity type %T", entity)
	}
	return user, nil
}
