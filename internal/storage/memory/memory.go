// Package memory provides hash-map backed registries implementing storage.Store.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/mmynk/homebills/internal/models"
	"github.com/mmynk/homebills/internal/storage"
)

var (
	_ storage.ProviderStore = (*ProviderRegistry)(nil)
	_ storage.UserStore     = (*UserRegistry)(nil)
	_ storage.Store         = (*Store)(nil)
)

// ProviderRegistry stores providers in a map keyed by id.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[int]models.Provider
	nextID    int
}

// NewProviderRegistry creates an empty registry whose first id is 1.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[int]models.Provider),
		nextID:    1,
	}
}

// AddProvider stores the provider under the next id.
func (r *ProviderRegistry) AddProvider(_ context.Context, provider models.Provider) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.providers[id] = provider
	return id, nil
}

// RemoveProvider deletes the provider with the given id.
func (r *ProviderRegistry) RemoveProvider(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[id]; !ok {
		return models.ProviderNotFound(id)
	}
	delete(r.providers, id)
	return nil
}

// GetProvider returns a copy of the provider with the given id.
func (r *ProviderRegistry) GetProvider(_ context.Context, id int) (*models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[id]
	if !ok {
		return nil, models.ProviderNotFound(id)
	}
	return &provider, nil
}

// ListProviders returns all providers in ascending id order.
func (r *ProviderRegistry) ListProviders(_ context.Context) ([]models.ProviderEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := lo.Keys(r.providers)
	slices.Sort(ids)
	return lo.Map(ids, func(id int, _ int) models.ProviderEntry {
		return models.ProviderEntry{ID: id, Provider: r.providers[id]}
	}), nil
}

// CountProviders returns the number of providers.
func (r *ProviderRegistry) CountProviders(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.providers), nil
}

// UserRegistry stores users, with their bills and payments, in a map keyed by id.
type UserRegistry struct {
	mu     sync.RWMutex
	users  map[int]*models.User
	nextID int
}

// NewUserRegistry creates an empty registry whose first id is 1.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

// AddUser stores a new user under the next id.
func (r *UserRegistry) AddUser(_ context.Context, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.users[id] = &models.User{Name: name}
	return id, nil
}

// RemoveUser deletes the user with the given id.
func (r *UserRegistry) RemoveUser(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return models.UserNotFound(id)
	}
	delete(r.users, id)
	return nil
}

// GetUser returns a snapshot of the user with the given id.
func (r *UserRegistry) GetUser(_ context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, models.UserNotFound(id)
	}
	return user.Clone(), nil
}

// ListUsers returns all users in ascending id order.
func (r *UserRegistry) ListUsers(_ context.Context) ([]models.UserEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := lo.Keys(r.users)
	slices.Sort(ids)
	return lo.Map(ids, func(id int, _ int) models.UserEntry {
		return models.UserEntry{ID: id, User: *r.users[id].Clone()}
	}), nil
}

// CountUsers returns the number of users.
func (r *UserRegistry) CountUsers(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}

// AppendBill adds a bill to the end of the user's bills and returns its index.
func (r *UserRegistry) AppendBill(_ context.Context, userID int, bill models.Bill) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return 0, models.UserNotFound(userID)
	}
	user.Bills = append(user.Bills, bill)
	return len(user.Bills) - 1, nil
}

// RemoveBill deletes the bill at index from the user's bills.
func (r *UserRegistry) RemoveBill(_ context.Context, userID int, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return models.UserNotFound(userID)
	}
	if index < 0 || index >= len(user.Bills) {
		return models.BillIndexOutOfRange(index, len(user.Bills))
	}
	user.Bills = slices.Delete(user.Bills, index, index+1)
	return nil
}

// AppendPayment adds a payment to the end of the user's payments.
func (r *UserRegistry) AppendPayment(_ context.Context, userID int, payment models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return models.UserNotFound(userID)
	}
	user.Payments = append(user.Payments, payment)
	return nil
}

// Store combines a provider and a user registry.
type Store struct {
	*ProviderRegistry
	*UserRegistry
}

// New creates a Store with two empty registries.
func New() *Store {
	return &Store{
		ProviderRegistry: NewProviderRegistry(),
		UserRegistry:     NewUserRegistry(),
	}
}

// Close is a no-op; the data lives only as long as the Store.
func (s *Store) Close() error {
	return nil
}
