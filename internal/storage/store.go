// Package storage provides abstractions for the provider and user registries.
package storage

import (
	"context"

	"github.com/mmynk/homebills/internal/models"
)

// ProviderStore defines the provider registry operations.
// Ids start at 1, increase strictly and are never reused, even after removal.
type ProviderStore interface {
	// AddProvider registers a provider and returns its new id.
	AddProvider(ctx context.Context, provider models.Provider) (int, error)

	// RemoveProvider deletes a provider.
	// Returns models.ErrNotFound if the id is unknown. Bills that reference
	// the provider are left untouched.
	RemoveProvider(ctx context.Context, id int) error

	// GetProvider retrieves a provider by id.
	// Returns models.ErrNotFound if the id is unknown.
	GetProvider(ctx context.Context, id int) (*models.Provider, error)

	// ListProviders returns every registered provider exactly once.
	ListProviders(ctx context.Context) ([]models.ProviderEntry, error)

	// CountProviders returns the number of registered providers.
	CountProviders(ctx context.Context) (int, error)
}

// UserStore defines the user registry operations, including the bill and
// payment sequences each user owns.
type UserStore interface {
	// AddUser registers a user with no bills or payments and returns its new id.
	AddUser(ctx context.Context, name string) (int, error)

	// RemoveUser deletes a user together with its bills and payments.
	// Returns models.ErrNotFound if the id is unknown.
	RemoveUser(ctx context.Context, id int) error

	// GetUser returns a snapshot of a user.
	// Returns models.ErrNotFound if the id is unknown.
	GetUser(ctx context.Context, id int) (*models.User, error)

	// ListUsers returns every registered user exactly once.
	ListUsers(ctx context.Context) ([]models.UserEntry, error)

	// CountUsers returns the number of registered users without loading
	// their bills or payments.
	CountUsers(ctx context.Context) (int, error)

	// AppendBill adds a bill at the end of the user's bills and returns its
	// index, read under the same lock or transaction as the insert.
	AppendBill(ctx context.Context, userID int, bill models.Bill) (int, error)

	// RemoveBill deletes the bill at index; later bills shift down by one.
	// Returns models.ErrIndexOutOfRange if index is not in [0, len).
	RemoveBill(ctx context.Context, userID int, index int) error

	// AppendPayment adds a payment at the end of the user's payments.
	AppendPayment(ctx context.Context, userID int, payment models.Payment) error
}

// Store bundles both registries.
// This abstraction allows swapping backends (in-memory maps, SQLite)
// without changing the admin or service layers.
type Store interface {
	ProviderStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
