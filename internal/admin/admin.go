// Package admin exposes every billing operation behind one facade.
package admin

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/homebills/internal/billing"
	"github.com/mmynk/homebills/internal/models"
	"github.com/mmynk/homebills/internal/storage"
)

// Admin delegates to the provider registry, the user registry and the bill
// factory. It holds no state of its own; errors are returned unchanged.
type Admin struct {
	providers storage.ProviderStore
	users     storage.UserStore
	bills     *billing.Factory
}

// New creates an Admin over the given registries and factory.
func New(providers storage.ProviderStore, users storage.UserStore, bills *billing.Factory) *Admin {
	return &Admin{
		providers: providers,
		users:     users,
		bills:     bills,
	}
}

// NewWithStore wires an Admin, and its bill factory, to a single store.
func NewWithStore(store storage.Store) *Admin {
	return New(store, store, billing.NewFactory(store))
}

// Providers returns the provider registry.
func (a *Admin) Providers() storage.ProviderStore {
	return a.providers
}

// Users returns the user registry.
func (a *Admin) Users() storage.UserStore {
	return a.users
}

// AddProvider registers a provider and returns its id.
func (a *Admin) AddProvider(ctx context.Context, name string, category models.BillCategory) (int, error) {
	id, err := a.providers.AddProvider(ctx, models.Provider{Name: name, BillCategory: category})
	if err != nil {
		return 0, err
	}
	slog.Info("Provider added", "provider_id", id, "name", name, "bill_category", category)
	return id, nil
}

// RemoveProvider removes a provider. Bills that reference it are kept.
func (a *Admin) RemoveProvider(ctx context.Context, id int) error {
	if err := a.providers.RemoveProvider(ctx, id); err != nil {
		return err
	}
	slog.Info("Provider removed", "provider_id", id)
	return nil
}

// AddUser registers a user and returns its id.
func (a *Admin) AddUser(ctx context.Context, name string) (int, error) {
	id, err := a.users.AddUser(ctx, name)
	if err != nil {
		return 0, err
	}
	slog.Info("User added", "user_id", id, "name", name)
	return id, nil
}

// RemoveUser removes a user together with its bills and payments.
func (a *Admin) RemoveUser(ctx context.Context, id int) error {
	if err := a.users.RemoveUser(ctx, id); err != nil {
		return err
	}
	slog.Info("User removed", "user_id", id)
	return nil
}

// CreateBill resolves the provider and the user, then files a new bill.
// It returns the bill and the index RemoveBill accepts for it.
func (a *Admin) CreateBill(ctx context.Context, userID, providerID int, amount decimal.Decimal) (models.Bill, int, error) {
	provider, err := a.providers.GetProvider(ctx, providerID)
	if err != nil {
		return models.Bill{}, 0, err
	}
	if _, err := a.users.GetUser(ctx, userID); err != nil {
		return models.Bill{}, 0, err
	}

	bill, index, err := a.bills.CreateBill(ctx, userID, providerID, *provider, amount)
	if err != nil {
		return models.Bill{}, 0, err
	}
	slog.Info("Bill created",
		"user_id", userID,
		"provider_id", providerID,
		"index", index,
		"kind", bill.Kind.Label(),
		"amount", bill.Amount.String(),
	)
	return bill, index, nil
}

// RemoveBill removes the user's bill at index.
func (a *Admin) RemoveBill(ctx context.Context, userID, index int) error {
	if err := a.users.RemoveBill(ctx, userID, index); err != nil {
		return err
	}
	slog.Info("Bill removed", "user_id", userID, "index", index)
	return nil
}

// Bills returns the user's bills in order.
func (a *Admin) Bills(ctx context.Context, userID int) ([]models.Bill, error) {
	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Bills, nil
}

// AddPayment records a payment for the user. Amount and date are not validated.
func (a *Admin) AddPayment(ctx context.Context, userID int, amount decimal.Decimal, date string) (models.Payment, error) {
	payment := models.Payment{Amount: amount, Date: date}
	if err := a.users.AppendPayment(ctx, userID, payment); err != nil {
		return models.Payment{}, err
	}
	slog.Info("Payment added", "user_id", userID, "amount", amount.String(), "date", date)
	return payment, nil
}

// Payments returns the user's payments in order.
func (a *Admin) Payments(ctx context.Context, userID int) ([]models.Payment, error) {
	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Payments, nil
}

// ListProviders returns all providers.
func (a *Admin) ListProviders(ctx context.Context) ([]models.ProviderEntry, error) {
	return a.providers.ListProviders(ctx)
}

// ListUsers returns all users.
func (a *Admin) ListUsers(ctx context.Context) ([]models.UserEntry, error) {
	return a.users.ListUsers(ctx)
}

// DisplayProviders writes the provider list to w.
func (a *Admin) DisplayProviders(ctx context.Context, w io.Writer) error {
	entries, err := a.providers.ListProviders(ctx)
	if err != nil {
		return err
	}
	return billing.WriteProviders(w, entries)
}

// DisplayUsers writes the user list to w.
func (a *Admin) DisplayUsers(ctx context.Context, w io.Writer) error {
	entries, err := a.users.ListUsers(ctx)
	if err != nil {
		return err
	}
	return billing.WriteUsers(w, entries)
}

// DisplayBills writes the user's bills, with their indices, to w.
func (a *Admin) DisplayBills(ctx context.Context, w io.Writer, userID int) error {
	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	providers, err := a.providers.ListProviders(ctx)
	if err != nil {
		return err
	}
	return billing.WriteBills(w, user, billing.ProviderNames(providers))
}

// DisplayPayments writes the user's payments to w.
func (a *Admin) DisplayPayments(ctx context.Context, w io.Writer, userID int) error {
	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	return billing.WritePayments(w, user)
}
