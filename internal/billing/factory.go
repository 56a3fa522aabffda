// Package billing builds typed bills from providers and renders the
// registries' contents as text.
package billing

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/mmynk/homebills/internal/models"
	"github.com/mmynk/homebills/internal/storage"
)

// NewBill builds the bill variant matching the provider's category.
// Unknown categories fail with models.ErrInvalidBillType, negative amounts
// with models.ErrInvalidAmount.
func NewBill(providerID int, provider models.Provider, amount decimal.Decimal) (models.Bill, error) {
	kind, ok := models.KindForCategory(provider.BillCategory)
	if !ok {
		return models.Bill{}, errors.Wrapf(models.ErrInvalidBillType,
			"provider %q has category %q, want one of electricity, water, gas",
			provider.Name, provider.BillCategory)
	}
	if amount.IsNegative() {
		return models.Bill{}, errors.Wrapf(models.ErrInvalidAmount, "bill amount %s is negative", amount)
	}

	return models.Bill{
		Kind:       kind,
		ProviderID: providerID,
		Amount:     amount,
	}, nil
}

// Factory creates bills and files them under their user.
type Factory struct {
	users storage.UserStore
}

// NewFactory creates a Factory that appends bills to users in the given registry.
func NewFactory(users storage.UserStore) *Factory {
	return &Factory{users: users}
}

// CreateBill builds a bill for the provider, appends it to the user's bills
// and returns it with its index. The user's bills are unchanged when an error
// is returned.
func (f *Factory) CreateBill(ctx context.Context, userID, providerID int, provider models.Provider, amount decimal.Decimal) (models.Bill, int, error) {
	bill, err := NewBill(providerID, provider, amount)
	if err != nil {
		return models.Bill{}, 0, err
	}

	index, err := f.users.AppendBill(ctx, userID, bill)
	if err != nil {
		return models.Bill{}, 0, err
	}

	slog.Debug("Bill filed",
		"user_id", userID,
		"provider_id", providerID,
		"index", index,
		"kind", bill.Kind.Label(),
		"amount", bill.Amount.String(),
	)
	return bill, index, nil
}
