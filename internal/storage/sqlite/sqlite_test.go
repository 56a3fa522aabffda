package sqlite

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homebills/internal/models"
	"github.com/mmynk/homebills/internal/storage"
	"github.com/mmynk/homebills/internal/storage/storagetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New()
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestStoresDoNotShareData(t *testing.T) {
	ctx := context.Background()
	a := newTestStore(t)
	b := newTestStore(t)

	_, err := a.AddUser(ctx, "Alice")
	require.NoError(t, err)

	users, err := b.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	id, err := b.AddUser(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestRemoveUserDropsBillsAndPayments(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	uid, err := store.AddUser(ctx, "Alice")
	require.NoError(t, err)
	_, err = store.AppendBill(ctx, uid, models.Bill{Kind: models.KindWater, ProviderID: 1, Amount: decimal.NewFromInt(12)})
	require.NoError(t, err)
	require.NoError(t, store.AppendPayment(ctx, uid, models.Payment{Amount: decimal.NewFromInt(12), Date: "2024-02-01"}))

	require.NoError(t, store.RemoveUser(ctx, uid))

	var bills, payments int
	require.NoError(t, store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills").Scan(&bills))
	require.NoError(t, store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM payments").Scan(&payments))
	assert.Zero(t, bills)
	assert.Zero(t, payments)
}

func TestAmountsKeepPrecision(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	uid, err := store.AddUser(ctx, "Alice")
	require.NoError(t, err)
	amount := decimal.RequireFromString("1234567.89")
	_, err = store.AppendBill(ctx, uid, models.Bill{Kind: models.KindGas, ProviderID: 3, Amount: amount})
	require.NoError(t, err)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, users[0].User.Bills, 1)
	assert.True(t, amount.Equal(users[0].User.Bills[0].Amount))
	assert.Equal(t, models.KindGas, users[0].User.Bills[0].Kind)
}
