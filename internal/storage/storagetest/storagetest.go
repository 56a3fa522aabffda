// Package storagetest holds the behavior every storage.Store implementation
// must satisfy. Backends call Run from their own tests.
package storagetest

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homebills/internal/models"
	"github.com/mmynk/homebills/internal/storage"
)

// Run exercises a fresh store from newStore in every subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	ctx := context.Background()

	t.Run("provider ids start at 1 and are never reused", func(t *testing.T) {
		s := newStore(t)

		first, err := s.AddProvider(ctx, models.Provider{Name: "CityPower", BillCategory: models.CategoryElectricity})
		require.NoError(t, err)
		assert.Equal(t, 1, first)

		second, err := s.AddProvider(ctx, models.Provider{Name: "AquaCo", BillCategory: models.CategoryWater})
		require.NoError(t, err)
		require.NoError(t, s.RemoveProvider(ctx, second))

		third, err := s.AddProvider(ctx, models.Provider{Name: "GasWorks", BillCategory: models.CategoryGas})
		require.NoError(t, err)
		assert.Greater(t, third, second)
		assert.Equal(t, 3, third)
	})

	t.Run("user ids start at 1 and are never reused", func(t *testing.T) {
		s := newStore(t)

		var last int
		for i, name := range []string{"Alice", "Bob", "Charlie"} {
			id, err := s.AddUser(ctx, name)
			require.NoError(t, err)
			assert.Equal(t, i+1, id)
			last = id
		}
		require.NoError(t, s.RemoveUser(ctx, last))

		id, err := s.AddUser(ctx, "Diana")
		require.NoError(t, err)
		assert.Equal(t, 4, id)
	})

	t.Run("get after remove fails with not found", func(t *testing.T) {
		s := newStore(t)

		pid, err := s.AddProvider(ctx, models.Provider{Name: "CityPower", BillCategory: models.CategoryElectricity})
		require.NoError(t, err)
		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)

		require.NoError(t, s.RemoveProvider(ctx, pid))
		require.NoError(t, s.RemoveUser(ctx, uid))

		_, err = s.GetProvider(ctx, pid)
		assert.True(t, errors.Is(err, models.ErrNotFound))
		_, err = s.GetUser(ctx, uid)
		assert.True(t, errors.Is(err, models.ErrNotFound))
	})

	t.Run("unknown ids fail with not found", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetProvider(ctx, 42)
		assert.True(t, errors.Is(err, models.ErrNotFound))
		_, err = s.GetUser(ctx, 42)
		assert.True(t, errors.Is(err, models.ErrNotFound))
		assert.True(t, errors.Is(s.RemoveProvider(ctx, 42), models.ErrNotFound))
		assert.True(t, errors.Is(s.RemoveUser(ctx, 99), models.ErrNotFound))
		_, err = s.AppendBill(ctx, 99, models.Bill{Kind: models.KindGas})
		assert.True(t, errors.Is(err, models.ErrNotFound))
		assert.True(t, errors.Is(s.RemoveBill(ctx, 99, 0), models.ErrNotFound))
		assert.True(t, errors.Is(s.AppendPayment(ctx, 99, models.Payment{}), models.ErrNotFound))

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("get returns the stored values", func(t *testing.T) {
		s := newStore(t)

		pid, err := s.AddProvider(ctx, models.Provider{Name: "Odd Co", BillCategory: "internet"})
		require.NoError(t, err)

		provider, err := s.GetProvider(ctx, pid)
		require.NoError(t, err)
		assert.Equal(t, "Odd Co", provider.Name)
		assert.Equal(t, models.BillCategory("internet"), provider.BillCategory)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)
		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Empty(t, user.Bills)
		assert.Empty(t, user.Payments)
	})

	t.Run("list returns every live id exactly once", func(t *testing.T) {
		s := newStore(t)

		for _, name := range []string{"A", "B", "C", "D"} {
			_, err := s.AddProvider(ctx, models.Provider{Name: name, BillCategory: models.CategoryGas})
			require.NoError(t, err)
			_, err = s.AddUser(ctx, name)
			require.NoError(t, err)
		}
		require.NoError(t, s.RemoveProvider(ctx, 2))
		require.NoError(t, s.RemoveUser(ctx, 3))

		providers, err := s.ListProviders(ctx)
		require.NoError(t, err)
		providerIDs := make([]int, 0, len(providers))
		for _, p := range providers {
			providerIDs = append(providerIDs, p.ID)
		}
		assert.ElementsMatch(t, []int{1, 3, 4}, providerIDs)

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		userNames := make(map[int]string, len(users))
		for _, u := range users {
			userNames[u.ID] = u.User.Name
		}
		assert.Equal(t, map[int]string{1: "A", 2: "B", 4: "D"}, userNames)
	})

	t.Run("bills keep insertion order and shift on removal", func(t *testing.T) {
		s := newStore(t)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)

		for i, kind := range []models.BillKind{models.KindElectricity, models.KindWater, models.KindGas} {
			index := appendBill(t, s, uid, models.Bill{Kind: kind, ProviderID: i + 1, Amount: decimal.NewFromInt(int64(10 * (i + 1)))})
			assert.Equal(t, i, index)
		}

		require.NoError(t, s.RemoveBill(ctx, uid, 0))

		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		require.Len(t, user.Bills, 2)
		assert.Equal(t, models.KindWater, user.Bills[0].Kind)
		assert.Equal(t, 2, user.Bills[0].ProviderID)
		assert.True(t, decimal.NewFromInt(20).Equal(user.Bills[0].Amount))
		assert.Equal(t, models.KindGas, user.Bills[1].Kind)
	})

	t.Run("remove bill out of range leaves bills unchanged", func(t *testing.T) {
		s := newStore(t)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)
		appendBill(t, s, uid, models.Bill{Kind: models.KindGas, ProviderID: 1, Amount: decimal.NewFromInt(5)})

		for _, index := range []int{1, 5, -1} {
			err := s.RemoveBill(ctx, uid, index)
			assert.True(t, errors.Is(err, models.ErrIndexOutOfRange), "index %d: %v", index, err)
		}

		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, user.Bills, 1)
	})

	t.Run("payments are appended in order", func(t *testing.T) {
		s := newStore(t)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)
		require.NoError(t, s.AppendPayment(ctx, uid, models.Payment{Amount: decimal.RequireFromString("10.0"), Date: "2024-01-15"}))
		require.NoError(t, s.AppendPayment(ctx, uid, models.Payment{Amount: decimal.RequireFromString("-3.25"), Date: "not a date"}))

		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		require.Len(t, user.Payments, 2)
		assert.True(t, decimal.NewFromInt(10).Equal(user.Payments[0].Amount))
		assert.Equal(t, "2024-01-15", user.Payments[0].Date)
		assert.True(t, decimal.RequireFromString("-3.25").Equal(user.Payments[1].Amount))
		assert.Equal(t, "not a date", user.Payments[1].Date)
	})

	t.Run("snapshots do not alias stored state", func(t *testing.T) {
		s := newStore(t)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)
		appendBill(t, s, uid, models.Bill{Kind: models.KindGas, ProviderID: 1, Amount: decimal.NewFromInt(5)})

		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		user.Name = "Mallory"
		user.Bills = nil

		again, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "Alice", again.Name)
		assert.Len(t, again.Bills, 1)
	})

	t.Run("removing a provider keeps bills that reference it", func(t *testing.T) {
		s := newStore(t)

		pid, err := s.AddProvider(ctx, models.Provider{Name: "CityPower", BillCategory: models.CategoryElectricity})
		require.NoError(t, err)
		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)
		appendBill(t, s, uid, models.Bill{Kind: models.KindElectricity, ProviderID: pid, Amount: decimal.NewFromInt(1)})

		require.NoError(t, s.RemoveProvider(ctx, pid))

		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		require.Len(t, user.Bills, 1)
		assert.Equal(t, pid, user.Bills[0].ProviderID)
	})

	t.Run("append bill returns the index of the new bill", func(t *testing.T) {
		s := newStore(t)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)
		other, err := s.AddUser(ctx, "Bob")
		require.NoError(t, err)

		assert.Equal(t, 0, appendBill(t, s, uid, models.Bill{Kind: models.KindGas, ProviderID: 1, Amount: decimal.NewFromInt(1)}))
		assert.Equal(t, 0, appendBill(t, s, other, models.Bill{Kind: models.KindGas, ProviderID: 1, Amount: decimal.NewFromInt(2)}))
		assert.Equal(t, 1, appendBill(t, s, uid, models.Bill{Kind: models.KindWater, ProviderID: 2, Amount: decimal.NewFromInt(3)}))

		require.NoError(t, s.RemoveBill(ctx, uid, 0))
		index := appendBill(t, s, uid, models.Bill{Kind: models.KindElectricity, ProviderID: 3, Amount: decimal.NewFromInt(4)})
		assert.Equal(t, 1, index)

		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		require.Len(t, user.Bills, 2)
		assert.Equal(t, 3, user.Bills[index].ProviderID)
	})

	t.Run("counts track adds and removes", func(t *testing.T) {
		s := newStore(t)

		n, err := s.CountProviders(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		pid, err := s.AddProvider(ctx, models.Provider{Name: "CityPower", BillCategory: models.CategoryElectricity})
		require.NoError(t, err)
		_, err = s.AddProvider(ctx, models.Provider{Name: "AquaCo", BillCategory: models.CategoryWater})
		require.NoError(t, err)
		require.NoError(t, s.RemoveProvider(ctx, pid))

		n, err = s.CountProviders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)
		appendBill(t, s, uid, models.Bill{Kind: models.KindGas, ProviderID: 1, Amount: decimal.NewFromInt(1)})

		n, err = s.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("concurrent writers get unique ids and indices", func(t *testing.T) {
		s := newStore(t)

		uid, err := s.AddUser(ctx, "Alice")
		require.NoError(t, err)

		const n = 50
		ids := make(chan int, n)
		indices := make(chan int, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := s.AddProvider(ctx, models.Provider{Name: "p", BillCategory: models.CategoryGas})
				assert.NoError(t, err)
				ids <- id

				index, err := s.AppendBill(ctx, uid, models.Bill{Kind: models.KindGas, ProviderID: id, Amount: decimal.NewFromInt(1)})
				assert.NoError(t, err)
				indices <- index
			}()
		}
		wg.Wait()
		close(ids)
		close(indices)

		seenIDs := make(map[int]bool, n)
		for id := range ids {
			assert.False(t, seenIDs[id], "duplicate id %d", id)
			seenIDs[id] = true
		}
		assert.Len(t, seenIDs, n)

		seenIndices := make(map[int]bool, n)
		for index := range indices {
			assert.False(t, seenIndices[index], "duplicate index %d", index)
			assert.True(t, index >= 0 && index < n, "index %d out of range", index)
			seenIndices[index] = true
		}
		assert.Len(t, seenIndices, n)

		user, err := s.GetUser(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, user.Bills, n)
	})
}

// appendBill appends bill to the user's bills and returns its index.
func appendBill(t *testing.T, s storage.Store, userID int, bill models.Bill) int {
	t.Helper()
	index, err := s.AppendBill(context.Background(), userID, bill)
	require.NoError(t, err)
	return index
}
