package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homebills/internal/models"
	"github.com/mmynk/homebills/internal/storage/memory"
)

// countOnlyStore fails the test if a scrape loads full listings.
type countOnlyStore struct {
	*memory.Store
	t *testing.T
}

func (s countOnlyStore) ListProviders(ctx context.Context) ([]models.ProviderEntry, error) {
	s.t.Error("ListProviders called during scrape")
	return s.Store.ListProviders(ctx)
}

func (s countOnlyStore) ListUsers(ctx context.Context) ([]models.UserEntry, error) {
	s.t.Error("ListUsers called during scrape")
	return s.Store.ListUsers(ctx)
}

func TestNewMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.BillsCreatedTotal.WithLabelValues("gas").Inc()
	m.BillsCreatedTotal.WithLabelValues("gas").Inc()
	m.PaymentsAddedTotal.Inc()
	m.RPCRequestsTotal.WithLabelValues("/x", "ok").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BillsCreatedTotal.WithLabelValues("gas")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PaymentsAddedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequestsTotal.WithLabelValues("/x", "ok")))

	assert.Panics(t, func() { NewMetrics(registry) }, "double registration must panic")
}

func TestRegisterStoreGauges(t *testing.T) {
	ctx := context.Background()
	registry := prometheus.NewRegistry()
	store := countOnlyStore{Store: memory.New(), t: t}
	RegisterStoreGauges(registry, store)

	_, err := store.AddProvider(ctx, models.Provider{Name: "CityPower", BillCategory: models.CategoryElectricity})
	require.NoError(t, err)
	_, err = store.AddUser(ctx, "Alice")
	require.NoError(t, err)
	_, err = store.AddUser(ctx, "Bob")
	require.NoError(t, err)

	expected := `
# HELP homebills_providers Number of registered providers
# TYPE homebills_providers gauge
homebills_providers 1
# HELP homebills_users Number of registered users
# TYPE homebills_users gauge
homebills_users 2
`
	err = testutil.GatherAndCompare(registry, strings.NewReader(expected), "homebills_providers", "homebills_users")
	assert.NoError(t, err)
}
