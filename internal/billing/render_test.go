package billing

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homebills/internal/models"
)

func TestWriteProvidersAndUsers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProviders(&buf, []models.ProviderEntry{
		{ID: 1, Provider: models.Provider{Name: "CityPower", BillCategory: "electricity"}},
		{ID: 3, Provider: models.Provider{Name: "AquaCo", BillCategory: "water"}},
	}))
	assert.Equal(t, "ID: 1 | CityPower | Bill Type: electricity\nID: 3 | AquaCo | Bill Type: water\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteUsers(&buf, []models.UserEntry{{ID: 2, User: models.User{Name: "Alice"}}}))
	assert.Equal(t, "ID: 2 | Alice\n", buf.String())
}

func TestWriteBills(t *testing.T) {
	user := &models.User{
		Name: "Alice",
		Bills: []models.Bill{
			{Kind: models.KindElectricity, ProviderID: 1, Amount: decimal.RequireFromString("42.5")},
			{Kind: models.KindGas, ProviderID: 2, Amount: decimal.NewFromInt(7)},
		},
	}
	names := map[int]string{1: "CityPower"}

	var buf bytes.Buffer
	require.NoError(t, WriteBills(&buf, user, names))

	want := "Bills for user: Alice\n" +
		"0. Electricity Provider: CityPower | Amount: $42.50\n" +
		"1. Gas Provider: #2 (removed provider) | Amount: $7.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePayments(t *testing.T) {
	user := &models.User{
		Name:     "Bob",
		Payments: []models.Payment{{Amount: decimal.RequireFromString("10.0"), Date: "2024-01-15"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePayments(&buf, user))
	assert.Equal(t, "Payments for user: Bob\nPayment Amount: $10.00 | Date: 2024-01-15\n", buf.String())
}

func TestProviderNames(t *testing.T) {
	names := ProviderNames([]models.ProviderEntry{
		{ID: 4, Provider: models.Provider{Name: "GasWorks"}},
	})
	assert.Equal(t, map[int]string{4: "GasWorks"}, names)
	assert.Equal(t, "GasWorks", ProviderLabel(4, names))
	assert.Equal(t, "#5 (removed provider)", ProviderLabel(5, names))
}
