package models

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForCategory(t *testing.T) {
	tests := []struct {
		category BillCategory
		wantKind BillKind
		wantOK   bool
	}{
		{CategoryElectricity, KindElectricity, true},
		{CategoryWater, KindWater, true},
		{CategoryGas, KindGas, true},
		{"internet", 0, false},
		{"Electricity", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			kind, ok := KindForCategory(tt.category)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
			if ok {
				assert.Equal(t, tt.category, kind.Category())
			}
		})
	}
}

func TestBillKindLabel(t *testing.T) {
	assert.Equal(t, "Electricity", KindElectricity.Label())
	assert.Equal(t, "Water", KindWater.Label())
	assert.Equal(t, "Gas", KindGas.Label())
	assert.Equal(t, "Unknown", BillKind(0).Label())
}

func TestUserClone(t *testing.T) {
	u := &User{
		Name:     "Alice",
		Bills:    []Bill{{Kind: KindGas, ProviderID: 1, Amount: decimal.NewFromInt(5)}},
		Payments: []Payment{{Amount: decimal.NewFromInt(3), Date: "2024-01-15"}},
	}

	c := u.Clone()
	c.Bills[0].ProviderID = 7
	c.Payments = append(c.Payments, Payment{Date: "x"})

	assert.Equal(t, 1, u.Bills[0].ProviderID)
	assert.Len(t, u.Payments, 1)
	assert.Nil(t, (&User{Name: "Bob"}).Clone().Bills)
}

func TestErrorKinds(t *testing.T) {
	err := UserNotFound(99)
	require.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "user 99: not found", err.Error())

	err = BillIndexOutOfRange(3, 1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "bill index 3")
}
