package models

import "github.com/shopspring/decimal"

// BillKind tags the variant of a Bill.
type BillKind int

const (
	KindElectricity BillKind = iota + 1
	KindWater
	KindGas
)

// Label is the human-readable variant name used when rendering bills.
func (k BillKind) Label() string {
	switch k {
	case KindElectricity:
		return "Electricity"
	case KindWater:
		return "Water"
	case KindGas:
		return "Gas"
	default:
		return "Unknown"
	}
}

// Category returns the provider category that produces this kind.
func (k BillKind) Category() BillCategory {
	switch k {
	case KindElectricity:
		return CategoryElectricity
	case KindWater:
		return CategoryWater
	case KindGas:
		return CategoryGas
	default:
		return ""
	}
}

// KindForCategory maps a provider category onto a bill kind.
// The second result is false for categories that cannot produce bills.
func KindForCategory(c BillCategory) (BillKind, bool) {
	switch c {
	case CategoryElectricity:
		return KindElectricity, true
	case CategoryWater:
		return KindWater, true
	case CategoryGas:
		return KindGas, true
	default:
		return 0, false
	}
}

// Bill is a utility bill owed by a user.
type Bill struct {
	// Kind is the bill variant.
	Kind BillKind

	// ProviderID references the issuing provider in the provider registry.
	// The provider may have been removed since; lookups must handle that.
	ProviderID int

	// Amount is the billed amount, never negative.
	Amount decimal.Decimal
}
