package models

// BillCategory is the kind of bill a provider issues.
// Providers accept any text, but only the categories below can produce bills.
type BillCategory string

const (
	CategoryElectricity BillCategory = "electricity"
	CategoryWater       BillCategory = "water"
	CategoryGas         BillCategory = "gas"
)

// Provider represents a utility company.
type Provider struct {
	// Name is the display name of the provider (e.g., "CityPower").
	Name string

	// BillCategory is the category entered when the provider was added.
	BillCategory BillCategory
}

// ProviderEntry pairs a registered provider with its id.
type ProviderEntry struct {
	ID       int
	Provider Provider
}
