package service

import "github.com/shopspring/decimal"

// Provider is a registered provider.
type Provider struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	BillCategory string `json:"bill_category"`
}

// User is a registered user with the sizes of its bill and payment lists.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	BillCount    int    `json:"bill_count"`
	PaymentCount int    `json:"payment_count"`
}

// Bill is one of a user's bills.
type Bill struct {
	// Index is the position RemoveBill expects.
	Index int `json:"index"`

	// Kind is "Electricity", "Water" or "Gas".
	Kind string `json:"kind"`

	ProviderID int `json:"provider_id"`

	// ProviderName is empty when the provider has been removed.
	ProviderName string `json:"provider_name,omitempty"`

	Amount decimal.Decimal `json:"amount"`
}

// Payment is one of a user's payments.
type Payment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type AddProviderRequest struct {
	Name         string `json:"name"`
	BillCategory string `json:"bill_category"`
}

type AddProviderResponse struct {
	Provider Provider `json:"provider"`
}

type RemoveProviderRequest struct {
	ID int `json:"id"`
}

type ListProvidersResponse struct {
	Providers []Provider `json:"providers"`
}

type AddUserRequest struct {
	Name string `json:"name"`
}

type AddUserResponse struct {
	User User `json:"user"`
}

type RemoveUserRequest struct {
	ID int `json:"id"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type CreateBillRequest struct {
	UserID     int             `json:"user_id"`
	ProviderID int             `json:"provider_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type CreateBillResponse struct {
	Bill Bill `json:"bill"`
}

type RemoveBillRequest struct {
	UserID int `json:"user_id"`
	Index  int `json:"index"`
}

type ListBillsRequest struct {
	UserID int `json:"user_id"`
}

type ListBillsResponse struct {
	UserName string `json:"user_name"`
	Bills    []Bill `json:"bills"`
}

type AddPaymentRequest struct {
	UserID int             `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type AddPaymentResponse struct {
	Payment Payment `json:"payment"`
}

type ListPaymentsRequest struct {
	UserID int `json:"user_id"`
}

type ListPaymentsResponse struct {
	UserName string    `json:"user_name"`
	Payments []Payment `json:"payments"`
}
