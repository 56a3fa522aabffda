package models

import "github.com/shopspring/decimal"

// Payment is an amount a user recorded as paid.
// Neither the amount sign nor the date format is validated.
type Payment struct {
	Amount decimal.Decimal

	// Date is free text, conventionally YYYY-MM-DD.
	Date string
}
