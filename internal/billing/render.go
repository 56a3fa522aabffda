package billing

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/mmynk/homebills/internal/models"
)

// FormatAmount renders an amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// ProviderLabel returns the provider's name, or a marker when the bill's
// provider has been removed from the registry.
func ProviderLabel(providerID int, names map[int]string) string {
	if name, ok := names[providerID]; ok {
		return name
	}
	return fmt.Sprintf("#%d (removed provider)", providerID)
}

// ProviderNames indexes provider names by id.
func ProviderNames(entries []models.ProviderEntry) map[int]string {
	names := make(map[int]string, len(entries))
	for _, e := range entries {
		names[e.ID] = e.Provider.Name
	}
	return names
}

// WriteProviders writes one line per provider.
func WriteProviders(w io.Writer, entries []models.ProviderEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "ID: %d | %s | Bill Type: %s\n", e.ID, e.Provider.Name, e.Provider.BillCategory); err != nil {
			return err
		}
	}
	return nil
}

// WriteUsers writes one line per user.
func WriteUsers(w io.Writer, entries []models.UserEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "ID: %d | %s\n", e.ID, e.User.Name); err != nil {
			return err
		}
	}
	return nil
}

// BillLine renders a single bill, without its index.
func BillLine(bill models.Bill, names map[int]string) string {
	return fmt.Sprintf("%s Provider: %s | Amount: %s",
		bill.Kind.Label(), ProviderLabel(bill.ProviderID, names), FormatAmount(bill.Amount))
}

// WriteBills writes the user's bills prefixed with the index RemoveBill expects.
func WriteBills(w io.Writer, user *models.User, names map[int]string) error {
	if _, err := fmt.Fprintf(w, "Bills for user: %s\n", user.Name); err != nil {
		return err
	}
	for i, bill := range user.Bills {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i, BillLine(bill, names)); err != nil {
			return err
		}
	}
	return nil
}

// WritePayments writes the user's payments in the order they were recorded.
func WritePayments(w io.Writer, user *models.User) error {
	if _, err := fmt.Fprintf(w, "Payments for user: %s\n", user.Name); err != nil {
		return err
	}
	for _, p := range user.Payments {
		if _, err := fmt.Fprintf(w, "Payment Amount: %s | Date: %s\n", FormatAmount(p.Amount), p.Date); err != nil {
			return err
		}
	}
	return nil
}
