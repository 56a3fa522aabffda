package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/homebills/internal/admin"
	"github.com/mmynk/homebills/internal/storage/memory"
)

// runMenu feeds the given lines to a fresh menu and returns what it printed
// on its output and error writers.
func runMenu(t *testing.T, lines ...string) (string, string) {
	t.Helper()

	a := admin.NewWithStore(memory.New())
	var out, errs bytes.Buffer
	m := New(a, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, &errs)
	require.NoError(t, m.Run(context.Background()))
	return out.String(), errs.String()
}

func TestMenu_ShowsChoices(t *testing.T) {
	out, _ := runMenu(t, "10")

	assert.Contains(t, out, "Household Billing")
	assert.Contains(t, out, "1. Add Provider")
	assert.Contains(t, out, "9. Display Payments for a User")
	assert.Contains(t, out, "10. Exit")
	assert.Contains(t, out, "Exiting program.")
}

func TestMenu_EOFEndsLoop(t *testing.T) {
	a := admin.NewWithStore(memory.New())
	var out, errs bytes.Buffer
	m := New(a, strings.NewReader(""), &out, &errs)

	require.NoError(t, m.Run(context.Background()))
	assert.NotContains(t, out.String(), "Exiting program.")
}

func TestMenu_EOFMidPrompt(t *testing.T) {
	out, errs := runMenu(t, "1", "CityPower")

	assert.Contains(t, out, "Enter bill type (electricity/water/gas): ")
	assert.Empty(t, errs)
}

func TestMenu_InvalidChoice(t *testing.T) {
	out, _ := runMenu(t, "42", "abc", "10")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please try again."))
	assert.Contains(t, out, "Exiting program.")
}

func TestMenu_BillScenario(t *testing.T) {
	out, _ := runMenu(t,
		"1", "CityPower", "electricity",
		"3", "Alice",
		"5", "1", "1", "42.50",
		"7", "1",
		"10",
	)

	assert.Contains(t, out, "Provider added successfully! (ID: 1)")
	assert.Contains(t, out, "User added successfully! (ID: 1)")
	assert.Contains(t, out, "ID: 1 | CityPower | Bill Type: electricity")
	assert.Contains(t, out, "ID: 1 | Alice")
	assert.Contains(t, out, "Bill created successfully!")
	assert.Contains(t, out, "Bills for user: Alice")
	assert.Contains(t, out, "0. Electricity Provider: CityPower | Amount: $42.50")
}

func TestMenu_PaymentScenario(t *testing.T) {
	out, _ := runMenu(t,
		"3", "Bob",
		"8", "1", "10.0", "2024-01-15",
		"9", "1",
		"10",
	)

	assert.Contains(t, out, "Payment added successfully!")
	assert.Contains(t, out, "Payments for user: Bob")
	assert.Contains(t, out, "Payment Amount: $10.00 | Date: 2024-01-15")
}

func TestMenu_RemoveBill(t *testing.T) {
	out, errs := runMenu(t,
		"1", "AquaCo", "water",
		"3", "Alice",
		"5", "1", "1", "20",
		"6", "1", "3",
		"6", "1", "0",
		"7", "1",
		"10",
	)

	assert.Contains(t, errs, "Error: bill index 3 (user has 1 bills): index out of range")
	assert.Contains(t, out, "Bill removed successfully!")

	last := out[strings.LastIndex(out, "Bills for user: Alice"):]
	assert.NotContains(t, last, "Amount: $20.00")
}

func TestMenu_ErrorsKeepLooping(t *testing.T) {
	out, errs := runMenu(t,
		"4", "99",
		"2", "7",
		"1", "GasCo", "propane",
		"3", "Alice",
		"5", "1", "1", "5",
		"5", "x",
		"10",
	)

	assert.Contains(t, errs, "Error: user 99: not found")
	assert.Contains(t, errs, "Error: provider 7: not found")
	assert.Contains(t, errs, "invalid bill type")
	assert.Contains(t, errs, `Error: "x" is not a number`)
	assert.Equal(t, 4, strings.Count(errs, "Error: "))
	assert.NotContains(t, out, "Error:")
	assert.Contains(t, out, "User added successfully! (ID: 1)")
	assert.Contains(t, out, "Exiting program.")
}

func TestMenu_RemoveProviderKeepsBills(t *testing.T) {
	out, _ := runMenu(t,
		"1", "CityPower", "electricity",
		"3", "Alice",
		"5", "1", "1", "42.50",
		"2", "1",
		"7", "1",
		"10",
	)

	assert.Contains(t, out, "Provider removed successfully!")
	assert.Contains(t, out, "0. Electricity Provider: #1 (removed provider) | Amount: $42.50")
}
