// Package console implements the numbered text menu over the admin facade.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mmynk/homebills/internal/admin"
	"github.com/mmynk/homebills/internal/models"
)

// Menu choices, numbered as shown to the user.
const (
	choiceAddProvider = iota + 1
	choiceRemoveProvider
	choiceAddUser
	choiceRemoveUser
	choiceCreateBill
	choiceRemoveBill
	choiceDisplayBills
	choiceAddPayment
	choiceDisplayPayments
	choiceExit
)

var menuItems = []string{
	"Add Provider",
	"Remove Provider",
	"Add User",
	"Remove User",
	"Create Bill",
	"Remove Bill",
	"Display Bills for a User",
	"Add Payment",
	"Display Payments for a User",
	"Exit",
}

// Menu reads one choice at a time, runs it against the admin facade and
// prints the outcome. Errors are reported on their own writer and the loop
// continues.
type Menu struct {
	admin  *admin.Admin
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer

	title lipgloss.Style
	fail  lipgloss.Style
}

// New creates a Menu reading from in, writing prompts and results to out
// and error reports to errOut.
func New(a *admin.Admin, in io.Reader, out, errOut io.Writer) *Menu {
	return &Menu{
		admin:  a,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		title:  lipgloss.NewRenderer(out).NewStyle().Bold(true),
		fail:   lipgloss.NewRenderer(errOut).NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Run shows the menu until the user picks Exit or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.showMenu()

		line, err := m.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			m.printf("Invalid choice. Please try again.\n")
			continue
		}
		if choice == choiceExit {
			m.printf("Exiting program.\n")
			return nil
		}

		if err := m.handleChoice(ctx, choice); err != nil {
			if err == io.EOF {
				return nil
			}
			slog.Debug("Menu action failed", "choice", choice, "error", err)
			fmt.Fprintln(m.errOut, m.fail.Render("Error: "+err.Error()))
		}
	}
}

func (m *Menu) showMenu() {
	m.printf("%s\n", m.title.Render("Household Billing"))
	for i, item := range menuItems {
		m.printf("%d. %s\n", i+1, item)
	}
	m.printf("Enter your choice: ")
}

func (m *Menu) handleChoice(ctx context.Context, choice int) error {
	switch choice {
	case choiceAddProvider:
		return m.handleAddProvider(ctx)
	case choiceRemoveProvider:
		return m.handleRemoveProvider(ctx)
	case choiceAddUser:
		return m.handleAddUser(ctx)
	case choiceRemoveUser:
		return m.handleRemoveUser(ctx)
	case choiceCreateBill:
		return m.handleCreateBill(ctx)
	case choiceRemoveBill:
		return m.handleRemoveBill(ctx)
	case choiceDisplayBills:
		return m.handleDisplayBills(ctx)
	case choiceAddPayment:
		return m.handleAddPayment(ctx)
	case choiceDisplayPayments:
		return m.handleDisplayPayments(ctx)
	default:
		m.printf("Invalid choice. Please try again.\n")
		return nil
	}
}

func (m *Menu) handleAddProvider(ctx context.Context) error {
	name, err := m.prompt("Enter provider name: ")
	if err != nil {
		return err
	}
	billType, err := m.prompt("Enter bill type (electricity/water/gas): ")
	if err != nil {
		return err
	}

	id, err := m.admin.AddProvider(ctx, name, models.BillCategory(billType))
	if err != nil {
		return err
	}
	m.printf("Provider added successfully! (ID: %d)\n", id)
	return nil
}

func (m *Menu) handleRemoveProvider(ctx context.Context) error {
	id, err := m.promptInt("Enter Provider ID to remove: ")
	if err != nil {
		return err
	}
	if err := m.admin.RemoveProvider(ctx, id); err != nil {
		return err
	}
	m.printf("Provider removed successfully!\n")
	return nil
}

func (m *Menu) handleAddUser(ctx context.Context) error {
	name, err := m.prompt("Enter user name: ")
	if err != nil {
		return err
	}

	id, err := m.admin.AddUser(ctx, name)
	if err != nil {
		return err
	}
	m.printf("User added successfully! (ID: %d)\n", id)
	return nil
}

func (m *Menu) handleRemoveUser(ctx context.Context) error {
	id, err := m.promptInt("Enter User ID to remove: ")
	if err != nil {
		return err
	}
	if err := m.admin.RemoveUser(ctx, id); err != nil {
		return err
	}
	m.printf("User removed successfully!\n")
	return nil
}

func (m *Menu) handleCreateBill(ctx context.Context) error {
	m.printf("Select Provider ID from the list below:\n")
	if err := m.admin.DisplayProviders(ctx, m.out); err != nil {
		return err
	}
	providerID, err := m.promptInt("")
	if err != nil {
		return err
	}
	if _, err := m.admin.Providers().GetProvider(ctx, providerID); err != nil {
		return err
	}

	m.printf("Select User ID from the list below:\n")
	if err := m.admin.DisplayUsers(ctx, m.out); err != nil {
		return err
	}
	userID, err := m.promptInt("")
	if err != nil {
		return err
	}
	if _, err := m.admin.Users().GetUser(ctx, userID); err != nil {
		return err
	}

	amount, err := m.promptAmount("Enter bill amount: ")
	if err != nil {
		return err
	}

	if _, _, err := m.admin.CreateBill(ctx, userID, providerID, amount); err != nil {
		return err
	}
	m.printf("Bill created successfully!\n")
	return nil
}

func (m *Menu) handleRemoveBill(ctx context.Context) error {
	m.printf("Select User ID to remove a bill from:\n")
	if err := m.admin.DisplayUsers(ctx, m.out); err != nil {
		return err
	}
	userID, err := m.promptInt("")
	if err != nil {
		return err
	}
	if err := m.admin.DisplayBills(ctx, m.out, userID); err != nil {
		return err
	}

	index, err := m.promptInt("Enter Bill Index to remove: ")
	if err != nil {
		return err
	}
	if err := m.admin.RemoveBill(ctx, userID, index); err != nil {
		return err
	}
	m.printf("Bill removed successfully!\n")
	return nil
}

func (m *Menu) handleDisplayBills(ctx context.Context) error {
	m.printf("Select User ID to display bills:\n")
	if err := m.admin.DisplayUsers(ctx, m.out); err != nil {
		return err
	}
	userID, err := m.promptInt("")
	if err != nil {
		return err
	}
	return m.admin.DisplayBills(ctx, m.out, userID)
}

func (m *Menu) handleAddPayment(ctx context.Context) error {
	m.printf("Select User ID to add payment:\n")
	if err := m.admin.DisplayUsers(ctx, m.out); err != nil {
		return err
	}
	userID, err := m.promptInt("")
	if err != nil {
		return err
	}
	if _, err := m.admin.Users().GetUser(ctx, userID); err != nil {
		return err
	}

	amount, err := m.promptAmount("Enter payment amount: ")
	if err != nil {
		return err
	}
	date, err := m.prompt("Enter payment date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	if _, err := m.admin.AddPayment(ctx, userID, amount, date); err != nil {
		return err
	}
	m.printf("Payment added successfully!\n")
	return nil
}

func (m *Menu) handleDisplayPayments(ctx context.Context) error {
	m.printf("Select User ID to display payments:\n")
	if err := m.admin.DisplayUsers(ctx, m.out); err != nil {
		return err
	}
	userID, err := m.promptInt("")
	if err != nil {
		return err
	}
	return m.admin.DisplayPayments(ctx, m.out, userID)
}

// readLine returns the next trimmed input line, or io.EOF.
func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) prompt(label string) (string, error) {
	if label != "" {
		m.printf("%s", label)
	}
	return m.readLine()
}

func (m *Menu) promptInt(label string) (int, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, error) {
	s, err := m.prompt(label)
	if err != nil {
		return decimal.Decimal{}, err
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not an amount", s)
	}
	return amount, nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
