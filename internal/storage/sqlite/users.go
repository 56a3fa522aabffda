package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/homebills/internal/models"
)

// AddUser inserts a user and returns its id.
func (s *SQLiteStore) AddUser(ctx context.Context, name string) (int, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO users (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read user id: %w", err)
	}
	return int(id), nil
}

// RemoveUser deletes a user; bills and payments go with it (ON DELETE CASCADE).
func (s *SQLiteStore) RemoveUser(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return models.UserNotFound(id)
	}
	return nil
}

// GetUser retrieves a user by id, including bills and payments.
func (s *SQLiteStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx, "SELECT name FROM users WHERE id = ?", id).Scan(&user.Name)
	if err == sql.ErrNoRows {
		return nil, models.UserNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Bills, err = s.listBills(ctx, id); err != nil {
		return nil, err
	}
	if user.Payments, err = s.listPayments(ctx, id); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves all users ordered by id.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]models.UserEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var entries []models.UserEntry
	for rows.Next() {
		var entry models.UserEntry
		if err := rows.Scan(&entry.ID, &entry.User.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		entries = append(entries, entry)
	}
	// Close before issuing more queries; there is only one connection.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	for i := range entries {
		if entries[i].User.Bills, err = s.listBills(ctx, entries[i].ID); err != nil {
			return nil, err
		}
		if entries[i].User.Payments, err = s.listPayments(ctx, entries[i].ID); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// CountUsers returns the number of users.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// AppendBill inserts a bill after the user's existing bills and returns its index.
func (s *SQLiteStore) AppendBill(ctx context.Context, userID int, bill models.Bill) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ok, err := rowExists(ctx, tx, "SELECT 1 FROM users WHERE id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !ok {
		return 0, models.UserNotFound(userID)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (user_id, kind, provider_id, amount) VALUES (?, ?, ?, ?)",
		userID, int(bill.Kind), bill.ProviderID, bill.Amount.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert bill: %w", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills WHERE user_id = ?", userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bills: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return count - 1, nil
}

// RemoveBill deletes the user's bill at the given position.
func (s *SQLiteStore) RemoveBill(ctx context.Context, userID int, index int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ok, err := rowExists(ctx, tx, "SELECT 1 FROM users WHERE id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !ok {
		return models.UserNotFound(userID)
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills WHERE user_id = ?", userID).Scan(&count); err != nil {
		return fmt.Errorf("failed to count bills: %w", err)
	}
	if index < 0 || index >= count {
		return models.BillIndexOutOfRange(index, count)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM bills WHERE seq = (
		    SELECT seq FROM bills WHERE user_id = ? ORDER BY seq LIMIT 1 OFFSET ?
		 )`,
		userID, index,
	)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AppendPayment inserts a payment after the user's existing payments.
func (s *SQLiteStore) AppendPayment(ctx context.Context, userID int, payment models.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ok, err := rowExists(ctx, tx, "SELECT 1 FROM users WHERE id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !ok {
		return models.UserNotFound(userID)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO payments (user_id, amount, date) VALUES (?, ?, ?)",
		userID, payment.Amount.String(), payment.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) listBills(ctx context.Context, userID int) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT kind, provider_id, amount FROM bills WHERE user_id = ? ORDER BY seq",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var bill models.Bill
		var kind int
		if err := rows.Scan(&kind, &bill.ProviderID, &bill.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bill.Kind = models.BillKind(kind)
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}

func (s *SQLiteStore) listPayments(ctx context.Context, userID int) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT amount, date FROM payments WHERE user_id = ? ORDER BY seq",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(&payment.Amount, &payment.Date); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
