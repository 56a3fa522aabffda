package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/homebills/internal/models"
)

// AddProvider inserts a provider and returns its id.
func (s *SQLiteStore) AddProvider(ctx context.Context, provider models.Provider) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO providers (name, bill_category) VALUES (?, ?)",
		provider.Name, string(provider.BillCategory),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert provider: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read provider id: %w", err)
	}
	return int(id), nil
}

// RemoveProvider deletes a provider by id.
func (s *SQLiteStore) RemoveProvider(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM providers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	if n == 0 {
		return models.ProviderNotFound(id)
	}
	return nil
}

// GetProvider retrieves a provider by id.
func (s *SQLiteStore) GetProvider(ctx context.Context, id int) (*models.Provider, error) {
	provider := &models.Provider{}
	var category string

	err := s.db.QueryRowContext(ctx,
		"SELECT name, bill_category FROM providers WHERE id = ?",
		id,
	).Scan(&provider.Name, &category)
	if err == sql.ErrNoRows {
		return nil, models.ProviderNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	provider.BillCategory = models.BillCategory(category)
	return provider, nil
}

// ListProviders retrieves all providers ordered by id.
func (s *SQLiteStore) ListProviders(ctx context.Context) ([]models.ProviderEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, bill_category FROM providers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	defer rows.Close()

	var entries []models.ProviderEntry
	for rows.Next() {
		var entry models.ProviderEntry
		var category string
		if err := rows.Scan(&entry.ID, &entry.Provider.Name, &category); err != nil {
			return nil, fmt.Errorf("failed to scan provider: %w", err)
		}
		entry.Provider.BillCategory = models.BillCategory(category)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate providers: %w", err)
	}

	return entries, nil
}

// CountProviders returns the number of providers.
func (s *SQLiteStore) CountProviders(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM providers").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count providers: %w", err)
	}
	return n, nil
}
