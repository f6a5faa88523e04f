package accounts

import (
	"context"
	"fmt"

	"github.com/ishauck/canvas-cli/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, domain, name, email, avatar, position
		FROM accounts ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Domain, &rec.Name, &rec.Email, &rec.Avatar, &rec.Position); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, domain, name, email, avatar, position)
		VALUES (?, ?, ?, ?, ?, COALESCE((SELECT MAX(position) + 1 FROM accounts), 0))
	`, rec.ID, rec.Domain, rec.Name, rec.Email, rec.Avatar)
	if err != nil {
		return fmt.Errorf("failed to insert account %s: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateProfile(ctx context.Context, id, name, email, avatar string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET name = ?, email = ?, avatar = ? WHERE id = ?
	`, name, email, avatar, id)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", id, err)
	}
	return nil
}
