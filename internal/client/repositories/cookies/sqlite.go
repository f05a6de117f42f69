package cookies

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, origin string) ([]models.StoredCookie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, value, updated_at FROM cookies WHERE origin = ? ORDER BY name`, origin)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies[%s]: %w", origin, err)
	}
	defer rows.Close()

	result := make([]models.StoredCookie, 0)
	for rows.Next() {
		var c models.StoredCookie
		if err := rows.Scan(&c.Name, &c.Value, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cookie rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, origin string, c models.StoredCookie) error {
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cookies (origin, name, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(origin, name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, origin, c.Name, c.Value, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to set cookie[%s]: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, origin string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE origin = ?`, origin)
	if err != nil {
		return fmt.Errorf("failed to clear cookies[%s]: %w", origin, err)
	}
	return nil
}
