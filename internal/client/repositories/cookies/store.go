package cookies

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"
)

// Store binds the repository to one origin and a database handle.
type Store struct {
	db     *sql.DB
	origin string
}

func NewStore(db *sql.DB, origin string) *Store {
	return &Store{db: db, origin: origin}
}

// Load returns the cookies saved for the origin.
func (s *Store) Load(ctx context.Context) ([]models.StoredCookie, error) {
	return NewSQLiteRepository(s.db).List(ctx, s.origin)
}

// Save replaces every cookie saved for the origin with cs in one transaction.
func (s *Store) Save(ctx context.Context, cs []models.StoredCookie) error {
	now := time.Now().UTC()
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Clear(ctx, s.origin); err != nil {
			return err
		}
		for _, c := range cs {
			c.UpdatedAt = now
			if err := repo.Upsert(ctx, s.origin, c); err != nil {
				return err
			}
		}
		return nil
	})
}
