package cookies

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

type Repository interface {
	List(ctx context.Context, origin string) ([]models.StoredCookie, error)
	Upsert(ctx context.Context, origin string, c models.StoredCookie) error
	Clear(ctx context.Context, origin string) error
}
