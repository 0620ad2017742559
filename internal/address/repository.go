package address

import (
	"context"
	"database/sql"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) (*Address, error)
	Upsert(ctx context.Context, a *Address) (*Address, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) (*Address, error) {
	var a Address
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, street, city, state, zip_code, country, created_at
		FROM addresses
		WHERE user_id = $1
	`, userID).Scan(&a.ID, &a.UserID, &a.Street, &a.City, &a.State, &a.ZipCode, &a.Country, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.NotFound, "address not found")
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// Upsert keeps one address per user, matching the shop's single shipping
// address model.
func (r *repository) Upsert(ctx context.Context, a *Address) (*Address, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO addresses (user_id, street, city, state, zip_code, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET street = $2, city = $3, state = $4, zip_code = $5, country = $6
		RETURNING id, created_at
	`, a.UserID, a.Street, a.City, a.State, a.ZipCode, a.Country).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
