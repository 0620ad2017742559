package category

import (
	"context"
	"database/sql"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
)

type Repository interface {
	CreateCategory(ctx context.Context, name string) (*Category, error)
	UpdateCategory(ctx context.Context, id uint, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	GetCategory(ctx context.Context, id uint) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCategory(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name
	`, name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpdateCategory(ctx context.Context, id uint, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`, name, id).Scan(&c.ID, &c.Name)

	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) DeleteCategory(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.NotFound, "category not found")
	}
	return nil
}

func (r *repository) GetCategory(ctx context.Context, id uint) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name FROM categories WHERE id = $1
	`, id).Scan(&c.ID, &c.Name)

	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}
