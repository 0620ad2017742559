package product

import (
	"context"
	"database/sql"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
)

type Repository interface {
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	SaveProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uint) error
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]*Product, error)
	SearchProducts(ctx context.Context, value string) ([]*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, category_id, name, description, image_url, price, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.ImageURL, &p.Price, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) CreateProduct(ctx context.Context, p *Product) (*Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (category_id, name, description, image_url, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, p.CategoryID, p.Name, p.Description, p.ImageURL, p.Price).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) SaveProduct(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, image_url = $4, price = $5
		WHERE id = $6
	`, p.CategoryID, p.Name, p.Description, p.ImageURL, p.Price, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.NotFound, "product not found")
	}
	return nil
}

func (r *repository) DeleteProduct(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.NotFound, "product not found")
	}
	return nil
}

func (r *repository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = $1
	`, id))

	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) ListProducts(ctx context.Context) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products ORDER BY id DESC
	`)
}

func (r *repository) ListByCategory(ctx context.Context, categoryID uint) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY id DESC
	`, categoryID)
}

func (r *repository) SearchProducts(ctx context.Context, value string) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY id DESC
	`, "%"+value+"%")
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...any) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
