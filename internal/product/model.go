package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint
	CategoryID  uint
	Name        string
	Description string
	ImageURL    string
	Price       decimal.Decimal
	CreatedAt   time.Time
}

type CreateProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	ImageURL    string
	Price       decimal.Decimal
}

// UpdateProductInput carries partial updates; nil fields are left untouched.
type UpdateProductInput struct {
	CategoryID  *uint
	Name        *string
	Description *string
	ImageURL    *string
	Price       *decimal.Decimal
}
