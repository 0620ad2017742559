package product

import (
	"context"
	"strings"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/category"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

type Service interface {
	CreateProduct(ctx context.Context, caller utils.Caller, input CreateProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, caller utils.Caller, id uint, input UpdateProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, caller utils.Caller, id uint) error
	GetProduct(ctx context.Context, id uint) (*Product, error)
	GetAllProducts(ctx context.Context) ([]*Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]*Product, error)
	SearchProducts(ctx context.Context, value string) ([]*Product, error)
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
}

func NewService(repo Repository, categoryRepo category.Repository) Service {
	return &service{repo: repo, categoryRepo: categoryRepo}
}

func (s *service) CreateProduct(ctx context.Context, caller utils.Caller, input CreateProductInput) (*Product, error) {
	if !caller.IsAdmin() {
		return nil, apperr.New(apperr.Forbidden, "only admins may create products")
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
		zap.Uint("category_id", input.CategoryID),
	)

	if err := validateProductInputs(input.Name, input.Description, input.Price); err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	p := &Product{
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    input.ImageURL,
		Price:       input.Price,
	}

	created, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", created.ID))
	return created, nil
}

func (s *service) UpdateProduct(ctx context.Context, caller utils.Caller, id uint, input UpdateProductInput) (*Product, error) {
	if !caller.IsAdmin() {
		return nil, apperr.New(apperr.Forbidden, "only admins may update products")
	}

	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		if len(*input.Name) > maxNameLength {
			return nil, apperr.New(apperr.Invalid, "product name too long")
		}
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, apperr.New(apperr.Invalid, "price must be greater than zero")
		}
		p.Price = *input.Price
	}
	if input.Description != nil {
		if len(*input.Description) > maxDescriptionLength {
			return nil, apperr.New(apperr.Invalid, "description too long")
		}
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}

	if err := s.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, caller utils.Caller, id uint) error {
	if !caller.IsAdmin() {
		return apperr.New(apperr.Forbidden, "only admins may delete products")
	}
	return s.repo.DeleteProduct(ctx, id)
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *service) GetAllProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *service) GetProductsByCategory(ctx context.Context, categoryID uint) ([]*Product, error) {
	products, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperr.New(apperr.NotFound, "no products found for this category")
	}
	return products, nil
}

func (s *service) SearchProducts(ctx context.Context, value string) ([]*Product, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, apperr.New(apperr.Invalid, "search value required")
	}

	products, err := s.repo.SearchProducts(ctx, value)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperr.New(apperr.NotFound, "no products found")
	}
	return products, nil
}

func validateProductInputs(name, description string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return apperr.New(apperr.Invalid, "product name is required")
	}
	if len(name) > maxNameLength {
		return apperr.New(apperr.Invalid, "product name too long")
	}
	if len(description) > maxDescriptionLength {
		return apperr.New(apperr.Invalid, "description too long")
	}
	if !price.IsPositive() {
		return apperr.New(apperr.Invalid, "price must be greater than zero")
	}
	return nil
}
