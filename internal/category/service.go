package category

import (
	"context"
	"strings"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"go.uber.org/zap"
)

const maxNameLength = 100

// Service defines the business logic for categories.
type Service interface {
	CreateCategory(ctx context.Context, caller utils.Caller, name string) (*Category, error)
	UpdateCategory(ctx context.Context, caller utils.Caller, id uint, name string) (*Category, error)
	DeleteCategory(ctx context.Context, caller utils.Caller, id uint) error
	GetCategory(ctx context.Context, id uint) (*Category, error)
	GetAllCategories(ctx context.Context) ([]*Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return "", apperr.New(apperr.Invalid, "invalid category name")
	}
	return name, nil
}

func (s *service) CreateCategory(ctx context.Context, caller utils.Caller, name string) (*Category, error) {
	if !caller.IsAdmin() {
		return nil, apperr.New(apperr.Forbidden, "only admins may create categories")
	}

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCategory"),
		zap.String("name", name),
	)

	c, err := s.repo.CreateCategory(ctx, name)
	if err != nil {
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	log.Info("category created", zap.Uint("category_id", c.ID))
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, caller utils.Caller, id uint, name string) (*Category, error) {
	if !caller.IsAdmin() {
		return nil, apperr.New(apperr.Forbidden, "only admins may update categories")
	}

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateCategory(ctx, id, name)
}

func (s *service) DeleteCategory(ctx context.Context, caller utils.Caller, id uint) error {
	if !caller.IsAdmin() {
		return apperr.New(apperr.Forbidden, "only admins may delete categories")
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *service) GetAllCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}
