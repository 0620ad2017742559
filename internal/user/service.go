package user

import (
	"context"
	"strings"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"go.uber.org/zap"
)

const (
	maxNameLength     = 100
	maxEmailLength    = 254
	maxPhoneLength    = 20
	minPasswordLength = 6
)

type Service interface {
	Register(ctx context.Context, caller *utils.Caller, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (string, *User, error)
	GetAllUsers(ctx context.Context, caller utils.Caller) ([]*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register creates a new account. The requested ADMIN role is honored only
// when the requester is already an admin; everyone else gets USER.
func (s *service) Register(ctx context.Context, caller *utils.Caller, input RegisterInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, apperr.New(apperr.Invalid, "invalid name")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || len(email) > maxEmailLength || !strings.Contains(email, "@") {
		return nil, apperr.New(apperr.Invalid, "invalid email")
	}

	if len(input.Password) < minPasswordLength {
		return nil, apperr.New(apperr.Invalid, "password too short")
	}
	if len(input.Phone) > maxPhoneLength {
		return nil, apperr.New(apperr.Invalid, "invalid phone number")
	}

	role := utils.RoleUser
	if strings.EqualFold(input.Role, utils.RoleAdmin) && caller != nil && caller.IsAdmin() {
		role = utils.RoleAdmin
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &User{
		Name:     name,
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Password: hash,
		Role:     role,
	}

	created, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user registered", zap.Uint("user_id", created.ID), zap.String("role", created.Role))
	return created, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return "", nil, apperr.New(apperr.Invalid, "email and password required")
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !CheckPasswordHash(input.Password, u.Password) {
		log.Warn("password mismatch", zap.Uint("user_id", u.ID))
		return "", nil, apperr.New(apperr.Unauthenticated, "password does not match")
	}

	token, err := GenerateJWT(u.ID, u.Email, u.Role)
	if err != nil {
		log.Error("failed to sign token", zap.Error(err))
		return "", nil, err
	}

	log.Info("user logged in", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) GetAllUsers(ctx context.Context, caller utils.Caller) ([]*User, error) {
	if !caller.IsAdmin() {
		return nil, apperr.New(apperr.Forbidden, "only admins may list users")
	}
	return s.repo.ListUsers(ctx)
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}
