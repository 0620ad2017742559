package address

import (
	"context"
	"strings"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"go.uber.org/zap"
)

const (
	maxStreetLength  = 200
	maxCityLength    = 100
	maxStateLength   = 100
	maxCountryLength = 100
	maxZipLength     = 20
)

type Service interface {
	// SaveAddress creates or updates the caller's shipping address and
	// reports whether an address already existed.
	SaveAddress(ctx context.Context, caller utils.Caller, input SaveAddressInput) (*Address, bool, error)
	GetAddress(ctx context.Context, caller utils.Caller) (*Address, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SaveAddress(ctx context.Context, caller utils.Caller, input SaveAddressInput) (*Address, bool, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SaveAddress"),
		zap.Uint("user_id", caller.ID),
	)

	if err := validateInput(input); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByUserID(ctx, caller.ID)
	preExisting := err == nil
	if err != nil && !apperr.IsKind(err, apperr.NotFound) {
		return nil, false, err
	}

	a := &Address{UserID: caller.ID}
	if preExisting {
		a = existing
	}

	applyField(&a.Street, input.Street)
	applyField(&a.City, input.City)
	applyField(&a.State, input.State)
	applyField(&a.ZipCode, input.ZipCode)
	applyField(&a.Country, input.Country)

	saved, err := s.repo.Upsert(ctx, a)
	if err != nil {
		log.Error("failed to save address", zap.Error(err))
		return nil, false, err
	}

	log.Info("address saved", zap.Bool("updated", preExisting))
	return saved, preExisting, nil
}

func (s *service) GetAddress(ctx context.Context, caller utils.Caller) (*Address, error) {
	return s.repo.GetByUserID(ctx, caller.ID)
}

func applyField(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func validateInput(input SaveAddressInput) error {
	checks := []struct {
		value *string
		max   int
		name  string
	}{
		{input.Street, maxStreetLength, "street"},
		{input.City, maxCityLength, "city"},
		{input.State, maxStateLength, "state"},
		{input.ZipCode, maxZipLength, "zip code"},
		{input.Country, maxCountryLength, "country"},
	}

	for _, c := range checks {
		if c.value != nil && len(*c.value) > c.max {
			return apperr.Newf(apperr.Invalid, "%s is too long", c.name)
		}
	}
	return nil
}
