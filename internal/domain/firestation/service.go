package firestation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safetynet/alerts/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func validate(f *Firestation) error {
	if f.Address == "" {
		return fmt.Errorf("address is required")
	}
	if f.Station < 1 {
		return fmt.Errorf("station must be a positive number, got %d", f.Station)
	}
	return nil
}

func (s *Service) ListFirestations(ctx context.Context) ([]Firestation, error) {
	firestations := s.repo.List(ctx)
	if len(firestations) == 0 {
		return nil, fmt.Errorf("%w: no firestations in the data set", apperr.ErrNotFound)
	}
	return firestations, nil
}

func (s *Service) GetFirestation(ctx context.Context, address string) (*Firestation, error) {
	return s.repo.GetByAddress(ctx, address)
}

func (s *Service) CreateFirestation(ctx context.Context, f *Firestation) error {
	if err := validate(f); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return err
	}
	s.logger.Info().Str("address", f.Address).Int("station", f.Station).Msg("firestation added")
	return nil
}

// UpdateFirestation reassigns the station number for an address. The address
// comes from the caller; a no-op update is rejected as a conflict.
func (s *Service) UpdateFirestation(ctx context.Context, address string, f *Firestation) error {
	f.Address = address
	if err := validate(f); err != nil {
		return err
	}

	existing, err := s.repo.GetByAddress(ctx, address)
	if err != nil {
		return err
	}
	if *existing == *f {
		return fmt.Errorf("%w: firestation at %s is identical to the stored record", apperr.ErrConflict, address)
	}

	if err := s.repo.Update(ctx, address, f); err != nil {
		return err
	}
	s.logger.Info().Str("address", address).Int("station", f.Station).Msg("firestation updated")
	return nil
}

func (s *Service) DeleteFirestation(ctx context.Context, address string) error {
	if err := s.repo.Delete(ctx, address); err != nil {
		return err
	}
	s.logger.Info().Str("address", address).Msg("firestation deleted")
	return nil
}
