package person

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

func validate(p *Person) error {
	if p.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if p.Address == "" {
		return fmt.Errorf("address is required")
	}
	if p.City == "" {
		return fmt.Errorf("city is required")
	}
	if len(p.Zip) != 5 {
		return fmt.Errorf("zip must be exactly 5 digits")
	}
	for _, c := range p.Zip {
		if c < '0' || c > '9' {
			return fmt.Errorf("zip must be exactly 5 digits")
		}
	}
	return nil
}

// ListPersons returns the whole collection in document order. An empty
// collection is reported as not found.
func (s *Service) ListPersons(ctx context.Context) ([]Person, error) {
	persons := s.repo.List(ctx)
	if len(persons) == 0 {
		return nil, fmt.Errorf("%w: no persons in the data set", apperr.ErrNotFound)
	}
	return persons, nil
}

func (s *Service) GetPerson(ctx context.Context, firstName, lastName string) (*Person, error) {
	return s.repo.GetByName(ctx, firstName, lastName)
}

func (s *Service) CreatePerson(ctx context.Context, p *Person) error {
	if err := validate(p); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.logger.Info().Str("firstName", p.FirstName).Str("lastName", p.LastName).Msg("person added")
	return nil
}

// UpdatePerson replaces the record identified by the name pair. The identity
// key comes from the caller, not the payload; an update identical to the
// stored record is rejected as a conflict.
func (s *Service) UpdatePerson(ctx context.Context, firstName, lastName string, p *Person) error {
	p.FirstName = firstName
	p.LastName = lastName
	if err := validate(p); err != nil {
		return err
	}

	existing, err := s.repo.GetByName(ctx, firstName, lastName)
	if err != nil {
		return err
	}
	if *existing == *p {
		return fmt.Errorf("%w: person %s %s is identical to the stored record", apperr.ErrConflict, firstName, lastName)
	}

	if err := s.repo.Update(ctx, firstName, lastName, p); err != nil {
		return err
	}
	s.logger.Info().Str("firstName", firstName).Str("lastName", lastName).Msg("person updated")
	return nil
}

func (s *Service) DeletePerson(ctx context.Context, firstName, lastName string) error {
	if err := s.repo.Delete(ctx, firstName, lastName); err != nil {
		return err
	}
	s.logger.Info().Str("firstName", firstName).Str("lastName", lastName).Msg("person deleted")
	return nil
}
