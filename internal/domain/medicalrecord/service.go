package medicalrecord

import (
	"context"
	"fmt"
	"reflect"

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

func validate(m *MedicalRecord) error {
	if m.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if m.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if _, err := m.BirthdateTime(); err != nil {
		return err
	}
	return nil
}

func (s *Service) ListMedicalRecords(ctx context.Context) ([]MedicalRecord, error) {
	records := s.repo.List(ctx)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no medical records in the data set", apperr.ErrNotFound)
	}
	return records, nil
}

func (s *Service) GetMedicalRecord(ctx context.Context, firstName, lastName string) (*MedicalRecord, error) {
	return s.repo.GetByName(ctx, firstName, lastName)
}

func (s *Service) CreateMedicalRecord(ctx context.Context, m *MedicalRecord) error {
	if err := validate(m); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}
	s.logger.Info().Str("firstName", m.FirstName).Str("lastName", m.LastName).Msg("medical record added")
	return nil
}

// UpdateMedicalRecord replaces the record identified by the name pair. An
// update identical to the stored record is rejected as a conflict.
func (s *Service) UpdateMedicalRecord(ctx context.Context, firstName, lastName string, m *MedicalRecord) error {
	m.FirstName = firstName
	m.LastName = lastName
	if err := validate(m); err != nil {
		return err
	}

	existing, err := s.repo.GetByName(ctx, firstName, lastName)
	if err != nil {
		return err
	}
	if reflect.DeepEqual(*existing, *m) {
		return fmt.Errorf("%w: medical record of %s %s is identical to the stored record", apperr.ErrConflict, firstName, lastName)
	}

	if err := s.repo.Update(ctx, firstName, lastName, m); err != nil {
		return err
	}
	s.logger.Info().Str("firstName", firstName).Str("lastName", lastName).Msg("medical record updated")
	return nil
}

func (s *Service) DeleteMedicalRecord(ctx context.Context, firstName, lastName string) error {
	if err := s.repo.Delete(ctx, firstName, lastName); err != nil {
		return err
	}
	s.logger.Info().Str("firstName", firstName).Str("lastName", lastName).Msg("medical record deleted")
	return nil
}
