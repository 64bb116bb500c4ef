package medicalrecord

import (
	"context"
	"fmt"

	"github.com/safetynet/alerts/internal/platform/apperr"
)

// DataStore is the slice of the document store this repository needs.
type DataStore interface {
	MedicalRecords() []MedicalRecord
	ReplaceMedicalRecords(ctx context.Context, records []MedicalRecord) error
}

type storeRepo struct{ ds DataStore }

func NewStoreRepository(ds DataStore) Repository {
	return &storeRepo{ds: ds}
}

func (r *storeRepo) List(ctx context.Context) []MedicalRecord {
	return r.ds.MedicalRecords()
}

func (r *storeRepo) GetByName(ctx context.Context, firstName, lastName string) (*MedicalRecord, error) {
	for _, m := range r.ds.MedicalRecords() {
		if m.Is(firstName, lastName) {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("%w: medical record of %s %s", apperr.ErrNotFound, firstName, lastName)
}

func (r *storeRepo) Create(ctx context.Context, m *MedicalRecord) error {
	records := r.ds.MedicalRecords()
	for _, existing := range records {
		if existing.Is(m.FirstName, m.LastName) {
			return fmt.Errorf("%w: medical record of %s %s", apperr.ErrConflict, m.FirstName, m.LastName)
		}
	}

	next := make([]MedicalRecord, 0, len(records)+1)
	next = append(next, records...)
	next = append(next, *m)
	return r.ds.ReplaceMedicalRecords(ctx, next)
}

func (r *storeRepo) Update(ctx context.Context, firstName, lastName string, m *MedicalRecord) error {
	records := r.ds.MedicalRecords()
	for i, existing := range records {
		if existing.Is(firstName, lastName) {
			next := make([]MedicalRecord, len(records))
			copy(next, records)
			next[i] = *m
			return r.ds.ReplaceMedicalRecords(ctx, next)
		}
	}
	return fmt.Errorf("%w: medical record of %s %s", apperr.ErrNotFound, firstName, lastName)
}

func (r *storeRepo) Delete(ctx context.Context, firstName, lastName string) error {
	records := r.ds.MedicalRecords()
	next := make([]MedicalRecord, 0, len(records))
	for _, existing := range records {
		if !existing.Is(firstName, lastName) {
			next = append(next, existing)
		}
	}
	if len(next) == len(records) {
		return fmt.Errorf("%w: medical record of %s %s", apperr.ErrNotFound, firstName, lastName)
	}
	return r.ds.ReplaceMedicalRecords(ctx, next)
}
