package medicalrecord

import "context"

type Repository interface {
	List(ctx context.Context) []MedicalRecord
	GetByName(ctx context.Context, firstName, lastName string) (*MedicalRecord, error)
	Create(ctx context.Context, m *MedicalRecord) error
	Update(ctx context.Context, firstName, lastName string, m *MedicalRecord) error
	Delete(ctx context.Context, firstName, lastName string) error
}
