package firestation

import "context"

type Repository interface {
	List(ctx context.Context) []Firestation
	GetByAddress(ctx context.Context, address string) (*Firestation, error)
	Create(ctx context.Context, f *Firestation) error
	Update(ctx context.Context, address string, f *Firestation) error
	Delete(ctx context.Context, address string) error
}
