package firestation

import (
	"context"
	"fmt"

	"github.com/safetynet/alerts/internal/platform/apperr"
)

// DataStore is the slice of the document store this repository needs.
type DataStore interface {
	Firestations() []Firestation
	ReplaceFirestations(ctx context.Context, firestations []Firestation) error
}

type storeRepo struct{ ds DataStore }

func NewStoreRepository(ds DataStore) Repository {
	return &storeRepo{ds: ds}
}

func (r *storeRepo) List(ctx context.Context) []Firestation {
	return r.ds.Firestations()
}

func (r *storeRepo) GetByAddress(ctx context.Context, address string) (*Firestation, error) {
	for _, f := range r.ds.Firestations() {
		if f.Address == address {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("%w: firestation at %s", apperr.ErrNotFound, address)
}

func (r *storeRepo) Create(ctx context.Context, f *Firestation) error {
	firestations := r.ds.Firestations()
	for _, existing := range firestations {
		if existing.Address == f.Address {
			return fmt.Errorf("%w: firestation at %s", apperr.ErrConflict, f.Address)
		}
	}

	next := make([]Firestation, 0, len(firestations)+1)
	next = append(next, firestations...)
	next = append(next, *f)
	return r.ds.ReplaceFirestations(ctx, next)
}

func (r *storeRepo) Update(ctx context.Context, address string, f *Firestation) error {
	firestations := r.ds.Firestations()
	for i, existing := range firestations {
		if existing.Address == address {
			next := make([]Firestation, len(firestations))
			copy(next, firestations)
			next[i] = *f
			return r.ds.ReplaceFirestations(ctx, next)
		}
	}
	return fmt.Errorf("%w: firestation at %s", apperr.ErrNotFound, address)
}

func (r *storeRepo) Delete(ctx context.Context, address string) error {
	firestations := r.ds.Firestations()
	next := make([]Firestation, 0, len(firestations))
	for _, existing := range firestations {
		if existing.Address != address {
			next = append(next, existing)
		}
	}
	if len(next) == len(firestations) {
		return fmt.Errorf("%w: firestation at %s", apperr.ErrNotFound, address)
	}
	return r.ds.ReplaceFirestations(ctx, next)
}
