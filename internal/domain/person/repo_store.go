package person

import (
	"context"
	"fmt"

	"github.com/safetynet/alerts/internal/platform/apperr"
)

// DataStore is the slice of the document store this repository needs. The
// store hands out the current collection reference and installs a fresh one
// on every replace, so readers holding an older reference never see a
// partially applied mutation.
type DataStore interface {
	Persons() []Person
	ReplacePersons(ctx context.Context, persons []Person) error
}

type storeRepo struct{ ds DataStore }

func NewStoreRepository(ds DataStore) Repository {
	return &storeRepo{ds: ds}
}

func (r *storeRepo) List(ctx context.Context) []Person {
	return r.ds.Persons()
}

func (r *storeRepo) GetByName(ctx context.Context, firstName, lastName string) (*Person, error) {
	for _, p := range r.ds.Persons() {
		if p.Is(firstName, lastName) {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: person %s %s", apperr.ErrNotFound, firstName, lastName)
}

func (r *storeRepo) Create(ctx context.Context, p *Person) error {
	persons := r.ds.Persons()
	for _, existing := range persons {
		if existing.Is(p.FirstName, p.LastName) {
			return fmt.Errorf("%w: person %s %s", apperr.ErrConflict, p.FirstName, p.LastName)
		}
	}

	next := make([]Person, 0, len(persons)+1)
	next = append(next, persons...)
	next = append(next, *p)
	return r.ds.ReplacePersons(ctx, next)
}

func (r *storeRepo) Update(ctx context.Context, firstName, lastName string, p *Person) error {
	persons := r.ds.Persons()
	for i, existing := range persons {
		if existing.Is(firstName, lastName) {
			next := make([]Person, len(persons))
			copy(next, persons)
			next[i] = *p
			return r.ds.ReplacePersons(ctx, next)
		}
	}
	return fmt.Errorf("%w: person %s %s", apperr.ErrNotFound, firstName, lastName)
}

func (r *storeRepo) Delete(ctx context.Context, firstName, lastName string) error {
	persons := r.ds.Persons()
	next := make([]Person, 0, len(persons))
	for _, existing := range persons {
		if !existing.Is(firstName, lastName) {
			next = append(next, existing)
		}
	}
	if len(next) == len(persons) {
		return fmt.Errorf("%w: person %s %s", apperr.ErrNotFound, firstName, lastName)
	}
	return r.ds.ReplacePersons(ctx, next)
}
