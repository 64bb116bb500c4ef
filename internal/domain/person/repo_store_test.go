package person

import (
	"context"
	"errors"
	"testing"

	"github.com/safetynet/alerts/internal/platform/apperr"
)

type fakeStore struct {
	persons    []Person
	replaceErr error
	replaced   int
}

func (f *fakeStore) Persons() []Person { return f.persons }

func (f *fakeStore) ReplacePersons(ctx context.Context, persons []Person) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.persons = persons
	f.replaced++
	return nil
}

func seededStore() *fakeStore {
	return &fakeStore{persons: []Person{
		{FirstName: "John", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "jaboyd@email.com"},
		{FirstName: "Tenley", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "tenz@email.com"},
	}}
}

func TestStoreRepo_GetByName(t *testing.T) {
	repo := NewStoreRepository(seededStore())

	p, err := repo.GetByName(context.Background(), "John", "Boyd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != "jaboyd@email.com" {
		t.Errorf("unexpected person: %+v", p)
	}

	if _, err := repo.GetByName(context.Background(), "Jane", "Boyd"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreRepo_CreateRejectsDuplicateIdentity(t *testing.T) {
	store := seededStore()
	repo := NewStoreRepository(store)

	err := repo.Create(context.Background(), &Person{FirstName: "John", LastName: "Boyd", Address: "other", City: "Culver", Zip: "97451"})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if store.replaced != 0 {
		t.Errorf("conflicting create must not touch the store")
	}
}

func TestStoreRepo_CreateAppends(t *testing.T) {
	store := seededStore()
	repo := NewStoreRepository(store)
	before := store.persons

	err := repo.Create(context.Background(), &Person{FirstName: "Roger", LastName: "Boyd", Address: "1509 Culver St", City: "Culver", Zip: "97451"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.persons) != 3 || store.persons[2].FirstName != "Roger" {
		t.Errorf("expected append at the end, got %+v", store.persons)
	}
	// The previous collection reference is left untouched.
	if len(before) != 2 {
		t.Errorf("old reference mutated: %+v", before)
	}
}

func TestStoreRepo_UpdateReplacesInPlace(t *testing.T) {
	store := seededStore()
	repo := NewStoreRepository(store)

	updated := Person{FirstName: "John", LastName: "Boyd", Address: "892 Downing Ct", City: "Culver", Zip: "97451", Phone: "841-874-6512", Email: "jaboyd@email.com"}
	if err := repo.Update(context.Background(), "John", "Boyd", &updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.persons[0].Address != "892 Downing Ct" {
		t.Errorf("record not replaced: %+v", store.persons[0])
	}
	if len(store.persons) != 2 {
		t.Errorf("update changed collection size: %d", len(store.persons))
	}

	if err := repo.Update(context.Background(), "Jane", "Boyd", &updated); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreRepo_Delete(t *testing.T) {
	store := seededStore()
	repo := NewStoreRepository(store)

	if err := repo.Delete(context.Background(), "Tenley", "Boyd"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.persons) != 1 || store.persons[0].FirstName != "John" {
		t.Errorf("unexpected collection after delete: %+v", store.persons)
	}

	if err := repo.Delete(context.Background(), "Tenley", "Boyd"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeat delete, got %v", err)
	}
}
