// Package datastore owns the single JSON document that backs the whole
// working set. All three collections are loaded into memory at startup and
// every mutation writes the full document back to disk. Collection accessors
// hand out the current slice reference; mutations install a fresh slice
// (copy-on-write), so a reader that captured a reference at the start of a
// query never observes a half-applied change.
package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/safetynet/alerts/internal/domain/firestation"
	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/domain/person"
)

// document is the on-disk shape of the data file.
type document struct {
	Persons        []person.Person               `json:"persons"`
	Firestations   []firestation.Firestation     `json:"firestations"`
	MedicalRecords []medicalrecord.MedicalRecord `json:"medicalrecords"`
}

type Store struct {
	path   string
	logger zerolog.Logger

	mu             sync.RWMutex
	persons        []person.Person
	firestations   []firestation.Firestation
	medicalRecords []medicalrecord.MedicalRecord
}

// Open reads the data document at path and loads all three collections.
// A missing or malformed document is a startup failure.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the document and atomically replaces all three
// collections. Queries already iterating their captured references keep the
// older snapshot.
func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read data file %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode data file %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.persons = doc.Persons
	s.firestations = doc.Firestations
	s.medicalRecords = doc.MedicalRecords
	s.mu.Unlock()

	s.logger.Info().
		Str("path", s.path).
		Int("persons", len(doc.Persons)).
		Int("firestations", len(doc.Firestations)).
		Int("medicalrecords", len(doc.MedicalRecords)).
		Msg("data file loaded")
	return nil
}

// Persons returns the current person collection in document order.
func (s *Store) Persons() []person.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persons
}

// Firestations returns the current firestation collection in document order.
func (s *Store) Firestations() []firestation.Firestation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firestations
}

// MedicalRecords returns the current medical record collection in document order.
func (s *Store) MedicalRecords() []medicalrecord.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.medicalRecords
}

// ReplacePersons installs a new person collection and writes the document
// back to disk.
func (s *Store) ReplacePersons(ctx context.Context, persons []person.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.persons
	s.persons = persons
	if err := s.persistLocked(); err != nil {
		s.persons = prev
		return err
	}
	return nil
}

// ReplaceFirestations installs a new firestation collection and writes the
// document back to disk.
func (s *Store) ReplaceFirestations(ctx context.Context, firestations []firestation.Firestation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.firestations
	s.firestations = firestations
	if err := s.persistLocked(); err != nil {
		s.firestations = prev
		return err
	}
	return nil
}

// ReplaceMedicalRecords installs a new medical record collection and writes
// the document back to disk.
func (s *Store) ReplaceMedicalRecords(ctx context.Context, records []medicalrecord.MedicalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.medicalRecords
	s.medicalRecords = records
	if err := s.persistLocked(); err != nil {
		s.medicalRecords = prev
		return err
	}
	return nil
}

// persistLocked marshals the current collections and replaces the data file
// via a temp file and rename, so a crash mid-write never truncates it.
// Callers must hold s.mu.
func (s *Store) persistLocked() error {
	doc := document{
		Persons:        s.persons,
		Firestations:   s.firestations,
		MedicalRecords: s.medicalRecords,
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".data-*.json")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
