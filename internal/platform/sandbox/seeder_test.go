package sandbox

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/platform/datastore"
)

func TestGenerate_Shape(t *testing.T) {
	cfg := DefaultSeedConfig()
	ds := Generate(cfg)

	wantPersons := cfg.Households * cfg.ResidentsPerHousehold
	if len(ds.Persons) != wantPersons {
		t.Errorf("persons = %d, want %d", len(ds.Persons), wantPersons)
	}
	if len(ds.Firestations) != cfg.Households {
		t.Errorf("firestations = %d, want %d", len(ds.Firestations), cfg.Households)
	}
	if len(ds.MedicalRecords) != wantPersons {
		t.Errorf("medical records = %d, want %d", len(ds.MedicalRecords), wantPersons)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	cfg := DefaultSeedConfig()
	cfg.Seed = 42

	a := Generate(cfg)
	b := Generate(cfg)

	if len(a.Persons) != len(b.Persons) {
		t.Fatalf("runs diverge in size: %d vs %d", len(a.Persons), len(b.Persons))
	}
	for i := range a.Persons {
		if a.Persons[i] != b.Persons[i] {
			t.Errorf("person %d differs between runs: %+v vs %+v", i, a.Persons[i], b.Persons[i])
		}
	}
}

func TestGenerate_UniqueIdentityKeys(t *testing.T) {
	ds := Generate(DefaultSeedConfig())

	seen := map[[2]string]bool{}
	for _, p := range ds.Persons {
		key := [2]string{p.FirstName, p.LastName}
		if seen[key] {
			t.Errorf("duplicate identity key %v", key)
		}
		seen[key] = true
	}
}

func TestGenerate_ParseableBirthdates(t *testing.T) {
	ds := Generate(DefaultSeedConfig())

	for _, m := range ds.MedicalRecords {
		if _, err := m.BirthdateTime(); err != nil {
			t.Errorf("unparseable birthdate for %s %s: %v", m.FirstName, m.LastName, err)
		}
	}
}

func TestGenerate_EveryResidentHasARecord(t *testing.T) {
	ds := Generate(DefaultSeedConfig())

	records := map[[2]string]medicalrecord.MedicalRecord{}
	for _, m := range ds.MedicalRecords {
		records[[2]string{m.FirstName, m.LastName}] = m
	}
	for _, p := range ds.Persons {
		if _, ok := records[[2]string{p.FirstName, p.LastName}]; !ok {
			t.Errorf("no medical record for %s %s", p.FirstName, p.LastName)
		}
	}
}

func TestWriteFile_LoadsBackThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	cfg := DefaultSeedConfig()

	if err := WriteFile(path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := datastore.Open(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("generated document does not load: %v", err)
	}
	if len(s.Persons()) != cfg.Households*cfg.ResidentsPerHousehold {
		t.Errorf("store loaded %d persons", len(s.Persons()))
	}
}
