// Package sandbox generates a synthetic data document for demo and
// development environments: households of residents, station mappings for
// their addresses, and a medical record per resident. Generation is
// reproducible for a fixed seed.
package sandbox

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/safetynet/alerts/internal/domain/firestation"
	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/domain/person"
)

// SeedConfig controls the volume and shape of the generated document.
type SeedConfig struct {
	Households            int   `json:"households"`
	ResidentsPerHousehold int   `json:"residentsPerHousehold"`
	Stations              int   `json:"stations"`
	Seed                  int64 `json:"seed"`
}

// DefaultSeedConfig returns a small dataset: enough to exercise every view
// without drowning a demo in records.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Households:            8,
		ResidentsPerHousehold: 3,
		Stations:              4,
	}
}

// Dataset is the generated document, shaped exactly like the data file.
type Dataset struct {
	Persons        []person.Person               `json:"persons"`
	Firestations   []firestation.Firestation     `json:"firestations"`
	MedicalRecords []medicalrecord.MedicalRecord `json:"medicalrecords"`
}

var firstNames = []string{
	"John", "Jacob", "Tenley", "Roger", "Felicia", "Jonanathan", "Sophia",
	"Gwen", "Clive", "Eric", "Foster", "Tessa", "Peter", "Allison", "Brian",
	"Kendrik", "Reginold", "Jamie", "Tony", "Lily", "Ron", "Shawna", "Zach",
}

var lastNames = []string{
	"Boyd", "Duncan", "Ferguson", "Walker", "Peters", "Marrack", "Zemicks",
	"Cadigan", "Stelzer", "Shepard", "Cooper", "Carman", "Stellar",
}

var streets = []string{
	"Culver St", "Townings Dr", "6th St", "Wall St", "Steppes Pl",
	"Binoc Ave", "Downing Ct", "Loki Ct", "Railway Av", "Baywater St",
}

var medications = []string{
	"aznol:350mg", "hydrapermazol:100mg", "pharmacol:5000mg", "terazine:10mg",
	"noznazol:250mg", "thradox:700mg", "tetracyclaz:650mg", "dodoxadin:30mg",
	"tradoxidine:400mg", "ibupurin:200mg",
}

var allergies = []string{
	"nillacilan", "peanut", "shellfish", "aznol", "xilliathal", "illisoxian",
}

// Generate produces a reproducible dataset for the given configuration.
func Generate(cfg SeedConfig) Dataset {
	rng := rand.New(rand.NewSource(cfg.Seed))
	ds := Dataset{}

	for h := 0; h < cfg.Households; h++ {
		address := fmt.Sprintf("%d %s", 100+rng.Intn(1800), streets[rng.Intn(len(streets))])
		household := lastNames[rng.Intn(len(lastNames))]

		ds.Firestations = append(ds.Firestations, firestation.Firestation{
			Address: address,
			Station: 1 + rng.Intn(cfg.Stations),
		})

		for r := 0; r < cfg.ResidentsPerHousehold; r++ {
			// Suffix keeps the (firstName, lastName) identity key unique.
			first := fmt.Sprintf("%s-%d%d", firstNames[rng.Intn(len(firstNames))], h, r)

			ds.Persons = append(ds.Persons, person.Person{
				FirstName: first,
				LastName:  household,
				Address:   address,
				City:      "Culver",
				Zip:       "97451",
				Phone:     fmt.Sprintf("841-874-%04d", rng.Intn(10000)),
				Email:     fmt.Sprintf("%s@email.com", first),
			})

			record := medicalrecord.MedicalRecord{
				FirstName:   first,
				LastName:    household,
				Birthdate:   fmt.Sprintf("%02d/%02d/%04d", 1+rng.Intn(12), 1+rng.Intn(28), 1940+rng.Intn(80)),
				Medications: []string{},
				Allergies:   []string{},
			}
			for i := 0; i < rng.Intn(3); i++ {
				record.Medications = append(record.Medications, medications[rng.Intn(len(medications))])
			}
			for i := 0; i < rng.Intn(2); i++ {
				record.Allergies = append(record.Allergies, allergies[rng.Intn(len(allergies))])
			}
			ds.MedicalRecords = append(ds.MedicalRecords, record)
		}
	}
	return ds
}

// WriteFile generates a dataset and writes it as the JSON data document.
func WriteFile(path string, cfg SeedConfig) error {
	ds := Generate(cfg)
	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	return nil
}
