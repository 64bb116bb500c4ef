// Package search implements the cross-referenced read views over the three
// collections: station coverage, child alert, phone alert, fire, flood,
// person info, and community email. Every operation is a pure read that
// joins persons, firestations, and medical records at call time.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/safetynet/alerts/internal/domain/firestation"
	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/domain/person"
	"github.com/safetynet/alerts/internal/platform/apperr"
)

// DataProvider supplies the live collections. Accessors reflect the most
// recent reload; each query captures every collection reference exactly
// once, then iterates that capture.
type DataProvider interface {
	Persons() []person.Person
	Firestations() []firestation.Firestation
	MedicalRecords() []medicalrecord.MedicalRecord
}

type Service struct {
	data DataProvider
	now  func() time.Time
}

func NewService(data DataProvider) *Service {
	return &Service{data: data, now: time.Now}
}

// snapshot holds the collection references captured at the start of one
// query invocation, plus the query's single "now".
type snapshot struct {
	persons        []person.Person
	firestations   []firestation.Firestation
	medicalRecords []medicalrecord.MedicalRecord
	now            time.Time
}

func (s *Service) snapshot() snapshot {
	return snapshot{
		persons:        s.data.Persons(),
		firestations:   s.data.Firestations(),
		medicalRecords: s.data.MedicalRecords(),
		now:            s.now(),
	}
}

// recordOf resolves the person's medical record by exact (firstName,
// lastName) match. A person without a record is a NotFound naming the
// person, never a silent default.
func (sn snapshot) recordOf(p person.Person) (*medicalrecord.MedicalRecord, error) {
	for _, m := range sn.medicalRecords {
		if m.Is(p.FirstName, p.LastName) {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("%w: medical record of %s %s", apperr.ErrNotFound, p.FirstName, p.LastName)
}

// ageOf derives the person's age in whole years at the snapshot's "now".
func (sn snapshot) ageOf(p person.Person) (int, error) {
	record, err := sn.recordOf(p)
	if err != nil {
		return 0, err
	}
	birth, err := record.BirthdateTime()
	if err != nil {
		return 0, err
	}
	return wholeYears(birth, sn.now), nil
}

// wholeYears counts complete years elapsed from birth to now (floor, never
// rounded up).
func wholeYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if years < 0 {
		return years
	}
	if birth.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}

// stationAddresses collects every address served by the station number, in
// firestation-collection order.
func (sn snapshot) stationAddresses(stationNumber int) []string {
	var addresses []string
	for _, f := range sn.firestations {
		if f.Station == stationNumber {
			addresses = append(addresses, f.Address)
		}
	}
	return addresses
}

// residentsAt collects every person living at the address, in
// person-collection order.
func (sn snapshot) residentsAt(address string) []person.Person {
	var residents []person.Person
	for _, p := range sn.persons {
		if p.Address == address {
			residents = append(residents, p)
		}
	}
	return residents
}

// StationCoverage reports everyone whose address is served by the station
// number, with the adult (age >= 18) / child (age < 18) split. Any age
// resolution failure aborts the whole query; no partial result is returned.
func (s *Service) StationCoverage(ctx context.Context, stationNumber int) (*StationCoverage, error) {
	sn := s.snapshot()

	addresses := sn.stationAddresses(stationNumber)
	if len(addresses) == 0 {
		return nil, fmt.Errorf("%w: no firestations for station number %d", apperr.ErrNotFound, stationNumber)
	}
	served := make(map[string]bool, len(addresses))
	for _, a := range addresses {
		served[a] = true
	}

	result := &StationCoverage{Persons: []CoveredPerson{}}
	for _, p := range sn.persons {
		if !served[p.Address] {
			continue
		}
		age, err := sn.ageOf(p)
		if err != nil {
			return nil, err
		}
		if age >= 18 {
			result.AdultCount++
		} else {
			result.ChildCount++
		}
		result.Persons = append(result.Persons, CoveredPerson{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Address:   p.Address,
			Phone:     p.Phone,
		})
	}
	return result, nil
}

// ChildAlert reports every minor (age <= 18) living at the address together
// with their co-resident relatives. An address with no residents yields an
// empty result, not an error.
func (s *Service) ChildAlert(ctx context.Context, address string) (*ChildAlert, error) {
	sn := s.snapshot()

	residents := sn.residentsAt(address)
	result := &ChildAlert{Children: []Child{}}
	if len(residents) == 0 {
		return result, nil
	}

	for _, resident := range residents {
		age, err := sn.ageOf(resident)
		if err != nil {
			return nil, err
		}
		if age > 18 {
			continue
		}

		relatives := []Relative{}
		for _, other := range residents {
			if other == resident {
				continue
			}
			relatives = append(relatives, Relative{
				FirstName: other.FirstName,
				LastName:  other.LastName,
				Address:   other.Address,
				City:      other.City,
				Zip:       other.Zip,
			})
		}
		result.Children = append(result.Children, Child{
			FirstName: resident.FirstName,
			LastName:  resident.LastName,
			Age:       age,
			Relatives: relatives,
		})
	}
	return result, nil
}

// PhoneAlert reports the phone number of everyone covered by the station
// number, duplicates preserved, in person-collection order.
func (s *Service) PhoneAlert(ctx context.Context, stationNumber int) (*PhoneAlert, error) {
	sn := s.snapshot()

	addresses := sn.stationAddresses(stationNumber)
	if len(addresses) == 0 {
		return nil, fmt.Errorf("%w: no firestations for station number %d", apperr.ErrNotFound, stationNumber)
	}
	served := make(map[string]bool, len(addresses))
	for _, a := range addresses {
		served[a] = true
	}

	result := &PhoneAlert{Phones: []string{}}
	for _, p := range sn.persons {
		if served[p.Address] {
			result.Phones = append(result.Phones, p.Phone)
		}
	}
	return result, nil
}

// Fire reports every station number serving the address and every resident
// with their medical summary. The two lookups fail independently, each with
// its own not-found reason.
func (s *Service) Fire(ctx context.Context, address string) (*Fire, error) {
	sn := s.snapshot()

	var stations []int
	for _, f := range sn.firestations {
		if f.Address == address {
			stations = append(stations, f.Station)
		}
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("%w: no firestation for address %s", apperr.ErrNotFound, address)
	}

	residents := sn.residentsAt(address)
	if len(residents) == 0 {
		return nil, fmt.Errorf("%w: no residents for address %s", apperr.ErrNotFound, address)
	}

	result := &Fire{Stations: stations, Persons: make([]FireResident, 0, len(residents))}
	for _, p := range residents {
		record, err := sn.recordOf(p)
		if err != nil {
			return nil, err
		}
		birth, err := record.BirthdateTime()
		if err != nil {
			return nil, err
		}
		result.Persons = append(result.Persons, FireResident{
			LastName:    p.LastName,
			Phone:       p.Phone,
			Age:         wholeYears(birth, sn.now),
			Medications: record.Medications,
			Allergies:   record.Allergies,
		})
	}
	return result, nil
}

// FloodStations reports every resident covered by any of the station
// numbers as one flat list. Address accumulation keeps duplicates; the
// residence test is set membership, so they are harmless.
func (s *Service) FloodStations(ctx context.Context, stationNumbers []int) (*Flood, error) {
	sn := s.snapshot()

	var addresses []string
	for _, stationNumber := range stationNumbers {
		addresses = append(addresses, sn.stationAddresses(stationNumber)...)
	}
	if len(addresses) == 0 {
		return nil, fmt.Errorf("%w: no firestations for station numbers %v", apperr.ErrNotFound, stationNumbers)
	}
	served := make(map[string]bool, len(addresses))
	for _, a := range addresses {
		served[a] = true
	}

	var residents []person.Person
	for _, p := range sn.persons {
		if served[p.Address] {
			residents = append(residents, p)
		}
	}
	if len(residents) == 0 {
		return nil, fmt.Errorf("%w: no residents for station numbers %v", apperr.ErrNotFound, stationNumbers)
	}

	result := &Flood{Persons: make([]FloodResident, 0, len(residents))}
	for _, p := range residents {
		record, err := sn.recordOf(p)
		if err != nil {
			return nil, err
		}
		birth, err := record.BirthdateTime()
		if err != nil {
			return nil, err
		}
		result.Persons = append(result.Persons, FloodResident{
			Address:     p.Address,
			LastName:    p.LastName,
			Phone:       p.Phone,
			Age:         wholeYears(birth, sn.now),
			Medications: record.Medications,
			Allergies:   record.Allergies,
		})
	}
	return result, nil
}

// PersonsByLastName reports the medical/contact summary of everyone sharing
// the surname.
func (s *Service) PersonsByLastName(ctx context.Context, lastName string) (*PersonsInfo, error) {
	sn := s.snapshot()

	result := &PersonsInfo{Persons: []PersonInfo{}}
	for _, p := range sn.persons {
		if p.LastName != lastName {
			continue
		}
		record, err := sn.recordOf(p)
		if err != nil {
			return nil, err
		}
		birth, err := record.BirthdateTime()
		if err != nil {
			return nil, err
		}
		result.Persons = append(result.Persons, PersonInfo{
			LastName:    p.LastName,
			Address:     p.Address,
			Age:         wholeYears(birth, sn.now),
			Email:       p.Email,
			Medications: record.Medications,
			Allergies:   record.Allergies,
		})
	}
	if len(result.Persons) == 0 {
		return nil, fmt.Errorf("%w: no persons with last name %s", apperr.ErrNotFound, lastName)
	}
	return result, nil
}

// EmailsByCity reports the email of every resident of the city, duplicates
// preserved.
func (s *Service) EmailsByCity(ctx context.Context, city string) (*CommunityEmail, error) {
	sn := s.snapshot()

	result := &CommunityEmail{Emails: []string{}}
	for _, p := range sn.persons {
		if p.City == city {
			result.Emails = append(result.Emails, p.Email)
		}
	}
	if len(result.Emails) == 0 {
		return nil, fmt.Errorf("%w: no residents for city %s", apperr.ErrNotFound, city)
	}
	return result, nil
}
