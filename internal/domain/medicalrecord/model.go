package medicalrecord

import (
	"fmt"
	"time"

	"github.com/safetynet/alerts/internal/platform/apperr"
)

// BirthdateLayout is the canonical MM/dd/yyyy format every stored birthdate
// must satisfy. All age derivation uses this single layout.
const BirthdateLayout = "01/02/2006"

// MedicalRecord is one record of the "medicalrecords" collection. The
// (FirstName, LastName) pair joins it to a person; matching is exact and
// case-sensitive. A person without a record is a legitimate state the query
// layer has to surface, not paper over.
type MedicalRecord struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Birthdate   string   `json:"birthdate"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// Is reports whether the record carries the given identity key.
func (m MedicalRecord) Is(firstName, lastName string) bool {
	return m.FirstName == firstName && m.LastName == lastName
}

// BirthdateTime parses the stored birthdate. A record that fails to parse is
// reported as an invalid-format error naming the record it belongs to.
func (m MedicalRecord) BirthdateTime() (time.Time, error) {
	t, err := time.Parse(BirthdateLayout, m.Birthdate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birthdate %q of %s %s is not MM/dd/yyyy",
			apperr.ErrInvalidFormat, m.Birthdate, m.FirstName, m.LastName)
	}
	return t, nil
}
