package person

// Person is one record of the "persons" collection in the data document.
// The (FirstName, LastName) pair is the identity key and must be unique
// across the collection; it is also the join key to the medical record
// collection. Matching is exact and case-sensitive.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// Is reports whether the person carries the given identity key.
func (p Person) Is(firstName, lastName string) bool {
	return p.FirstName == firstName && p.LastName == lastName
}
