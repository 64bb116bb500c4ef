package search

// The response aggregates below are the wire shapes of the seven
// cross-referenced views. Field names match the historical API payloads.

// CoveredPerson is the reduced person view of the station coverage report.
// Medical fields are deliberately excluded.
type CoveredPerson struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// StationCoverage lists everyone covered by one station number, with the
// adult/child split. The two counts always partition Persons.
type StationCoverage struct {
	AdultCount int             `json:"adultCount"`
	ChildCount int             `json:"childCount"`
	Persons    []CoveredPerson `json:"persons"`
}

// Relative is the basic person view attached to each child of a child
// alert: every other resident of the same address.
type Relative struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// Child is one minor living at the queried address.
type Child struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Age       int        `json:"age"`
	Relatives []Relative `json:"relatives"`
}

// ChildAlert is the child alert view. Children is empty, not an error,
// when nobody lives at the address.
type ChildAlert struct {
	Children []Child `json:"children"`
}

// PhoneAlert lists the phone numbers of everyone covered by a station.
// Duplicates are preserved.
type PhoneAlert struct {
	Phones []string `json:"phones"`
}

// FireResident is one resident of a fire report, with medical summary.
type FireResident struct {
	LastName    string   `json:"lastName"`
	Phone       string   `json:"phone"`
	Age         int      `json:"age"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// Fire is the fire view for one address: every station serving it plus
// every resident with their medical summary.
type Fire struct {
	Stations []int          `json:"stations"`
	Persons  []FireResident `json:"persons"`
}

// FloodResident is one resident of a flood report. Same shape as
// FireResident plus the address, since the report spans several addresses.
type FloodResident struct {
	Address     string   `json:"address"`
	LastName    string   `json:"lastName"`
	Phone       string   `json:"phone"`
	Age         int      `json:"age"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// Flood is the flat resident list for a set of station numbers. Grouping by
// address, when a caller wants it, is presentation work.
type Flood struct {
	Persons []FloodResident `json:"persons"`
}

// PersonInfo is the medical/contact summary of one person sharing the
// queried surname.
type PersonInfo struct {
	LastName    string   `json:"lastName"`
	Address     string   `json:"address"`
	Age         int      `json:"age"`
	Email       string   `json:"email"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// PersonsInfo is the person-by-surname view.
type PersonsInfo struct {
	Persons []PersonInfo `json:"persons"`
}

// CommunityEmail lists the email of every resident of a city. A household
// with two residents contributes two entries; no de-duplication.
type CommunityEmail struct {
	Emails []string `json:"emails"`
}
