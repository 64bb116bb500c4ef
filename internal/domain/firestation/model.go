package firestation

// Firestation maps one served address to a station number. The address is
// the join key to the person collection. A station number is not unique:
// one station typically covers several addresses.
type Firestation struct {
	Address string `json:"address"`
	Station int    `json:"station"`
}
