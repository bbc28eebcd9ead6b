package models

// Sponsor is one promotional entry shown alongside the archive.
type Sponsor struct {
	Brand      string `json:"brand"`
	Logo       string `json:"logo"`
	Link       string `json:"link"`
	Expires    string `json:"expires,omitempty"`    // ISO date; empty means never
	Disclosure string `json:"disclosure,omitempty"` // e.g. "Paid promotion"
}

// Active reports whether the sponsor should still be displayed on the
// given day. Dates compare lexicographically, both sides being ISO strings.
func (s Sponsor) Active(today string) bool {
	return s.Expires == "" || s.Expires >= today
}
