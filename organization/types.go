// Package organization converts the Flemish organization registry JSON dump
// into Turtle documents.
package organization

// Organization is one entry of the registry dump. Only OVONumber and Name
// are required; entries missing either are skipped during conversion.
type Organization struct {
	ID          string    `json:"id"`
	OVONumber   string    `json:"ovoNumber"`
	Name        string    `json:"name"`
	ShortName   string    `json:"shortName,omitempty"`
	Description string    `json:"description,omitempty"`
	KBONumber   string    `json:"kboNumber,omitempty"`
	Validity    *Validity `json:"validity,omitempty"`
	Contacts    []Contact `json:"contacts,omitempty"`
}

// Validity is the period an organization record is valid for. Dates are
// ISO 8601 date strings; an open end means the record is still active.
type Validity struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Contact is a single contact channel. ContactTypeName drives which RDF
// property the value is published under.
type Contact struct {
	ContactTypeName string `json:"contactTypeName,omitempty"`
	Value           string `json:"value"`
}

// Stats summarizes one conversion run.
type Stats struct {
	Total       int
	Valid       int
	Written     int
	Overwritten int
}
