// Package kbo converts the open-data CSV extracts of the Kruispuntbank van
// Ondernemingen into RDF: a streaming tabular loader, a pure entity
// assembler, a graph builder, and the chunked batch converter that writes one
// Turtle file per enterprise.
package kbo

import "github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"

// Company is a registered enterprise assembled from the joined KBO tables.
// It is built once per conversion run and immutable afterwards.
type Company struct {
	Identifier         string
	Status             string
	JuridicalSituation string
	TypeOfEnterprise   string
	JuridicalForm      string
	JuridicalFormCAC   string
	StartDate          string
	Names              []Name
	Establishments     []Establishment
	Branches           []Branch
	Activities         []Activity
	MainContact        Contact
	MainAddress        Address
}

// Name is a denomination in one language. Type distinguishes legal,
// abbreviated and commercial names per the KBO type-of-denomination codes.
type Name struct {
	Type     string
	Language string
	Value    string
}

// Establishment is a registered site owned by a company.
type Establishment struct {
	Identifier string
	StartDate  string
	Names      []Name
	Activities []Activity
	Contact    Contact
	Address    Address
}

// Branch is a Belgian branch office of a (foreign) company. Branches carry
// an address but no own names or activities.
type Branch struct {
	Identifier string
	StartDate  string
	Address    Address
}

// Activity is an economic activity classified by a versioned NACE code. The
// bilingual descriptions are resolved from the code-reference table during
// assembly; they default to empty strings when the code table has no entry.
type Activity struct {
	Group       string
	NaceVersion oslo.NaceVersion

	// RawVersion is the version field as it appears in the activity table.
	// Establishment activity URIs interpolate it verbatim, parsed or not.
	RawVersion     string
	NaceCode       string
	Classification string
	DescriptionNL  string
	DescriptionFR  string
}

// Contact holds the contact channels of an entity.
type Contact struct {
	Email     string
	Telephone string
	Fax       string
	Homepage  string
}

// IsEmpty reports whether no contact channel is set. An empty contact emits
// no RDF at all.
func (c Contact) IsEmpty() bool {
	return c == Contact{}
}

// Address is a registered-office or site address.
type Address struct {
	CountryNL      string
	CountryFR      string
	Zipcode        string
	MunicipalityNL string
	MunicipalityFR string
	StreetNL       string
	StreetFR       string
	HouseNumber    string
	Box            string
	ExtraInfo      string
}

// IsEmpty reports whether no address field is set. An empty address emits no
// RDF at all.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// Code is one entry of the KBO code-reference table, imported as a SKOS
// concept within the scheme of its category.
type Code struct {
	Category    string
	Code        string
	Language    string
	Description string
}

// Stats summarizes one conversion run. Per-entity failures are counted, not
// fatal; only unreadable required inputs abort a run.
type Stats struct {
	Total       int
	Processed   int
	Errors      int
	Overwritten int
}

// languageTags maps KBO language codes and ISO abbreviations to RDF language
// tags. Unknown codes yield an untagged literal.
var languageTags = map[string]string{
	"1":  "fr",
	"2":  "nl",
	"3":  "de",
	"4":  "en",
	"FR": "fr",
	"NL": "nl",
	"DE": "de",
}

// LanguageTag returns the RDF language tag of a KBO language code, or the
// empty string when the code is unknown.
func LanguageTag(code string) string {
	return languageTags[code]
}
