package server

// ConceptRef is a compact reference to a concept, used for top concepts and
// broader/narrower links.
type ConceptRef struct {
	ID         string `json:"id"`
	URI        string `json:"uri"`
	Label      string `json:"label"`
	Definition string `json:"definition,omitempty"`
	Notation   string `json:"notation,omitempty"`
	Source     string `json:"source"`
}

// ConceptScheme is the JSON projection of a concept scheme.
type ConceptScheme struct {
	ID          string       `json:"id"`
	URI         string       `json:"uri"`
	Label       string       `json:"label"`
	Definition  string       `json:"definition,omitempty"`
	Status      string       `json:"status,omitempty"`
	Dataset     string       `json:"dataset,omitempty"`
	TopConcepts []ConceptRef `json:"topConcepts"`
	Source      string       `json:"source"`
}

// SchemeRef is a compact reference to a scheme a concept belongs to.
type SchemeRef struct {
	ID         string `json:"id"`
	URI        string `json:"uri"`
	Label      string `json:"label"`
	Definition string `json:"definition,omitempty"`
	Source     string `json:"source"`
}

// Concept is the JSON projection of a single concept.
type Concept struct {
	ID           string       `json:"id"`
	URI          string       `json:"uri"`
	Label        string       `json:"label"`
	Definition   string       `json:"definition,omitempty"`
	Notation     string       `json:"notation,omitempty"`
	Status       string       `json:"status,omitempty"`
	Dataset      string       `json:"dataset"`
	InScheme     []SchemeRef  `json:"inScheme"`
	TopConceptOf []SchemeRef  `json:"topConceptOf"`
	Broader      []ConceptRef `json:"broader"`
	Narrower     []ConceptRef `json:"narrower"`
	Source       string       `json:"source"`
}

// License is the JSON projection of a Flemish model license.
type License struct {
	ID          string   `json:"id"`
	URI         string   `json:"uri"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        []string `json:"type"`
	SeeAlso     []string `json:"seeAlso"`
	Requires    []string `json:"requires"`
	VersionInfo string   `json:"versionInfo,omitempty"`
	SameAs      string   `json:"sameAs,omitempty"`
	Source      string   `json:"source"`
}

// ContactPoint is the JSON projection of an organization contact point.
type ContactPoint struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Fax       string `json:"fax,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Organization is the JSON projection of a government organization.
type Organization struct {
	ID              string         `json:"id"`
	URI             string         `json:"uri"`
	Name            string         `json:"name"`
	AlternativeName string         `json:"alternativeName,omitempty"`
	Description     string         `json:"description,omitempty"`
	Status          string         `json:"status,omitempty"`
	FoundingDate    string         `json:"foundingDate,omitempty"`
	Website         string         `json:"website,omitempty"`
	SeeAlso         []string       `json:"seeAlso,omitempty"`
	ContactPoints   []ContactPoint `json:"contactPoints"`
	Source          string         `json:"source"`
}

// CompanyRegistration is the registration identifier block of a company or
// one of its sites.
type CompanyRegistration struct {
	Notation     string `json:"notation,omitempty"`
	Creator      string `json:"creator,omitempty"`
	SchemaAgency string `json:"schemaAgency,omitempty"`
	Issued       string `json:"issued,omitempty"`
}

// CompanyAddress is the flattened address of a company contact point.
type CompanyAddress struct {
	Thoroughfare string `json:"thoroughfare,omitempty"`
	PostCode     string `json:"postCode,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Country      string `json:"country,omitempty"`
}

// CompanyContactPoint is the JSON projection of a company contact point.
type CompanyContactPoint struct {
	ID        string          `json:"id"`
	Type      []string        `json:"type,omitempty"`
	Email     string          `json:"email,omitempty"`
	Telephone string          `json:"telephone,omitempty"`
	Address   *CompanyAddress `json:"address,omitempty"`
}

// CompanySite is a registered site of a company.
type CompanySite struct {
	URI          string               `json:"uri"`
	Created      string               `json:"created,omitempty"`
	Registration *CompanyRegistration `json:"registration,omitempty"`
}

// Company is the JSON projection of a registered enterprise.
type Company struct {
	ID                    string                `json:"id"`
	URI                   string                `json:"uri,omitempty"`
	LegalName             []string              `json:"legalName,omitempty"`
	Rechtspersoonlijkheid string                `json:"rechtspersoonlijkheid,omitempty"`
	Rechtstoestand        string                `json:"rechtstoestand,omitempty"`
	Rechtsvorm            string                `json:"rechtsvorm,omitempty"`
	Created               string                `json:"created,omitempty"`
	ContactPoints         []CompanyContactPoint `json:"contactPoints,omitempty"`
	Registration          *CompanyRegistration  `json:"registration,omitempty"`
	RegisteredSites       []CompanySite         `json:"registeredSites,omitempty"`
	Source                string                `json:"source"`
}
