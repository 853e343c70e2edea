package oslo

// BaseURI is the root of all data.vlaanderen.be identifiers.
const BaseURI = "https://data.vlaanderen.be"

// Flemish OSLO vocabulary namespaces.
const (
	Organisatie = BaseURI + "/ns/organisatie#"
	Adres       = BaseURI + "/ns/adres#"
)

// Organisatie ontology terms.
const (
	Rechtspersoonlijkheid = Organisatie + "rechtspersoonlijkheid"
	Rechtstoestand        = Organisatie + "rechtstoestand"
	Rechtsvorm            = Organisatie + "rechtsvorm"
)

// Adres ontology terms.
const (
	Busnummer    = Adres + "busnummer"
	Gemeentenaam = Adres + "Gemeentenaam"
	Land         = Adres + "land"
)

// Issuing authorities for adms:Identifier blocks.
const (
	// KBORegistrar is the organization URI of the Kruispuntbank van
	// Ondernemingen, creator of enterprise registration identifiers.
	KBORegistrar = BaseURI + "/id/organisatie/OVO027341"

	// KBOSchemaAgency is the Dutch display name of the KBO register.
	KBOSchemaAgency = "Kruispuntbank van Ondernemingen (KBO)"

	// OVORegistrar issues OVO numbers (Digitaal Vlaanderen).
	OVORegistrar = BaseURI + "/id/organisatie/OVO002949"

	// KBONumberRegistrar issues KBO numbers on organization records.
	KBONumberRegistrar = BaseURI + "/id/organisatie/OVO002734"
)

// CompanyURI returns the identifier URI of a registered enterprise.
func CompanyURI(identifier string) string {
	return BaseURI + "/id/onderneming/" + identifier
}

// EstablishmentURI returns the identifier URI of an establishment.
func EstablishmentURI(identifier string) string {
	return BaseURI + "/id/vestiging/" + identifier
}

// BranchURI returns the identifier URI of a branch office.
func BranchURI(identifier string) string {
	return BaseURI + "/id/bijkantoor/" + identifier
}

// OrganizationURI returns the identifier URI of a government organization.
func OrganizationURI(ovoNumber string) string {
	return BaseURI + "/id/organisatie/" + ovoNumber
}

// OrganizationDocURI returns the document URI of a government organization.
func OrganizationDocURI(ovoNumber string) string {
	return BaseURI + "/doc/organisatie/" + ovoNumber
}

// ConceptURI returns the URI of a code-list concept within a category.
func ConceptURI(category, code string) string {
	return BaseURI + "/id/concept/" + category + "/" + code
}

// ConceptSchemeURI returns the URI of a code-list concept scheme.
func ConceptSchemeURI(category string) string {
	return BaseURI + "/id/conceptscheme/" + category
}

// LicenseURI returns the identifier URI of a Flemish model license.
func LicenseURI(id string) string {
	return BaseURI + "/id/licentie/" + id
}

// LicenseBase is the prefix stripped from license URIs to recover the slug.
// The version segment is part of the URI, so plain last-segment extraction
// would lose the license id.
const LicenseBase = BaseURI + "/id/licentie/"

// OrganisatieStatus returns a concept URI of the organisatiestatus code list.
func OrganisatieStatus(status string) string {
	return "http://data.vlaanderen.be/id/concept/organisatiestatus/" + status
}
