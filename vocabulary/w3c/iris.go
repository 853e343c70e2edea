package w3c

// Namespace IRIs for the W3C and related standard vocabularies used by the
// converters and the serializers.
const (
	RDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	XSD     = "http://www.w3.org/2001/XMLSchema#"
	SKOS    = "http://www.w3.org/2004/02/skos/core#"
	DCTerms = "http://purl.org/dc/terms/"
	ADMS    = "http://www.w3.org/ns/adms#"
	FOAF    = "http://xmlns.com/foaf/0.1/"
	Schema  = "https://schema.org/"
	LOCN    = "http://www.w3.org/ns/locn#"
	Org     = "http://www.w3.org/ns/org#"
	RegOrg  = "http://www.w3.org/ns/regorg#"
)

// RDF core terms.
const (
	RdfType = RDF + "type"

	RdfsLabel   = RDFS + "label"
	RdfsSeeAlso = RDFS + "seeAlso"
	RdfsComment = RDFS + "comment"

	XsdDate = XSD + "date"
)

// SKOS terms.
const (
	SkosConcept       = SKOS + "Concept"
	SkosConceptScheme = SKOS + "ConceptScheme"
	SkosPrefLabel     = SKOS + "prefLabel"
	SkosAltLabel      = SKOS + "altLabel"
	SkosDefinition    = SKOS + "definition"
	SkosNotation      = SKOS + "notation"
	SkosBroader       = SKOS + "broader"
	SkosNarrower      = SKOS + "narrower"
	SkosInScheme      = SKOS + "inScheme"
	SkosTopConceptOf  = SKOS + "topConceptOf"
)

// Dublin Core terms.
const (
	DctCreated     = DCTerms + "created"
	DctCreator     = DCTerms + "creator"
	DctIssued      = DCTerms + "issued"
	DctType        = DCTerms + "type"
	DctDescription = DCTerms + "description"
)

// ADMS identifier terms.
const (
	AdmsIdentifier   = ADMS + "Identifier"
	AdmsSchemaAgency = ADMS + "schemaAgency"
	AdmsStatus       = ADMS + "status"
)

// Organization ontology terms. The regorg properties carry the legacy
// "reorg" prefix in serialized output to stay byte-compatible with the
// published datasets.
const (
	OrgSite              = Org + "Site"
	OrgClassification    = Org + "classification"
	OrgHasRegisteredSite = Org + "hasRegisteredSite"
	OrgOrganization      = Org + "Organization"

	RegOrgRegisteredOrganization = RegOrg + "RegisteredOrganization"
	RegOrgRegistration           = RegOrg + "registration"
	RegOrgActivity               = RegOrg + "orgActivity"
	RegOrgLegalName              = RegOrg + "legalName"
)

// schema.org contact terms. The lowercase "contactinfo" property is what the
// published KBO datasets use; the list endpoints use contactPoint.
const (
	SchemaContactInfo  = Schema + "contactinfo"
	SchemaContactPoint = Schema + "ContactPoint"
	SchemaEmail        = Schema + "email"
	SchemaTelephone    = Schema + "telephone"
	SchemaFaxNumber    = Schema + "faxNumber"
	SchemaURL          = Schema + "url"
	SchemaContactType  = Schema + "contactType"
)

// FOAF terms.
const (
	FoafHomepage = FOAF + "homepage"
	FoafDocument = FOAF + "Document"
)

// LOCN address terms.
const (
	LocnAddress      = LOCN + "Address"
	LocnAddressProp  = LOCN + "address"
	LocnThoroughfare = LOCN + "thoroughfare"
	LocnPostCode     = LOCN + "postCode"
)
