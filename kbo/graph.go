package kbo

import (
	"github.com/Informatievlaanderen/OSLO-codelijsten/rdf"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/w3c"
)

// Concept path segments of the company code lists. The Dutch variants are
// what the establishment records have always been published under; both
// spellings are kept to stay byte-compatible with the existing datasets.
const (
	entityContactCompany       = "ENT"
	entityContactEstablishment = "EST"
	entityContactBranch        = "BRA"

	addressTypeCompany       = "REGO"
	addressTypeEstablishment = "BAET"
	addressTypeBranch        = "ABBR"
)

// AddCompany adds all triples representing a company and its owned
// sub-structures to the store. The store is never cleared or replaced, so
// multiple entities can be merged into one store before serialization.
func AddCompany(store *rdf.Store, c Company) {
	addCompanyResource(store, c)
	addEstablishments(store, c)
	addBranches(store, c)
}

func addCompanyResource(store *rdf.Store, c Company) {
	company := rdf.NewIRI(oslo.CompanyURI(c.Identifier))

	store.AddAll(
		rdf.NewQuad(company, w3c.RdfType, rdf.NewIRI(w3c.RegOrgRegisteredOrganization)),
		rdf.NewQuad(company, oslo.Rechtspersoonlijkheid, rdf.NewIRI(oslo.ConceptURI("TypeOfEnterprise", c.TypeOfEnterprise))),
		rdf.NewQuad(company, oslo.Rechtstoestand, rdf.NewIRI(oslo.ConceptURI("JuridicalSituation", c.JuridicalSituation))),
		rdf.NewQuad(company, oslo.Rechtsvorm, rdf.NewIRI(oslo.ConceptURI("JuridicalForm", c.JuridicalForm))),
		rdf.NewQuad(company, w3c.DctCreated, rdf.NewTypedLiteral(c.StartDate, w3c.XsdDate)),
	)

	addRegistration(store, company, rdf.BlankID("registration_company", c.Identifier), c.Identifier, c.StartDate)
	addCompanyActivities(store, company, c.Activities)
	addContactPoint(store, company, rdf.BlankID("contact", c.Identifier),
		c.MainContact, c.MainAddress, entityContactCompany, addressTypeCompany)
	addNames(store, company, c.Names)
}

// addNames emits one legal-name literal per denomination, tagged with the
// mapped language when the code is known.
func addNames(store *rdf.Store, subject rdf.Term, names []Name) {
	for _, name := range names {
		store.Add(rdf.NewQuad(subject, w3c.RegOrgLegalName, rdf.NewLangLiteral(name.Value, LanguageTag(name.Language))))
	}
}

// addRegistration emits the fixed adms:Identifier block shared by company,
// establishment and branch registrations. For sites, startDate is the parent
// company's start date: the registers have always published it that way, so
// the asymmetry is preserved here.
func addRegistration(store *rdf.Store, parent rdf.Term, blankID, identifier, startDate string) {
	registration := rdf.NewBlank(blankID)

	store.AddAll(
		rdf.NewQuad(parent, w3c.RegOrgRegistration, registration),
		rdf.NewQuad(registration, w3c.RdfType, rdf.NewIRI(w3c.AdmsIdentifier)),
		rdf.NewQuad(registration, w3c.SkosNotation, rdf.NewLiteral(identifier)),
		rdf.NewQuad(registration, w3c.DctCreator, rdf.NewIRI(oslo.KBORegistrar)),
		rdf.NewQuad(registration, w3c.AdmsSchemaAgency, rdf.NewLangLiteral(oslo.KBOSchemaAgency, "nl")),
		rdf.NewQuad(registration, w3c.DctIssued, rdf.NewTypedLiteral(startDate, w3c.XsdDate)),
	)
}

// addContactPoint emits the schema:ContactPoint block of an entity. An
// entity whose contact and address are both empty emits no contact node at
// all; an empty structure must never produce an empty RDF node.
func addContactPoint(store *rdf.Store, parent rdf.Term, blankID string, contact Contact, address Address, entityContactType, addressType string) {
	if contact.IsEmpty() && address.IsEmpty() {
		return
	}

	contactNode := rdf.NewBlank(blankID)

	store.AddAll(
		rdf.NewQuad(parent, w3c.SchemaContactInfo, contactNode),
		rdf.NewQuad(contactNode, w3c.RdfType, rdf.NewIRI(w3c.SchemaContactPoint)),
		rdf.NewQuad(contactNode, w3c.DctType, rdf.NewIRI(oslo.ConceptURI("EntityContact", entityContactType))),
	)

	contactFields := []struct {
		value     string
		predicate string
	}{
		{contact.Email, w3c.SchemaEmail},
		{contact.Telephone, w3c.SchemaTelephone},
		{contact.Fax, w3c.SchemaFaxNumber},
		{contact.Homepage, w3c.FoafHomepage},
	}
	for _, f := range contactFields {
		if f.value != "" {
			store.Add(rdf.NewQuad(contactNode, f.predicate, rdf.NewLiteral(f.value)))
		}
	}

	if !address.IsEmpty() {
		addAddress(store, contactNode, rdf.BlankID("address", blankID), address, addressType)
	}
}

// addAddress emits the locn:Address block under a contact node.
func addAddress(store *rdf.Store, parent rdf.Term, blankID string, address Address, addressType string) {
	addressNode := rdf.NewBlank(blankID)

	store.AddAll(
		rdf.NewQuad(parent, w3c.LocnAddressProp, addressNode),
		rdf.NewQuad(addressNode, w3c.RdfType, rdf.NewIRI(w3c.LocnAddress)),
		rdf.NewQuad(parent, w3c.DctType, rdf.NewIRI(oslo.ConceptURI("TypeOfAddress", addressType))),
	)

	literalFields := []struct {
		value     string
		predicate string
		lang      string
	}{
		{address.StreetNL, w3c.LocnThoroughfare, "nl"},
		{address.StreetFR, w3c.LocnThoroughfare, "fr"},
		{address.HouseNumber, w3c.RdfsLabel, ""},
		{address.Box, oslo.Busnummer, ""},
		{address.Zipcode, w3c.LocnPostCode, ""},
		{address.MunicipalityNL, oslo.Gemeentenaam, "nl"},
		{address.MunicipalityFR, oslo.Gemeentenaam, "fr"},
		{address.CountryNL, oslo.Land, "nl"},
		{address.CountryFR, oslo.Land, "fr"},
	}
	for _, f := range literalFields {
		if f.value == "" {
			continue
		}
		store.Add(rdf.NewQuad(addressNode, f.predicate, rdf.NewLangLiteral(f.value, f.lang)))
	}
}

func addCompanyActivities(store *rdf.Store, subject rdf.Term, activities []Activity) {
	for _, activity := range activities {
		store.AddAll(
			rdf.NewQuad(subject, w3c.RegOrgActivity, rdf.NewIRI(oslo.ConceptURI("ActivitityGroup", activity.Group))),
			rdf.NewQuad(subject, w3c.OrgClassification, rdf.NewIRI(oslo.ConceptURI("Classification", activity.Classification))),
		)
		addNaceActivity(store, subject, activity)
	}
}

// addNaceActivity links an activity to its NACE classification. The three
// version variants are mutually exclusive: 2003 stays a document-local blank
// node with no external link, 2008 and 2025 become named concepts under the
// belgif namespaces with broader links into the matching EU vocabulary.
func addNaceActivity(store *rdf.Store, subject rdf.Term, activity Activity) {
	switch activity.NaceVersion {
	case oslo.Nace2003:
		naceNode := rdf.NewBlank(rdf.BlankID("nace_2003", activity.NaceCode))
		store.AddAll(
			rdf.NewQuad(subject, w3c.RegOrgActivity, naceNode),
			rdf.NewQuad(naceNode, w3c.RdfType, rdf.NewIRI(w3c.SkosConcept)),
			rdf.NewQuad(naceNode, w3c.SkosDefinition, rdf.NewLangLiteral(activity.DescriptionNL, "nl")),
			rdf.NewQuad(naceNode, w3c.SkosDefinition, rdf.NewLangLiteral(activity.DescriptionFR, "fr")),
			rdf.NewQuad(naceNode, w3c.SkosPrefLabel, rdf.NewLiteral(activity.NaceCode)),
		)

	case oslo.Nace2008, oslo.Nace2025:
		base, europa, _ := activity.NaceVersion.Namespaces()
		addNaceRevision(store, subject, activity, base, europa)
	}
}

func addNaceRevision(store *rdf.Store, subject rdf.Term, activity Activity, base, europa string) {
	nace := rdf.NewIRI(base + "/" + activity.NaceCode)
	broader := broaderCode(activity.NaceCode)

	store.AddAll(
		rdf.NewQuad(subject, w3c.RegOrgActivity, nace),
		rdf.NewQuad(nace, w3c.RdfType, rdf.NewIRI(w3c.SkosConcept)),
		rdf.NewQuad(nace, w3c.SkosBroader, rdf.NewIRI(europa+"/"+broader)),
		rdf.NewQuad(nace, w3c.SkosBroader, rdf.NewIRI(base+"/"+broader)),
		rdf.NewQuad(nace, w3c.SkosDefinition, rdf.NewLangLiteral(activity.DescriptionNL, "nl")),
		rdf.NewQuad(nace, w3c.SkosDefinition, rdf.NewLangLiteral(activity.DescriptionFR, "fr")),
		rdf.NewQuad(nace, w3c.SkosPrefLabel, rdf.NewLiteral(activity.NaceCode)),
	)
}

// broaderCode strips the last character of a NACE code, yielding the code of
// the enclosing classification level.
func broaderCode(code string) string {
	if code == "" {
		return ""
	}
	return code[:len(code)-1]
}

func addEstablishments(store *rdf.Store, c Company) {
	company := rdf.NewIRI(oslo.CompanyURI(c.Identifier))

	for _, est := range c.Establishments {
		site := rdf.NewIRI(oslo.EstablishmentURI(est.Identifier))

		store.AddAll(
			rdf.NewQuad(company, w3c.OrgHasRegisteredSite, site),
			rdf.NewQuad(site, w3c.RdfType, rdf.NewIRI(w3c.OrgSite)),
			rdf.NewQuad(site, w3c.DctCreated, rdf.NewTypedLiteral(est.StartDate, w3c.XsdDate)),
		)

		addRegistration(store, site, rdf.BlankID("registration_establishment", est.Identifier), est.Identifier, c.StartDate)
		addEstablishmentActivities(store, site, est.Activities)
		addContactPoint(store, site, rdf.BlankID("contact", est.Identifier),
			est.Contact, est.Address, entityContactEstablishment, addressTypeEstablishment)
		addEstablishmentNames(store, site, est.Names)
	}
}

func addEstablishmentActivities(store *rdf.Store, subject rdf.Term, activities []Activity) {
	for _, activity := range activities {
		store.AddAll(
			rdf.NewQuad(subject, w3c.RegOrgActivity, rdf.NewIRI(oslo.ConceptURI("ActiviteitGroep", activity.Group))),
			rdf.NewQuad(subject, w3c.RegOrgActivity, rdf.NewIRI(oslo.ConceptURI("NACE/"+activity.RawVersion, activity.NaceCode))),
			rdf.NewQuad(subject, w3c.OrgClassification, rdf.NewIRI(oslo.ConceptURI("Classificatie", activity.Classification))),
		)
	}
}

// addEstablishmentNames emits legal names for the four registered
// denomination types only; commercial names of sites are not published.
func addEstablishmentNames(store *rdf.Store, subject rdf.Term, names []Name) {
	for _, name := range names {
		switch name.Type {
		case "001", "002", "003", "004":
			store.Add(rdf.NewQuad(subject, w3c.RegOrgLegalName, rdf.NewLangLiteral(name.Value, LanguageTag(name.Language))))
		}
	}
}

func addBranches(store *rdf.Store, c Company) {
	company := rdf.NewIRI(oslo.CompanyURI(c.Identifier))

	for _, branch := range c.Branches {
		site := rdf.NewIRI(oslo.BranchURI(branch.Identifier))

		store.AddAll(
			rdf.NewQuad(company, w3c.OrgHasRegisteredSite, site),
			rdf.NewQuad(site, w3c.RdfType, rdf.NewIRI(w3c.OrgSite)),
			rdf.NewQuad(site, w3c.DctCreated, rdf.NewTypedLiteral(branch.StartDate, w3c.XsdDate)),
		)

		addRegistration(store, site, rdf.BlankID("registration_branch", branch.Identifier), branch.Identifier, c.StartDate)

		// A branch has no contact channels; its address hangs off an
		// address-only contact node whose address blank is labeled by the
		// branch identifier alone.
		if !branch.Address.IsEmpty() {
			contactNode := rdf.NewBlank(rdf.BlankID("contact", branch.Identifier))
			store.AddAll(
				rdf.NewQuad(site, w3c.SchemaContactInfo, contactNode),
				rdf.NewQuad(contactNode, w3c.RdfType, rdf.NewIRI(w3c.SchemaContactPoint)),
				rdf.NewQuad(contactNode, w3c.DctType, rdf.NewIRI(oslo.ConceptURI("EntityContact", entityContactBranch))),
			)
			addAddress(store, contactNode, rdf.BlankID("address", branch.Identifier), branch.Address, addressTypeBranch)
		}
	}
}

// AddCodes imports the code-reference table as SKOS concepts, one scheme per
// category.
func AddCodes(store *rdf.Store, codes []Code) {
	for _, code := range codes {
		scheme := rdf.NewIRI(oslo.ConceptSchemeURI(code.Category))
		concept := rdf.NewIRI(oslo.ConceptURI(code.Category, code.Code))

		store.AddAll(
			rdf.NewQuad(concept, w3c.RdfType, rdf.NewIRI(w3c.SkosConcept)),
			rdf.NewQuad(concept, w3c.SkosPrefLabel, rdf.NewLiteral(code.Code)),
			rdf.NewQuad(concept, w3c.SkosDefinition, rdf.NewLangLiteral(code.Description, LanguageTag(code.Language))),
			rdf.NewQuad(concept, w3c.SkosInScheme, scheme),
			rdf.NewQuad(concept, w3c.SkosTopConceptOf, scheme),
		)
	}
}
