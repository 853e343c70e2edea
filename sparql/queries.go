package sparql

import "fmt"

// ConceptSchemeQuery selects every concept scheme of a source together with
// its optional label, definition, status and dataset membership.
const ConceptSchemeQuery = `
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX adms: <https://www.w3.org/ns/adms#>
PREFIX dct: <http://purl.org/dc/terms/>

SELECT ?scheme ?label ?definition ?status ?dataset WHERE {
  ?scheme a skos:ConceptScheme .
  OPTIONAL { ?scheme skos:prefLabel ?label . }
  OPTIONAL { ?scheme skos:definition ?definition . }
  OPTIONAL { ?scheme adms:status ?status . }
  OPTIONAL { ?scheme dct:isPartOf ?dataset . }
}`

// ConceptQuery selects every concept of a source with its optional
// annotations and scheme links. Callers match the wanted concept by the last
// path segment of ?concept.
const ConceptQuery = `
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX adms: <https://www.w3.org/ns/adms#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>

SELECT ?concept ?label ?definition ?notation ?status ?inScheme ?topConceptOf ?broader ?narrower WHERE {
  ?concept a skos:Concept .
  OPTIONAL { ?concept skos:prefLabel ?label . }
  OPTIONAL { ?concept skos:definition ?definition . }
  OPTIONAL { ?concept skos:notation ?notation . }
  OPTIONAL { ?concept adms:status ?status . }
  OPTIONAL { ?concept skos:inScheme ?inScheme . }
  OPTIONAL { ?concept skos:topConceptOf ?topConceptOf . }
  OPTIONAL { ?concept skos:broader ?broader . }
  OPTIONAL { ?concept skos:narrower ?narrower . }
}`

// TopConceptQuery selects the top concepts of a scheme.
func TopConceptQuery(schemeURI string) string {
	return fmt.Sprintf(`
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>

SELECT ?concept ?label ?definition ?notation WHERE {
  ?concept skos:topConceptOf <%s> .
  OPTIONAL { ?concept skos:prefLabel ?label . }
  OPTIONAL { ?concept skos:definition ?definition . }
  OPTIONAL { ?concept skos:notation ?notation . }
}`, schemeURI)
}

// RelatedConceptQuery selects the concepts a concept relates to through the
// given SKOS relation, broader or narrower.
func RelatedConceptQuery(conceptURI, relation string) string {
	return fmt.Sprintf(`
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>

SELECT ?relatedConcept ?label ?definition ?notation WHERE {
  <%s> skos:%s ?relatedConcept .
  OPTIONAL { ?relatedConcept skos:prefLabel ?label . }
  OPTIONAL { ?relatedConcept skos:definition ?definition . }
  OPTIONAL { ?relatedConcept skos:notation ?notation . }
}`, conceptURI, relation)
}

// SchemeQuery selects the label and optional definition of one scheme.
func SchemeQuery(schemeURI string) string {
	return fmt.Sprintf(`
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>

SELECT ?label ?definition WHERE {
  <%[1]s> skos:prefLabel ?label .
  OPTIONAL { <%[1]s> skos:definition ?definition . }
}`, schemeURI)
}

// LicenseQuery selects every model license of a source with its optional
// annotations. A license appears once per type/seeAlso/requires combination;
// callers group the rows by ?license.
const LicenseQuery = `
PREFIX dct: <http://purl.org/dc/terms/>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX cc: <http://creativecommons.org/ns#>

SELECT ?license ?type ?title ?description ?versionInfo ?sameAs ?seeAlso ?requires WHERE {
  ?license a ?type .
  OPTIONAL { ?license dct:title ?title . }
  OPTIONAL { ?license dct:description ?description . }
  OPTIONAL { ?license owl:versionInfo ?versionInfo . }
  OPTIONAL { ?license owl:sameAs ?sameAs . }
  OPTIONAL { ?license rdfs:seeAlso ?seeAlso . }
  OPTIONAL { ?license cc:requires ?requires . }
}`

// LicenseByIDQuery selects the rows of one license, matched on the trailing
// path of its URI. The id may contain a version segment.
func LicenseByIDQuery(id string) string {
	return fmt.Sprintf(`
PREFIX dct: <http://purl.org/dc/terms/>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX cc: <http://creativecommons.org/ns#>

SELECT ?license ?type ?title ?description ?versionInfo ?sameAs ?seeAlso ?requires WHERE {
  ?license a ?type .
  FILTER(STRENDS(STR(?license), "/%s"))
  OPTIONAL { ?license dct:title ?title . }
  OPTIONAL { ?license dct:description ?description . }
  OPTIONAL { ?license owl:versionInfo ?versionInfo . }
  OPTIONAL { ?license owl:sameAs ?sameAs . }
  OPTIONAL { ?license rdfs:seeAlso ?seeAlso . }
  OPTIONAL { ?license cc:requires ?requires . }
}`, id)
}

// OrganizationByIDQuery selects one organization, matched on the trailing
// path segment of its URI.
func OrganizationByIDQuery(id string) string {
	return fmt.Sprintf(`
PREFIX org: <http://www.w3.org/ns/org#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX adms: <http://www.w3.org/ns/adms#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX foaf: <http://xmlns.com/foaf/0.1/>

SELECT ?org ?name ?altLabel ?description ?status ?issued ?homepage ?seeAlso WHERE {
  ?org a org:Organization .
  FILTER(STRENDS(STR(?org), "/%s"))
  OPTIONAL { ?org skos:prefLabel ?name . }
  OPTIONAL { ?org skos:altLabel ?altLabel . }
  OPTIONAL { ?org dcterms:description ?description . }
  OPTIONAL { ?org adms:status ?status . }
  OPTIONAL { ?org adms:identifier/dcterms:issued ?issued . }
  OPTIONAL { ?org foaf:homepage ?homepage . }
  OPTIONAL { ?org rdfs:seeAlso ?seeAlso . }
}`, id)
}

// AllOrganizationsQuery selects every organization of a source; callers
// group the rows by ?org to collect the seeAlso links.
const AllOrganizationsQuery = `
PREFIX org: <http://www.w3.org/ns/org#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX adms: <http://www.w3.org/ns/adms#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX foaf: <http://xmlns.com/foaf/0.1/>

SELECT ?org ?name ?altLabel ?description ?status ?issued ?homepage ?seeAlso WHERE {
  ?org a org:Organization .
  OPTIONAL { ?org skos:prefLabel ?name . }
  OPTIONAL { ?org skos:altLabel ?altLabel . }
  OPTIONAL { ?org dcterms:description ?description . }
  OPTIONAL { ?org adms:status ?status . }
  OPTIONAL { ?org adms:identifier/dcterms:issued ?issued . }
  OPTIONAL { ?org foaf:homepage ?homepage . }
  OPTIONAL { ?org rdfs:seeAlso ?seeAlso . }
}`

// ContactPointsQuery selects the contact points of an organization.
func ContactPointsQuery(orgURI string) string {
	return fmt.Sprintf(`
PREFIX schema: <https://schema.org/>

SELECT ?contact ?label ?email ?telephone ?faxNumber ?url WHERE {
  <%s> schema:contactPoint ?contact .
  OPTIONAL { ?contact schema:contactType ?label . }
  OPTIONAL { ?contact schema:email ?email . }
  OPTIONAL { ?contact schema:telephone ?telephone . }
  OPTIONAL { ?contact schema:faxNumber ?faxNumber . }
  OPTIONAL { ?contact schema:url ?url . }
}`, orgURI)
}

// CompanyByIDQuery selects the flattened rows of one registered enterprise,
// including its registration identifier, contact details and registered
// sites. Callers group and dedupe the rows.
func CompanyByIDQuery(id string) string {
	return fmt.Sprintf(`
PREFIX regorg: <http://www.w3.org/ns/regorg#>
PREFIX org: <http://www.w3.org/ns/org#>
PREFIX organisatie: <https://data.vlaanderen.be/ns/organisatie#>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX adms: <http://www.w3.org/ns/adms#>
PREFIX schema: <https://schema.org/>
PREFIX locn: <http://www.w3.org/ns/locn#>
PREFIX adres: <https://data.vlaanderen.be/ns/adres#>

SELECT ?organization ?legalName ?rechtspersoonlijkheid ?rechtstoestand ?rechtsvorm ?issued
       ?contactType ?contactEmail ?contactTelephone
       ?addressThoroughfare ?addressPostCode ?addressMunicipality ?addressCountry
       ?registrationNotation ?registrationCreator ?registrationSchemaAgency ?registrationIssued
       ?site ?siteCreated ?siteRegNotation ?siteRegCreator ?siteRegSchemaAgency ?siteRegIssued WHERE {
  ?organization a regorg:RegisteredOrganization .
  FILTER(STRENDS(STR(?organization), "/%s"))
  OPTIONAL { ?organization regorg:legalName ?legalName . }
  OPTIONAL { ?organization organisatie:rechtspersoonlijkheid ?rechtspersoonlijkheid . }
  OPTIONAL { ?organization organisatie:rechtstoestand ?rechtstoestand . }
  OPTIONAL { ?organization organisatie:rechtsvorm ?rechtsvorm . }
  OPTIONAL { ?organization dcterms:created ?issued . }
  OPTIONAL {
    ?organization schema:contactinfo ?contact .
    OPTIONAL { ?contact dcterms:type ?contactType . }
    OPTIONAL { ?contact schema:email ?contactEmail . }
    OPTIONAL { ?contact schema:telephone ?contactTelephone . }
    OPTIONAL {
      ?contact locn:address ?address .
      OPTIONAL { ?address locn:thoroughfare ?addressThoroughfare . }
      OPTIONAL { ?address locn:postCode ?addressPostCode . }
      OPTIONAL { ?address adres:Gemeentenaam ?addressMunicipality . }
      OPTIONAL { ?address adres:land ?addressCountry . }
    }
  }
  OPTIONAL {
    ?organization regorg:registration ?registration .
    OPTIONAL { ?registration skos:notation ?registrationNotation . }
    OPTIONAL { ?registration dcterms:creator ?registrationCreator . }
    OPTIONAL { ?registration adms:schemaAgency ?registrationSchemaAgency . }
    OPTIONAL { ?registration dcterms:issued ?registrationIssued . }
  }
  OPTIONAL {
    ?organization org:hasRegisteredSite ?site .
    OPTIONAL { ?site dcterms:created ?siteCreated . }
    OPTIONAL {
      ?site regorg:registration ?siteReg .
      OPTIONAL { ?siteReg skos:notation ?siteRegNotation . }
      OPTIONAL { ?siteReg dcterms:creator ?siteRegCreator . }
      OPTIONAL { ?siteReg adms:schemaAgency ?siteRegSchemaAgency . }
      OPTIONAL { ?siteReg dcterms:issued ?siteRegIssued . }
    }
  }
}`, id)
}

// ConstructConceptQuery builds the subgraph of the concept whose URI ends in
// the given slug.
func ConstructConceptQuery(slug string) string {
	return fmt.Sprintf(`
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX adms: <https://www.w3.org/ns/adms#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>

CONSTRUCT {
  ?concept ?p ?o .
} WHERE {
  ?concept a skos:Concept .
  FILTER(STRENDS(STR(?concept), "/%s"))
  ?concept ?p ?o .
}`, slug)
}

// ConstructAllQuery copies every triple of the scoped sources.
const ConstructAllQuery = `
CONSTRUCT { ?s ?p ?o }
WHERE { ?s ?p ?o }`
