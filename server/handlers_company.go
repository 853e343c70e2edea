package server

import (
	"net/http"

	"github.com/Informatievlaanderen/OSLO-codelijsten/sparql"
)

// handleCompany serves one registered enterprise from its converted Turtle
// document.
func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	neg := negotiate(r.PathValue("slug"), r)
	sourceURL := s.cfg.Sources.CompanyTTLURL + "/" + neg.Slug + ".ttl"

	if neg.RDF {
		doc, err := s.serializeSource(r.Context(), sourceURL, neg.Format)
		if err != nil {
			s.logger.Error("company serialization failed",
				"company", neg.Slug, "error", err)
			http.Error(w, "Error fetching company", http.StatusInternalServerError)
			return
		}
		writeRDF(w, neg.Format, doc)
		return
	}

	bindings, err := s.engine.QueryBindings(r.Context(), sparql.CompanyByIDQuery(neg.Slug), []string{sourceURL})
	if err != nil {
		s.logger.Error("company query failed", "company", neg.Slug, "error", err)
		http.Error(w, "Error fetching company", http.StatusInternalServerError)
		return
	}
	if len(bindings) == 0 {
		http.Error(w, "Company not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, buildCompany(neg.Slug, sourceURL, bindings))
}

// buildCompany collapses the flattened query rows into one company
// projection. Rows repeat per legal name, contact type and site; scalar
// fields keep the first bound value.
func buildCompany(id, sourceURL string, bindings []sparql.Binding) Company {
	company := Company{ID: id, Source: sourceURL}

	var legalNames, contactTypes []string
	var siteOrder []string
	sites := make(map[string]CompanySite)
	registration := CompanyRegistration{}
	contact := CompanyContactPoint{ID: contactID(0)}
	address := CompanyAddress{}

	first := func(current string, b sparql.Binding, name string) string {
		if current != "" {
			return current
		}
		return value(b, name)
	}

	for _, b := range bindings {
		company.URI = first(company.URI, b, "organization")
		company.Rechtspersoonlijkheid = first(company.Rechtspersoonlijkheid, b, "rechtspersoonlijkheid")
		company.Rechtstoestand = first(company.Rechtstoestand, b, "rechtstoestand")
		company.Rechtsvorm = first(company.Rechtsvorm, b, "rechtsvorm")
		company.Created = first(company.Created, b, "issued")

		if name := value(b, "legalName"); name != "" && !contains(legalNames, name) {
			legalNames = append(legalNames, name)
		}
		if ct := value(b, "contactType"); ct != "" && !contains(contactTypes, ct) {
			contactTypes = append(contactTypes, ct)
		}
		contact.Email = first(contact.Email, b, "contactEmail")
		contact.Telephone = first(contact.Telephone, b, "contactTelephone")
		address.Thoroughfare = first(address.Thoroughfare, b, "addressThoroughfare")
		address.PostCode = first(address.PostCode, b, "addressPostCode")
		address.Municipality = first(address.Municipality, b, "addressMunicipality")
		address.Country = first(address.Country, b, "addressCountry")

		registration.Notation = first(registration.Notation, b, "registrationNotation")
		registration.Creator = first(registration.Creator, b, "registrationCreator")
		registration.SchemaAgency = first(registration.SchemaAgency, b, "registrationSchemaAgency")
		registration.Issued = first(registration.Issued, b, "registrationIssued")

		siteURI := value(b, "site")
		if siteURI == "" {
			continue
		}
		if _, seen := sites[siteURI]; seen {
			continue
		}
		site := CompanySite{URI: siteURI, Created: value(b, "siteCreated")}
		if notation := value(b, "siteRegNotation"); notation != "" {
			site.Registration = &CompanyRegistration{
				Notation:     notation,
				Creator:      value(b, "siteRegCreator"),
				SchemaAgency: value(b, "siteRegSchemaAgency"),
				Issued:       value(b, "siteRegIssued"),
			}
		}
		sites[siteURI] = site
		siteOrder = append(siteOrder, siteURI)
	}

	company.LegalName = legalNames

	if address != (CompanyAddress{}) {
		contact.Address = &address
	}
	contact.Type = contactTypes
	if contact.Email != "" || contact.Telephone != "" ||
		contact.Address != nil || len(contact.Type) > 0 {
		company.ContactPoints = []CompanyContactPoint{contact}
	}

	if registration != (CompanyRegistration{}) {
		company.Registration = &registration
	}

	for _, uri := range siteOrder {
		company.RegisteredSites = append(company.RegisteredSites, sites[uri])
	}
	return company
}
