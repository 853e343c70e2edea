package kbo

import "github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"

// Country literal fallbacks. Only the country fields are ever defaulted;
// every other empty source field stays absent.
const (
	countryFallbackNL = "België"
	countryFallbackFR = "Belgique"
)

// Address type codes of the address table.
const (
	addressTypeRegisteredOffice = "REGO"
)

// Assemble joins the chunk's lookup tables into a Company. It is a pure
// function of the lookups: a foreign key without matches yields an empty
// nested collection, never an error.
func Assemble(identifier string, lk *Lookups) (Company, bool) {
	row, ok := lk.Enterprises[identifier]
	if !ok {
		return Company{}, false
	}

	c := Company{
		Identifier:         row.Identifier,
		Status:             row.Status,
		JuridicalSituation: row.JuridicalSituation,
		TypeOfEnterprise:   row.TypeOfEnterprise,
		JuridicalForm:      row.JuridicalForm,
		JuridicalFormCAC:   row.JuridicalFormCAC,
		StartDate:          row.StartDate,
		Names:              assembleNames(lk, row.Identifier),
		Activities:         assembleActivities(lk, row.Identifier),
		MainContact:        assembleContact(lk, row.Identifier),
	}

	for _, site := range lk.Establishments[identifier] {
		c.Establishments = append(c.Establishments, Establishment{
			Identifier: site.Identifier,
			StartDate:  site.StartDate,
			Names:      assembleNames(lk, site.Identifier),
			Activities: assembleActivities(lk, site.Identifier),
			Contact:    assembleContact(lk, site.Identifier),
			Address:    assembleAddress(lk, site.Identifier, ""),
		})
	}

	for _, site := range lk.Branches[identifier] {
		c.Branches = append(c.Branches, Branch{
			Identifier: site.Identifier,
			StartDate:  site.StartDate,
			Address:    assembleAddress(lk, site.Identifier, ""),
		})
	}

	// The company's own address only counts when it is the registered
	// office; other address kinds belong to sites.
	c.MainAddress = assembleAddress(lk, identifier, addressTypeRegisteredOffice)

	return c, true
}

func assembleNames(lk *Lookups, id string) []Name {
	rows := lk.Denominations[id]
	if len(rows) == 0 {
		return nil
	}
	names := make([]Name, 0, len(rows))
	for _, r := range rows {
		names = append(names, Name{Type: r.Type, Language: r.Language, Value: r.Value})
	}
	return names
}

func assembleActivities(lk *Lookups, id string) []Activity {
	rows := lk.Activities[id]
	if len(rows) == 0 {
		return nil
	}
	activities := make([]Activity, 0, len(rows))
	for _, r := range rows {
		version := oslo.ParseNaceVersion(r.NaceVersion)
		activities = append(activities, Activity{
			Group:          r.Group,
			NaceVersion:    version,
			RawVersion:     r.NaceVersion,
			NaceCode:       r.NaceCode,
			Classification: r.Classification,
			DescriptionNL:  lk.Codes.Description(naceCategory(version), r.NaceCode, "NL"),
			DescriptionFR:  lk.Codes.Description(naceCategory(version), r.NaceCode, "FR"),
		})
	}
	return activities
}

// naceCategory is the code-table category name of a NACE version.
func naceCategory(v oslo.NaceVersion) string {
	return "Nace" + v.String()
}

func assembleContact(lk *Lookups, id string) Contact {
	var c Contact
	for _, row := range lk.Contacts[id] {
		switch row.Type {
		case "EMAIL":
			c.Email = row.Value
		case "TEL":
			c.Telephone = row.Value
		case "FAX":
			c.Fax = row.Value
		case "WEB":
			c.Homepage = row.Value
		}
	}
	return c
}

// assembleAddress builds the address of an entity. When wantType is set,
// rows of any other address type are ignored. The country fields fall back
// to the Belgian literals when the source leaves them empty; all other empty
// fields stay empty.
func assembleAddress(lk *Lookups, id, wantType string) Address {
	row, ok := lk.Addresses[id]
	if !ok {
		return Address{}
	}
	if wantType != "" && row.Type != wantType {
		return Address{}
	}
	return Address{
		CountryNL:      defaultIfEmpty(row.CountryNL, countryFallbackNL),
		CountryFR:      defaultIfEmpty(row.CountryFR, countryFallbackFR),
		Zipcode:        row.Zipcode,
		MunicipalityNL: row.MunicipalityNL,
		MunicipalityFR: row.MunicipalityFR,
		StreetNL:       row.StreetNL,
		StreetFR:       row.StreetFR,
		HouseNumber:    row.HouseNumber,
		Box:            row.Box,
		ExtraInfo:      row.ExtraInfo,
	}
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
