package kbo_test

import (
	"testing"

	"github.com/Informatievlaanderen/OSLO-codelijsten/kbo"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"
)

func sampleLookups() *kbo.Lookups {
	return &kbo.Lookups{
		Enterprises: map[string]kbo.EnterpriseRow{
			"0123456789": {
				Identifier:         "0123456789",
				Status:             "AC",
				JuridicalSituation: "000",
				TypeOfEnterprise:   "2",
				JuridicalForm:      "014",
				StartDate:          "2001-05-04",
			},
		},
		Denominations: map[string][]kbo.DenominationRow{
			"0123456789": {{Language: "2", Type: "001", Value: "Test NV"}},
			"2100000001": {{Language: "2", Type: "001", Value: "Vestiging Gent"}},
		},
		Establishments: map[string][]kbo.SiteRow{
			"0123456789": {{Identifier: "2100000001", StartDate: "2005-11-30", CompanyID: "0123456789"}},
		},
		Branches: map[string][]kbo.SiteRow{
			"0123456789": {{Identifier: "9000000001", StartDate: "2015-02-01", CompanyID: "0123456789"}},
		},
		Activities: map[string][]kbo.ActivityRow{
			"0123456789": {{Group: "001", NaceVersion: "2008", NaceCode: "41201", Classification: "MAIN"}},
		},
		Contacts: map[string][]kbo.ContactRow{
			"0123456789": {
				{EntityContact: "ENT", Type: "EMAIL", Value: "info@test.be"},
				{EntityContact: "ENT", Type: "TEL", Value: "025550100"},
				{EntityContact: "ENT", Type: "WEB", Value: "https://test.be"},
			},
		},
		Addresses: map[string]kbo.AddressRow{
			"0123456789": {Type: "REGO", Zipcode: "1000", MunicipalityNL: "Brussel", StreetNL: "Wetstraat", HouseNumber: "16"},
			"9000000001": {Type: "ABBR", Zipcode: "2000", MunicipalityNL: "Antwerpen"},
		},
		Codes: kbo.CodeTable{
			"Nace2008": {"41201": {"NL": "Bouw van huizen", "FR": "Construction de maisons"}},
		},
	}
}

func TestAssemble(t *testing.T) {
	lk := sampleLookups()

	c, ok := kbo.Assemble("0123456789", lk)
	if !ok {
		t.Fatal("Assemble returned not found")
	}

	if c.StartDate != "2001-05-04" || c.JuridicalForm != "014" {
		t.Errorf("company = %+v", c)
	}
	if len(c.Names) != 1 || c.Names[0].Value != "Test NV" {
		t.Errorf("names = %v", c.Names)
	}

	if len(c.Activities) != 1 {
		t.Fatalf("activities = %v", c.Activities)
	}
	a := c.Activities[0]
	if a.NaceVersion != oslo.Nace2008 {
		t.Errorf("nace version = %v", a.NaceVersion)
	}
	if a.RawVersion != "2008" {
		t.Errorf("raw version = %q", a.RawVersion)
	}
	// Descriptions resolve from the code table per language.
	if a.DescriptionNL != "Bouw van huizen" || a.DescriptionFR != "Construction de maisons" {
		t.Errorf("descriptions = %q / %q", a.DescriptionNL, a.DescriptionFR)
	}

	// The TEL row fills Telephone, WEB fills Homepage.
	if c.MainContact.Telephone != "025550100" || c.MainContact.Homepage != "https://test.be" {
		t.Errorf("contact = %+v", c.MainContact)
	}

	// Empty source countries fall back to the Belgian literals.
	if c.MainAddress.CountryNL != "België" || c.MainAddress.CountryFR != "Belgique" {
		t.Errorf("countries = %q / %q", c.MainAddress.CountryNL, c.MainAddress.CountryFR)
	}
	if c.MainAddress.Zipcode != "1000" {
		t.Errorf("address = %+v", c.MainAddress)
	}

	if len(c.Establishments) != 1 || c.Establishments[0].Names[0].Value != "Vestiging Gent" {
		t.Errorf("establishments = %+v", c.Establishments)
	}
	if len(c.Branches) != 1 || c.Branches[0].Address.Zipcode != "2000" {
		t.Errorf("branches = %+v", c.Branches)
	}
}

func TestAssembleUnknownIdentifier(t *testing.T) {
	if _, ok := kbo.Assemble("0000000000", sampleLookups()); ok {
		t.Fatal("Assemble found a nonexistent company")
	}
}

func TestAssembleCompanyAddressMustBeRegisteredOffice(t *testing.T) {
	lk := sampleLookups()
	row := lk.Addresses["0123456789"]
	row.Type = "BAET"
	lk.Addresses["0123456789"] = row

	c, ok := kbo.Assemble("0123456789", lk)
	if !ok {
		t.Fatal("Assemble returned not found")
	}
	if !c.MainAddress.IsEmpty() {
		t.Errorf("non-REGO address assembled onto the company: %+v", c.MainAddress)
	}
}

func TestLanguageTag(t *testing.T) {
	tests := map[string]string{
		"1": "fr", "2": "nl", "3": "de", "4": "en",
		"FR": "fr", "NL": "nl", "DE": "de",
		"9": "", "": "",
	}
	for code, want := range tests {
		if got := kbo.LanguageTag(code); got != want {
			t.Errorf("LanguageTag(%q) = %q, want %q", code, got, want)
		}
	}
}
