package organization

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Informatievlaanderen/OSLO-codelijsten/export"
	"github.com/Informatievlaanderen/OSLO-codelijsten/vocabulary/oslo"
)

const (
	statusActive   = "actief"
	statusInactive = "nietactief"

	ovoAgency = "Digitaal Vlaanderen"
	kboAgency = "Kruispuntenbank van Ondernemingen"

	wegwijsBase = "https://wegwijs.vlaanderen.be/#/organisations/"
)

// PrefixHeader renders the shared @prefix declarations, sorted by prefix.
func PrefixHeader() string {
	prefixes := export.DefaultPrefixes()
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "@prefix %s: <%s> .\n", name, prefixes[name])
	}
	return b.String()
}

// Document renders a full Turtle document for the given organizations,
// prefix header included.
func Document(orgs []Organization) string {
	var b strings.Builder
	b.WriteString(PrefixHeader())
	for _, org := range orgs {
		b.WriteString("\n")
		writeOrganization(&b, org, time.Now())
	}
	return b.String()
}

// WriteTurtle renders one organization with the prefix header, the shape
// used for per-organization files.
func WriteTurtle(org Organization) string {
	var b strings.Builder
	b.WriteString(PrefixHeader())
	b.WriteString("\n")
	writeOrganization(&b, org, time.Now())
	return b.String()
}

func writeOrganization(b *strings.Builder, org Organization, now time.Time) {
	orgURI := oslo.OrganizationURI(org.OVONumber)

	fmt.Fprintf(b, "<%s>\n", orgURI)
	b.WriteString("  a org:Organization ;\n")
	fmt.Fprintf(b, "  skos:prefLabel \"%s\"@nl ;\n", escapeString(org.Name))
	if org.ShortName != "" {
		fmt.Fprintf(b, "  skos:altLabel \"%s\"@nl ;\n", escapeString(org.ShortName))
	}
	if org.Description != "" {
		fmt.Fprintf(b, "  dcterms:description \"%s\"@nl ;\n", escapeString(org.Description))
	}
	fmt.Fprintf(b, "  adms:status <%s> ;\n", oslo.OrganisatieStatus(status(org, now)))

	writeIdentifiers(b, org, now)

	if org.ID != "" {
		fmt.Fprintf(b, "  rdfs:seeAlso <%s%s> ;\n", wegwijsBase, org.ID)
	}

	contacts := validContacts(org)
	if len(contacts) > 0 {
		refs := make([]string, len(contacts))
		for i := range contacts {
			refs[i] = "<" + contactURI(org, i) + ">"
		}
		fmt.Fprintf(b, "  schema:contactPoint %s ;\n", strings.Join(refs, ", "))
	}
	b.WriteString(".\n")

	for i, contact := range contacts {
		b.WriteString("\n")
		writeContactPoint(b, org, contact, i)
	}
}

// writeIdentifiers emits the adms:identifier block. Every organization gets
// an OVO identifier; a KBO identifier is added when the record carries one.
func writeIdentifiers(b *strings.Builder, org Organization, now time.Time) {
	issued := issuedDate(org, now)

	blocks := []string{identifierBlock(org.OVONumber, oslo.OVORegistrar, ovoAgency, issued)}
	if org.KBONumber != "" {
		blocks = append(blocks, identifierBlock(org.KBONumber, oslo.KBONumberRegistrar, kboAgency, issued))
	}
	fmt.Fprintf(b, "  adms:identifier\n%s ;\n", strings.Join(blocks, ",\n"))
}

func identifierBlock(notation, creator, agency, issued string) string {
	var b strings.Builder
	b.WriteString("  [\n")
	b.WriteString("    a adms:Identifier ;\n")
	fmt.Fprintf(&b, "    skos:notation \"%s\" ;\n", escapeString(notation))
	fmt.Fprintf(&b, "    dcterms:creator <%s> ;\n", creator)
	fmt.Fprintf(&b, "    adms:schemaAgency \"%s\"@nl ;\n", agency)
	fmt.Fprintf(&b, "    dcterms:issued \"%s\"^^xsd:date\n", issued)
	b.WriteString("  ]")
	return b.String()
}

func writeContactPoint(b *strings.Builder, org Organization, contact Contact, index int) {
	fmt.Fprintf(b, "<%s>\n", contactURI(org, index))
	b.WriteString("  a schema:ContactPoint ;\n")
	if contact.ContactTypeName != "" {
		fmt.Fprintf(b, "  schema:contactType \"%s\"@nl ;\n", escapeString(contact.ContactTypeName))
	}
	b.WriteString(contactValue(contact))
}

// contactValue picks the property a contact value is published under, keyed
// on the Dutch contact-type names of the registry. Unrecognized types fall
// back to a comment so no value is silently dropped.
func contactValue(contact Contact) string {
	typeName := strings.ToLower(contact.ContactTypeName)
	value := escapeString(contact.Value)

	switch {
	case strings.Contains(typeName, "email"):
		return fmt.Sprintf("  schema:email \"mailto:%s\" .\n", value)
	case strings.Contains(typeName, "telefoon"),
		strings.Contains(typeName, "telephone"),
		strings.Contains(typeName, "gsm"),
		strings.Contains(typeName, "mobiel"):
		return fmt.Sprintf("  schema:telephone \"%s\" .\n", value)
	case strings.Contains(typeName, "fax"):
		return fmt.Sprintf("  schema:faxNumber \"%s\" .\n", value)
	case strings.Contains(typeName, "website"),
		strings.Contains(typeName, "homepage"),
		strings.Contains(typeName, "intranetsite"):
		return fmt.Sprintf("  schema:url <%s> .\n", contact.Value)
	default:
		return fmt.Sprintf("  rdfs:comment \"%s\"@nl .\n", value)
	}
}

func contactURI(org Organization, index int) string {
	return fmt.Sprintf("%s/contact/%d", oslo.OrganizationURI(org.OVONumber), index)
}

func validContacts(org Organization) []Contact {
	var contacts []Contact
	for _, c := range org.Contacts {
		if c.Value != "" {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// status derives actief or nietactief from the validity end date. An absent
// or unparseable end date keeps the record active.
func status(org Organization, now time.Time) string {
	if org.Validity == nil || org.Validity.End == "" {
		return statusActive
	}
	end, err := time.Parse("2006-01-02", org.Validity.End)
	if err != nil {
		return statusActive
	}
	if end.Before(now) {
		return statusInactive
	}
	return statusActive
}

// issuedDate is the validity start date, or today when the record has none.
func issuedDate(org Organization, now time.Time) string {
	if org.Validity != nil && org.Validity.Start != "" {
		return org.Validity.Start
	}
	return now.Format("2006-01-02")
}

func escapeString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}
