package oslo

// NaceVersion selects the URI scheme used when linking an economic activity
// to its NACE classification. The three variants are mutually exclusive:
// the 2003 codes predate the Belgian authority tables and stay document-local
// blank nodes, the 2008 and 2025 revisions are published under versioned
// belgif and EU namespaces.
type NaceVersion int

const (
	// NaceUnknown is an unrecognized version string; no activity link is
	// emitted for it.
	NaceUnknown NaceVersion = iota

	// Nace2003 is the legacy NACE-BEL 2003 classification.
	Nace2003

	// Nace2008 is the NACE-BEL 2008 revision.
	Nace2008

	// Nace2025 is the NACE-BEL 2025 revision.
	Nace2025
)

// NACE revision namespaces. Each revision pairs a Belgian authority table
// with the EU vocabulary it specializes.
const (
	Nace2008Base   = "http://vocab.belgif.be/auth/nace2008"
	Nace2008Europa = "http://data.europa.eu/ux2/nace2"

	Nace2025Base   = "http://vocab.belgif.be/auth/nace2025"
	Nace2025Europa = "http://data.europa.eu/ux2/nace2.1"
)

// ParseNaceVersion maps the version field of the KBO activity table to a
// NaceVersion. Unknown values return NaceUnknown, not an error: activity
// rows with unexpected versions are skipped, never fatal.
func ParseNaceVersion(s string) NaceVersion {
	switch s {
	case "2003":
		return Nace2003
	case "2008":
		return Nace2008
	case "2025":
		return Nace2025
	default:
		return NaceUnknown
	}
}

// String returns the KBO source representation of the version.
func (v NaceVersion) String() string {
	switch v {
	case Nace2003:
		return "2003"
	case Nace2008:
		return "2008"
	case Nace2025:
		return "2025"
	default:
		return "unknown"
	}
}

// Namespaces returns the (authority, EU) namespace pair of a revision
// variant. Only Nace2008 and Nace2025 have one.
func (v NaceVersion) Namespaces() (base, europa string, ok bool) {
	switch v {
	case Nace2008:
		return Nace2008Base, Nace2008Europa, true
	case Nace2025:
		return Nace2025Base, Nace2025Europa, true
	default:
		return "", "", false
	}
}
