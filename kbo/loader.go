package kbo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Source table file names inside the KBO extract directory.
const (
	enterpriseFile    = "enterprise.csv"
	denominationFile  = "denomination.csv"
	establishmentFile = "establishment.csv"
	branchFile        = "branch.csv"
	activityFile      = "activity.csv"
	contactFile       = "contact.csv"
	addressFile       = "address.csv"
	codeFile          = "code.csv"
)

// progressCadence is how many rows pass between two progress log lines.
const progressCadence = 100_000

// EnterpriseRow is one record of the enterprise table.
type EnterpriseRow struct {
	Identifier         string
	Status             string
	JuridicalSituation string
	TypeOfEnterprise   string
	JuridicalForm      string
	JuridicalFormCAC   string
	StartDate          string
}

// DenominationRow is one record of the denomination table, keyed by the
// entity (enterprise or establishment) it names.
type DenominationRow struct {
	Language string
	Type     string
	Value    string
}

// SiteRow is one record of the establishment or branch table, keyed by the
// owning company.
type SiteRow struct {
	Identifier string
	StartDate  string
	CompanyID  string
}

// ActivityRow is one record of the activity table.
type ActivityRow struct {
	Group          string
	NaceVersion    string
	NaceCode       string
	Classification string
}

// ContactRow is one record of the contact table.
type ContactRow struct {
	EntityContact string
	Type          string
	Value         string
}

// AddressRow is one record of the address table.
type AddressRow struct {
	Type            string
	CountryNL       string
	CountryFR       string
	Zipcode         string
	MunicipalityNL  string
	MunicipalityFR  string
	StreetNL        string
	StreetFR        string
	HouseNumber     string
	Box             string
	ExtraInfo       string
	DateStrikingOff string
}

// CodeTable resolves code descriptions by (category, code, language).
type CodeTable map[string]map[string]map[string]string

// Description returns the description of a code in a language, or empty when
// the table has no entry. Missing entries are expected, never an error.
func (t CodeTable) Description(category, code, language string) string {
	return t[category][code][language]
}

func (t CodeTable) add(c Code) {
	byCode, ok := t[c.Category]
	if !ok {
		byCode = make(map[string]map[string]string)
		t[c.Category] = byCode
	}
	byLang, ok := byCode[c.Code]
	if !ok {
		byLang = make(map[string]string)
		byCode[c.Code] = byLang
	}
	byLang[c.Language] = c.Description
}

// Lookups holds the per-table lookup maps for one chunk of companies. Every
// map is restricted to the chunk's wanted keys, so peak memory follows chunk
// size rather than population size.
type Lookups struct {
	Enterprises    map[string]EnterpriseRow
	Denominations  map[string][]DenominationRow
	Establishments map[string][]SiteRow
	Branches       map[string][]SiteRow
	Activities     map[string][]ActivityRow
	Contacts       map[string][]ContactRow
	Addresses      map[string]AddressRow
	Codes          CodeTable
}

// Release drops all lookup tables. Callers must release a chunk's lookups
// before loading the next chunk; this is the explicit disposal contract of
// the batch pipeline, not merely a GC hint.
func (l *Lookups) Release() {
	l.Enterprises = nil
	l.Denominations = nil
	l.Establishments = nil
	l.Branches = nil
	l.Activities = nil
	l.Contacts = nil
	l.Addresses = nil
	l.Codes = nil
}

// Loader streams the KBO CSV tables into keyed lookup maps.
type Loader struct {
	logger *slog.Logger
}

// NewLoader returns a loader logging through the given logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// EnterpriseKeys streams the enterprise table and returns every enterprise
// number, in file order. A missing enterprise table is fatal for the run.
func (l *Loader) EnterpriseKeys(dir string) ([]string, error) {
	var keys []string
	err := l.eachRow(dir, enterpriseFile, 7, func(rec []string) {
		keys = append(keys, rec[0])
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// LoadChunk streams every source table and builds the lookup maps for the
// wanted companies. Establishment and branch identifiers of wanted companies
// are discovered first, so the per-entity tables (denomination, activity,
// contact, address) also retain the rows of owned sites.
func (l *Loader) LoadChunk(dir string, want map[string]bool) (*Lookups, error) {
	lk := &Lookups{
		Enterprises:    make(map[string]EnterpriseRow),
		Denominations:  make(map[string][]DenominationRow),
		Establishments: make(map[string][]SiteRow),
		Branches:       make(map[string][]SiteRow),
		Activities:     make(map[string][]ActivityRow),
		Contacts:       make(map[string][]ContactRow),
		Addresses:      make(map[string]AddressRow),
		Codes:          make(CodeTable),
	}

	err := l.eachRow(dir, enterpriseFile, 7, func(rec []string) {
		if !want[rec[0]] {
			return
		}
		lk.Enterprises[rec[0]] = EnterpriseRow{
			Identifier:         rec[0],
			Status:             rec[1],
			JuridicalSituation: rec[2],
			TypeOfEnterprise:   rec[3],
			JuridicalForm:      rec[4],
			JuridicalFormCAC:   rec[5],
			StartDate:          rec[6],
		}
	})
	if err != nil {
		return nil, err
	}

	// Entities of interest for the per-entity tables: the wanted companies
	// plus the sites they own.
	entities := make(map[string]bool, len(want))
	for k := range want {
		entities[k] = true
	}

	err = l.eachRow(dir, establishmentFile, 3, func(rec []string) {
		companyID := rec[2]
		if !want[companyID] {
			return
		}
		lk.Establishments[companyID] = append(lk.Establishments[companyID], SiteRow{
			Identifier: rec[0],
			StartDate:  rec[1],
			CompanyID:  companyID,
		})
		entities[rec[0]] = true
	})
	if err != nil {
		return nil, err
	}

	err = l.eachRow(dir, branchFile, 3, func(rec []string) {
		companyID := rec[2]
		if !want[companyID] {
			return
		}
		lk.Branches[companyID] = append(lk.Branches[companyID], SiteRow{
			Identifier: rec[0],
			StartDate:  rec[1],
			CompanyID:  companyID,
		})
		entities[rec[0]] = true
	})
	if err != nil {
		return nil, err
	}

	err = l.eachRow(dir, denominationFile, 4, func(rec []string) {
		if !entities[rec[0]] {
			return
		}
		lk.Denominations[rec[0]] = append(lk.Denominations[rec[0]], DenominationRow{
			Language: rec[1],
			Type:     rec[2],
			Value:    rec[3],
		})
	})
	if err != nil {
		return nil, err
	}

	err = l.eachRow(dir, activityFile, 5, func(rec []string) {
		if !entities[rec[0]] {
			return
		}
		lk.Activities[rec[0]] = append(lk.Activities[rec[0]], ActivityRow{
			Group:          rec[1],
			NaceVersion:    rec[2],
			NaceCode:       rec[3],
			Classification: rec[4],
		})
	})
	if err != nil {
		return nil, err
	}

	err = l.eachRow(dir, contactFile, 4, func(rec []string) {
		if !entities[rec[0]] {
			return
		}
		lk.Contacts[rec[0]] = append(lk.Contacts[rec[0]], ContactRow{
			EntityContact: rec[1],
			Type:          rec[2],
			Value:         rec[3],
		})
	})
	if err != nil {
		return nil, err
	}

	err = l.eachRow(dir, addressFile, 13, func(rec []string) {
		if !entities[rec[0]] {
			return
		}
		lk.Addresses[rec[0]] = AddressRow{
			Type:            rec[1],
			CountryNL:       rec[2],
			CountryFR:       rec[3],
			Zipcode:         rec[4],
			MunicipalityNL:  rec[5],
			MunicipalityFR:  rec[6],
			StreetNL:        rec[7],
			StreetFR:        rec[8],
			HouseNumber:     rec[9],
			Box:             rec[10],
			ExtraInfo:       rec[11],
			DateStrikingOff: rec[12],
		}
	})
	if err != nil {
		return nil, err
	}

	// The code table is small and optional: without it, activity
	// descriptions stay empty.
	err = l.eachRow(dir, codeFile, 4, func(rec []string) {
		lk.Codes.add(Code{Category: rec[0], Code: rec[1], Language: rec[2], Description: rec[3]})
	})
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		l.logger.Warn("code table missing, activity descriptions will be empty", "file", codeFile)
	}

	return lk, nil
}

// LoadCodes streams only the code-reference table, as a flat slice for the
// vocabulary import.
func (l *Loader) LoadCodes(dir string) ([]Code, error) {
	var codes []Code
	err := l.eachRow(dir, codeFile, 4, func(rec []string) {
		codes = append(codes, Code{Category: rec[0], Code: rec[1], Language: rec[2], Description: rec[3]})
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// eachRow streams one CSV table forward-only, skipping the header line.
// Rows with the wrong column count are skipped with a warning; an unreadable
// file is returned as an error for the caller to treat as fatal.
func (l *Loader) eachRow(dir, name string, columns int, fn func(rec []string)) error {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	rows := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.logger.Warn("skipping malformed row", "file", name, "row", rows+1, "error", err)
			continue
		}
		rows++
		if rows == 1 {
			continue // header
		}
		if len(rec) != columns {
			l.logger.Warn("skipping row with unexpected column count",
				"file", name, "row", rows, "columns", len(rec), "expected", columns)
			continue
		}
		fn(rec)
		if rows%progressCadence == 0 {
			l.logger.Info("reading table", "file", name, "rows", rows)
		}
	}
	return nil
}
