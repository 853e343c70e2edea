package organization

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile loads the registry dump, a single JSON array of organizations.
func ReadFile(path string) ([]Organization, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read organizations: %w", err)
	}

	var orgs []Organization
	if err := json.Unmarshal(data, &orgs); err != nil {
		return nil, fmt.Errorf("parse organizations: %w", err)
	}
	return orgs, nil
}

// FilterValid keeps the organizations that carry the required fields.
func FilterValid(orgs []Organization) []Organization {
	valid := make([]Organization, 0, len(orgs))
	for _, org := range orgs {
		if org.OVONumber != "" && org.Name != "" {
			valid = append(valid, org)
		}
	}
	return valid
}
