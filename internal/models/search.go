package models

import "strings"

// SearchFilter holds the optional search criteria. Blank fields are omitted
// from the outgoing query string entirely.
type SearchFilter struct {
	Keyword   string
	StartDate string
	EndDate   string
	Role      string
}

// Empty reports whether no criterion survives trimming.
func (f SearchFilter) Empty() bool {
	return strings.TrimSpace(f.Keyword) == "" &&
		strings.TrimSpace(f.StartDate) == "" &&
		strings.TrimSpace(f.EndDate) == "" &&
		strings.TrimSpace(f.Role) == ""
}

type SearchResult struct {
	Results        []Event           `json:"results"`
	FiltersApplied map[string]string `json:"filters_applied"`
	TotalResults   int               `json:"total_results,omitempty"`
}
