package assignment

import (
	"strings"

	"enquete-portal-backend/pkg/client"
)

// Filter narrows records to those whose case number, last name or first name
// contains term, case-insensitively. A blank term returns the input as is.
// The filter is stable: relative order is preserved, nothing is re-sorted.
func Filter(records []client.Record, term string) []client.Record {
	term = strings.TrimSpace(term)
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)

	out := make([]client.Record, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.CaseNumber), needle) ||
			strings.Contains(strings.ToLower(rec.LastName), needle) ||
			strings.Contains(strings.ToLower(rec.FirstName), needle) {
			out = append(out, rec)
		}
	}
	return out
}
