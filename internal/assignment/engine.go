// Package assignment holds the pure routing rules: which record an
// assignment targets, which records a bulk range covers, and the submissions
// a bulk action produces. Nothing here touches the network or the database;
// callers feed it the working set they are looking at and issue the
// resulting submissions themselves.
package assignment

import (
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/pkg/client"
)

// Submission is one assignment write to issue against the backend, in order.
type Submission struct {
	CaseNumber     string
	InvestigatorID uint
}

// AssignOne looks up a record by case number and returns a copy with the
// assignment set to investigatorID. A nil id means unassign. The input slice
// is never mutated. Returns ErrCaseNotFound when the case number is not in
// the working set.
func AssignOne(records []client.Record, caseNumber string, investigatorID *uint) (client.Record, error) {
	for i := range records {
		if records[i].CaseNumber != caseNumber {
			continue
		}
		updated := records[i]
		if investigatorID == nil {
			updated.InvestigatorID = nil
		} else {
			id := *investigatorID
			updated.InvestigatorID = &id
		}
		return updated, nil
	}
	return client.Record{}, apperrors.ErrCaseNotFound
}

// SelectRange returns the records between the 1-based inclusive bounds start
// and end, interpreted over the order of records as given, which is whatever
// the operator currently sees. Bounds are clamped to the slice; an
// empty or inverted range selects nothing and is not an error.
func SelectRange(records []client.Record, start, end int) []client.Record {
	if start < 1 {
		start = 1
	}
	if end > len(records) {
		end = len(records)
	}
	if start > end {
		return nil
	}
	out := make([]client.Record, end-start+1)
	copy(out, records[start-1:end])
	return out
}

// BulkSubmissions produces the ordered assignment writes for assigning
// investigatorID to every record in the (start, end) range of records.
// Requires an investigator: a nil id fails with a validation error before
// anything is issued. An out-of-bounds range degrades to however much of it
// exists, and an empty selection produces no submissions.
func BulkSubmissions(records []client.Record, start, end int, investigatorID *uint) ([]Submission, error) {
	if investigatorID == nil {
		return nil, apperrors.ErrNoInvestigatorSelected
	}
	selected := SelectRange(records, start, end)
	subs := make([]Submission, 0, len(selected))
	for _, rec := range selected {
		subs = append(subs, Submission{CaseNumber: rec.CaseNumber, InvestigatorID: *investigatorID})
	}
	return subs, nil
}
