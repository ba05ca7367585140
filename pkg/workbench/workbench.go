// Package workbench implements the operator's working session over the
// portal API: one fetched copy of the records and the investigator roster,
// a live search filter over it, and single or ranged assignment actions.
// The session owns its copies for its lifetime; the backend owns durable
// state, and every mutation is followed by a re-fetch.
package workbench

import (
	"context"
	"strings"

	"enquete-portal-backend/internal/assignment"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/pkg/client"
)

// Store is the slice of the API client the workbench needs.
// *client.Client implements it.
type Store interface {
	ListRecords(ctx context.Context) ([]client.Record, error)
	ListInvestigators(ctx context.Context) ([]client.Investigator, error)
	Assign(ctx context.Context, caseNumber string, investigatorID *uint) error
	SubmitFindings(ctx context.Context, recordID uint, f *client.Findings) error
}

// BulkResult reports how far a bulk assignment got. Applied counts the
// writes that landed before the first failure; they are never rolled back.
type BulkResult struct {
	Requested int
	Applied   int
}

// Workbench is one operator session. Not safe for concurrent use; the
// workflow is single-operator and event-driven.
type Workbench struct {
	store         Store
	records       []client.Record
	investigators []client.Investigator
	filterTerm    string
	loaded        bool
}

// New creates a session over the given store. Call Load before reading.
func New(store Store) *Workbench {
	return &Workbench{store: store}
}

// Load fetches records and investigators. On failure the session keeps
// whatever it already had ("no data", not "empty data") and reports the
// error for the caller to surface.
func (w *Workbench) Load(ctx context.Context) error {
	records, err := w.store.ListRecords(ctx)
	if err != nil {
		return err
	}
	investigators, err := w.store.ListInvestigators(ctx)
	if err != nil {
		return err
	}
	w.records = records
	w.investigators = investigators
	w.loaded = true
	return nil
}

// Refresh re-fetches the working set after a mutation.
func (w *Workbench) Refresh(ctx context.Context) error {
	return w.Load(ctx)
}

// Loaded reports whether at least one Load has succeeded.
func (w *Workbench) Loaded() bool {
	return w.loaded
}

// Records returns the full working set in backend order.
func (w *Workbench) Records() []client.Record {
	return w.records
}

// Investigators returns the roster.
func (w *Workbench) Investigators() []client.Investigator {
	return w.investigators
}

// InvestigatorName resolves an assignment to a display name. Unassigned and
// dangling ids are rendered, not errors: a stale working set may reference
// an investigator deleted since the last refresh.
func (w *Workbench) InvestigatorName(id *uint) string {
	if id == nil {
		return "unassigned"
	}
	for i := range w.investigators {
		if w.investigators[i].ID == *id {
			return w.investigators[i].FullName()
		}
	}
	return "unknown"
}

// SetFilter replaces the current search term. The filtered view recomputes
// on read; setting the term is cheap enough to call per keystroke.
func (w *Workbench) SetFilter(term string) {
	w.filterTerm = strings.TrimSpace(term)
}

// FilterTerm returns the current search term.
func (w *Workbench) FilterTerm() string {
	return w.filterTerm
}

// Filtered returns the records matching the current filter, in stable order.
// This is the sequence bulk ranges are counted over.
func (w *Workbench) Filtered() []client.Record {
	return assignment.Filter(w.records, w.filterTerm)
}

// Assign sets or clears the investigator of one case and refreshes the
// working set. The case must be in the working set and, when assigning, the
// investigator must be on the roster.
func (w *Workbench) Assign(ctx context.Context, caseNumber string, investigatorID *uint) error {
	if _, err := assignment.AssignOne(w.records, caseNumber, investigatorID); err != nil {
		return err
	}
	if investigatorID != nil && !w.onRoster(*investigatorID) {
		return apperrors.ErrInvestigatorNotFound
	}
	if err := w.store.Assign(ctx, caseNumber, investigatorID); err != nil {
		return err
	}
	return w.Refresh(ctx)
}

// BulkAssign assigns investigatorID to rows start..end (1-based, inclusive)
// of the *currently filtered* view. Bounds are re-validated here, at
// submission time, because the filtered order may have changed since the
// operator typed the range. Writes are issued sequentially, one in flight at
// a time; on failure the writes already applied stay applied and the result
// reports how many landed. The working set is refreshed even after a partial
// failure so the operator sees what actually happened.
func (w *Workbench) BulkAssign(ctx context.Context, start, end int, investigatorID *uint) (BulkResult, error) {
	if investigatorID != nil && !w.onRoster(*investigatorID) {
		return BulkResult{}, apperrors.ErrInvestigatorNotFound
	}

	subs, err := assignment.BulkSubmissions(w.Filtered(), start, end, investigatorID)
	if err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{Requested: len(subs)}
	for _, sub := range subs {
		id := sub.InvestigatorID
		if err := w.store.Assign(ctx, sub.CaseNumber, &id); err != nil {
			_ = w.Refresh(ctx)
			return result, err
		}
		result.Applied++
	}

	if len(subs) > 0 {
		if err := w.Refresh(ctx); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (w *Workbench) onRoster(id uint) bool {
	for i := range w.investigators {
		if w.investigators[i].ID == id {
			return true
		}
	}
	return false
}
