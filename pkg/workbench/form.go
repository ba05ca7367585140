package workbench

import (
	"context"
	"time"

	"enquete-portal-backend/internal/database/models"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/pkg/client"
)

// FormState is the lifecycle of a findings form.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

func (s FormState) String() string {
	switch s {
	case FormClosed:
		return "closed"
	case FormOpen:
		return "open"
	case FormSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// FindingsForm captures the outcome of one investigation against one record.
// Opening binds the form to a record and seeds it from the record's existing
// findings, so reopening shows what was last saved. A failed submission keeps
// the form open with the typed values intact; only a successful submission or
// an explicit Cancel closes it.
type FindingsForm struct {
	store  Store
	state  FormState
	record client.Record

	// Fields is edited in place by the caller between Open and Submit.
	Fields client.Findings

	lastErr error
}

// NewFindingsForm creates a closed form bound to the given store.
func NewFindingsForm(store Store) *FindingsForm {
	return &FindingsForm{store: store}
}

// State returns the current lifecycle state.
func (f *FindingsForm) State() FormState {
	return f.state
}

// Record returns the record the form is bound to. Zero value when closed.
func (f *FindingsForm) Record() client.Record {
	return f.record
}

// Err returns the error of the last failed submission, cleared on Open.
func (f *FindingsForm) Err() error {
	return f.lastErr
}

// Open binds the form to a record. Existing findings pre-fill the fields;
// otherwise the residence country defaults to FRANCE and the return date to
// today, matching how the forms are filled in practice.
func (f *FindingsForm) Open(rec client.Record) {
	f.record = rec
	f.lastErr = nil
	if rec.Findings != nil {
		f.Fields = *rec.Findings
	} else {
		f.Fields = client.Findings{
			ResidenceCountry: "FRANCE",
			ReturnDate:       time.Now().Format("2006-01-02"),
		}
	}
	if f.Fields.ResidenceCountry == "" {
		f.Fields.ResidenceCountry = "FRANCE"
	}
	if f.Fields.ReturnDate == "" {
		f.Fields.ReturnDate = time.Now().Format("2006-01-02")
	}
	f.state = FormOpen
}

// Submit validates the fields and sends them to the backend. On success the
// form closes and the caller should refresh its working set. On failure the
// form reopens with the fields untouched and the error retrievable via Err.
func (f *FindingsForm) Submit(ctx context.Context) error {
	if f.state != FormOpen {
		return apperrors.NewValidationError("form", "form is not open")
	}
	if err := f.validate(); err != nil {
		f.lastErr = err
		return err
	}

	f.state = FormSubmitting
	fields := f.Fields
	if err := f.store.SubmitFindings(ctx, f.record.ID, &fields); err != nil {
		f.state = FormOpen
		f.lastErr = err
		return err
	}

	f.state = FormClosed
	f.lastErr = nil
	return nil
}

// Cancel closes the form and discards the edits. No write, no refresh.
func (f *FindingsForm) Cancel() {
	f.state = FormClosed
	f.lastErr = nil
	f.Fields = client.Findings{}
}

func (f *FindingsForm) validate() error {
	if f.Fields.ResultCode == "" {
		return apperrors.NewValidationError("code_resultat", "result code is required")
	}
	if !models.ResultCode(f.Fields.ResultCode).IsValid() {
		return apperrors.NewValidationError("code_resultat", "unknown result code")
	}
	if f.Fields.SalaryFrequency != "" && !models.PaymentFrequency(f.Fields.SalaryFrequency).IsValid() {
		return apperrors.NewValidationError("frequence_versement_salaire", "unknown payment frequency")
	}
	return nil
}
