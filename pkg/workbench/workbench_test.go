package workbench

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/pkg/client"
)

// fakeStore is an in-memory Store. Assign mutates the record set so a
// Refresh after a write observes the new state, like the real backend.
type fakeStore struct {
	records       []client.Record
	investigators []client.Investigator

	listErr   error
	assignErr map[string]error // case number -> error to return

	assignCalls []string
	submitCalls []uint
	submitErr   error
}

func (s *fakeStore) ListRecords(ctx context.Context) ([]client.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]client.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *fakeStore) ListInvestigators(ctx context.Context) ([]client.Investigator, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.investigators, nil
}

func (s *fakeStore) Assign(ctx context.Context, caseNumber string, investigatorID *uint) error {
	s.assignCalls = append(s.assignCalls, caseNumber)
	if err := s.assignErr[caseNumber]; err != nil {
		return err
	}
	for i := range s.records {
		if s.records[i].CaseNumber == caseNumber {
			s.records[i].InvestigatorID = investigatorID
			return nil
		}
	}
	return &client.BackendError{Op: "assign", StatusCode: 404, Message: "case not found"}
}

func (s *fakeStore) SubmitFindings(ctx context.Context, recordID uint, f *client.Findings) error {
	s.submitCalls = append(s.submitCalls, recordID)
	return s.submitErr
}

func ptr(v uint) *uint { return &v }

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: []client.Record{
			{ID: 1, CaseNumber: "D001", LastName: "DUPONT", FirstName: "JEAN"},
			{ID: 2, CaseNumber: "D002", LastName: "MARTIN", FirstName: "LUC"},
			{ID: 3, CaseNumber: "D003", LastName: "DUPUIS", FirstName: "ANNE"},
		},
		investigators: []client.Investigator{
			{ID: 7, LastName: "BERNARD", FirstName: "PAUL"},
		},
	}
}

func TestWorkbench_Load(t *testing.T) {
	t.Run("fetches records and roster", func(t *testing.T) {
		w := New(newFakeStore())

		err := w.Load(context.Background())

		assert.NoError(t, err)
		assert.True(t, w.Loaded())
		assert.Len(t, w.Records(), 3)
		assert.Len(t, w.Investigators(), 1)
	})

	t.Run("failure keeps previous working set", func(t *testing.T) {
		store := newFakeStore()
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		store.listErr = errors.New("connection refused")
		err := w.Load(context.Background())

		assert.Error(t, err)
		assert.Len(t, w.Records(), 3, "stale data beats no data")
		assert.True(t, w.Loaded())
	})
}

func TestWorkbench_InvestigatorName(t *testing.T) {
	w := New(newFakeStore())
	assert.NoError(t, w.Load(context.Background()))

	assert.Equal(t, "unassigned", w.InvestigatorName(nil))
	assert.Equal(t, "BERNARD PAUL", w.InvestigatorName(ptr(7)))
	assert.Equal(t, "unknown", w.InvestigatorName(ptr(99)))
}

func TestWorkbench_Filtered(t *testing.T) {
	w := New(newFakeStore())
	assert.NoError(t, w.Load(context.Background()))

	w.SetFilter("dup")
	filtered := w.Filtered()

	assert.Len(t, filtered, 2)
	assert.Equal(t, "D001", filtered[0].CaseNumber)
	assert.Equal(t, "D003", filtered[1].CaseNumber)

	w.SetFilter("  ")
	assert.Len(t, w.Filtered(), 3, "blank filter shows everything")
}

func TestWorkbench_Assign(t *testing.T) {
	t.Run("assigns and refreshes", func(t *testing.T) {
		store := newFakeStore()
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		err := w.Assign(context.Background(), "D002", ptr(7))

		assert.NoError(t, err)
		assert.Equal(t, []string{"D002"}, store.assignCalls)
		assert.Equal(t, ptr(7), w.Records()[1].InvestigatorID)
	})

	t.Run("unassigns with nil investigator", func(t *testing.T) {
		store := newFakeStore()
		store.records[0].InvestigatorID = ptr(7)
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		err := w.Assign(context.Background(), "D001", nil)

		assert.NoError(t, err)
		assert.Nil(t, w.Records()[0].InvestigatorID)
	})

	t.Run("unknown case is not found", func(t *testing.T) {
		store := newFakeStore()
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		err := w.Assign(context.Background(), "D999", ptr(7))

		assert.True(t, apperrors.IsNotFound(err))
		assert.Empty(t, store.assignCalls, "no write for a case outside the working set")
	})

	t.Run("investigator must be on the roster", func(t *testing.T) {
		store := newFakeStore()
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		err := w.Assign(context.Background(), "D001", ptr(42))

		assert.True(t, apperrors.IsNotFound(err))
		assert.Empty(t, store.assignCalls)
	})
}

func TestWorkbench_BulkAssign(t *testing.T) {
	t.Run("assigns the range over the filtered view", func(t *testing.T) {
		store := newFakeStore()
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))
		w.SetFilter("dup") // D001, D003

		result, err := w.BulkAssign(context.Background(), 1, 2, ptr(7))

		assert.NoError(t, err)
		assert.Equal(t, BulkResult{Requested: 2, Applied: 2}, result)
		assert.Equal(t, []string{"D001", "D003"}, store.assignCalls)
		assert.Equal(t, ptr(7), w.Records()[0].InvestigatorID)
		assert.Nil(t, w.Records()[1].InvestigatorID, "filtered-out record untouched")
		assert.Equal(t, ptr(7), w.Records()[2].InvestigatorID)
	})

	t.Run("out-of-range bounds clamp", func(t *testing.T) {
		store := newFakeStore()
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		result, err := w.BulkAssign(context.Background(), 2, 10, ptr(7))

		assert.NoError(t, err)
		assert.Equal(t, BulkResult{Requested: 2, Applied: 2}, result)
		assert.Equal(t, []string{"D002", "D003"}, store.assignCalls)
	})

	t.Run("inverted range assigns nothing", func(t *testing.T) {
		store := newFakeStore()
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		result, err := w.BulkAssign(context.Background(), 3, 1, ptr(7))

		assert.NoError(t, err)
		assert.Equal(t, BulkResult{}, result)
		assert.Empty(t, store.assignCalls)
	})

	t.Run("requires an investigator", func(t *testing.T) {
		w := New(newFakeStore())
		assert.NoError(t, w.Load(context.Background()))

		_, err := w.BulkAssign(context.Background(), 1, 3, nil)

		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("partial failure keeps earlier writes", func(t *testing.T) {
		store := newFakeStore()
		store.assignErr = map[string]error{
			"D002": &client.BackendError{Op: "assign", StatusCode: 500, Message: "boom"},
		}
		w := New(store)
		assert.NoError(t, w.Load(context.Background()))

		result, err := w.BulkAssign(context.Background(), 1, 3, ptr(7))

		assert.Error(t, err)
		assert.Equal(t, BulkResult{Requested: 3, Applied: 1}, result)
		assert.Equal(t, []string{"D001", "D002"}, store.assignCalls, "stops at the first failure")
		assert.Equal(t, ptr(7), w.Records()[0].InvestigatorID, "applied write survives the failure")
	})
}
