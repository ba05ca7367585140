package assignment

import (
	"testing"

	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/pkg/client"

	"github.com/stretchr/testify/assert"
)

func ptr(id uint) *uint { return &id }

func records(caseNumbers ...string) []client.Record {
	out := make([]client.Record, 0, len(caseNumbers))
	for _, n := range caseNumbers {
		out = append(out, client.Record{CaseNumber: n})
	}
	return out
}

func TestAssignOne(t *testing.T) {
	t.Run("assigns without mutating the working set", func(t *testing.T) {
		recs := records("D1", "D2", "D3")

		updated, err := AssignOne(recs, "D2", ptr(7))

		assert.NoError(t, err)
		assert.Equal(t, "D2", updated.CaseNumber)
		assert.Equal(t, uint(7), *updated.InvestigatorID)
		assert.Nil(t, recs[1].InvestigatorID, "input slice must stay untouched")
	})

	t.Run("nil investigator unassigns", func(t *testing.T) {
		recs := []client.Record{{CaseNumber: "D1", InvestigatorID: ptr(4)}}

		updated, err := AssignOne(recs, "D1", nil)

		assert.NoError(t, err)
		assert.Nil(t, updated.InvestigatorID)
	})

	t.Run("idempotent for the same investigator", func(t *testing.T) {
		recs := records("D1")

		first, err := AssignOne(recs, "D1", ptr(7))
		assert.NoError(t, err)
		second, err := AssignOne([]client.Record{first}, "D1", ptr(7))
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unknown case number fails with not found", func(t *testing.T) {
		recs := records("D1")

		_, err := AssignOne(recs, "D9", ptr(7))

		assert.ErrorIs(t, err, apperrors.ErrCaseNotFound)
	})
}

func TestSelectRange(t *testing.T) {
	recs := records("D1", "D2", "D3")

	tests := []struct {
		name       string
		start, end int
		want       []string
	}{
		{"full range", 1, 3, []string{"D1", "D2", "D3"}},
		{"prefix", 1, 2, []string{"D1", "D2"}},
		{"middle", 2, 2, []string{"D2"}},
		{"end clamped", 2, 10, []string{"D2", "D3"}},
		{"start clamped", -5, 1, []string{"D1"}},
		{"inverted range selects nothing", 5, 2, nil},
		{"zero range selects nothing", 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectRange(recs, tt.start, tt.end)
			assert.Len(t, got, len(tt.want))
			for i, n := range tt.want {
				assert.Equal(t, n, got[i].CaseNumber)
			}
		})
	}

	t.Run("length matches the clamped bounds for any input", func(t *testing.T) {
		for start := -2; start <= 5; start++ {
			for end := -2; end <= 5; end++ {
				got := SelectRange(recs, start, end)
				lo, hi := start-1, end
				if lo < 0 {
					lo = 0
				}
				if lo > len(recs) {
					lo = len(recs)
				}
				if hi < 0 {
					hi = 0
				}
				if hi > len(recs) {
					hi = len(recs)
				}
				want := hi - lo
				if want < 0 {
					want = 0
				}
				assert.Len(t, got, want, "start=%d end=%d", start, end)
			}
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		got := SelectRange(recs, 1, 1)
		got[0].CaseNumber = "changed"
		assert.Equal(t, "D1", recs[0].CaseNumber)
	})
}

func TestBulkSubmissions(t *testing.T) {
	t.Run("one submission per record in range order", func(t *testing.T) {
		recs := records("D1", "D2", "D3")

		subs, err := BulkSubmissions(recs, 1, 2, ptr(7))

		assert.NoError(t, err)
		assert.Equal(t, []Submission{
			{CaseNumber: "D1", InvestigatorID: 7},
			{CaseNumber: "D2", InvestigatorID: 7},
		}, subs)
	})

	t.Run("inverted range is a no-op, not an error", func(t *testing.T) {
		recs := records("D1", "D2", "D3")

		subs, err := BulkSubmissions(recs, 5, 2, ptr(7))

		assert.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("missing investigator is a validation error", func(t *testing.T) {
		recs := records("D1")

		_, err := BulkSubmissions(recs, 1, 1, nil)

		assert.ErrorIs(t, err, apperrors.ErrNoInvestigatorSelected)
		assert.True(t, apperrors.IsValidation(err))
	})
}
