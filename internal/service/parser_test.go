package service

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enquete-portal-backend/internal/database/models"
)

// buildLine renders a fixed-width line from field values, padding each
// column to its full width.
func buildLine(fields map[string]string) string {
	runes := make([]rune, 1854)
	for i := range runes {
		runes[i] = ' '
	}
	for _, col := range eosLayout {
		value := []rune(fields[col.name])
		for i, r := range value {
			if col.start+i >= col.end {
				break
			}
			runes[col.start+i] = r
		}
	}
	return string(runes)
}

func newTestParser() *EOSParser {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewEOSParser(logger)
}

func TestEOSParser_Parse(t *testing.T) {
	t.Run("parses a full line", func(t *testing.T) {
		line := buildLine(map[string]string{
			"numeroDossier":           "2024000001",
			"referenceDossier":        "REF0001",
			"typeDemande":             "ENQ",
			"dateRetourEspere":        "15/03/2024",
			"nom":                     "DUPONT",
			"prenom":                  "JEAN",
			"dateNaissance":           "02/01/1970",
			"lieuNaissance":           "SAINT-ÉTIENNE",
			"adresse1":                "12 RUE DE LA PAIX",
			"ville":                   "PARIS",
			"codePostal":              "75002",
			"elementDemandes":         "AT",
			"elementObligatoires":     "A",
			"cumulMontantsPrecedents": "1234,56",
			"urgence":                 "1",
		})

		cases, err := newTestParser().Parse(strings.NewReader(line))

		require.NoError(t, err)
		require.Len(t, cases, 1)
		c := cases[0]
		assert.Equal(t, "2024000001", c.CaseNumber)
		assert.Equal(t, "REF0001", c.ReferenceNumber)
		assert.Equal(t, models.RequestTypeInvestigation, c.RequestType)
		assert.Equal(t, "DUPONT", c.LastName)
		assert.Equal(t, "JEAN", c.FirstName)
		assert.Equal(t, "SAINT-ÉTIENNE", c.BirthPlace)
		assert.Equal(t, "12 RUE DE LA PAIX", c.AddressLine1)
		assert.Equal(t, "PARIS", c.City)
		assert.Equal(t, "75002", c.PostalCode)
		assert.Equal(t, "AT", c.RequestedElements)
		assert.Equal(t, "1", c.Urgency)

		require.NotNil(t, c.BirthDate)
		assert.Equal(t, time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC), *c.BirthDate)
		require.NotNil(t, c.ExpectedReturnAt)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *c.ExpectedReturnAt)

		require.NotNil(t, c.PreviousAmounts, "decimal comma amount must parse")
		assert.Equal(t, 1234.56, *c.PreviousAmounts)
	})

	t.Run("skips blank lines and lines without a case number", func(t *testing.T) {
		content := strings.Join([]string{
			"",
			buildLine(map[string]string{"nom": "SANSNUMERO"}),
			buildLine(map[string]string{"numeroDossier": "2024000002", "nom": "MARTIN"}),
			"   ",
		}, "\n")

		cases, err := newTestParser().Parse(strings.NewReader(content))

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "2024000002", cases[0].CaseNumber)
	})

	t.Run("short line reads missing tail as empty", func(t *testing.T) {
		// only the case number and part of the reference are present
		line := "2024000003REF"

		cases, err := newTestParser().Parse(strings.NewReader(line))

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "2024000003", cases[0].CaseNumber)
		assert.Equal(t, "REF", cases[0].ReferenceNumber)
		assert.Empty(t, cases[0].LastName)
		assert.Nil(t, cases[0].BirthDate)
	})

	t.Run("malformed date and amount fields become nil", func(t *testing.T) {
		line := buildLine(map[string]string{
			"numeroDossier":           "2024000004",
			"dateNaissance":           "31/13/1999",
			"cumulMontantsPrecedents": "abc",
		})

		cases, err := newTestParser().Parse(strings.NewReader(line))

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Nil(t, cases[0].BirthDate)
		assert.Nil(t, cases[0].PreviousAmounts)
	})

	t.Run("accented characters do not shift later columns", func(t *testing.T) {
		line := buildLine(map[string]string{
			"numeroDossier": "2024000005",
			"nom":           "LEFÈVRE",
			"prenom":        "HÉLÈNE",
			"ville":         "ORLÉANS",
			"codePostal":    "45000",
		})

		cases, err := newTestParser().Parse(strings.NewReader(line))

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "LEFÈVRE", cases[0].LastName)
		assert.Equal(t, "HÉLÈNE", cases[0].FirstName)
		assert.Equal(t, "ORLÉANS", cases[0].City)
		assert.Equal(t, "45000", cases[0].PostalCode)
	})
}
