package testutils

import (
	"fmt"
	"time"

	"enquete-portal-backend/internal/database/models"
)

// ImportFileFactory provides methods to create test ImportFile data
type ImportFileFactory struct{}

// NewImportFileFactory creates a new ImportFileFactory
func NewImportFileFactory() *ImportFileFactory {
	return &ImportFileFactory{}
}

// Create creates a test ImportFile with default values
func (f *ImportFileFactory) Create() *models.ImportFile {
	return &models.ImportFile{
		Name:       fmt.Sprintf("EXPORT_%d.txt", time.Now().UnixNano()),
		UploadedAt: time.Now(),
	}
}

// WithName sets a custom file name
func (f *ImportFileFactory) WithName(name string) *models.ImportFile {
	file := f.Create()
	file.Name = name
	return file
}

// CaseFactory provides methods to create test Case data
type CaseFactory struct{}

// NewCaseFactory creates a new CaseFactory
func NewCaseFactory() *CaseFactory {
	return &CaseFactory{}
}

// Create creates a test Case with default values. CaseNumber must be
// overridden when inserting more than one because of the unique index.
func (f *CaseFactory) Create(importFileID uint) *models.Case {
	return &models.Case{
		ImportFileID:    importFileID,
		CaseNumber:      "2024000001",
		ReferenceNumber: "REF0001",
		RequestType:     models.RequestTypeInvestigation,
		LastName:        "DUPONT",
		FirstName:       "JEAN",
		AddressLine1:    "12 RUE DE LA PAIX",
		PostalCode:      "75002",
		City:            "PARIS",
	}
}

// WithCaseNumber sets a custom case number
func (f *CaseFactory) WithCaseNumber(importFileID uint, caseNumber string) *models.Case {
	c := f.Create(importFileID)
	c.CaseNumber = caseNumber
	return c
}

// WithName sets custom subject names
func (f *CaseFactory) WithName(importFileID uint, caseNumber, lastName, firstName string) *models.Case {
	c := f.WithCaseNumber(importFileID, caseNumber)
	c.LastName = lastName
	c.FirstName = firstName
	return c
}

// InvestigatorFactory provides methods to create test Investigator data
type InvestigatorFactory struct{}

// NewInvestigatorFactory creates a new InvestigatorFactory
func NewInvestigatorFactory() *InvestigatorFactory {
	return &InvestigatorFactory{}
}

// Create creates a test Investigator with default values
func (f *InvestigatorFactory) Create() *models.Investigator {
	return &models.Investigator{
		LastName:  "BERNARD",
		FirstName: "PAUL",
		Email:     fmt.Sprintf("paul.bernard+%d@example.com", time.Now().UnixNano()),
		Phone:     "0601020304",
	}
}

// WithEmail sets a custom email
func (f *InvestigatorFactory) WithEmail(email string) *models.Investigator {
	inv := f.Create()
	inv.Email = email
	return inv
}

// WithName sets custom names
func (f *InvestigatorFactory) WithName(lastName, firstName string) *models.Investigator {
	inv := f.Create()
	inv.LastName = lastName
	inv.FirstName = firstName
	return inv
}

// FindingsFactory provides methods to create test Findings data
type FindingsFactory struct{}

// NewFindingsFactory creates a new FindingsFactory
func NewFindingsFactory() *FindingsFactory {
	return &FindingsFactory{}
}

// Create creates empty Findings attached to a case, the state every case
// starts in right after import
func (f *FindingsFactory) Create(caseID uint) *models.Findings {
	return &models.Findings{
		CaseID: caseID,
	}
}

// WithResult creates completed Findings with a result code
func (f *FindingsFactory) WithResult(caseID uint, code models.ResultCode) *models.Findings {
	fd := f.Create(caseID)
	fd.ResultCode = code
	fd.ElementsFound = "AT"
	now := time.Now()
	fd.ReturnedAt = &now
	return fd
}
