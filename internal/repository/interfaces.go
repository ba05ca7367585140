package repository

import (
	"enquete-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CaseRepositoryInterface defines the interface for case repository operations
type CaseRepositoryInterface interface {
	Create(c *models.Case) error
	CreateBatch(cases []*models.Case) error
	GetByID(id uint) (*models.Case, error)
	GetByCaseNumber(caseNumber string) (*models.Case, error)
	GetAll() ([]models.Case, error)
	GetByImportFileID(fileID uint) ([]models.Case, error)
	Update(c *models.Case) error
	UpdateInvestigator(id uint, investigatorID *uint) error
	ClearInvestigator(investigatorID uint) error
	Delete(id uint) error
	DeleteByImportFileID(fileID uint) error
	Count() (int64, error)
	CountByImportFileID(fileID uint) (int64, error)
}

// InvestigatorRepositoryInterface defines the interface for investigator repository operations
type InvestigatorRepositoryInterface interface {
	Create(inv *models.Investigator) error
	GetByID(id uint) (*models.Investigator, error)
	GetByEmail(email string) (*models.Investigator, error)
	GetAll() ([]models.Investigator, error)
	Update(inv *models.Investigator) error
	Delete(id uint) error
}

// FindingsRepositoryInterface defines the interface for findings repository operations
type FindingsRepositoryInterface interface {
	Create(f *models.Findings) error
	GetByCaseID(caseID uint) (*models.Findings, error)
	Update(f *models.Findings) error
}

// ImportFileRepositoryInterface defines the interface for import file repository operations
type ImportFileRepositoryInterface interface {
	Create(file *models.ImportFile) error
	GetByID(id uint) (*models.ImportFile, error)
	GetByName(name string) (*models.ImportFile, error)
	GetRecent(limit int) ([]models.ImportFile, error)
	Delete(id uint) error
	Count() (int64, error)
}
