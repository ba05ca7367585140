package service

import (
	"io"

	"enquete-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CaseServiceInterface defines the interface for case service
type CaseServiceInterface interface {
	GetAll() ([]models.Case, error)
	GetByID(id uint) (*models.Case, error)
	Create(req *CreateCaseRequest) (*models.Case, error)
	Assign(req *AssignRequest) error
	Delete(id uint) error
}

// InvestigatorServiceInterface defines the interface for investigator service
type InvestigatorServiceInterface interface {
	GetAll() ([]models.Investigator, error)
	GetByID(id uint) (*models.Investigator, error)
	Create(req *CreateInvestigatorRequest) (*models.Investigator, error)
	Delete(id uint) error
}

// FindingsServiceInterface defines the interface for findings service
type FindingsServiceInterface interface {
	GetByCaseID(caseID uint) (*models.Findings, error)
	Update(caseID uint, req *UpdateFindingsRequest) (*models.Findings, error)
}

// ImportServiceInterface defines the interface for the file ingest service
type ImportServiceInterface interface {
	Import(filename string, r io.Reader) (*ImportResult, error)
	Replace(filename string, r io.Reader) (*ImportResult, error)
	DeleteFile(id uint) error
	FileInfo(name string) (*FileInfo, error)
}

// StatsServiceInterface defines the interface for the stats service
type StatsServiceInterface interface {
	GetStats() (*StatsResponse, error)
}

// VPNServiceInterface defines the interface for the VPN profile service
type VPNServiceInterface interface {
	GenerateConfig(investigatorID uint) (string, error)
	EnsureConfig(investigatorID uint) (string, error)
	RemoveConfig(investigatorID uint) error
	ConfigPath(investigatorID uint) string
	TemplateExists() (bool, string)
	SaveTemplate(r io.Reader) (string, error)
}
