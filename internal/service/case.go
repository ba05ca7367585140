package service

import (
	"errors"
	"fmt"
	"time"

	"enquete-portal-backend/internal/database/models"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CaseService handles business logic for investigation cases
type CaseService struct {
	repo             repository.CaseRepositoryInterface
	investigatorRepo repository.InvestigatorRepositoryInterface
	findingsRepo     repository.FindingsRepositoryInterface
	validator        *validator.Validate
}

// Ensure CaseService implements CaseServiceInterface
var _ CaseServiceInterface = (*CaseService)(nil)

// NewCaseService creates a new case service
func NewCaseService(
	repo repository.CaseRepositoryInterface,
	investigatorRepo repository.InvestigatorRepositoryInterface,
	findingsRepo repository.FindingsRepositoryInterface,
	validator *validator.Validate,
) *CaseService {
	return &CaseService{
		repo:             repo,
		investigatorRepo: investigatorRepo,
		findingsRepo:     findingsRepo,
		validator:        validator,
	}
}

// CreateCaseRequest represents a manually added case, outside any import file
type CreateCaseRequest struct {
	CaseNumber      string `json:"numeroDossier" validate:"required,max=10"`
	ReferenceNumber string `json:"referenceDossier" validate:"max=15"`
	RequestType     string `json:"typeDemande" validate:"omitempty,oneof=ENQ CON"`
	LastName        string `json:"nom" validate:"required,max=30"`
	FirstName       string `json:"prenom" validate:"max=20"`
	BirthDate       string `json:"dateNaissance" validate:"omitempty,datetime=2006-01-02"`
	BirthPlace      string `json:"lieuNaissance" validate:"max=50"`
	PostalCode      string `json:"codePostal" validate:"max=10"`
	City            string `json:"ville" validate:"max=32"`
	AddressLine1    string `json:"adresse1" validate:"max=32"`
	AddressLine2    string `json:"adresse2" validate:"max=32"`
	AddressLine3    string `json:"adresse3" validate:"max=32"`
	PersonalPhone   string `json:"telephonePersonnel" validate:"max=15"`
	ImportFileID    uint   `json:"fichier_id" validate:"required"`
}

// AssignRequest represents the request to route a case to an investigator.
// A nil InvestigatorID releases the case back to the unassigned pool.
type AssignRequest struct {
	CaseNumber     string `json:"enqueteId" validate:"required"`
	InvestigatorID *uint  `json:"enqueteurId"`
}

// GetAll returns every case with its findings, in import order
func (s *CaseService) GetAll() ([]models.Case, error) {
	cases, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// GetByID returns one case with its findings
func (s *CaseService) GetByID(id uint) (*models.Case, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return c, nil
}

// Create adds a hand-entered case and its empty findings row
func (s *CaseService) Create(req *CreateCaseRequest) (*models.Case, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	c := &models.Case{
		ImportFileID:    req.ImportFileID,
		CaseNumber:      req.CaseNumber,
		ReferenceNumber: req.ReferenceNumber,
		RequestType:     models.RequestType(req.RequestType),
		LastName:        req.LastName,
		FirstName:       req.FirstName,
		BirthPlace:      req.BirthPlace,
		PostalCode:      req.PostalCode,
		City:            req.City,
		AddressLine1:    req.AddressLine1,
		AddressLine2:    req.AddressLine2,
		AddressLine3:    req.AddressLine3,
		PersonalPhone:   req.PersonalPhone,
	}
	if req.BirthDate != "" {
		if t, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
			c.BirthDate = &t
		}
	}

	if err := s.repo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	if err := s.findingsRepo.Create(&models.Findings{CaseID: c.ID}); err != nil {
		return nil, fmt.Errorf("failed to create findings for case: %w", err)
	}
	return c, nil
}

// Assign routes a case to an investigator, or releases it when the request
// carries no investigator. The case is looked up by its business case number,
// which is what operators and exchange files use.
func (s *CaseService) Assign(req *AssignRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	c, err := s.repo.GetByCaseNumber(req.CaseNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCaseNotFound
		}
		return fmt.Errorf("failed to get case: %w", err)
	}

	if req.InvestigatorID != nil {
		if _, err := s.investigatorRepo.GetByID(*req.InvestigatorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvestigatorNotFound
			}
			return fmt.Errorf("failed to verify investigator: %w", err)
		}
	}

	if err := s.repo.UpdateInvestigator(c.ID, req.InvestigatorID); err != nil {
		return fmt.Errorf("failed to assign case: %w", err)
	}
	return nil
}

// Delete removes one case and its findings
func (s *CaseService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCaseNotFound
		}
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}
