package service

import (
	"errors"
	"fmt"

	"enquete-portal-backend/internal/database/models"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InvestigatorService handles business logic for investigators
type InvestigatorService struct {
	repo      repository.InvestigatorRepositoryInterface
	vpn       VPNServiceInterface
	validator *validator.Validate
	logger    *logrus.Logger
}

// Ensure InvestigatorService implements InvestigatorServiceInterface
var _ InvestigatorServiceInterface = (*InvestigatorService)(nil)

// NewInvestigatorService creates a new investigator service
func NewInvestigatorService(
	repo repository.InvestigatorRepositoryInterface,
	vpn VPNServiceInterface,
	validator *validator.Validate,
	logger *logrus.Logger,
) *InvestigatorService {
	return &InvestigatorService{
		repo:      repo,
		vpn:       vpn,
		validator: validator,
		logger:    logger,
	}
}

// CreateInvestigatorRequest represents the request to add an investigator
type CreateInvestigatorRequest struct {
	LastName  string `json:"nom" validate:"required,max=100"`
	FirstName string `json:"prenom" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Phone     string `json:"telephone" validate:"max=20"`
}

// GetAll returns the full roster
func (s *InvestigatorService) GetAll() ([]models.Investigator, error) {
	roster, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list investigators: %w", err)
	}
	return roster, nil
}

// GetByID returns one investigator
func (s *InvestigatorService) GetByID(id uint) (*models.Investigator, error) {
	inv, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestigatorNotFound
		}
		return nil, fmt.Errorf("failed to get investigator: %w", err)
	}
	return inv, nil
}

// Create adds an investigator to the roster and tries to issue their VPN
// profile. VPN failure is logged, not fatal: the profile can be regenerated
// later and the roster entry must not be lost over it.
func (s *InvestigatorService) Create(req *CreateInvestigatorRequest) (*models.Investigator, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing investigator: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrInvestigatorExists
	}

	inv := &models.Investigator{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.repo.Create(inv); err != nil {
		return nil, fmt.Errorf("failed to create investigator: %w", err)
	}

	if _, err := s.vpn.GenerateConfig(inv.ID); err != nil {
		s.logger.WithError(err).WithField("investigator_id", inv.ID).Warn("Could not generate VPN config")
	} else {
		inv.VPNConfigGenerated = true
		if err := s.repo.Update(inv); err != nil {
			s.logger.WithError(err).Warn("Could not record VPN config generation")
		}
	}

	return inv, nil
}

// Delete removes an investigator, releases their assigned cases, and drops
// their VPN profile from disk
func (s *InvestigatorService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvestigatorNotFound
		}
		return fmt.Errorf("failed to delete investigator: %w", err)
	}

	if err := s.vpn.RemoveConfig(id); err != nil {
		s.logger.WithError(err).WithField("investigator_id", id).Warn("Could not remove VPN config")
	}
	return nil
}
