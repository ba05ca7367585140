package repository

import (
	"enquete-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// InvestigatorRepository handles database operations for investigators
type InvestigatorRepository struct {
	db *gorm.DB
}

// Ensure InvestigatorRepository implements InvestigatorRepositoryInterface
var _ InvestigatorRepositoryInterface = (*InvestigatorRepository)(nil)

// NewInvestigatorRepository creates a new investigator repository
func NewInvestigatorRepository(db *gorm.DB) *InvestigatorRepository {
	return &InvestigatorRepository{db: db}
}

// Create inserts a new investigator
func (r *InvestigatorRepository) Create(inv *models.Investigator) error {
	return r.db.Create(inv).Error
}

// GetByID retrieves an investigator by id
func (r *InvestigatorRepository) GetByID(id uint) (*models.Investigator, error) {
	var inv models.Investigator
	if err := r.db.First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByEmail retrieves an investigator by email
func (r *InvestigatorRepository) GetByEmail(email string) (*models.Investigator, error) {
	var inv models.Investigator
	if err := r.db.First(&inv, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetAll retrieves the full roster ordered by last name
func (r *InvestigatorRepository) GetAll() ([]models.Investigator, error) {
	var investigators []models.Investigator
	if err := r.db.Order("last_name ASC, first_name ASC").Find(&investigators).Error; err != nil {
		return nil, err
	}
	return investigators, nil
}

// Update saves all fields of an investigator
func (r *InvestigatorRepository) Update(inv *models.Investigator) error {
	return r.db.Save(inv).Error
}

// Delete removes an investigator. Assigned cases are released in the same
// transaction so no case ever references a missing investigator.
func (r *InvestigatorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Case{}).Where("investigator_id = ?", id).Update("investigator_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Investigator{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
