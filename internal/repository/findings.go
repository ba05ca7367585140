package repository

import (
	"enquete-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// FindingsRepository handles database operations for case findings
type FindingsRepository struct {
	db *gorm.DB
}

// Ensure FindingsRepository implements FindingsRepositoryInterface
var _ FindingsRepositoryInterface = (*FindingsRepository)(nil)

// NewFindingsRepository creates a new findings repository
func NewFindingsRepository(db *gorm.DB) *FindingsRepository {
	return &FindingsRepository{db: db}
}

// Create inserts the findings row for a case
func (r *FindingsRepository) Create(f *models.Findings) error {
	return r.db.Create(f).Error
}

// GetByCaseID retrieves the findings attached to a case
func (r *FindingsRepository) GetByCaseID(caseID uint) (*models.Findings, error) {
	var f models.Findings
	if err := r.db.First(&f, "case_id = ?", caseID).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// Update saves all fields of a findings row
func (r *FindingsRepository) Update(f *models.Findings) error {
	return r.db.Save(f).Error
}
