package repository

import (
	"enquete-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// CaseRepository handles database operations for investigation cases
type CaseRepository struct {
	db *gorm.DB
}

// Ensure CaseRepository implements CaseRepositoryInterface
var _ CaseRepositoryInterface = (*CaseRepository)(nil)

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create inserts a single case
func (r *CaseRepository) Create(c *models.Case) error {
	return r.db.Create(c).Error
}

// CreateBatch inserts a parsed file's worth of cases in one transaction.
// All or nothing: a failure mid-batch leaves no orphan rows behind.
func (r *CaseRepository) CreateBatch(cases []*models.Case) error {
	if len(cases) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, c := range cases {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a case with its findings preloaded
func (r *CaseRepository) GetByID(id uint) (*models.Case, error) {
	var c models.Case
	if err := r.db.Preload("Findings").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByCaseNumber retrieves a case by its EOS case number
func (r *CaseRepository) GetByCaseNumber(caseNumber string) (*models.Case, error) {
	var c models.Case
	if err := r.db.Preload("Findings").First(&c, "case_number = ?", caseNumber).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves every case with findings, in import order
func (r *CaseRepository) GetAll() ([]models.Case, error) {
	var cases []models.Case
	if err := r.db.Preload("Findings").Order("id ASC").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// GetByImportFileID retrieves the cases of one import file
func (r *CaseRepository) GetByImportFileID(fileID uint) ([]models.Case, error) {
	var cases []models.Case
	if err := r.db.Preload("Findings").Where("import_file_id = ?", fileID).Order("id ASC").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// Update saves all fields of a case
func (r *CaseRepository) Update(c *models.Case) error {
	return r.db.Save(c).Error
}

// UpdateInvestigator sets or clears the assignment of one case. A nil
// investigatorID writes NULL, which is the unassigned state.
func (r *CaseRepository) UpdateInvestigator(id uint, investigatorID *uint) error {
	result := r.db.Model(&models.Case{}).Where("id = ?", id).Update("investigator_id", investigatorID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearInvestigator unassigns every case held by the given investigator
func (r *CaseRepository) ClearInvestigator(investigatorID uint) error {
	return r.db.Model(&models.Case{}).Where("investigator_id = ?", investigatorID).Update("investigator_id", nil).Error
}

// Delete removes a case; findings follow via the FK cascade
func (r *CaseRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Case{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByImportFileID removes all cases of one import file
func (r *CaseRepository) DeleteByImportFileID(fileID uint) error {
	return r.db.Delete(&models.Case{}, "import_file_id = ?", fileID).Error
}

// Count returns the total number of cases
func (r *CaseRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Case{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountByImportFileID returns the number of cases in one import file
func (r *CaseRepository) CountByImportFileID(fileID uint) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Case{}).Where("import_file_id = ?", fileID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
