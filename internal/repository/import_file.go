package repository

import (
	"enquete-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// ImportFileRepository handles database operations for imported EOS files
type ImportFileRepository struct {
	db *gorm.DB
}

// Ensure ImportFileRepository implements ImportFileRepositoryInterface
var _ ImportFileRepositoryInterface = (*ImportFileRepository)(nil)

// NewImportFileRepository creates a new import file repository
func NewImportFileRepository(db *gorm.DB) *ImportFileRepository {
	return &ImportFileRepository{db: db}
}

// Create inserts a new import file record
func (r *ImportFileRepository) Create(file *models.ImportFile) error {
	return r.db.Create(file).Error
}

// GetByID retrieves an import file by id
func (r *ImportFileRepository) GetByID(id uint) (*models.ImportFile, error) {
	var file models.ImportFile
	if err := r.db.First(&file, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// GetByName retrieves an import file by its original file name
func (r *ImportFileRepository) GetByName(name string) (*models.ImportFile, error) {
	var file models.ImportFile
	if err := r.db.First(&file, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// GetRecent retrieves the most recently uploaded files, newest first
func (r *ImportFileRepository) GetRecent(limit int) ([]models.ImportFile, error) {
	var files []models.ImportFile
	if err := r.db.Order("uploaded_at DESC").Limit(limit).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Delete removes an import file; its cases follow via the FK cascade
func (r *ImportFileRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ImportFile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of imported files
func (r *ImportFileRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.ImportFile{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
