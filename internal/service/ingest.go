package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"enquete-portal-backend/internal/database/models"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ImportService ingests EOS exchange files: one ImportFile row per upload,
// one Case per data line, one empty Findings row per case.
type ImportService struct {
	fileRepo     repository.ImportFileRepositoryInterface
	caseRepo     repository.CaseRepositoryInterface
	findingsRepo repository.FindingsRepositoryInterface
	parser       *EOSParser
	uploadDir    string
	logger       *logrus.Logger
}

// Ensure ImportService implements ImportServiceInterface
var _ ImportServiceInterface = (*ImportService)(nil)

// NewImportService creates a new import service
func NewImportService(
	fileRepo repository.ImportFileRepositoryInterface,
	caseRepo repository.CaseRepositoryInterface,
	findingsRepo repository.FindingsRepositoryInterface,
	parser *EOSParser,
	uploadDir string,
	logger *logrus.Logger,
) *ImportService {
	return &ImportService{
		fileRepo:     fileRepo,
		caseRepo:     caseRepo,
		findingsRepo: findingsRepo,
		parser:       parser,
		uploadDir:    uploadDir,
		logger:       logger,
	}
}

// ImportResult reports a completed ingest
type ImportResult struct {
	FileID           uint   `json:"file_id"`
	RecordsProcessed int    `json:"records_processed"`
	Message          string `json:"message"`
}

// FileInfo describes an already-imported file, used in duplicate conflicts
type FileInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"nom"`
	UploadedAt  string `json:"date_upload"`
	RecordCount int64  `json:"nombre_donnees"`
}

// Import ingests a new exchange file. A file with the same name must not
// already exist; the caller decides whether a duplicate becomes a Replace.
func (s *ImportService) Import(filename string, r io.Reader) (*ImportResult, error) {
	existing, err := s.fileRepo.GetByName(filename)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing file: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrImportFileExists
	}

	return s.ingest(filename, r)
}

// Replace drops the previous import of the same file name, cases included,
// and ingests the new content in its place.
func (s *ImportService) Replace(filename string, r io.Reader) (*ImportResult, error) {
	existing, err := s.fileRepo.GetByName(filename)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing file: %w", err)
	}
	if existing != nil {
		if err := s.fileRepo.Delete(existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete previous import: %w", err)
		}
		s.removeStoredFile(existing.Name)
	}

	result, err := s.ingest(filename, r)
	if err != nil {
		return nil, err
	}
	result.Message = "file replaced"
	return result, nil
}

// DeleteFile removes an import and everything that came from it
func (s *ImportService) DeleteFile(id uint) error {
	file, err := s.fileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrImportFileNotFound
		}
		return fmt.Errorf("failed to get import file: %w", err)
	}

	if err := s.fileRepo.Delete(file.ID); err != nil {
		return fmt.Errorf("failed to delete import file: %w", err)
	}
	s.removeStoredFile(file.Name)
	return nil
}

// FileInfo returns the duplicate-conflict summary for a file name
func (s *ImportService) FileInfo(name string) (*FileInfo, error) {
	file, err := s.fileRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrImportFileNotFound
		}
		return nil, fmt.Errorf("failed to get import file: %w", err)
	}
	count, err := s.caseRepo.CountByImportFileID(file.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}
	return &FileInfo{
		ID:          file.ID,
		Name:        file.Name,
		UploadedAt:  file.UploadedAt.Format("2006-01-02 15:04:05"),
		RecordCount: count,
	}, nil
}

func (s *ImportService) ingest(filename string, r io.Reader) (*ImportResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	cases, err := s.parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}
	if len(cases) == 0 {
		return nil, apperrors.ErrEmptyImportFile
	}

	file := &models.ImportFile{Name: filename}
	if err := s.fileRepo.Create(file); err != nil {
		return nil, fmt.Errorf("failed to create import file: %w", err)
	}

	for _, c := range cases {
		c.ImportFileID = file.ID
	}
	if err := s.caseRepo.CreateBatch(cases); err != nil {
		// leave no half-imported file behind
		if delErr := s.fileRepo.Delete(file.ID); delErr != nil {
			s.logger.WithError(delErr).Warn("Could not remove import file after failed batch")
		}
		return nil, fmt.Errorf("failed to store cases: %w", err)
	}

	// Every imported case carries an empty findings row, ready for updates.
	for _, c := range cases {
		if err := s.findingsRepo.Create(&models.Findings{CaseID: c.ID}); err != nil {
			return nil, fmt.Errorf("failed to create findings for case %s: %w", c.CaseNumber, err)
		}
	}

	s.storeRawFile(filename, content)

	s.logger.WithFields(logrus.Fields{
		"file":    filename,
		"file_id": file.ID,
		"records": len(cases),
	}).Info("Import complete")

	return &ImportResult{
		FileID:           file.ID,
		RecordsProcessed: len(cases),
		Message:          "file imported",
	}, nil
}

// storeRawFile keeps the original upload on disk for audit. Failure to keep
// the copy is logged, not fatal: the database already has the data.
func (s *ImportService) storeRawFile(filename string, content []byte) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.logger.WithError(err).Warn("Could not create upload directory")
		return
	}
	path := filepath.Join(s.uploadDir, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("Could not store raw upload")
	}
}

func (s *ImportService) removeStoredFile(filename string) {
	path := filepath.Join(s.uploadDir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.WithError(err).WithField("path", path).Warn("Could not remove stored upload")
	}
}
