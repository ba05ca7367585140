package service

import (
	"fmt"

	"enquete-portal-backend/internal/repository"
)

// StatsService aggregates import activity for the dashboard
type StatsService struct {
	fileRepo repository.ImportFileRepositoryInterface
	caseRepo repository.CaseRepositoryInterface
}

// Ensure StatsService implements StatsServiceInterface
var _ StatsServiceInterface = (*StatsService)(nil)

// NewStatsService creates a new stats service
func NewStatsService(fileRepo repository.ImportFileRepositoryInterface, caseRepo repository.CaseRepositoryInterface) *StatsService {
	return &StatsService{fileRepo: fileRepo, caseRepo: caseRepo}
}

// StatsResponse is the aggregate view served by the stats endpoint
type StatsResponse struct {
	TotalFiles  int64      `json:"total_fichiers"`
	TotalCases  int64      `json:"total_donnees"`
	RecentFiles []FileInfo `json:"derniers_fichiers"`
}

// recentFilesLimit caps the dashboard's recent-imports list
const recentFilesLimit = 10

// GetStats returns totals and the most recent imports, newest first
func (s *StatsService) GetStats() (*StatsResponse, error) {
	totalFiles, err := s.fileRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count files: %w", err)
	}
	totalCases, err := s.caseRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	recent, err := s.fileRepo.GetRecent(recentFilesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent files: %w", err)
	}

	files := make([]FileInfo, len(recent))
	for i, f := range recent {
		count, err := s.caseRepo.CountByImportFileID(f.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count cases of file %d: %w", f.ID, err)
		}
		files[i] = FileInfo{
			ID:          f.ID,
			Name:        f.Name,
			UploadedAt:  f.UploadedAt.Format("2006-01-02 15:04:05"),
			RecordCount: count,
		}
	}

	return &StatsResponse{
		TotalFiles:  totalFiles,
		TotalCases:  totalCases,
		RecentFiles: files,
	}, nil
}
