package service_test

import (
	"errors"
	"testing"
	"time"

	"enquete-portal-backend/internal/database/models"
	"enquete-portal-backend/internal/mocks"
	"enquete-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockFileRepo *mocks.MockImportFileRepositoryInterface
	mockCaseRepo *mocks.MockCaseRepositoryInterface
	statsService *service.StatsService
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFileRepo = mocks.NewMockImportFileRepositoryInterface(suite.ctrl)
	suite.mockCaseRepo = mocks.NewMockCaseRepositoryInterface(suite.ctrl)
	suite.statsService = service.NewStatsService(suite.mockFileRepo, suite.mockCaseRepo)
}

func (suite *StatsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StatsServiceTestSuite) TestGetStats_Success() {
	recent := []models.ImportFile{
		{ID: 2, Name: "EXPORT_02.txt", UploadedAt: time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)},
		{ID: 1, Name: "EXPORT_01.txt", UploadedAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)},
	}
	suite.mockFileRepo.EXPECT().Count().Return(int64(2), nil)
	suite.mockCaseRepo.EXPECT().Count().Return(int64(150), nil)
	suite.mockFileRepo.EXPECT().GetRecent(10).Return(recent, nil)
	suite.mockCaseRepo.EXPECT().CountByImportFileID(uint(2)).Return(int64(90), nil)
	suite.mockCaseRepo.EXPECT().CountByImportFileID(uint(1)).Return(int64(60), nil)

	stats, err := suite.statsService.GetStats()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), stats.TotalFiles)
	assert.Equal(suite.T(), int64(150), stats.TotalCases)
	assert.Len(suite.T(), stats.RecentFiles, 2)
	assert.Equal(suite.T(), "EXPORT_02.txt", stats.RecentFiles[0].Name)
	assert.Equal(suite.T(), int64(90), stats.RecentFiles[0].RecordCount)
	assert.Equal(suite.T(), "2024-03-16 09:00:00", stats.RecentFiles[0].UploadedAt)
}

func (suite *StatsServiceTestSuite) TestGetStats_EmptyDatabase() {
	suite.mockFileRepo.EXPECT().Count().Return(int64(0), nil)
	suite.mockCaseRepo.EXPECT().Count().Return(int64(0), nil)
	suite.mockFileRepo.EXPECT().GetRecent(10).Return([]models.ImportFile{}, nil)

	stats, err := suite.statsService.GetStats()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), stats.TotalFiles)
	assert.Empty(suite.T(), stats.RecentFiles)
}

func (suite *StatsServiceTestSuite) TestGetStats_RepositoryError() {
	suite.mockFileRepo.EXPECT().Count().Return(int64(0), errors.New("connection refused"))

	stats, err := suite.statsService.GetStats()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), stats)
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
