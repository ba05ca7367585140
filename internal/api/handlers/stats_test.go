package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"enquete-portal-backend/internal/api/handlers"
	"enquete-portal-backend/internal/mocks"
	"enquete-portal-backend/internal/service"
	"enquete-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StatsHandlerTestSuite defines the test suite for StatsHandler
type StatsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStatsServiceInterface
	handler     *handlers.StatsHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *StatsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStatsServiceInterface(suite.ctrl)
	suite.handler = handlers.NewStatsHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/stats", suite.handler.GetStats)
}

func (suite *StatsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StatsHandlerTestSuite) TestGetStats() {
	suite.T().Run("Success", func(t *testing.T) {
		stats := &service.StatsResponse{
			TotalFiles: 2,
			TotalCases: 150,
			RecentFiles: []service.FileInfo{
				{ID: 2, Name: "EXPORT_02.txt", UploadedAt: "2024-03-16 09:00:00", RecordCount: 90},
			},
		}
		suite.mockService.EXPECT().GetStats().Return(stats, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/stats", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response envelope
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Success)

		var data service.StatsResponse
		assert.NoError(t, json.Unmarshal(response.Data, &data))
		assert.Equal(t, int64(150), data.TotalCases)
		assert.Len(t, data.RecentFiles, 1)
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().GetStats().Return(nil, assert.AnError)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/stats", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestStatsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}
