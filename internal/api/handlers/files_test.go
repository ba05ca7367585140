package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"enquete-portal-backend/internal/api/handlers"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/mocks"
	"enquete-portal-backend/internal/service"
	"enquete-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// FileHandlerTestSuite defines the test suite for FileHandler
type FileHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockImportServiceInterface
	handler     *handlers.FileHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *FileHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockImportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewFileHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.POST("/parse", suite.handler.ImportFile)
	suite.httpSuite.Router.POST("/replace-file", suite.handler.ReplaceFile)
	suite.httpSuite.Router.DELETE("/api/fichiers/:id", suite.handler.DeleteFile)
}

func (suite *FileHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FileHandlerTestSuite) TestImportFile() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Import("EXPORT_01.txt", gomock.Any()).Return(
			&service.ImportResult{FileID: 42, RecordsProcessed: 2, Message: "file imported"}, nil)

		recorder := suite.httpSuite.MakeUploadRequest(t, "POST", "/parse", "EXPORT_01.txt", "2024000001\n2024000002\n")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response envelope
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Success)

		var result service.ImportResult
		assert.NoError(t, json.Unmarshal(response.Data, &result))
		assert.Equal(t, uint(42), result.FileID)
		assert.Equal(t, 2, result.RecordsProcessed)
	})

	suite.T().Run("Duplicate Returns Conflict With Existing File", func(t *testing.T) {
		suite.mockService.EXPECT().Import("EXPORT_01.txt", gomock.Any()).Return(nil, apperrors.ErrImportFileExists)
		suite.mockService.EXPECT().FileInfo("EXPORT_01.txt").Return(
			&service.FileInfo{ID: 7, Name: "EXPORT_01.txt", UploadedAt: "2024-03-15 10:30:00", RecordCount: 2}, nil)

		recorder := suite.httpSuite.MakeUploadRequest(t, "POST", "/parse", "EXPORT_01.txt", "2024000001\n")

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var response envelope
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.Success)

		var info service.FileInfo
		assert.NoError(t, json.Unmarshal(response.Data, &info))
		assert.Equal(t, uint(7), info.ID)
	})

	suite.T().Run("Empty File", func(t *testing.T) {
		suite.mockService.EXPECT().Import("EXPORT_01.txt", gomock.Any()).Return(nil, apperrors.ErrEmptyImportFile)

		recorder := suite.httpSuite.MakeUploadRequest(t, "POST", "/parse", "EXPORT_01.txt", "\n")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("No File Part", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/parse", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *FileHandlerTestSuite) TestReplaceFile() {
	suite.mockService.EXPECT().Replace("EXPORT_01.txt", gomock.Any()).Return(
		&service.ImportResult{FileID: 8, RecordsProcessed: 1, Message: "file replaced"}, nil)

	recorder := suite.httpSuite.MakeUploadRequest(suite.T(), "POST", "/replace-file", "EXPORT_01.txt", "2024000001\n")

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response envelope
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Success)
}

func (suite *FileHandlerTestSuite) TestDeleteFile() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteFile(uint(7)).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/fichiers/7", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteFile(uint(99)).Return(apperrors.ErrImportFileNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/fichiers/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestFileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FileHandlerTestSuite))
}
