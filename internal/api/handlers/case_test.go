package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"enquete-portal-backend/internal/api/handlers"
	"enquete-portal-backend/internal/database/models"
	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/mocks"
	"enquete-portal-backend/internal/service"
	"enquete-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// envelope mirrors the wire format for assertions
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func ptr(v uint) *uint { return &v }

// CaseHandlerTestSuite defines the test suite for CaseHandler
type CaseHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCaseServiceInterface
	handler     *handlers.CaseHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CaseHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCaseServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCaseHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	{
		api.GET("/donnees", suite.handler.GetAllCases)
		api.GET("/donnees/:id", suite.handler.GetCase)
		api.POST("/donnees", suite.handler.CreateCase)
		api.DELETE("/donnees/:id", suite.handler.DeleteCase)
		api.POST("/assign-enquete", suite.handler.AssignCase)
	}
}

func (suite *CaseHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CaseHandlerTestSuite) TestGetAllCases() {
	suite.T().Run("Success", func(t *testing.T) {
		cases := []models.Case{
			{BaseModel: models.BaseModel{ID: 1}, CaseNumber: "2024000001", LastName: "DUPONT"},
			{BaseModel: models.BaseModel{ID: 2}, CaseNumber: "2024000002", LastName: "MARTIN", InvestigatorID: ptr(7)},
		}
		suite.mockService.EXPECT().GetAll().Return(cases, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/donnees", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response envelope
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Success)

		var data []models.Case
		assert.NoError(t, json.Unmarshal(response.Data, &data))
		assert.Len(t, data, 2)
		assert.Equal(t, "2024000001", data[0].CaseNumber)
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().GetAll().Return(nil, assert.AnError)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/donnees", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var response envelope
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.Success)
	})
}

func (suite *CaseHandlerTestSuite) TestGetCase() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(uint(5)).Return(
			&models.Case{BaseModel: models.BaseModel{ID: 5}, CaseNumber: "2024000005"}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/donnees/5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrCaseNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/donnees/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/donnees/abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *CaseHandlerTestSuite) TestAssignCase() {
	suite.T().Run("Assign", func(t *testing.T) {
		suite.mockService.EXPECT().Assign(gomock.Any()).DoAndReturn(func(req *service.AssignRequest) error {
			assert.Equal(t, "2024000001", req.CaseNumber)
			assert.Equal(t, uint(7), *req.InvestigatorID)
			return nil
		})

		body := map[string]interface{}{"enqueteId": "2024000001", "enqueteurId": 7}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/assign-enquete", body)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response envelope
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Success)
	})

	suite.T().Run("Release", func(t *testing.T) {
		suite.mockService.EXPECT().Assign(gomock.Any()).DoAndReturn(func(req *service.AssignRequest) error {
			assert.Nil(t, req.InvestigatorID)
			return nil
		})

		body := map[string]interface{}{"enqueteId": "2024000001", "enqueteurId": nil}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/assign-enquete", body)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Case Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().Assign(gomock.Any()).Return(apperrors.ErrCaseNotFound)

		body := map[string]interface{}{"enqueteId": "9999999999", "enqueteurId": 7}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/assign-enquete", body)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/assign-enquete", "not an object")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *CaseHandlerTestSuite) TestDeleteCase() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(5)).Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/donnees/5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrCaseNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/donnees/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestCaseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CaseHandlerTestSuite))
}
