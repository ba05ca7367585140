//go:build integration
// +build integration

package repository

import (
	"testing"

	"enquete-portal-backend/internal/database/models"
	"enquete-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FindingsRepositoryTestSuite tests the FindingsRepository
type FindingsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FindingsRepository
	caseID        uint
}

// SetupSuite runs before all tests in the suite
func (suite *FindingsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewFindingsRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *FindingsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FindingsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	file := testutils.NewImportFileFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(file).Error)
	c := testutils.NewCaseFactory().Create(file.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(c).Error)
	suite.caseID = c.ID
}

// TearDownTest runs after each test
func (suite *FindingsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateEmptyAndFillIn tests the import-then-report lifecycle
func (suite *FindingsRepositoryTestSuite) TestCreateEmptyAndFillIn() {
	empty := testutils.NewFindingsFactory().Create(suite.caseID)
	suite.NoError(suite.repo.Create(empty))

	retrieved, err := suite.repo.GetByCaseID(suite.caseID)
	suite.NoError(err)
	suite.Empty(retrieved.ResultCode)

	retrieved.ResultCode = models.ResultPositive
	retrieved.City = "LYON"
	amount := 1850.50
	retrieved.SalaryAmount = &amount
	suite.NoError(suite.repo.Update(retrieved))

	updated, err := suite.repo.GetByCaseID(suite.caseID)
	suite.NoError(err)
	suite.Equal(models.ResultPositive, updated.ResultCode)
	suite.Equal("LYON", updated.City)
	suite.NotNil(updated.SalaryAmount)
	suite.Equal(1850.50, *updated.SalaryAmount)
}

// TestNullAmountsStayNull tests that omitted numerics round-trip as NULL
func (suite *FindingsRepositoryTestSuite) TestNullAmountsStayNull() {
	f := testutils.NewFindingsFactory().WithResult(suite.caseID, models.ResultNegative)
	suite.NoError(suite.repo.Create(f))

	retrieved, err := suite.repo.GetByCaseID(suite.caseID)

	suite.NoError(err)
	suite.Nil(retrieved.SalaryAmount)
	suite.Nil(retrieved.InvoiceAmount)
	suite.Nil(retrieved.Income1Amount)
}

// TestOneRowPerCase tests the unique index on case id
func (suite *FindingsRepositoryTestSuite) TestOneRowPerCase() {
	suite.NoError(suite.repo.Create(testutils.NewFindingsFactory().Create(suite.caseID)))

	err := suite.repo.Create(testutils.NewFindingsFactory().Create(suite.caseID))

	suite.Error(err)
}

// TestGetByCaseIDNotFound tests lookup for a case without findings
func (suite *FindingsRepositoryTestSuite) TestGetByCaseIDNotFound() {
	f, err := suite.repo.GetByCaseID(99999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(f)
}

// Run the test suite
func TestFindingsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FindingsRepositoryTestSuite))
}
